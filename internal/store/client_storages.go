// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kns/internal/config"
	"github.com/MKhiriev/go-kns/internal/logger"
	"github.com/MKhiriev/go-kns/internal/utils"
)

// ClientStorages groups every storage the application talks to.
type ClientStorages struct {
	RecordRepository  RecordRepository
	PhotoStorage      PhotoStorage
	CredentialStorage CredentialStorage

	db *DB
}

// NewClientStorages opens the configured database, applies migrations and
// wires the file-backed stores.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverSQLite, "":
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		RecordRepository:  NewRecordRepository(db, logger),
		PhotoStorage:      NewPhotoFileStorage(cfg.Files.PhotoDir, utils.NewFileNamer(PhotoFilePrefix, PhotoFileExt)),
		CredentialStorage: NewCredentialFileStorage(cfg.Files.CredentialsFile),
		db:                db,
	}, nil
}

// Close releases the database connection pool.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
