// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-kns/internal/codec"
	"github.com/MKhiriev/go-kns/internal/logger"
	"github.com/MKhiriev/go-kns/internal/store"
	"github.com/MKhiriev/go-kns/models"
)

const (
	exportSubdir     = "KNS_Exports"
	exportFilePrefix = "KNS_Export_"
	exportDateLayout = "20060102"
)

type exportService struct {
	records store.RecordRepository
	dir     string
	now     func() time.Time

	logger *logger.Logger
}

func NewExportService(records store.RecordRepository, exportDir string, logger *logger.Logger) ExportService {
	return &exportService{
		records: records,
		dir:     exportDir,
		now:     time.Now,
		logger:  logger,
	}
}

// ExportPath returns the file an export started at t writes to. Exports on
// the same day overwrite each other.
func ExportPath(exportDir string, t time.Time) string {
	return filepath.Join(exportDir, exportSubdir, exportFilePrefix+t.Format(exportDateLayout)+".csv")
}

func (s *exportService) Export(ctx context.Context) (models.ExportResult, error) {
	log := logger.FromContext(ctx)

	records, err := s.records.GetAll(ctx)
	if err != nil {
		return models.ExportResult{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	path := ExportPath(s.dir, s.now())
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Err(err).Str("func", "exportService.Export").Str("path", path).Msg("failed to create export directory")
		return models.ExportResult{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	f, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("func", "exportService.Export").Str("path", path).Msg("failed to create export file")
		return models.ExportResult{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	if err = codec.Encode(f, records); err != nil {
		f.Close()
		return models.ExportResult{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	if err = f.Close(); err != nil {
		return models.ExportResult{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	log.Info().Str("path", path).Int("records", len(records)).Msg("export finished")

	return models.ExportResult{
		Path:     path,
		Records:  len(records),
		MIMEType: models.ExportMIMEType,
	}, nil
}
