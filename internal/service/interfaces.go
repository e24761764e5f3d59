// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the operations the client exposes: record
// entry and search, CSV import and export, login and credential change.
// Services are synchronous; client.App runs them on the work queue.
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-kns/internal/codec"
	"github.com/MKhiriev/go-kns/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordService manages records entered by hand.
type RecordService interface {
	// Create validates r, uppercases its PAN, stores photo (when not nil) and
	// inserts the record. inserted is false when an identical record already
	// exists; the returned record then has a zero ID.
	Create(ctx context.Context, r models.Record, photo io.Reader) (created models.Record, inserted bool, err error)

	// Update validates r and replaces the stored record with the same ID.
	// A non-nil photo replaces the record's image.
	Update(ctx context.Context, r models.Record, photo io.Reader) error

	// Delete removes the record equal to r in every column.
	Delete(ctx context.Context, r models.Record) error

	// DeleteByID loads the record with id and deletes it.
	DeleteByID(ctx context.Context, id int64) (models.Record, error)

	// Get returns the record with id.
	Get(ctx context.Context, id int64) (models.Record, error)

	// List returns every record.
	List(ctx context.Context) ([]models.Record, error)

	// Search returns records whose field contains term. An empty term
	// matches every record.
	Search(ctx context.Context, field models.SearchField, term string) ([]models.Record, error)

	// Watch is the live form of Search. An empty field follows the whole
	// table.
	Watch(ctx context.Context, field models.SearchField, term string) (<-chan []models.Record, error)
}

// ImportService loads records from CSV files.
type ImportService interface {
	// ImportFile rejects names without a ".csv" extension before opening
	// the file, then behaves like Import.
	ImportFile(ctx context.Context, path string, progress codec.ProgressFunc) (models.ImportResult, error)

	// Import decodes src and stores every parsed row in one batch.
	// Duplicates are skipped.
	Import(ctx context.Context, src io.ReadSeeker, progress codec.ProgressFunc) (models.ImportResult, error)
}

// ExportService writes every record to a dated CSV file.
type ExportService interface {
	Export(ctx context.Context) (models.ExportResult, error)
}

// AuthService guards the application with a single login pair.
type AuthService interface {
	// Login checks the pair against the stored credentials, or the default
	// pair when none are stored.
	Login(ctx context.Context, username, password string) (models.Session, error)

	// ChangeCredentials overwrites the stored pair. confirm must equal
	// password.
	ChangeCredentials(ctx context.Context, username, password, confirm string) error
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
}
