// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-kns/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository is the records table.
//
// Duplicate rows (equal in all nine data columns) are ignored on insert and
// never reported as errors. Update and Delete that match nothing are silent
// no-ops.
type RecordRepository interface {
	// Insert stores r, assigning a fresh id when r.ID is zero. inserted is
	// false when the row was ignored as a duplicate.
	Insert(ctx context.Context, r models.Record) (id int64, inserted bool, err error)
	// InsertAll stores records in one transaction and returns how many rows
	// were actually inserted.
	InsertAll(ctx context.Context, records []models.Record) (inserted int, err error)
	// Update replaces every column of the row whose id equals r.ID.
	Update(ctx context.Context, r models.Record) error
	// Delete removes the row equal to r in every column.
	Delete(ctx context.Context, r models.Record) error
	// GetByID returns the record with the given id or [ErrRecordNotFound].
	GetByID(ctx context.Context, id int64) (models.Record, error)
	// GetAll returns a snapshot of every row in storage order.
	GetAll(ctx context.Context) ([]models.Record, error)
	// Find returns rows whose field matches the LIKE pattern.
	Find(ctx context.Context, field models.SearchField, pattern string) ([]models.Record, error)
	// Watch emits a fresh snapshot for query immediately and after every
	// change to the table. The channel is closed when ctx is done.
	Watch(ctx context.Context, query models.RecordQuery) (<-chan []models.Record, error)
}

// PhotoStorage keeps copies of record photos.
type PhotoStorage interface {
	// Save copies src into the photo directory and returns the stored path.
	Save(ctx context.Context, src io.Reader) (string, error)
	// Remove deletes a photo returned by Save. A missing file is not an error.
	Remove(ctx context.Context, path string) error
}

// CredentialStorage persists the single login pair.
type CredentialStorage interface {
	// Load returns the stored pair or [ErrCredentialsNotFound].
	Load(ctx context.Context) (models.Credentials, error)
	// Save overwrites the stored pair.
	Save(ctx context.Context, c models.Credentials) error
}
