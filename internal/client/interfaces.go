// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"

	"github.com/MKhiriev/go-kns/internal/codec"
	"github.com/MKhiriev/go-kns/models"
)

// Client is everything a front end needs from the application.
type Client interface {
	Login(ctx context.Context, username, password string) (models.Session, error)
	ChangeCredentials(ctx context.Context, session models.Session, username, password, confirm string) error

	CreateRecord(ctx context.Context, r models.Record, photo io.Reader) (models.Record, bool, error)
	UpdateRecord(ctx context.Context, r models.Record, photo io.Reader) error
	DeleteRecord(ctx context.Context, id int64) (models.Record, error)
	GetRecord(ctx context.Context, id int64) (models.Record, error)
	ListRecords(ctx context.Context) ([]models.Record, error)
	SearchRecords(ctx context.Context, field models.SearchField, term string) ([]models.Record, error)
	WatchRecords(ctx context.Context, field models.SearchField, term string) (<-chan []models.Record, error)

	StartImport(ctx context.Context, path string, progress codec.ProgressFunc) *ImportJob
	Export(ctx context.Context) (models.ExportResult, error)

	BuildInfo(ctx context.Context) models.AppBuildInfo
	Close() error
}
