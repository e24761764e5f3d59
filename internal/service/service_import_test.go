// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-kns/internal/codec"
	"github.com/MKhiriev/go-kns/internal/logger"
	"github.com/MKhiriev/go-kns/internal/mock"
	"github.com/MKhiriev/go-kns/models"
)

const importCSV = "Name,Aadhaar,PAN,DOB,Mobile,Bank Account,CIF,Address,Remark\n" +
	`"A","1","2","3","4","5","6","7","8"` + "\n" +
	"broken,row\n" +
	`"B","1","2","3","4","5","6","7","8"`

func newTestImportSvc(t *testing.T) (ImportService, *mock.MockRecordRepository) {
	t.Helper()
	repo := mock.NewMockRecordRepository(gomock.NewController(t))
	return NewImportService(repo, logger.Nop()), repo
}

func TestImportService_Import_StoresParsedRowsInOneBatch(t *testing.T) {
	svc, repo := newTestImportSvc(t)
	ctx := context.Background()

	repo.EXPECT().InsertAll(ctx, gomock.Len(2)).DoAndReturn(
		func(_ context.Context, records []models.Record) (int, error) {
			assert.Equal(t, "A", records[0].Name)
			assert.Equal(t, "B", records[1].Name)
			return 1, nil
		},
	)

	var last models.ImportProgress
	result, err := svc.Import(ctx, strings.NewReader(importCSV), func(processed, total int) {
		last = models.ImportProgress{Processed: processed, Total: total}
	})
	require.NoError(t, err)

	assert.Equal(t, models.ImportResult{Total: 3, Parsed: 2, Inserted: 1}, result)
	assert.Equal(t, "Successfully imported 2 records.", result.Message())
	assert.Equal(t, 1.0, last.Fraction())
}

func TestImportService_Import_HeaderOnly(t *testing.T) {
	svc, _ := newTestImportSvc(t)

	_, err := svc.Import(context.Background(), strings.NewReader("Name,Aadhaar\n"), nil)
	assert.ErrorIs(t, err, codec.ErrEmptyFile)
}

func TestImportService_Import_CancelledInsertsNothing(t *testing.T) {
	svc, _ := newTestImportSvc(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Import(ctx, strings.NewReader(importCSV), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestImportService_Import_StoreError(t *testing.T) {
	svc, repo := newTestImportSvc(t)
	ctx := context.Background()

	repo.EXPECT().InsertAll(ctx, gomock.Any()).Return(0, errors.New("disk full"))

	_, err := svc.Import(ctx, strings.NewReader(importCSV), nil)
	assert.ErrorIs(t, err, ErrImportFailed)
}

func TestImportService_ImportFile_RejectsNonCSV(t *testing.T) {
	svc, _ := newTestImportSvc(t)

	for _, name := range []string{"records.txt", "records.csv.bak", "records"} {
		_, err := svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), name), nil)
		assert.ErrorIs(t, err, ErrNotCSV, name)
	}
}

func TestImportService_ImportFile_ExtensionIsCaseInsensitive(t *testing.T) {
	svc, repo := newTestImportSvc(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "Records.CSV")
	require.NoError(t, os.WriteFile(path, []byte(importCSV), 0o600))

	repo.EXPECT().InsertAll(ctx, gomock.Len(2)).Return(2, nil)

	result, err := svc.ImportFile(ctx, path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
}

func TestImportService_ImportFile_Missing(t *testing.T) {
	svc, _ := newTestImportSvc(t)

	_, err := svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), nil)
	assert.ErrorIs(t, err, ErrOpeningImport)
}
