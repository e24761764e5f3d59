// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-kns/internal/codec"
	"github.com/MKhiriev/go-kns/internal/logger"
	"github.com/MKhiriev/go-kns/internal/store"
	"github.com/MKhiriev/go-kns/models"
)

type importService struct {
	records store.RecordRepository
	decoder *codec.Decoder

	logger *logger.Logger
}

func NewImportService(records store.RecordRepository, logger *logger.Logger) ImportService {
	return &importService{
		records: records,
		decoder: codec.NewDecoder(),
		logger:  logger,
	}
}

func (s *importService) ImportFile(ctx context.Context, path string, progress codec.ProgressFunc) (models.ImportResult, error) {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return models.ImportResult{}, ErrNotCSV
	}

	f, err := os.Open(path)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrOpeningImport, err)
	}
	defer f.Close()

	return s.Import(ctx, f, progress)
}

func (s *importService) Import(ctx context.Context, src io.ReadSeeker, progress codec.ProgressFunc) (models.ImportResult, error) {
	log := logger.FromContext(ctx)

	var result models.ImportResult
	records, err := s.decoder.Decode(ctx, src, func(processed, total int) {
		result.Total = total
		if progress != nil {
			progress(processed, total)
		}
	})
	if err != nil {
		if errors.Is(err, codec.ErrEmptyFile) || errors.Is(err, context.Canceled) {
			return models.ImportResult{}, err
		}
		log.Err(err).Str("func", "importService.Import").Msg("failed to decode csv")
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrImportFailed, err)
	}
	result.Parsed = len(records)

	inserted, err := s.records.InsertAll(ctx, records)
	if err != nil {
		log.Err(err).Str("func", "importService.Import").Int("parsed", result.Parsed).Msg("failed to store imported records")
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrImportFailed, err)
	}
	result.Inserted = inserted

	log.Info().
		Int("total", result.Total).
		Int("parsed", result.Parsed).
		Int("inserted", result.Inserted).
		Msg("import finished")

	return result, nil
}
