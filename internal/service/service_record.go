// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/MKhiriev/go-kns/internal/logger"
	"github.com/MKhiriev/go-kns/internal/store"
	"github.com/MKhiriev/go-kns/internal/validators"
	"github.com/MKhiriev/go-kns/models"
)

type recordService struct {
	records   store.RecordRepository
	photos    store.PhotoStorage
	validator validators.Validator

	logger *logger.Logger
}

func NewRecordService(records store.RecordRepository, photos store.PhotoStorage, validator validators.Validator, logger *logger.Logger) RecordService {
	return &recordService{
		records:   records,
		photos:    photos,
		validator: validator,
		logger:    logger,
	}
}

func (s *recordService) Create(ctx context.Context, r models.Record, photo io.Reader) (models.Record, bool, error) {
	r.ID = 0
	r.PAN = upperPAN(r.PAN)

	if err := s.validator.Validate(ctx, r); err != nil {
		return models.Record{}, false, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	stored, err := s.attachPhoto(ctx, &r, photo)
	if err != nil {
		return models.Record{}, false, err
	}

	id, inserted, err := s.records.Insert(ctx, r)
	if err != nil {
		s.discardPhoto(ctx, stored)
		return models.Record{}, false, err
	}
	if !inserted {
		logger.FromContext(ctx).Info().Str("name", r.Name).Msg("identical record already exists")
		s.discardPhoto(ctx, stored)
		return r, false, nil
	}

	r.ID = id
	return r, true, nil
}

func (s *recordService) Update(ctx context.Context, r models.Record, photo io.Reader) error {
	r.PAN = upperPAN(r.PAN)

	err := s.validator.Validate(ctx, r,
		validators.FieldID,
		validators.FieldName,
		validators.FieldAadhaar,
		validators.FieldDOB,
		validators.FieldMobile,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	stored, err := s.attachPhoto(ctx, &r, photo)
	if err != nil {
		return err
	}

	if err = s.records.Update(ctx, r); err != nil {
		s.discardPhoto(ctx, stored)
		return err
	}

	// a missing id or a conflicting row leaves the update unapplied
	if stored != "" {
		current, getErr := s.records.GetByID(ctx, r.ID)
		if getErr != nil || current.ImageURI == nil || *current.ImageURI != stored {
			s.discardPhoto(ctx, stored)
		}
	}
	return nil
}

// attachPhoto stores photo and points r at the copy. It returns the stored
// path, or "" when there is no photo.
func (s *recordService) attachPhoto(ctx context.Context, r *models.Record, photo io.Reader) (string, error) {
	if photo == nil {
		return "", nil
	}

	path, err := s.photos.Save(ctx, photo)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSavingPhoto, err)
	}

	r.ImageURI = &path
	return path, nil
}

// discardPhoto removes a copy that no record points at.
func (s *recordService) discardPhoto(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.photos.Remove(ctx, path); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "recordService.discardPhoto").Str("path", path).Msg("failed to remove unused photo")
	}
}

func (s *recordService) Delete(ctx context.Context, r models.Record) error {
	return s.records.Delete(ctx, r)
}

func (s *recordService) DeleteByID(ctx context.Context, id int64) (models.Record, error) {
	r, err := s.records.GetByID(ctx, id)
	if err != nil {
		return models.Record{}, err
	}

	if err = s.records.Delete(ctx, r); err != nil {
		return models.Record{}, err
	}
	return r, nil
}

func (s *recordService) Get(ctx context.Context, id int64) (models.Record, error) {
	return s.records.GetByID(ctx, id)
}

func (s *recordService) List(ctx context.Context) ([]models.Record, error) {
	return s.records.GetAll(ctx)
}

func (s *recordService) Search(ctx context.Context, field models.SearchField, term string) ([]models.Record, error) {
	if !field.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownSearchField, field)
	}
	return s.records.Find(ctx, field, likePattern(term))
}

func (s *recordService) Watch(ctx context.Context, field models.SearchField, term string) (<-chan []models.Record, error) {
	if field == "" {
		return s.records.Watch(ctx, models.RecordQuery{})
	}
	if !field.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownSearchField, field)
	}
	return s.records.Watch(ctx, models.RecordQuery{Field: field, Pattern: likePattern(term)})
}

// upperPAN builds a Caser per call; Casers are not safe for concurrent use.
func upperPAN(pan string) string {
	return cases.Upper(language.Und).String(pan)
}

// likePattern wraps term for a substring LIKE match. LIKE wildcards in
// term are not escaped.
func likePattern(term string) string {
	return "%" + norm.NFC.String(term) + "%"
}
