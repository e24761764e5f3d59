// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-kns/models"
)

// Field name constants accepted by [RecordValidator.Validate].
const (
	// FieldID requires a stored record id; used on update.
	FieldID      = "id"
	FieldName    = "name"
	FieldAadhaar = "aadhaar"
	FieldDOB     = "dob"
	FieldMobile  = "mobile"
)

// defaultRecordFields are checked on create.
var defaultRecordFields = []string{FieldName, FieldAadhaar, FieldDOB, FieldMobile}

var aadhaarPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}$`)

// RecordValidator checks records entered by hand.
type RecordValidator struct {
}

// NewRecordValidator returns a [Validator] for [models.Record].
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(ctx, value, fields...)
	case *models.Record:
		return v.validateRecord(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateRecord(ctx context.Context, r models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultRecordFields
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if r.ID <= 0 {
				return ErrInvalidID
			}
		case FieldName:
			if strings.TrimSpace(r.Name) == "" {
				return ErrEmptyName
			}
		case FieldAadhaar:
			if !aadhaarPattern.MatchString(r.Aadhaar) {
				return ErrInvalidAadhaar
			}
		case FieldDOB:
			if err := validateDOB(r.DOB); err != nil {
				return err
			}
		case FieldMobile:
			if len(r.Mobile) > 10 || !isDigits(r.Mobile) {
				return ErrInvalidMobile
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDOB accepts "", "--" and any "D-M-Y" whose non-empty parts are in
// range. Parts are entered separately, so each may be left blank.
func validateDOB(dob string) error {
	if dob == "" {
		return nil
	}

	parts := strings.Split(dob, "-")
	if len(parts) != 3 {
		return ErrInvalidDOB
	}
	day, month, year := parts[0], parts[1], parts[2]

	if day != "" && !inRange(day, 2, 1, 31) {
		return ErrInvalidDOBDay
	}
	if month != "" && !inRange(month, 2, 1, 12) {
		return ErrInvalidDOBMonth
	}
	if len(year) > 4 || !isDigits(year) {
		return ErrInvalidDOBYear
	}

	return nil
}

func inRange(s string, maxLen, lo, hi int) bool {
	if len(s) > maxLen || !isDigits(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= lo && n <= hi
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
