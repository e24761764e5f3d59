// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kns/models"
)

func validRecord() models.Record {
	return models.Record{
		Name:    "Ravi Kumar",
		Aadhaar: "1234-5678-9012",
		PAN:     "ABCDE1234F",
		DOB:     "01-02-1990",
		Mobile:  "9876543210",
	}
}

func TestNewRecordValidator(t *testing.T) {
	v := NewRecordValidator()
	require.NotNil(t, v)
	assert.IsType(t, &RecordValidator{}, v)
}

func TestRecordValidator_UnsupportedType(t *testing.T) {
	err := NewRecordValidator().Validate(context.Background(), "record")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestRecordValidator_UnknownField(t *testing.T) {
	err := NewRecordValidator().Validate(context.Background(), validRecord(), "remark")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRecordValidator_ValidRecord(t *testing.T) {
	r := validRecord()
	v := NewRecordValidator()

	assert.NoError(t, v.Validate(context.Background(), r))
	assert.NoError(t, v.Validate(context.Background(), &r))
}

func TestRecordValidator_Rules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.Record)
		wantErr error
	}{
		{"blank name", func(r *models.Record) { r.Name = "  " }, ErrEmptyName},
		{"aadhaar without hyphens", func(r *models.Record) { r.Aadhaar = "123456789012" }, ErrInvalidAadhaar},
		{"aadhaar short group", func(r *models.Record) { r.Aadhaar = "123-5678-9012" }, ErrInvalidAadhaar},
		{"aadhaar letters", func(r *models.Record) { r.Aadhaar = "abcd-5678-9012" }, ErrInvalidAadhaar},
		{"dob day 32", func(r *models.Record) { r.DOB = "32-01-1990" }, ErrInvalidDOBDay},
		{"dob day 0", func(r *models.Record) { r.DOB = "0-01-1990" }, ErrInvalidDOBDay},
		{"dob month 13", func(r *models.Record) { r.DOB = "01-13-1990" }, ErrInvalidDOBMonth},
		{"dob year 5 digits", func(r *models.Record) { r.DOB = "01-01-19900" }, ErrInvalidDOBYear},
		{"dob wrong shape", func(r *models.Record) { r.DOB = "01/01/1990" }, ErrInvalidDOB},
		{"mobile 11 digits", func(r *models.Record) { r.Mobile = "98765432101" }, ErrInvalidMobile},
		{"mobile letters", func(r *models.Record) { r.Mobile = "98765abc" }, ErrInvalidMobile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)
			assert.ErrorIs(t, NewRecordValidator().Validate(context.Background(), r), tt.wantErr)
		})
	}
}

func TestRecordValidator_PartialDOBAccepted(t *testing.T) {
	for _, dob := range []string{"", "--", "5--", "-7-", "--1990", "31-12-"} {
		r := validRecord()
		r.DOB = dob
		assert.NoError(t, NewRecordValidator().Validate(context.Background(), r), dob)
	}
}

func TestRecordValidator_EmptyMobileAccepted(t *testing.T) {
	r := validRecord()
	r.Mobile = ""
	assert.NoError(t, NewRecordValidator().Validate(context.Background(), r))
}

func TestRecordValidator_FieldScoping(t *testing.T) {
	r := validRecord()
	r.Aadhaar = "bad"

	v := NewRecordValidator()
	assert.NoError(t, v.Validate(context.Background(), r, FieldName, FieldMobile))
	assert.ErrorIs(t, v.Validate(context.Background(), r, FieldID), ErrInvalidID)

	r.ID = 3
	assert.NoError(t, v.Validate(context.Background(), r, FieldID))
}
