// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName       = errors.New("name is required")
	ErrInvalidAadhaar  = errors.New("aadhaar must be three groups of 4 digits separated by '-'")
	ErrInvalidDOB      = errors.New("date of birth must be DD-MM-YYYY")
	ErrInvalidDOBDay   = errors.New("day of birth must be between 1 and 31")
	ErrInvalidDOBMonth = errors.New("month of birth must be between 1 and 12")
	ErrInvalidDOBYear  = errors.New("year of birth must have at most 4 digits")
	ErrInvalidMobile   = errors.New("mobile number must have at most 10 digits")
	ErrInvalidID       = errors.New("record id must be positive")
)
