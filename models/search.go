// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// ErrUnknownSearchField is returned by [ParseSearchField] for names that do
// not denote a searchable column.
var ErrUnknownSearchField = errors.New("unknown search field")

// SearchField names a record column that supports partial-match lookup.
type SearchField string

const (
	SearchByName        SearchField = "name"
	SearchByAadhaar     SearchField = "aadhaar"
	SearchByPAN         SearchField = "pan"
	SearchByBankAccount SearchField = "bank_account"
	SearchByCIF         SearchField = "cif"
)

// SearchFields lists every searchable field in the order offered to users.
var SearchFields = []SearchField{
	SearchByName,
	SearchByAadhaar,
	SearchByPAN,
	SearchByBankAccount,
	SearchByCIF,
}

// Label returns the human-facing label of the field.
func (f SearchField) Label() string {
	switch f {
	case SearchByName:
		return "Name"
	case SearchByAadhaar:
		return "Aadhaar"
	case SearchByPAN:
		return "PAN"
	case SearchByBankAccount:
		return "Account No"
	case SearchByCIF:
		return "CIF"
	}
	return string(f)
}

// Valid reports whether f is one of [SearchFields].
func (f SearchField) Valid() bool {
	for _, sf := range SearchFields {
		if sf == f {
			return true
		}
	}
	return false
}

// ParseSearchField accepts a column name or a label, case-insensitively.
// Spaces, hyphens and underscores are ignored, so "Account No",
// "bank-account" and "BANK_ACCOUNT" are all understood.
func ParseSearchField(s string) (SearchField, error) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))

	switch key {
	case "name":
		return SearchByName, nil
	case "aadhaar", "aadhar":
		return SearchByAadhaar, nil
	case "pan":
		return SearchByPAN, nil
	case "bankaccount", "accountno", "account":
		return SearchByBankAccount, nil
	case "cif":
		return SearchByCIF, nil
	}

	return "", ErrUnknownSearchField
}

// RecordQuery selects which rows a live view follows. A zero Field means
// the whole table.
type RecordQuery struct {
	Field   SearchField
	Pattern string
}
