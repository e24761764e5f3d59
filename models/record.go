// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Record is a single identity entry kept in the local records table.
//
// ID is assigned by the storage layer on creation and never changes
// afterwards. Every other field may be replaced by an update.
type Record struct {
	// ID is the storage-assigned primary key. Zero means "not yet stored".
	ID int64 `json:"id" yaml:"id"`

	// Name is the full name of the person.
	Name string `json:"name" yaml:"name"`

	// Aadhaar is conventionally three 4-digit groups joined by hyphens
	// (e.g. "1234-5678-9012").
	Aadhaar string `json:"aadhaar" yaml:"aadhaar"`

	// PAN is the permanent account number, stored uppercased.
	PAN string `json:"pan" yaml:"pan"`

	// DOB is the date of birth in "DD-MM-YYYY" form.
	DOB string `json:"dob" yaml:"dob"`

	// Mobile is the mobile number, at most 10 digits.
	Mobile string `json:"mobile" yaml:"mobile"`

	BankAccount string `json:"bank_account" yaml:"bank_account"`
	CIF         string `json:"cif" yaml:"cif"`
	Address     string `json:"address" yaml:"address"`
	Remark      string `json:"remark" yaml:"remark"`

	// ImageURI points to a locally stored photo file. Nil when the record
	// has no photo (always nil for imported records).
	ImageURI *string `json:"image_uri,omitempty" yaml:"image_uri,omitempty"`
}

// CSVFields returns the nine exportable fields in the fixed column order
// used by CSV import and export.
func (r Record) CSVFields() []string {
	return []string{
		r.Name,
		r.Aadhaar,
		r.PAN,
		r.DOB,
		r.Mobile,
		r.BankAccount,
		r.CIF,
		r.Address,
		r.Remark,
	}
}

// RecordFromCSVFields maps the first nine tokens of a CSV row onto a Record.
// The caller guarantees len(fields) >= CSVColumnCount.
func RecordFromCSVFields(fields []string) Record {
	return Record{
		Name:        fields[0],
		Aadhaar:     fields[1],
		PAN:         fields[2],
		DOB:         fields[3],
		Mobile:      fields[4],
		BankAccount: fields[5],
		CIF:         fields[6],
		Address:     fields[7],
		Remark:      fields[8],
	}
}

// CSVColumnCount is the number of columns in the import/export schema.
const CSVColumnCount = 9

// CSVHeader lists the export header labels in column order.
var CSVHeader = []string{
	"Name",
	"Aadhaar",
	"PAN",
	"DOB",
	"Mobile",
	"Bank Account",
	"CIF",
	"Address",
	"Remark",
}
