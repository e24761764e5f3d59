// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ExportMIMEType is the content type of exported files.
const ExportMIMEType = "text/csv"

// ImportProgress is reported after every processed data line of an import.
type ImportProgress struct {
	Processed int
	Total     int
}

// Fraction returns Processed/Total in [0, 1]. A non-positive Total yields 0.
func (p ImportProgress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Processed) / float64(p.Total)
	if f > 1 {
		return 1
	}
	return f
}

// ImportResult summarises a finished import.
type ImportResult struct {
	// Total is the number of data lines (file lines minus the header).
	Total int `json:"total" yaml:"total"`
	// Parsed is the number of rows that produced a record.
	Parsed int `json:"parsed" yaml:"parsed"`
	// Inserted is the number of parsed rows actually stored; duplicates
	// are ignored and not counted.
	Inserted int `json:"inserted" yaml:"inserted"`
}

// Message is the status line shown after an import. It counts parsed rows,
// duplicates included.
func (r ImportResult) Message() string {
	return fmt.Sprintf("Successfully imported %d records.", r.Parsed)
}

// ExportResult describes a written export file.
type ExportResult struct {
	Path     string `json:"path" yaml:"path"`
	Records  int    `json:"records" yaml:"records"`
	MIMEType string `json:"mime_type" yaml:"mime_type"`
}
