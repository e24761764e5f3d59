// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across
// different parts of the application.
package utils

import "github.com/google/uuid"

// FileNamer builds unique file names of the form <prefix><uuid><ext>.
// UUIDv7 keeps the names in creation order when listed.
type FileNamer struct {
	prefix string
	ext    string
}

// NewFileNamer constructs a [FileNamer]. ext should include the dot.
func NewFileNamer(prefix, ext string) *FileNamer {
	return &FileNamer{prefix: prefix, ext: ext}
}

// Name returns a fresh file name.
func (n *FileNamer) Name() string {
	return n.prefix + newID() + n.ext
}

// newID falls back to a random UUIDv4 when the clock-based generator fails.
func newID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
