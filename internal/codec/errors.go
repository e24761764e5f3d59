// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "errors"

var (
	// ErrEmptyFile is returned when the input holds no data line after the header.
	ErrEmptyFile = errors.New("file is empty")

	// ErrReadingFile wraps I/O failures while decoding.
	ErrReadingFile = errors.New("error reading csv file")

	// ErrWritingFile wraps I/O failures while encoding.
	ErrWritingFile = errors.New("error writing csv file")
)
