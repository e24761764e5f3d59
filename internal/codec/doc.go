// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec reads and writes the nine-column records CSV file.
//
// The format is deliberately loose: quotes only protect commas, embedded
// quotes are never escaped and rows with too few columns are dropped.
package codec
