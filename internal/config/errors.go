// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (unknown driver or empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidFilesConfigs indicates a missing photo, export or
	// credentials location.
	ErrInvalidFilesConfigs = errors.New("invalid files configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty default username).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive queue size).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
