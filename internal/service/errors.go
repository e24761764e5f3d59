// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrSavingPhoto   = errors.New("error saving photo")

	ErrNotCSV        = errors.New("please select a CSV file")
	ErrOpeningImport = errors.New("error opening import file")
	ErrImportFailed  = errors.New("error importing records")

	ErrExportFailed = errors.New("error exporting records")

	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrEmptyCredentials    = errors.New("username and password are required")
)
