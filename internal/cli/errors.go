// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-kns/internal/app"
	"github.com/MKhiriev/go-kns/internal/client"
	"github.com/MKhiriev/go-kns/internal/codec"
	"github.com/MKhiriev/go-kns/internal/service"
	"github.com/MKhiriev/go-kns/internal/store"
	"github.com/MKhiriev/go-kns/models"
)

// Error codes written in the error envelope.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeInvalidInput = "E002" // Rejected record fields, flags or file type
	ErrCodeNotFound     = "E003" // No record with the given id
	ErrCodeAuth         = "E004" // Login gate or credential change failed
	ErrCodeImport       = "E005" // Import could not complete
	ErrCodeExport       = "E006" // Export could not be written
	ErrCodeConfig       = "E007" // Configuration could not be loaded
	ErrCodeCancelled    = "E008" // Operation interrupted
)

// reportedError marks an error whose status line was already written.
type reportedError struct {
	*ExitError
}

func (e reportedError) Unwrap() error {
	return e.ExitError
}

// failWith writes an already classified failure.
func (f *OutputFormatter) failWith(code string, exit int, message string, err error) error {
	_ = f.Error(code, message, err.Error())
	return reportedError{WrapExitError(exit, message, err)}
}

// fail writes the status line for err and returns an error carrying the
// matching exit code.
func (f *OutputFormatter) fail(err error) error {
	code, exit, message := classify(err)

	var details any
	if message != err.Error() {
		details = err.Error()
	}
	_ = f.Error(code, message, details)

	return reportedError{WrapExitError(exit, message, err)}
}

// classify maps an operation error onto an error code, an exit code and
// the status line shown to the user.
func classify(err error) (code string, exit int, message string) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return ErrCodeAuth, ExitAuthFailure, app.MsgInvalidLogin
	case errors.Is(err, client.ErrNotLoggedIn):
		return ErrCodeAuth, ExitAuthFailure, err.Error()
	case errors.Is(err, service.ErrPasswordsDoNotMatch):
		return ErrCodeInvalidInput, ExitCommandError, app.MsgPasswordsDoNotMatch
	case errors.Is(err, service.ErrEmptyCredentials):
		return ErrCodeInvalidInput, ExitCommandError, err.Error()
	case errors.Is(err, service.ErrInvalidRecord):
		return ErrCodeInvalidInput, ExitCommandError, app.MsgMandatoryFields
	case errors.Is(err, service.ErrNotCSV),
		errors.Is(err, models.ErrUnknownSearchField):
		return ErrCodeInvalidInput, ExitCommandError, err.Error()
	case errors.Is(err, store.ErrRecordNotFound):
		return ErrCodeNotFound, ExitFailure, app.MsgRecordNotFound
	case errors.Is(err, codec.ErrEmptyFile):
		return ErrCodeImport, ExitFailure, app.MsgEmptyFile
	case errors.Is(err, service.ErrOpeningImport),
		errors.Is(err, service.ErrImportFailed):
		return ErrCodeImport, ExitFailure, app.MsgImportFailed(err)
	case errors.Is(err, service.ErrExportFailed):
		return ErrCodeExport, ExitFailure, app.MsgExportFailed(err)
	case errors.Is(err, context.Canceled):
		return ErrCodeCancelled, ExitFailure, "Operation cancelled."
	}

	return ErrCodeGeneric, ExitFailure, err.Error()
}
