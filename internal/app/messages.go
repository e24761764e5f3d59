// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing status lines shared by the go-kns
// front ends.
//
// Every operation ends with exactly one inline status line. Keeping the
// wording here means the command-line client and any future front end
// report outcomes identically.
package app

import "fmt"

const (
	// MsgRecordSaved is shown after a new record was stored.
	MsgRecordSaved = "Record saved successfully."

	// MsgRecordDuplicate is shown when an identical record already exists
	// and the new one was ignored.
	MsgRecordDuplicate = "An identical record already exists; nothing was saved."

	// MsgRecordUpdated is shown after an edit, including edits of records
	// that were deleted in the meantime.
	MsgRecordUpdated = "Record updated successfully."

	// MsgRecordDeleted is shown after a delete.
	MsgRecordDeleted = "Record deleted."

	// MsgMandatoryFields is shown when a record fails validation.
	MsgMandatoryFields = "Please fill all mandatory fields."

	// MsgInvalidLogin is shown when the login pair is rejected.
	MsgInvalidLogin = "Invalid username or password"

	// MsgPasswordsDoNotMatch is shown when the confirmation differs from
	// the new password.
	MsgPasswordsDoNotMatch = "Passwords do not match."

	// MsgCredentialsChanged is shown after the stored login pair was replaced.
	MsgCredentialsChanged = "Credentials changed successfully."

	// MsgImportCancelled is shown when an import was interrupted before any
	// record was stored.
	MsgImportCancelled = "Import cancelled."

	// MsgEmptyFile is shown for a CSV file without data rows.
	MsgEmptyFile = "The selected file is empty."

	// MsgRecordNotFound is shown when a record id does not exist.
	MsgRecordNotFound = "Record not found."

	// MsgNoRecords is shown when the records table is empty.
	MsgNoRecords = "No records found."
)

// MsgNoRecordsFound is shown for an empty search result. label is the
// human-facing name of the searched field.
func MsgNoRecordsFound(label string) string {
	return fmt.Sprintf("No records found with the specified %s.", label)
}

// MsgExported is shown after a successful export.
func MsgExported(path string) string {
	return fmt.Sprintf("Data exported successfully to %s", path)
}

// MsgExportFailed is shown when an export could not be written.
func MsgExportFailed(err error) string {
	return fmt.Sprintf("Export failed: %v", err)
}

// MsgImportFailed is shown when an import stopped with an error.
func MsgImportFailed(err error) string {
	return fmt.Sprintf("Import failed: %v", err)
}
