// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-kns/internal/codec"
	"github.com/MKhiriev/go-kns/internal/service"
	"github.com/MKhiriev/go-kns/internal/store"
	"github.com/MKhiriev/go-kns/models"
)

func sampleRecords() []models.Record {
	return []models.Record{
		{
			ID:          1,
			Name:        "Asha Rao",
			Aadhaar:     "1234-5678-9012",
			PAN:         "ABCDE1234F",
			DOB:         "01-02-1990",
			Mobile:      "9876543210",
			BankAccount: "001122",
			CIF:         "CIF01",
			Address:     "Pune",
		},
		{
			ID:          2,
			Name:        "Vikram Singh",
			Aadhaar:     "2345-6789-0123",
			PAN:         "PQRSX6789K",
			BankAccount: "334455",
			CIF:         "CIF02",
			Address:     "Delhi, Sector 5",
			Remark:      "vip",
		},
	}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestOutputFormatter_TextTable(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: FormatText, Writer: buf}

	require.NoError(t, formatter.Success("", newRecordTable(sampleRecords())))
	newGoldie(t).Assert(t, "list_text", buf.Bytes())
}

func TestOutputFormatter_TextDetail(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: FormatText, Writer: buf}

	require.NoError(t, formatter.Success("Record saved successfully.", recordDetail(sampleRecords()[0])))
	newGoldie(t).Assert(t, "detail_text", buf.Bytes())
}

func TestOutputFormatter_JSONTable(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: FormatJSON, Writer: buf}

	require.NoError(t, formatter.Success("", newRecordTable(sampleRecords())))
	newGoldie(t).Assert(t, "list_json", buf.Bytes())
}

func TestOutputFormatter_YAMLTable(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: FormatYAML, Writer: buf}

	require.NoError(t, formatter.Success("2 records", newRecordTable(sampleRecords())))

	var resp struct {
		Status  string          `yaml:"status"`
		Message string          `yaml:"message"`
		Data    []models.Record `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "2 records", resp.Message)
	assert.Equal(t, sampleRecords(), resp.Data)
}

func TestOutputFormatter_EmptyTableIsEmptyList(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: FormatJSON, Writer: buf}

	require.NoError(t, formatter.Success("No records found.", newRecordTable(nil)))
	assert.Contains(t, buf.String(), `"data": []`)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: FormatJSON, Writer: buf}

	require.NoError(t, formatter.Error(ErrCodeNotFound, "Record not found.", nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Record not found.", resp.Error.Message)
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: FormatText, Writer: buf, Verbose: true}

	require.NoError(t, formatter.Error(ErrCodeExport, "Export failed: disk full", "write: disk full"))
	assert.Equal(t, "Error [E006]: Export failed: disk full\nDetails: write: disk full\n", buf.String())
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: FormatJSON, Writer: out, ErrWriter: errOut, Verbose: true}

	formatter.VerboseLog("importing %s", "a.csv")
	assert.Empty(t, out.String())
	assert.Equal(t, "importing a.csv\n", errOut.String())

	formatter.Verbose = false
	formatter.VerboseLog("hidden")
	assert.Equal(t, "importing a.csv\n", errOut.String())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))
	assert.Equal(t, ExitAuthFailure, GetExitCode(fmt.Errorf("wrapped: %w", reportedError{NewExitError(ExitAuthFailure, "no")})))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    string
		exit    int
		message string
	}{
		{"invalid login", service.ErrInvalidCredentials, ErrCodeAuth, ExitAuthFailure, "Invalid username or password"},
		{"passwords differ", service.ErrPasswordsDoNotMatch, ErrCodeInvalidInput, ExitCommandError, "Passwords do not match."},
		{"invalid record", fmt.Errorf("%w: name", service.ErrInvalidRecord), ErrCodeInvalidInput, ExitCommandError, "Please fill all mandatory fields."},
		{"not csv", service.ErrNotCSV, ErrCodeInvalidInput, ExitCommandError, "please select a CSV file"},
		{"not found", store.ErrRecordNotFound, ErrCodeNotFound, ExitFailure, "Record not found."},
		{"empty file", codec.ErrEmptyFile, ErrCodeImport, ExitFailure, "The selected file is empty."},
		{"export", fmt.Errorf("%w: disk full", service.ErrExportFailed), ErrCodeExport, ExitFailure, "Export failed: error exporting records: disk full"},
		{"unknown", errors.New("boom"), ErrCodeGeneric, ExitFailure, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, exit, message := classify(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.exit, exit)
			assert.Equal(t, tt.message, message)
		})
	}
}
