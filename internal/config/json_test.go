// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"default_username": "root", "default_password": "toor", "log_dir": "/logs", "log_level": "warn"},
		"storage": {
			"db": {"driver": "sqlite3", "dsn": "/data/kns.db"},
			"files": {"photo_dir": "/data/photos", "export_dir": "/docs", "credentials_file": "/data/creds.json"}
		},
		"workers": {"queue_size": 8}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "root", cfg.App.DefaultUsername)
	assert.Equal(t, "toor", cfg.App.DefaultPassword)
	assert.Equal(t, "/logs", cfg.App.LogDir)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "/data/kns.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data/photos", cfg.Storage.Files.PhotoDir)
	assert.Equal(t, "/docs", cfg.Storage.Files.ExportDir)
	assert.Equal(t, "/data/creds.json", cfg.Storage.Files.CredentialsFile)
	assert.Equal(t, 8, cfg.Workers.QueueSize)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"storage": `), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
