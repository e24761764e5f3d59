// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// DefaultUsername and DefaultPassword form the login pair accepted while
	// nothing is stored.
	DefaultUsername string
	DefaultPassword string
	// LogDir is where the client log file is written.
	LogDir string
	// LogLevel is the zerolog level name.
	LogLevel string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// Driver is "sqlite3" or "postgres".
	Driver string
	// DSN is the SQLite file path or PostgreSQL connection string.
	DSN string
}

// ClientFiles groups file-system locations used by the client.
type ClientFiles struct {
	PhotoDir        string
	ExportDir       string
	CredentialsFile string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Files holds photo, export and credential locations.
	Files ClientFiles
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// QueueSize is the capacity of the serial work queue.
	QueueSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background queue settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps a merged [StructuredConfig] onto the client view
// without validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DefaultUsername: cfg.App.DefaultUsername,
			DefaultPassword: cfg.App.DefaultPassword,
			LogDir:          cfg.App.LogDir,
			LogLevel:        cfg.App.LogLevel,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Driver: cfg.Storage.DB.Driver,
				DSN:    cfg.Storage.DB.DSN,
			},
			Files: ClientFiles{
				PhotoDir:        cfg.Storage.Files.PhotoDir,
				ExportDir:       cfg.Storage.Files.ExportDir,
				CredentialsFile: cfg.Storage.Files.CredentialsFile,
			},
		},
		Workers: ClientWorkers{QueueSize: cfg.Workers.QueueSize},
	}
}
