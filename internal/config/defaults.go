// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
)

const (
	defaultUsername  = "123"
	defaultPassword  = "123"
	defaultLogLevel  = "info"
	defaultQueueSize = 64
	dataDirName      = ".kns"
)

// defaultConfig returns the lowest-priority configuration layer. All paths
// live under ~/.kns except exports, which go to ~/Documents.
func defaultConfig() *StructuredConfig {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	dataDir := filepath.Join(home, dataDirName)

	return &StructuredConfig{
		App: App{
			DefaultUsername: defaultUsername,
			DefaultPassword: defaultPassword,
			LogDir:          filepath.Join(dataDir, "logs"),
			LogLevel:        defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    filepath.Join(dataDir, "kns.db"),
			},
			Files: Files{
				PhotoDir:        filepath.Join(dataDir, "photos"),
				ExportDir:       filepath.Join(home, "Documents"),
				CredentialsFile: filepath.Join(dataDir, "credentials.json"),
			},
		},
		Workers: Workers{
			QueueSize: defaultQueueSize,
		},
	}
}
