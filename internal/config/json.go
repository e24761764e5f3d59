// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names.
type StructuredJSONConfig struct {
	App struct {
		DefaultUsername string `json:"default_username"`
		DefaultPassword string `json:"default_password"`
		LogDir          string `json:"log_dir"`
		LogLevel        string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			PhotoDir        string `json:"photo_dir"`
			ExportDir       string `json:"export_dir"`
			CredentialsFile string `json:"credentials_file"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		QueueSize int `json:"queue_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DefaultUsername: jsonCfg.App.DefaultUsername,
			DefaultPassword: jsonCfg.App.DefaultPassword,
			LogDir:          jsonCfg.App.LogDir,
			LogLevel:        jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				PhotoDir:        jsonCfg.Storage.Files.PhotoDir,
				ExportDir:       jsonCfg.Storage.Files.ExportDir,
				CredentialsFile: jsonCfg.Storage.Files.CredentialsFile,
			},
		},
		Workers: Workers{
			QueueSize: jsonCfg.Workers.QueueSize,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
