// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	files := cfg.Storage.Files
	if files.PhotoDir == "" || files.ExportDir == "" || files.CredentialsFile == "" {
		return ErrInvalidFilesConfigs
	}

	if cfg.Workers.QueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.DefaultUsername == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
