// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers every configuration flag on fs and returns the
// config layer those flags fill in once fs is parsed. Unset flags stay
// zero and therefore never override other sources.
//
// Flags:
//
//	-c/--config        json file path with configs
//	--db-driver        storage driver (sqlite3|postgres)
//	-d/--dsn           database DSN or SQLite file path
//	--photo-dir        directory for record photos
//	--export-dir       shared documents directory for exports
//	--credentials-file login pair file
//	--log-dir          log directory
//	--log-level        log level (debug, info, warn, error)
//	--queue-size       background queue capacity
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "Storage driver (sqlite3|postgres)")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "Database DSN or SQLite file path")
	fs.StringVar(&cfg.Storage.Files.PhotoDir, "photo-dir", "", "Directory for record photos")
	fs.StringVar(&cfg.Storage.Files.ExportDir, "export-dir", "", "Documents directory for CSV exports")
	fs.StringVar(&cfg.Storage.Files.CredentialsFile, "credentials-file", "", "Credentials file path")
	fs.StringVar(&cfg.App.LogDir, "log-dir", "", "Log directory")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.IntVar(&cfg.Workers.QueueSize, "queue-size", 0, "Background queue capacity")

	return cfg
}
