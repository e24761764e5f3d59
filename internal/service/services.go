// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-kns/internal/config"
	"github.com/MKhiriev/go-kns/internal/logger"
	"github.com/MKhiriev/go-kns/internal/store"
	"github.com/MKhiriev/go-kns/internal/validators"
	"github.com/MKhiriev/go-kns/models"
)

type ClientServices struct {
	RecordService  RecordService
	ImportService  ImportService
	ExportService  ExportService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewClientServices(storages *store.ClientStorages, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		RecordService:  NewRecordService(storages.RecordRepository, storages.PhotoStorage, validators.NewRecordValidator(), logger),
		ImportService:  NewImportService(storages.RecordRepository, logger),
		ExportService:  NewExportService(storages.RecordRepository, cfg.Storage.Files.ExportDir, logger),
		AuthService:    NewAuthService(storages.CredentialStorage, cfg.App, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
