package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type Services struct {
	AuthService    AuthService
	RecordService  RecordService
	AppInfoService AppInfoService
}

// NewServices builds the server-side services on top of the opened storages.
// The record service is wrapped with input validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	records := NewRecordValidationService().Wrap(NewRecordService(storages.RecordStore, logger))

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		RecordService:  records,
		AppInfoService: appInfo,
	}, nil
}
