package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type appInfoService struct {
	version models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService builds the version information reported by the API.
// cfg.Version, when set, overrides the version baked in at build time.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version: models.VersionResponse{
			Version: version,
			Date:    buildInfo.BuildDate(),
			Commit:  buildInfo.BuildCommit(),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.version
}
