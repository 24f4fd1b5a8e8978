package service

import (
	"context"

	"github.com/MKhiriev/consent-keeper/internal/config"
	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	info models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService reports buildInfo. A version not linked into the
// binary falls back to cfg.Version; it is an error when neither is set.
func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	info := buildInfo.Response()
	if info.Version == "" || info.Version == notAvailable {
		if cfg.Version == "" {
			return nil, ErrVersionIsNotSpecified
		}
		info.Version = cfg.Version
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.VersionResponse {
	return s.info
}
