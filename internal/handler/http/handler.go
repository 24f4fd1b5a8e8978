package http

import (
	"time"

	"github.com/MKhiriev/consent-keeper/internal/config"
	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/service"
	"github.com/MKhiriev/consent-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	allowedOrigins []string
	requestTimeout time.Duration

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.App.AllowedOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}
