package service

import (
	"github.com/MKhiriev/consent-keeper/internal/adapter"
	"github.com/MKhiriev/consent-keeper/internal/config"
	"github.com/MKhiriev/consent-keeper/internal/crypto"
	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/store"
	"github.com/MKhiriev/consent-keeper/internal/validators"
	"github.com/MKhiriev/consent-keeper/models"
)

// Services groups every service used by the transport layer.
type Services struct {
	VisitorTokenService   VisitorTokenService
	ConsentService        ConsentService
	ScriptCategoryService ScriptCategoryService
	SiteService           SiteService
	AppInfoService        AppInfoService
}

func NewServices(storages *store.Storages, cms adapter.CMSClient, buildInfo models.AppBuildInfo, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator, err := validators.NewRequestValidator()
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(buildInfo, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	cipher := crypto.NewPayloadCipher()
	consentService := NewConsentValidationService(validator).
		Wrap(NewConsentService(cipher, storages.ConsentStore, cfg.App.ConsentTTL, logger))

	return &Services{
		VisitorTokenService:   NewVisitorTokenService(storages.SiteDirectory, cfg.App.TokenTTL, logger),
		ConsentService:        consentService,
		ScriptCategoryService: NewScriptCategoryService(cipher, storages.ConsentStore, cfg.App.ScriptCategoryTTL, logger),
		SiteService:           NewSiteService(cms, storages.SiteDirectory, cfg.App.SiteTTL, logger),
		AppInfoService:        appInfoService,
	}, nil
}
