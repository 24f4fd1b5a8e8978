package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/adapter"
	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/store"
	"github.com/MKhiriev/consent-keeper/models"
)

type siteService struct {
	cms       adapter.CMSClient
	directory store.SiteDirectory
	siteTTL   time.Duration

	logger *logger.Logger
}

func NewSiteService(cms adapter.CMSClient, directory store.SiteDirectory, siteTTL time.Duration, logger *logger.Logger) SiteService {
	return &siteService{
		cms:       cms,
		directory: directory,
		siteTTL:   siteTTL,
		logger:    logger,
	}
}

// Authorize exchanges an OAuth code for an access token, lists the sites the
// token grants and registers each of them in the Site Directory.
func (s *siteService) Authorize(ctx context.Context, code string) ([]models.Site, error) {
	log := logger.FromContext(ctx)

	if code == "" {
		return nil, fmt.Errorf("%w: authorization code is required", ErrBadRequest)
	}

	accessToken, err := s.cms.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange: %w", err)
	}

	sites, err := s.cms.ListSites(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("site listing: %w", err)
	}
	if len(sites) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, ErrNoSitesAuthorized)
	}

	registered := make([]models.Site, 0, len(sites))
	for _, site := range sites {
		cred := models.SiteCredential{
			SiteID:      site.ID,
			SiteName:    site.ShortName,
			AccessToken: accessToken,
		}
		if err = s.directory.Register(ctx, cred, s.siteTTL); err != nil {
			if errors.Is(err, store.ErrInvalidSiteCredential) {
				log.Warn().Str("site_id", site.ID).Msg("skipping site without id or short name")
				continue
			}
			return nil, err
		}
		registered = append(registered, site)
	}
	if len(registered) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, ErrNoSitesAuthorized)
	}

	return registered, nil
}

// AuthenticateAccessToken returns the site authorized with accessToken,
// narrowed to siteID when it is not empty.
//
// Every lookup failure, including a failing directory, yields
// ErrInvalidAccessToken. The underlying directory failure is only logged.
func (s *siteService) AuthenticateAccessToken(ctx context.Context, accessToken, siteID string) (models.SiteCredential, error) {
	if accessToken == "" {
		return models.SiteCredential{}, ErrInvalidAccessToken
	}

	cred, err := s.directory.ResolveByAccessToken(ctx, accessToken, siteID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*siteService.AuthenticateAccessToken").
				Str("site_id", siteID).Msg("site directory failure")
		}
		return models.SiteCredential{}, ErrInvalidAccessToken
	}

	return cred, nil
}
