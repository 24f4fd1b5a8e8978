// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/store"
	"github.com/MKhiriev/consent-keeper/internal/utils"
	"github.com/MKhiriev/consent-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// visitorTokenService signs visitor tokens with the tenant secret of the
// site they are scoped to. Nothing but the Site Directory is consulted, so
// the service holds no state besides its configuration.
type visitorTokenService struct {
	directory store.SiteDirectory

	// tokenTTL is added to the issue time to get the exp claim.
	tokenTTL time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewVisitorTokenService constructs a [VisitorTokenService].
func NewVisitorTokenService(directory store.SiteDirectory, tokenTTL time.Duration, logger *logger.Logger) VisitorTokenService {
	return &visitorTokenService{
		directory: directory,
		tokenTTL:  tokenTTL,
		now:       time.Now,
		logger:    logger,
	}
}

// Issue returns a signed token binding visitorID and userAgent to siteName.
//
// Returns:
//   - ErrBadRequest if visitorID or siteName is empty.
//   - ErrSiteNotFound if the site cannot be resolved, including when the
//     directory itself fails. The underlying failure is only logged.
func (v *visitorTokenService) Issue(ctx context.Context, visitorID, siteName, userAgent string) (string, error) {
	log := logger.FromContext(ctx)

	if visitorID == "" || siteName == "" {
		return "", fmt.Errorf("%w: visitorId and siteName are required", ErrBadRequest)
	}

	site, err := v.directory.Resolve(ctx, siteName)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Err(err).Str("site_name", siteName).Msg("site directory failure during token issue")
		}
		return "", ErrSiteNotFound
	}

	now := v.now()
	claims := models.VisitorClaims{
		VisitorID: visitorID,
		UserAgent: userAgent,
		SiteName:  site.SiteName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.tokenTTL)),
		},
	}

	token, err := utils.GenerateVisitorToken(claims, site.TenantSecret())
	if err != nil {
		return "", fmt.Errorf("visitor token signing failed: %w", err)
	}

	return token, nil
}

// Verify authenticates token for the site named claimedSiteName (may be
// empty when the caller does not know it).
//
// The payload is decoded without verification only to learn which tenant
// secret to use; nothing from it is returned before the signature checks
// out. An expired token is reported as ErrVisitorTokenExpired whatever its
// signature.
func (v *visitorTokenService) Verify(ctx context.Context, token, claimedSiteName string) (models.VisitorIdentity, error) {
	log := logger.FromContext(ctx)

	peeked, err := utils.PeekVisitorClaims(token)
	if err != nil || peeked.SiteName == "" {
		return models.VisitorIdentity{}, ErrInvalidVisitorToken
	}

	if claimedSiteName != "" && claimedSiteName != peeked.SiteName {
		log.Warn().Str("claimed", claimedSiteName).Str("token_site", peeked.SiteName).Msg("visitor token site mismatch")
		return models.VisitorIdentity{}, fmt.Errorf("%w: %w", ErrInvalidVisitorToken, ErrVisitorTokenSiteMismatch)
	}

	now := v.now()
	if peeked.ExpiresAt != nil && !now.Before(peeked.ExpiresAt.Time) {
		return models.VisitorIdentity{}, ErrVisitorTokenExpired
	}

	site, err := v.directory.Resolve(ctx, peeked.SiteName)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Err(err).Str("site_name", peeked.SiteName).Msg("site directory failure during token verify")
		}
		return models.VisitorIdentity{}, ErrSiteNotFound
	}

	claims, err := utils.ValidateVisitorToken(token, site.TenantSecret(), now)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.VisitorIdentity{}, ErrVisitorTokenExpired
		}
		log.Warn().Err(err).Str("site_name", site.SiteName).Msg("visitor token rejected")
		return models.VisitorIdentity{}, ErrInvalidVisitorToken
	}
	if claims.VisitorID == "" || claims.SiteName != site.SiteName {
		return models.VisitorIdentity{}, ErrInvalidVisitorToken
	}

	return models.VisitorIdentity{
		VisitorID: claims.VisitorID,
		UserAgent: claims.UserAgent,
		SiteName:  claims.SiteName,
		SiteID:    site.SiteID,
	}, nil
}
