// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the CMS platform that hosts the customer sites.
//
// Only the OAuth authorization-code exchange and the site listing are
// covered: together they yield the site credentials kept in the Site
// Directory. Every non-2xx answer or transport failure wraps [ErrUpstream].
package adapter

import (
	"context"

	"github.com/MKhiriev/consent-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cms_client_mock.go -package=mock

// CMSClient is the CMS platform API used during site authorization.
type CMSClient interface {
	// ExchangeCode trades an OAuth authorization code for an access token.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// ListSites returns the sites the access token is authorized for.
	ListSites(ctx context.Context, accessToken string) ([]models.Site, error)
}
