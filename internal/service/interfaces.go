package service

import (
	"context"

	"github.com/MKhiriev/consent-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VisitorTokenService issues and verifies site-scoped visitor tokens.
type VisitorTokenService interface {
	Issue(ctx context.Context, visitorID, siteName, userAgent string) (string, error)
	Verify(ctx context.Context, token, claimedSiteName string) (models.VisitorIdentity, error)
}

// ConsentService records and reads visitor consent.
type ConsentService interface {
	Submit(ctx context.Context, identity models.VisitorIdentity, req models.ConsentRequest, meta models.RequestMeta) (models.ConsentRecord, error)
	Get(ctx context.Context, identity models.VisitorIdentity) (models.ConsentRecord, error)
	ListForSite(ctx context.Context, siteID string) ([]models.ConsentRecord, error)
}

// ScriptCategoryService manages the script categorization of a site.
type ScriptCategoryService interface {
	Save(ctx context.Context, siteID string, scripts models.Envelope) (int, error)
	List(ctx context.Context, siteID string) ([]models.ScriptCategoryEntry, error)
}

// SiteService authorizes sites against the CMS platform and authenticates
// site owners.
type SiteService interface {
	Authorize(ctx context.Context, code string) ([]models.Site, error)
	// AuthenticateAccessToken returns the site authorized with accessToken.
	// siteID picks one site when the token covers several; empty means the
	// first one registered.
	AuthenticateAccessToken(ctx context.Context, accessToken, siteID string) (models.SiteCredential, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.VersionResponse
}
