package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/service"
	"github.com/MKhiriev/consent-keeper/internal/utils"
)

const (
	// siteNameParam is the query parameter a banner uses to claim its site.
	siteNameParam = "siteName"
	// siteIDParam picks one site when a site access token covers several.
	siteIDParam = "siteId"
)

// withVisitorAuth authenticates the banner script with the visitor token
// from the "Authorization: Bearer" header and stores the verified
// [models.VisitorIdentity] in the request context.
//
// A siteName query parameter, when present, must match the site the token
// was issued for. An unknown site is reported like any other invalid token.
func (h *Handler) withVisitorAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		identity, err := h.services.VisitorTokenService.Verify(ctx, token, r.URL.Query().Get(siteNameParam))
		if err != nil {
			if errors.Is(err, service.ErrSiteNotFound) {
				err = fmt.Errorf("%w: site is not registered", service.ErrInvalidVisitorToken)
			}
			writeError(w, r, err)
			return
		}

		log := logger.FromContext(ctx)
		log.Debug().Str("site_id", identity.SiteID).Msg("visitor authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithVisitorIdentity(ctx, identity)))
	})
}

// withSiteAuth authenticates a site owner with the site access token from
// the "Authorization: Bearer" header and stores the resolved
// [models.SiteCredential] in the request context.
//
// One access token may cover several sites. The siteId query parameter
// selects one of them and must name a site the token authorized; without it
// the first authorized site is used.
func (h *Handler) withSiteAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		cred, err := h.services.SiteService.AuthenticateAccessToken(ctx, token, r.URL.Query().Get(siteIDParam))
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSiteCredential(ctx, cred)))
	})
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}
	return utils.ParseBearerToken(header)
}
