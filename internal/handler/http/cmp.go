package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/consent-keeper/internal/app"
	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/service"
	"github.com/MKhiriev/consent-keeper/internal/utils"
	"github.com/MKhiriev/consent-keeper/models"
)

const (
	visitorIDCookie     = "visitor-id"
	consentCookie       = "consent-preferences"
	consentCookieMaxAge = 365 * 24 * 60 * 60
	requestIDHeader     = "X-Request-ID"
)

func (h *Handler) detectLocation(w http.ResponseWriter, r *http.Request) {
	country := utils.ClientCountry(r)

	writeResponse(w, r, models.DetectLocationResponse{
		BannerType: service.Classify(country),
		Country:    country,
	}, http.StatusOK)
}

func (h *Handler) submitConsent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utils.GetVisitorIdentityFromContext(ctx)

	var req models.ConsentRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	// the banner names its site through clientId
	if req.ClientID != "" && service.SiteNameFromClientID(req.ClientID) != identity.SiteName {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidVisitorToken, service.ErrVisitorTokenSiteMismatch))
		return
	}

	meta := models.RequestMeta{
		IP:        utils.ClientIP(r),
		Country:   utils.ClientCountry(r),
		UserAgent: r.UserAgent(),
	}

	record, err := h.services.ConsentService.Submit(ctx, identity, req, meta)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     visitorIDCookie,
		Value:    record.VisitorID,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	if value, cookieErr := consentCookieValue(record.Preferences); cookieErr == nil {
		http.SetCookie(w, &http.Cookie{
			Name:     consentCookie,
			Value:    value,
			Path:     "/",
			MaxAge:   consentCookieMaxAge,
			Secure:   true,
			SameSite: http.SameSiteStrictMode,
		})
	} else {
		logger.FromRequest(r).Err(cookieErr).Msg("error encoding consent cookie")
	}

	writeResponse(w, r, models.ConsentResponse{Message: app.MsgConsentSaved, ConsentData: record}, http.StatusOK)
}

// consentCookieValue encodes the stored preferences as base64url JSON, which
// needs no quoting in a cookie.
func consentCookieValue(prefs models.RegimePreferences) (string, error) {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func (h *Handler) getConsent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utils.GetVisitorIdentityFromContext(ctx)

	record, err := h.services.ConsentService.Get(ctx, identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, record, http.StatusOK)
}

func (h *Handler) listScriptCategories(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(requestIDHeader)
	if requestID == "" {
		writeError(w, r, ErrMissingRequestID)
		return
	}

	ctx := r.Context()
	identity, _ := utils.GetVisitorIdentityFromContext(ctx)

	scripts, err := h.services.ScriptCategoryService.List(ctx, identity.SiteID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.ScriptCategoryResponse{
		Scripts:   scripts,
		RequestID: requestID,
		Timestamp: h.now().UTC(),
	}
	if len(scripts) == 0 {
		resp.Message = app.MsgNoScriptsFound
	}

	writeResponse(w, r, resp, http.StatusOK)
}
