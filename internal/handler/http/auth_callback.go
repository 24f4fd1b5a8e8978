package http

import (
	"net/http"

	"github.com/MKhiriev/consent-keeper/internal/app"
	"github.com/MKhiriev/consent-keeper/models"
)

func (h *Handler) authCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, r, ErrMissingCode)
		return
	}

	sites, err := h.services.SiteService.Authorize(r.Context(), code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.AuthCallbackResponse{Message: app.MsgSitesAuthorized, Sites: sites}, http.StatusOK)
}
