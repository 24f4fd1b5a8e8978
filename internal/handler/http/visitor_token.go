package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/consent-keeper/internal/service"
	"github.com/MKhiriev/consent-keeper/internal/utils"
	"github.com/MKhiriev/consent-keeper/models"
)

func (h *Handler) issueVisitorToken(w http.ResponseWriter, r *http.Request) {
	var req models.VisitorTokenRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.VisitorID == "" || req.SiteName == "" {
		writeError(w, r, fmt.Errorf("%w: visitorId and siteName are required", service.ErrBadRequest))
		return
	}

	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = r.UserAgent()
	}

	token, err := h.services.VisitorTokenService.Issue(r.Context(), req.VisitorID, req.SiteName, userAgent)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.VisitorTokenResponse{Token: token, VisitorID: req.VisitorID}, http.StatusOK)
}
