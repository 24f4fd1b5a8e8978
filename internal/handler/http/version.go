package http

import (
	"net/http"

	"github.com/MKhiriev/consent-keeper/internal/app"
	"github.com/MKhiriev/consent-keeper/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, models.HealthResponse{Status: app.MsgHealthy}, http.StatusOK)
}
