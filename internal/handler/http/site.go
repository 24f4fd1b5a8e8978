package http

import (
	"net/http"

	"github.com/MKhiriev/consent-keeper/internal/app"
	"github.com/MKhiriev/consent-keeper/internal/utils"
	"github.com/MKhiriev/consent-keeper/models"
)

func (h *Handler) saveScriptCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cred, _ := utils.GetSiteCredentialFromContext(ctx)

	var req models.SaveScriptCategoriesRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	count, err := h.services.ScriptCategoryService.Save(ctx, cred.SiteID, req.Scripts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.SaveScriptCategoriesResponse{Message: app.MsgScriptsSaved, Count: count}, http.StatusOK)
}

func (h *Handler) listConsents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cred, _ := utils.GetSiteCredentialFromContext(ctx)

	records, err := h.services.ConsentService.ListForSite(ctx, cred.SiteID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries := make([]models.ConsentEntry, 0, len(records))
	for i, record := range records {
		entries = append(entries, models.ConsentEntry{EntryNumber: i + 1, ConsentRecord: record})
	}

	writeResponse(w, r, models.ConsentEntriesResponse{
		Title:   app.MsgConsentEntriesTitle + cred.SiteName,
		Entries: entries,
	}, http.StatusOK)
}
