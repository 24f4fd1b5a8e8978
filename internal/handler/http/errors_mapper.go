package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/consent-keeper/internal/adapter"
	"github.com/MKhiriev/consent-keeper/internal/crypto"
	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/service"
	"github.com/MKhiriev/consent-keeper/internal/store"
	"github.com/MKhiriev/consent-keeper/internal/utils"
	"github.com/MKhiriev/consent-keeper/internal/validators"
	"github.com/MKhiriev/consent-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidVisitorToken:      http.StatusUnauthorized,
	service.ErrVisitorTokenExpired:      http.StatusUnauthorized,
	service.ErrVisitorTokenSiteMismatch: http.StatusUnauthorized,
	service.ErrVisitorMismatch:          http.StatusUnauthorized,
	service.ErrInvalidAccessToken:       http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	service.ErrBadRequest:             http.StatusBadRequest,
	service.ErrInvalidBannerType:      http.StatusBadRequest,
	service.ErrInvalidPreferenceValue: http.StatusBadRequest,
	service.ErrNoSitesAuthorized:      http.StatusBadRequest,
	validators.ErrValidation:          http.StatusBadRequest,
	crypto.ErrDecryptionFailed:        http.StatusBadRequest,
	utils.ErrInvalidJSONBody:          http.StatusBadRequest,
	ErrMissingRequestID:               http.StatusBadRequest,
	ErrMissingCode:                    http.StatusBadRequest,

	service.ErrSiteNotFound: http.StatusNotFound,
	store.ErrNotFound:       http.StatusNotFound,

	store.ErrStoreUnavailable: http.StatusInternalServerError,
	store.ErrMalformedRecord:  http.StatusInternalServerError,

	adapter.ErrUpstream: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicReasons are the only texts an authentication or decryption failure
// may show to the client. The first match wins, so more specific errors come
// first.
var publicReasons = []error{
	service.ErrVisitorTokenExpired,
	service.ErrInvalidVisitorToken,
	service.ErrInvalidAccessToken,
	ErrEmptyAuthorizationHeader,
	utils.ErrInvalidAuthorizationHeader,
	crypto.ErrDecryptionFailed,
}

// errorDetails returns the details shown to the client for err. Server
// errors have none. Authentication and decryption failures show only the
// matched public reason, never the wrapped cause.
func errorDetails(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return ""
	}
	if status != http.StatusUnauthorized && !errors.Is(err, crypto.ErrDecryptionFailed) {
		return err.Error()
	}
	for _, reason := range publicReasons {
		if errors.Is(err, reason) {
			return reason.Error()
		}
	}
	return ""
}

// writeError logs err and answers with its mapped status. The full error
// chain only goes to the log; see errorDetails for what the client sees.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	body := models.ErrorResponse{Error: http.StatusText(status), Details: errorDetails(err, status)}
	if status < http.StatusInternalServerError {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	} else {
		log.Err(err).Int("status", status).Msg("request failed")
	}

	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

// writeResponse writes data as JSON and logs a failed write.
func writeResponse(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
