package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/consent-keeper/internal/adapter"
	"github.com/MKhiriev/consent-keeper/internal/crypto"
	"github.com/MKhiriev/consent-keeper/internal/service"
	"github.com/MKhiriev/consent-keeper/internal/store"
	"github.com/MKhiriev/consent-keeper/internal/utils"
	"github.com/MKhiriev/consent-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidVisitorToken, http.StatusUnauthorized},
		{fmt.Errorf("%w: %w", service.ErrInvalidVisitorToken, service.ErrVisitorTokenSiteMismatch), http.StatusUnauthorized},
		{service.ErrVisitorTokenExpired, http.StatusUnauthorized},
		{service.ErrVisitorMismatch, http.StatusUnauthorized},
		{service.ErrInvalidAccessToken, http.StatusUnauthorized},
		{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", service.ErrBadRequest), http.StatusBadRequest},
		{service.ErrInvalidBannerType, http.StatusBadRequest},
		{service.ErrInvalidPreferenceValue, http.StatusBadRequest},
		{fmt.Errorf("%w: %w", service.ErrBadRequest, service.ErrNoSitesAuthorized), http.StatusBadRequest},
		{validators.ErrValidation, http.StatusBadRequest},
		{crypto.ErrDecryptionFailed, http.StatusBadRequest},
		{utils.ErrInvalidJSONBody, http.StatusBadRequest},
		{ErrMissingRequestID, http.StatusBadRequest},
		{ErrMissingCode, http.StatusBadRequest},
		{service.ErrSiteNotFound, http.StatusNotFound},
		{store.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: timeout", store.ErrStoreUnavailable), http.StatusInternalServerError},
		{store.ErrMalformedRecord, http.StatusInternalServerError},
		{adapter.ErrUpstream, http.StatusBadGateway},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_ClientErrorCarriesDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), ErrMissingCode)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	body := decodeError(t, rr)
	assert.Equal(t, "Bad Request", body.Error)
	assert.Equal(t, ErrMissingCode.Error(), body.Details)
}

func TestWriteError_ServerErrorHidesDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), fmt.Errorf("%w: dsn password=secret", store.ErrStoreUnavailable))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Empty(t, body.Details)
	assert.NotContains(t, rr.Body.String(), "secret")
}

func TestWriteError_AuthFailureShowsOnlyPublicReason(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantDetails string
	}{
		{
			name:        "token of another site",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidVisitorToken, service.ErrVisitorTokenSiteMismatch),
			wantStatus:  http.StatusUnauthorized,
			wantDetails: service.ErrInvalidVisitorToken.Error(),
		},
		{
			name:        "site not registered",
			err:         fmt.Errorf("%w: site is not registered", service.ErrInvalidVisitorToken),
			wantStatus:  http.StatusUnauthorized,
			wantDetails: service.ErrInvalidVisitorToken.Error(),
		},
		{
			name:        "expired token",
			err:         fmt.Errorf("%w: %w: exp 2026-03-01", service.ErrInvalidVisitorToken, service.ErrVisitorTokenExpired),
			wantStatus:  http.StatusUnauthorized,
			wantDetails: service.ErrVisitorTokenExpired.Error(),
		},
		{
			name:       "visitor mismatch",
			err:        service.ErrVisitorMismatch,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:        "short key",
			err:         fmt.Errorf("visitor id: %w: key must be 32 bytes", crypto.ErrDecryptionFailed),
			wantStatus:  http.StatusBadRequest,
			wantDetails: crypto.ErrDecryptionFailed.Error(),
		},
		{
			name:        "short iv",
			err:         fmt.Errorf("preferences: %w: iv must be 12 bytes", crypto.ErrDecryptionFailed),
			wantStatus:  http.StatusBadRequest,
			wantDetails: crypto.ErrDecryptionFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rr := httptest.NewRecorder()
			writeError(rr, makeRequest(http.MethodPost, "/api/cmp/consent", &buf), tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantDetails, decodeError(t, rr).Details)
			assert.Contains(t, buf.String(), tt.err.Error())
		})
	}
}
