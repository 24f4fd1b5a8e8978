package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/config"
	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/mock"
	"github.com/MKhiriev/consent-keeper/internal/service"
	"github.com/MKhiriev/consent-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testNow      = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	testVisitor  = models.VisitorIdentity{VisitorID: "visitor-1", UserAgent: "UA", SiteName: "acme", SiteID: "site-1"}
	testSiteCred = models.SiteCredential{SiteID: "site-1", SiteName: "acme", AccessToken: "tok-acme"}
)

// mockServices holds the gomock doubles behind a test Handler.
type mockServices struct {
	tokens  *mock.MockVisitorTokenService
	consent *mock.MockConsentService
	scripts *mock.MockScriptCategoryService
	sites   *mock.MockSiteService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, *mockServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &mockServices{
		tokens:  mock.NewMockVisitorTokenService(ctrl),
		consent: mock.NewMockConsentService(ctrl),
		scripts: mock.NewMockScriptCategoryService(ctrl),
		sites:   mock.NewMockSiteService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		VisitorTokenService:   m.tokens,
		ConsentService:        m.consent,
		ScriptCategoryService: m.scripts,
		SiteService:           m.sites,
		AppInfoService:        m.appInfo,
	}
	cfg := &config.StructuredConfig{
		App:    config.App{AllowedOrigins: []string{"https://acme.com"}},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}

	h := NewHandler(services, cfg, logger.Nop())
	h.now = func() time.Time { return testNow }
	return h, m
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// withVisitor makes the visitor auth middleware accept req.
func withVisitor(m *mockServices, req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer visitor-token")
	m.tokens.EXPECT().Verify(gomock.Any(), "visitor-token", gomock.Any()).Return(testVisitor, nil)
	return req
}

// withSite makes the site auth middleware accept req.
func withSite(m *mockServices, req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer tok-acme")
	m.sites.EXPECT().AuthenticateAccessToken(gomock.Any(), "tok-acme", gomock.Any()).Return(testSiteCred, nil)
	return req
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

// ─────────────────────────────────────────────
// NewHandler / Init
// ─────────────────────────────────────────────

func TestNewHandler_TakesConfig(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.Equal(t, []string{"https://acme.com"}, h.allowedOrigins)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
	assert.NotNil(t, h.services)
	assert.NotNil(t, h.ids)
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	registered := make(map[string][]string)
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			registered[route.Pattern] = append(registered[route.Pattern], method)
		}
	}

	want := map[string][]string{
		"/api/health":                 {http.MethodGet},
		"/api/version":                {http.MethodGet},
		"/api/visitor-token":          {http.MethodPost},
		"/api/auth/callback":          {http.MethodGet},
		"/api/cmp/detect-location":    {http.MethodGet},
		"/api/cmp/consent":            {http.MethodGet, http.MethodPost},
		"/api/cmp/script-category":    {http.MethodGet},
		"/api/site/script-categories": {http.MethodPost},
		"/api/site/consents":          {http.MethodGet},
	}
	for pattern, methods := range want {
		assert.ElementsMatch(t, methods, registered[pattern], "route %s", pattern)
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, newRequest(http.MethodGet, "/api/unknown", ""))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodDelete, "/api/cmp/consent"},
		{http.MethodPost, "/api/health"},
		{http.MethodPut, "/api/site/consents"},
	} {
		rr := serve(h, newRequest(tc.method, tc.path, ""))
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/cmp/detect-location"},
		{http.MethodPost, "/api/cmp/consent"},
		{http.MethodGet, "/api/cmp/consent"},
		{http.MethodGet, "/api/cmp/script-category"},
		{http.MethodPost, "/api/site/script-categories"},
		{http.MethodGet, "/api/site/consents"},
	} {
		rr := serve(h, newRequest(tc.method, tc.path, ""))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, "Unauthorized", decodeError(t, rr).Error)
	}
}
