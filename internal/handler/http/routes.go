package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withSecurityHeaders)
	router.Use(h.withCORS)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/visitor-token", h.issueVisitorToken)
		r.Get("/api/auth/callback", h.authCallback)
	})

	// banner script, authorized by a visitor token
	router.Group(func(r chi.Router) {
		r.Use(h.withVisitorAuth)
		r.Get("/api/cmp/detect-location", h.detectLocation)
		r.Post("/api/cmp/consent", h.submitConsent)
		r.Get("/api/cmp/consent", h.getConsent)
		r.Get("/api/cmp/script-category", h.listScriptCategories)
	})

	// site owner, authorized by the site access token
	router.Group(func(r chi.Router) {
		r.Use(h.withSiteAuth)
		r.Post("/api/site/script-categories", h.saveScriptCategories)
		r.Get("/api/site/consents", h.listConsents)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
