package http

import (
	"net/http"
	"slices"
	"strings"
)

var (
	corsAllowedMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodOptions,
	}, ", ")
	corsAllowedHeaders = strings.Join([]string{
		"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin", "X-Request-ID", traceIDHeader,
	}, ", ")
)

const corsMaxAge = "86400"

// withCORS answers cross-origin requests from the configured origins. "*"
// in the allow-list accepts any origin. Preflight requests are answered
// here with 204 and never reach the router.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		header := w.Header()
		header.Add("Vary", "Origin")

		if allowed := h.allowedOrigin(origin); allowed != "" {
			header.Set("Access-Control-Allow-Origin", allowed)
			header.Set("Access-Control-Allow-Methods", corsAllowedMethods)
			header.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			header.Set("Access-Control-Expose-Headers", traceIDHeader)
			header.Set("Access-Control-Max-Age", corsMaxAge)
			if allowed != "*" {
				header.Set("Access-Control-Allow-Credentials", "true")
			}
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allowedOrigin returns the Access-Control-Allow-Origin value for origin,
// or "" when it is not allowed.
func (h *Handler) allowedOrigin(origin string) string {
	if origin == "" {
		return ""
	}
	if slices.Contains(h.allowedOrigins, origin) {
		return origin
	}
	if slices.Contains(h.allowedOrigins, "*") {
		return "*"
	}
	return ""
}
