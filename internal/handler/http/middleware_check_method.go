// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/consent-keeper/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is the router's MethodNotAllowed handler. A path that is
// known but not served for the requested method answers 404 rather than
// 405, so callers cannot discover which routes exist.
//
// Only exact route patterns are compared; the API has no path parameters.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeResponse(w, r, models.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
