package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MaxRequestBodyBytes caps every decoded JSON request body.
const MaxRequestBodyBytes = 1 << 20

const (
	unknownIP      = "unknown-ip"
	unknownCountry = "unknown-country"
)

// ErrInvalidJSONBody is returned by [ReadJSON].
var ErrInvalidJSONBody = errors.New("invalid JSON body")

// WriteJSON serializes data to JSON and writes it with statusCode and a
// JSON content type. When marshaling fails it answers 500 instead and
// returns the error.
//
// Example usage:
//
//	WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadJSON decodes a single JSON value from the request body into v.
// Bodies larger than [MaxRequestBodyBytes] and trailing data are rejected.
func ReadJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data", ErrInvalidJSONBody)
	}
	return nil
}

// ClientIP returns the caller IP reported by the edge proxy:
// CF-Connecting-IP, then X-Real-IP, else "unknown-ip".
func ClientIP(r *http.Request) string {
	for _, header := range []string{"CF-Connecting-IP", "X-Real-IP"} {
		if ip := strings.TrimSpace(r.Header.Get(header)); ip != "" {
			return ip
		}
	}
	return unknownIP
}

// ClientCountry returns the ISO country code set by the edge proxy in
// CF-IPCountry, else "unknown-country".
func ClientCountry(r *http.Request) string {
	if country := strings.TrimSpace(r.Header.Get("CF-IPCountry")); country != "" {
		return strings.ToUpper(country)
	}
	return unknownCountry
}
