package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/consent-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken].
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateVisitorToken signs claims with HMAC-SHA256 using secret.
//
// The caller fills IssuedAt and ExpiresAt; an empty secret is rejected.
//
// Example usage:
//
//	token, err := utils.GenerateVisitorToken(claims, site.TenantSecret())
func GenerateVisitorToken(claims models.VisitorClaims, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("empty signing secret")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing visitor token: %w", err)
	}

	return signed, nil
}

// PeekVisitorClaims decodes the token payload WITHOUT checking the
// signature. The result only tells which tenant secret to verify with and
// must never be trusted on its own.
func PeekVisitorClaims(tokenString string) (*models.VisitorClaims, error) {
	claims := &models.VisitorClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("error decoding token: %w", err)
	}
	return claims, nil
}

// ValidateVisitorToken verifies the HS256 signature with secret, requires
// an exp claim and checks it against now.
//
// Errors wrap the jwt/v5 sentinels, so callers can test for
// [jwt.ErrTokenExpired] or [jwt.ErrTokenSignatureInvalid].
func ValidateVisitorToken(tokenString string, secret []byte, now time.Time) (*models.VisitorClaims, error) {
	claims := &models.VisitorClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating visitor token: %w", err)
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value. The scheme is case-insensitive.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
