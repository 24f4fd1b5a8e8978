// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, visitor token
// signing and validation, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/consent-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// VisitorIdentityCtxKey stores the verified [models.VisitorIdentity] of the
// current request.
var VisitorIdentityCtxKey = contextKey("visitorIdentity")

// SiteCredentialCtxKey stores the [models.SiteCredential] of a site
// authenticated with its access token.
var SiteCredentialCtxKey = contextKey("siteCredential")

// WithVisitorIdentity returns a copy of ctx carrying identity.
func WithVisitorIdentity(ctx context.Context, identity models.VisitorIdentity) context.Context {
	return context.WithValue(ctx, VisitorIdentityCtxKey, identity)
}

// GetVisitorIdentityFromContext returns the identity stored by
// [WithVisitorIdentity]; ok is false when none was stored.
func GetVisitorIdentityFromContext(ctx context.Context) (models.VisitorIdentity, bool) {
	identity, ok := ctx.Value(VisitorIdentityCtxKey).(models.VisitorIdentity)
	return identity, ok
}

// WithSiteCredential returns a copy of ctx carrying cred.
func WithSiteCredential(ctx context.Context, cred models.SiteCredential) context.Context {
	return context.WithValue(ctx, SiteCredentialCtxKey, cred)
}

// GetSiteCredentialFromContext returns the credential stored by
// [WithSiteCredential].
func GetSiteCredentialFromContext(ctx context.Context) (models.SiteCredential, bool) {
	cred, ok := ctx.Value(SiteCredentialCtxKey).(models.SiteCredential)
	return cred, ok
}
