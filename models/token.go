package models

import "github.com/golang-jwt/jwt/v5"

// VisitorClaims is the payload of a visitor token. The token is signed with
// the tenant secret of the site named in SiteName.
type VisitorClaims struct {
	VisitorID string `json:"visitorId"`
	UserAgent string `json:"userAgent"`
	SiteName  string `json:"siteName"`

	jwt.RegisteredClaims
}

// VisitorIdentity is the result of a successful token verification.
// Only values taken from a verified token end up here.
type VisitorIdentity struct {
	VisitorID string
	UserAgent string
	SiteName  string
	SiteID    string
}
