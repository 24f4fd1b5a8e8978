package models

import "time"

// VisitorTokenRequest asks for a visitor token scoped to one site.
type VisitorTokenRequest struct {
	VisitorID string `json:"visitorId" validate:"required"`
	UserAgent string `json:"userAgent"`
	SiteName  string `json:"siteName" validate:"required"`
}

// VisitorTokenResponse carries a freshly issued visitor token.
type VisitorTokenResponse struct {
	Token     string `json:"token"`
	VisitorID string `json:"visitorId"`
}

// ConsentRequest is the consent submission sent by the banner script.
// The visitor id and the preferences arrive encrypted.
type ConsentRequest struct {
	ClientID           string                 `json:"clientId" validate:"required"`
	EncryptedVisitorID Envelope               `json:"encryptedVisitorId"`
	Preferences        Envelope               `json:"preferences"`
	Metadata           ConsentRequestMetadata `json:"metadata"`
	PolicyVersion      string                 `json:"policyVersion"`
	Timestamp          string                 `json:"timestamp,omitempty"`
	Cookies            *CookieCategories      `json:"cookies,omitempty"`
	Country            string                 `json:"country,omitempty"`
	BannerType         BannerType             `json:"bannerType,omitempty" validate:"omitempty,banner_type"`
}

// ConsentRequestMetadata is the browser metadata reported by the banner.
type ConsentRequestMetadata struct {
	UserAgent string `json:"userAgent"`
	Language  string `json:"language"`
	Platform  string `json:"platform"`
	Timezone  string `json:"timezone"`
}

// RequestMeta is what the transport layer knows about the caller.
type RequestMeta struct {
	IP        string
	Country   string
	UserAgent string
}

// ConsentResponse acknowledges a stored consent record.
type ConsentResponse struct {
	Message     string        `json:"message"`
	ConsentData ConsentRecord `json:"consentData"`
}

// DetectLocationResponse tells the banner which regime to display.
type DetectLocationResponse struct {
	BannerType BannerType `json:"bannerType"`
	Country    string     `json:"country"`
}

// ScriptCategoryResponse lists the script categories of a site.
type ScriptCategoryResponse struct {
	Scripts   []ScriptCategoryEntry `json:"scripts"`
	RequestID string                `json:"requestId"`
	Timestamp time.Time             `json:"timestamp"`
	Message   string                `json:"message,omitempty"`
}

// SaveScriptCategoriesRequest carries encrypted script categories from the
// site owner.
type SaveScriptCategoriesRequest struct {
	Scripts Envelope `json:"scripts"`
}

// SaveScriptCategoriesResponse acknowledges saved script categories.
type SaveScriptCategoriesResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ConsentEntriesResponse lists stored consent records of one site.
type ConsentEntriesResponse struct {
	Title   string         `json:"title"`
	Entries []ConsentEntry `json:"entries"`
}

// ConsentEntry is a numbered consent record in a listing.
type ConsentEntry struct {
	EntryNumber int `json:"entryNumber"`
	ConsentRecord
}

// AuthCallbackResponse reports the sites registered by an authorization.
type AuthCallbackResponse struct {
	Message string `json:"message"`
	Sites   []Site `json:"sites"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// VersionResponse reports build information.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
