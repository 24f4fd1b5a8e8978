package models

// SiteCredential is the per-site tenant record kept in the Site Directory.
// It is created when a site is authorized against the CMS platform and is
// read-only for the consent flow.
type SiteCredential struct {
	// SiteID is the CMS-assigned site identifier. It is the storage key of
	// the record and is not part of the stored JSON value.
	SiteID string `json:"-"`

	// SiteName is the canonical short name of the site (e.g. "acme").
	SiteName string `json:"siteName"`

	// AccessToken is the CMS access token of the site. Its bytes are the
	// tenant secret used to sign visitor tokens. Never log it.
	AccessToken string `json:"accessToken"`
}

// TenantSecret returns the HMAC key for visitor tokens of this site.
func (c SiteCredential) TenantSecret() []byte {
	return []byte(c.AccessToken)
}

// Site is a site summary returned by the CMS platform.
type Site struct {
	ID          string `json:"id"`
	ShortName   string `json:"shortName"`
	DisplayName string `json:"displayName,omitempty"`
}
