package store

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// defaultListLimit is used when ListOptions.Limit is not positive.
const defaultListLimit = 1000

// ListOptions selects one page of keys.
type ListOptions struct {
	// Prefix restricts the listing to keys starting with it.
	Prefix string
	// Cursor is the opaque value returned by the previous page.
	Cursor string
	// Limit is the maximum number of keys in the page.
	Limit int
}

func (o ListOptions) limit() int {
	if o.Limit <= 0 {
		return defaultListLimit
	}
	return o.Limit
}

// ListPage is one page of a listing. When Complete is false, Cursor fetches
// the next page.
type ListPage struct {
	Keys     []string
	Cursor   string
	Complete bool
}

// Key layout shared by all backends.
const (
	siteKeyPrefix           = "site:"
	siteNameIndexPrefix     = "site-name:"
	siteTokenIndexPrefix    = "site-token:"
	consentKeyPrefix        = "consent:"
	scriptCategoryKeyPrefix = "script-categories:"
)

// SiteKey is the key of a site record.
func SiteKey(siteID string) string {
	return siteKeyPrefix + siteID
}

// SiteNameIndexKey maps a short name to a site id.
func SiteNameIndexKey(siteName string) string {
	return siteNameIndexPrefix + siteName
}

// SiteTokenIndexKey maps an access token to the ids of its sites. The token
// itself is never part of a key, only its BLAKE2b-256 digest.
func SiteTokenIndexKey(accessToken string) string {
	sum := blake2b.Sum256([]byte(accessToken))
	return siteTokenIndexPrefix + hex.EncodeToString(sum[:])
}

// ConsentKey is the key of the consent record of one visitor on one site.
func ConsentKey(siteID, visitorID string) string {
	return ConsentKeyPrefix(siteID) + visitorID
}

// ConsentKeyPrefix is the common prefix of all consent keys of a site.
func ConsentKeyPrefix(siteID string) string {
	return consentKeyPrefix + siteID + ":"
}

// ScriptCategoriesKey is the key of the script categories of a site.
func ScriptCategoriesKey(siteID string) string {
	return scriptCategoryKeyPrefix + siteID
}
