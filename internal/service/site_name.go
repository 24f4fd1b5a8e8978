package service

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	webflowSuffix = regexp.MustCompile(`\.webflow\.io$`)
	commonTLD     = regexp.MustCompile(`\.(com|net|org|io|co|dev|xyz|info|studio)$`)
)

// SiteNameFromClientID derives the canonical site short name from the
// clientId sent by the banner, which is usually the site origin.
//
//	https://www.acme.com     -> acme
//	acme.webflow.io          -> acme
//	https://shop.acme.io/a/b -> shop.acme
func SiteNameFromClientID(clientID string) string {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return ""
	}

	raw := clientID
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	host := clientID
	if u, err := url.Parse(raw); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	host = strings.TrimPrefix(strings.ToLower(host), "www.")

	if webflowSuffix.MatchString(host) {
		return webflowSuffix.ReplaceAllString(host, "")
	}
	return commonTLD.ReplaceAllString(host, "")
}
