package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/consent-keeper/internal/store"
	"github.com/MKhiriev/consent-keeper/models"
)

// ConsentInput is everything the builder needs. It is assembled by the
// consent service after the token is verified and the payloads decrypted.
type ConsentInput struct {
	SiteID        string
	ClientID      string
	VisitorID     string
	BannerType    models.BannerType
	Preferences   map[string]any
	PolicyVersion string
	Metadata      models.ConsentRequestMetadata
	IP            string
	Country       string
	Cookies       *models.CookieCategories
}

// BuildConsentRecord turns input into the record to persist and the key to
// persist it under. It performs no I/O.
//
// Each preference flag is read from its capitalized key first, then from
// its camelCase key, and defaults to false. A flag present with a
// non-boolean value fails with ErrInvalidPreferenceValue. The necessary
// category is always granted.
func BuildConsentRecord(input ConsentInput, now time.Time) (models.ConsentRecord, string, error) {
	if input.SiteID == "" || input.ClientID == "" || input.VisitorID == "" || input.Preferences == nil || input.BannerType == "" {
		return models.ConsentRecord{}, "", fmt.Errorf("%w: missing required fields", ErrBadRequest)
	}
	if !input.BannerType.IsValid() {
		return models.ConsentRecord{}, "", fmt.Errorf("%w: %q", ErrInvalidBannerType, input.BannerType)
	}

	now = now.UTC().Truncate(time.Second)
	lastUpdated := now.Format(time.RFC3339)

	record := models.ConsentRecord{
		SiteID:        input.SiteID,
		VisitorID:     input.VisitorID,
		Timestamp:     now,
		PolicyVersion: input.PolicyVersion,
		Metadata: models.ConsentMetadata{
			UserAgent: input.Metadata.UserAgent,
			Language:  input.Metadata.Language,
			Platform:  input.Metadata.Platform,
			Timezone:  input.Metadata.Timezone,
			IP:        input.IP,
		},
	}
	if input.Cookies != nil {
		record.Cookies = input.Cookies.Normalized()
	} else {
		record.Cookies = models.CookieCategories{}.Normalized()
	}

	flags := preferenceReader{prefs: input.Preferences}

	switch input.BannerType {
	case models.BannerTypeGDPR:
		gdpr := &models.GDPRPreferences{
			Necessary:       true,
			Marketing:       flags.read("marketing"),
			Personalization: flags.read("personalization"),
			Analytics:       flags.read("analytics"),
			Country:         input.Country,
			IP:              input.IP,
			LastUpdated:     lastUpdated,
		}
		record.Preferences = models.RegimePreferences{GDPR: gdpr}

	case models.BannerTypeCCPA:
		ccpa := &models.CCPAPreferences{
			Necessary:   true,
			DoNotShare:  flags.read("doNotShare"),
			DoNotSell:   flags.read("doNotSell"),
			LimitUse:    flags.read("limitUse"),
			Country:     input.Country,
			IP:          input.IP,
			LastUpdated: lastUpdated,
		}
		record.Preferences = models.RegimePreferences{CCPA: ccpa}
	}

	if flags.err != nil {
		return models.ConsentRecord{}, "", flags.err
	}

	return record, store.ConsentKey(input.SiteID, input.VisitorID), nil
}

// preferenceReader coerces preference flags and keeps the first error.
type preferenceReader struct {
	prefs map[string]any
	err   error
}

func (p *preferenceReader) read(camelKey string) bool {
	for _, key := range []string{capitalize(camelKey), camelKey} {
		raw, ok := p.prefs[key]
		if !ok || raw == nil {
			continue
		}
		b, isBool := raw.(bool)
		if !isBool {
			if p.err == nil {
				p.err = fmt.Errorf("%w: %s", ErrInvalidPreferenceValue, key)
			}
			return false
		}
		return b
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(unicode.ToUpper(r[0])) + strings.TrimPrefix(s, string(r[0]))
}
