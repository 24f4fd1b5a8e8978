package service

import (
	"strings"

	"github.com/MKhiriev/consent-keeper/models"
)

// euMemberStates holds the ISO 3166-1 alpha-2 codes of the EU-27.
var euMemberStates = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "HR": {}, "CY": {}, "CZ": {}, "DK": {},
	"EE": {}, "FI": {}, "FR": {}, "DE": {}, "GR": {}, "HU": {}, "IE": {},
	"IT": {}, "LV": {}, "LT": {}, "LU": {}, "MT": {}, "NL": {}, "PL": {},
	"PT": {}, "RO": {}, "SK": {}, "SI": {}, "ES": {}, "SE": {},
}

// Classify maps a country code to the consent regime to display. EU
// members get GDPR, the United States gets CCPA. Everything else,
// including unknown or empty codes, falls back to GDPR as the stricter
// regime.
func Classify(countryCode string) models.BannerType {
	code := strings.ToUpper(strings.TrimSpace(countryCode))

	if _, ok := euMemberStates[code]; ok {
		return models.BannerTypeGDPR
	}
	if code == "US" {
		return models.BannerTypeCCPA
	}
	return models.BannerTypeGDPR
}
