// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"time"
)

// BannerType is the consent regime shown to a visitor.
type BannerType string

const (
	BannerTypeGDPR BannerType = "GDPR"
	BannerTypeCCPA BannerType = "CCPA"
)

// IsValid reports whether b is one of the supported regimes.
func (b BannerType) IsValid() bool {
	return b == BannerTypeGDPR || b == BannerTypeCCPA
}

// ErrAmbiguousRegime is returned when a [RegimePreferences] value has zero or
// both regime variants set.
var ErrAmbiguousRegime = errors.New("exactly one consent regime must be set")

// ConsentRecord is the canonical persisted statement of a visitor's
// preferences for one site. A new submission for the same site and visitor
// overwrites the previous record.
type ConsentRecord struct {
	SiteID        string            `json:"siteId"`
	VisitorID     string            `json:"visitorId"`
	Timestamp     time.Time         `json:"timestamp"`
	PolicyVersion string            `json:"policyVersion"`
	Metadata      ConsentMetadata   `json:"metadata"`
	Preferences   RegimePreferences `json:"preferences"`
	Cookies       CookieCategories  `json:"cookies"`
}

// ConsentMetadata describes the browser that submitted the consent.
type ConsentMetadata struct {
	UserAgent string `json:"userAgent"`
	Language  string `json:"language"`
	Platform  string `json:"platform"`
	Timezone  string `json:"timezone"`
	IP        string `json:"ip"`
}

// GDPRPreferences holds the opt-in categories of the GDPR banner.
type GDPRPreferences struct {
	Necessary       bool   `json:"necessary"`
	Marketing       bool   `json:"marketing"`
	Personalization bool   `json:"personalization"`
	Analytics       bool   `json:"analytics"`
	Country         string `json:"country"`
	IP              string `json:"ip"`
	LastUpdated     string `json:"lastUpdated"`
}

// CCPAPreferences holds the opt-out choices of the CCPA banner.
type CCPAPreferences struct {
	Necessary   bool   `json:"necessary"`
	DoNotShare  bool   `json:"doNotShare"`
	DoNotSell   bool   `json:"doNotSell"`
	LimitUse    bool   `json:"limitUse"`
	Country     string `json:"country"`
	IP          string `json:"ip"`
	LastUpdated string `json:"lastUpdated"`
}

// RegimePreferences is a tagged union: exactly one of GDPR or CCPA is set.
// On the wire it is the flattened variant plus a "regime" discriminator, so
// the fields of the other regime never appear.
type RegimePreferences struct {
	GDPR *GDPRPreferences
	CCPA *CCPAPreferences
}

// Regime returns the populated variant, or an empty string when the value
// is not a valid union.
func (p RegimePreferences) Regime() BannerType {
	switch {
	case p.GDPR != nil && p.CCPA == nil:
		return BannerTypeGDPR
	case p.CCPA != nil && p.GDPR == nil:
		return BannerTypeCCPA
	}
	return ""
}

func (p RegimePreferences) MarshalJSON() ([]byte, error) {
	switch p.Regime() {
	case BannerTypeGDPR:
		return json.Marshal(struct {
			Regime BannerType `json:"regime"`
			*GDPRPreferences
		}{BannerTypeGDPR, p.GDPR})
	case BannerTypeCCPA:
		return json.Marshal(struct {
			Regime BannerType `json:"regime"`
			*CCPAPreferences
		}{BannerTypeCCPA, p.CCPA})
	}
	return nil, ErrAmbiguousRegime
}

func (p *RegimePreferences) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	var regime BannerType
	if raw, ok := fields["regime"]; ok {
		if err := json.Unmarshal(raw, &regime); err != nil {
			return err
		}
	} else {
		// records written before the discriminator existed
		regime = BannerTypeGDPR
		for _, k := range []string{"doNotShare", "doNotSell", "limitUse"} {
			if _, ok := fields[k]; ok {
				regime = BannerTypeCCPA
				break
			}
		}
	}

	*p = RegimePreferences{}
	switch regime {
	case BannerTypeGDPR:
		p.GDPR = new(GDPRPreferences)
		return json.Unmarshal(b, p.GDPR)
	case BannerTypeCCPA:
		p.CCPA = new(CCPAPreferences)
		return json.Unmarshal(b, p.CCPA)
	}
	return ErrAmbiguousRegime
}

// CookieData describes one cookie observed on a site.
type CookieData struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Domain   string `json:"domain,omitempty"`
	Path     string `json:"path,omitempty"`
	Expires  string `json:"expires,omitempty"`
	Secure   bool   `json:"secure,omitempty"`
	HTTPOnly bool   `json:"httpOnly,omitempty"`
	SameSite string `json:"sameSite,omitempty"`
	Category string `json:"category,omitempty"`
}

// CookieCategories groups cookies by consent category.
type CookieCategories struct {
	Necessary       []CookieData `json:"necessary"`
	Marketing       []CookieData `json:"marketing"`
	Personalization []CookieData `json:"personalization"`
	Analytics       []CookieData `json:"analytics"`
	Other           []CookieData `json:"other"`
}

// Normalized returns a copy where every missing category is an empty list.
func (c CookieCategories) Normalized() CookieCategories {
	orEmpty := func(in []CookieData) []CookieData {
		if in == nil {
			return []CookieData{}
		}
		return in
	}
	return CookieCategories{
		Necessary:       orEmpty(c.Necessary),
		Marketing:       orEmpty(c.Marketing),
		Personalization: orEmpty(c.Personalization),
		Analytics:       orEmpty(c.Analytics),
		Other:           orEmpty(c.Other),
	}
}
