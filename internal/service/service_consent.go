// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/crypto"
	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/store"
	"github.com/MKhiriev/consent-keeper/models"
)

const (
	unknownCountry = "unknown-country"
	unknownIP      = "unknown-ip"
)

type consentService struct {
	cipher       crypto.PayloadCipher
	consentStore store.ConsentStore

	// consentTTL is the retention of a stored record.
	consentTTL time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewConsentService constructs a [ConsentService]. Request validation is
// added by wrapping the result with [NewConsentValidationService].
func NewConsentService(cipher crypto.PayloadCipher, consentStore store.ConsentStore, consentTTL time.Duration, logger *logger.Logger) ConsentService {
	return &consentService{
		cipher:       cipher,
		consentStore: consentStore,
		consentTTL:   consentTTL,
		now:          time.Now,
		logger:       logger,
	}
}

// Submit decrypts the consent payloads of a verified visitor, builds the
// record and stores it.
//
// Returns:
//   - ErrBadRequest if an envelope is missing or the decrypted payloads are empty.
//   - crypto.ErrDecryptionFailed if an envelope cannot be opened.
//   - ErrVisitorMismatch if the decrypted visitor id is not the token's.
//   - ErrInvalidBannerType, ErrInvalidPreferenceValue from the builder.
//   - store.ErrStoreUnavailable if the record cannot be written.
func (c *consentService) Submit(ctx context.Context, identity models.VisitorIdentity, req models.ConsentRequest, meta models.RequestMeta) (models.ConsentRecord, error) {
	log := logger.FromContext(ctx)

	if req.EncryptedVisitorID.IsEmpty() || req.Preferences.IsEmpty() {
		return models.ConsentRecord{}, fmt.Errorf("%w: encrypted payloads are required", ErrBadRequest)
	}

	visitorID, err := c.openVisitorID(req.EncryptedVisitorID)
	if err != nil {
		return models.ConsentRecord{}, err
	}

	var preferences map[string]any
	if err = c.cipher.OpenEnvelope(req.Preferences, &preferences); err != nil {
		return models.ConsentRecord{}, fmt.Errorf("preferences: %w", err)
	}

	if visitorID != identity.VisitorID {
		log.Warn().Str("site_id", identity.SiteID).Msg("decrypted visitor id differs from token visitor id")
		return models.ConsentRecord{}, ErrVisitorMismatch
	}

	country := firstNonEmpty(strings.TrimSpace(req.Country), meta.Country, unknownCountry)
	bannerType := req.BannerType
	if bannerType == "" {
		bannerType = Classify(country)
	}

	metadata := req.Metadata
	if metadata.UserAgent == "" {
		metadata.UserAgent = meta.UserAgent
	}

	record, key, err := BuildConsentRecord(ConsentInput{
		SiteID:        identity.SiteID,
		ClientID:      req.ClientID,
		VisitorID:     visitorID,
		BannerType:    bannerType,
		Preferences:   preferences,
		PolicyVersion: req.PolicyVersion,
		Metadata:      metadata,
		IP:            firstNonEmpty(meta.IP, unknownIP),
		Country:       country,
		Cookies:       req.Cookies,
	}, c.now())
	if err != nil {
		return models.ConsentRecord{}, err
	}

	if err = c.consentStore.PutConsent(ctx, key, record, c.consentTTL); err != nil {
		return models.ConsentRecord{}, err
	}

	log.Info().
		Str("site_id", record.SiteID).
		Str("regime", string(record.Preferences.Regime())).
		Msg("consent saved")

	return record, nil
}

// Get returns the stored record of the token's visitor.
func (c *consentService) Get(ctx context.Context, identity models.VisitorIdentity) (models.ConsentRecord, error) {
	return c.consentStore.GetConsent(ctx, store.ConsentKey(identity.SiteID, identity.VisitorID))
}

func (c *consentService) ListForSite(ctx context.Context, siteID string) ([]models.ConsentRecord, error) {
	if siteID == "" {
		return nil, fmt.Errorf("%w: site id is required", ErrBadRequest)
	}
	return c.consentStore.ListConsents(ctx, siteID)
}

// openVisitorID decrypts the visitor id envelope. The plaintext is either a
// bare id or a JSON string.
func (c *consentService) openVisitorID(env models.Envelope) (string, error) {
	key, err := c.cipher.ImportKey(env.Key, crypto.UsageDecrypt)
	if err != nil {
		return "", fmt.Errorf("visitor id: %w: %w", crypto.ErrDecryptionFailed, err)
	}

	plaintext, err := c.cipher.Decrypt(env.Ciphertext, key, env.IV)
	if err != nil {
		return "", fmt.Errorf("visitor id: %w", err)
	}

	visitorID := strings.TrimSpace(string(plaintext))
	var quoted string
	if strings.HasPrefix(visitorID, `"`) && json.Unmarshal(plaintext, &quoted) == nil {
		visitorID = quoted
	}
	if visitorID == "" {
		return "", fmt.Errorf("%w: visitor id is empty", ErrBadRequest)
	}

	return visitorID, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
