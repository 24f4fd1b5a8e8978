package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/crypto"
	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/store"
	"github.com/MKhiriev/consent-keeper/models"
)

type scriptCategoryService struct {
	cipher       crypto.PayloadCipher
	consentStore store.ConsentStore
	ttl          time.Duration

	logger *logger.Logger
}

func NewScriptCategoryService(cipher crypto.PayloadCipher, consentStore store.ConsentStore, ttl time.Duration, logger *logger.Logger) ScriptCategoryService {
	return &scriptCategoryService{
		cipher:       cipher,
		consentStore: consentStore,
		ttl:          ttl,
		logger:       logger,
	}
}

// Save replaces the script categories of siteID with the decrypted content
// of scripts and returns the number of entries stored.
func (s *scriptCategoryService) Save(ctx context.Context, siteID string, scripts models.Envelope) (int, error) {
	if siteID == "" {
		return 0, fmt.Errorf("%w: site id is required", ErrBadRequest)
	}
	if scripts.IsEmpty() {
		return 0, fmt.Errorf("%w: scripts envelope is required", ErrBadRequest)
	}

	var entries []models.ScriptCategoryEntry
	if err := s.cipher.OpenEnvelope(scripts, &entries); err != nil {
		return 0, fmt.Errorf("scripts: %w", err)
	}

	if err := s.consentStore.PutScriptCategories(ctx, siteID, entries, s.ttl); err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().Str("site_id", siteID).Int("count", len(entries)).Msg("script categories saved")
	return len(entries), nil
}

// List returns the script categories of siteID without inline content. A
// site without saved categories has an empty list.
func (s *scriptCategoryService) List(ctx context.Context, siteID string) ([]models.ScriptCategoryEntry, error) {
	entries, err := s.consentStore.GetScriptCategories(ctx, siteID)
	if errors.Is(err, store.ErrNotFound) {
		return []models.ScriptCategoryEntry{}, nil
	}
	if err != nil {
		return nil, err
	}

	sanitized := make([]models.ScriptCategoryEntry, 0, len(entries))
	for _, e := range entries {
		sanitized = append(sanitized, e.Sanitized())
	}
	return sanitized, nil
}
