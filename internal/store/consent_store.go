package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/models"
)

type consentStore struct {
	kv     KeyValueStore
	limits ScanLimits
	logger *logger.Logger
}

// NewConsentStore creates a [ConsentStore] on top of kv. ListConsents reads
// at most limits.PageSize*limits.MaxPages records per call.
func NewConsentStore(kv KeyValueStore, limits ScanLimits, logger *logger.Logger) ConsentStore {
	logger.Debug().Msg("creating consent store")
	return &consentStore{
		kv:     kv,
		limits: limits.normalized(),
		logger: logger,
	}
}

func (c *consentStore) PutConsent(ctx context.Context, key string, record models.ConsentRecord, ttl time.Duration) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	if err = c.kv.Put(ctx, key, raw, ttl); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*consentStore.PutConsent").Msg("error saving consent")
		return asUnavailable(err)
	}

	return nil
}

func (c *consentStore) GetConsent(ctx context.Context, key string) (models.ConsentRecord, error) {
	raw, err := c.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return models.ConsentRecord{}, ErrNotFound
	}
	if err != nil {
		return models.ConsentRecord{}, asUnavailable(err)
	}

	var record models.ConsentRecord
	if err = json.Unmarshal(raw, &record); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*consentStore.GetConsent").Str("key", key).Msg("malformed consent record")
		return models.ConsentRecord{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	record.Cookies = record.Cookies.Normalized()

	return record, nil
}

// ListConsents returns the consent records of one site. Entries that cannot
// be read or decoded, or that belong to another site, are skipped.
func (c *consentStore) ListConsents(ctx context.Context, siteID string) ([]models.ConsentRecord, error) {
	log := logger.FromContext(ctx)
	records := make([]models.ConsentRecord, 0)

	complete, err := scan(ctx, c.kv, ConsentKeyPrefix(siteID), c.limits, func(key string) bool {
		record, getErr := c.GetConsent(ctx, key)
		if getErr != nil {
			if !errors.Is(getErr, ErrNotFound) {
				log.Warn().Err(getErr).Str("key", key).Msg("skipping consent entry")
			}
			return true
		}
		if record.SiteID != siteID {
			log.Warn().Str("key", key).Str("site_id", record.SiteID).Msg("skipping consent entry of another site")
			return true
		}
		records = append(records, record)
		return true
	})
	if err != nil {
		log.Err(err).Str("func", "*consentStore.ListConsents").Str("site_id", siteID).Msg("consent scan failed")
		return nil, asUnavailable(err)
	}
	if !complete {
		log.Warn().Str("site_id", siteID).Int("returned", len(records)).Msg("consent scan truncated at page cap")
	}

	return records, nil
}

func (c *consentStore) PutScriptCategories(ctx context.Context, siteID string, entries []models.ScriptCategoryEntry, ttl time.Duration) error {
	if entries == nil {
		entries = []models.ScriptCategoryEntry{}
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	if err = c.kv.Put(ctx, ScriptCategoriesKey(siteID), raw, ttl); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*consentStore.PutScriptCategories").Msg("error saving script categories")
		return asUnavailable(err)
	}

	return nil
}

func (c *consentStore) GetScriptCategories(ctx context.Context, siteID string) ([]models.ScriptCategoryEntry, error) {
	raw, err := c.kv.Get(ctx, ScriptCategoriesKey(siteID))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, asUnavailable(err)
	}

	var entries []models.ScriptCategoryEntry
	if err = json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	return entries, nil
}
