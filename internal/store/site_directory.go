// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/models"
)

// siteDirectory implements [SiteDirectory] on top of a [KeyValueStore].
//
// Lookups go through the secondary indexes first. A missing or stale index
// falls back to a bounded scan of the site: prefix, which keeps records
// written before the indexes existed reachable.
type siteDirectory struct {
	kv       KeyValueStore
	limits   ScanLimits
	indexTTL time.Duration
	logger   *logger.Logger
}

// NewSiteDirectory creates a [SiteDirectory]. indexTTL is applied to
// indexes written by BackfillIndexes.
func NewSiteDirectory(kv KeyValueStore, limits ScanLimits, indexTTL time.Duration, logger *logger.Logger) SiteDirectory {
	logger.Debug().Msg("creating site directory")
	return &siteDirectory{
		kv:       kv,
		limits:   limits.normalized(),
		indexTTL: indexTTL,
		logger:   logger,
	}
}

func (d *siteDirectory) Resolve(ctx context.Context, siteName string) (models.SiteCredential, error) {
	if siteName == "" {
		return models.SiteCredential{}, ErrNotFound
	}

	siteID, err := d.readIndex(ctx, SiteNameIndexKey(siteName))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return models.SiteCredential{}, err
	}
	if err == nil {
		cred, resolveErr := d.ResolveByID(ctx, siteID)
		switch {
		case resolveErr == nil && cred.SiteName == siteName:
			return cred, nil
		case isStoreFailure(resolveErr):
			return models.SiteCredential{}, resolveErr
		}
		logger.FromContext(ctx).Warn().Str("func", "*siteDirectory.Resolve").
			Str("site_name", siteName).Msg("stale site name index, scanning")
	}

	return d.scanFor(ctx, func(cred models.SiteCredential) bool {
		return cred.SiteName == siteName
	})
}

func (d *siteDirectory) ResolveByID(ctx context.Context, siteID string) (models.SiteCredential, error) {
	if siteID == "" {
		return models.SiteCredential{}, ErrNotFound
	}

	raw, err := d.kv.Get(ctx, SiteKey(siteID))
	if err != nil {
		return models.SiteCredential{}, err
	}

	return decodeSiteCredential(siteID, raw)
}

func (d *siteDirectory) ResolveByAccessToken(ctx context.Context, accessToken, siteID string) (models.SiteCredential, error) {
	if accessToken == "" {
		return models.SiteCredential{}, ErrNotFound
	}

	matches := func(cred models.SiteCredential) bool {
		if siteID != "" && cred.SiteID != siteID {
			return false
		}
		return subtle.ConstantTimeCompare([]byte(cred.AccessToken), []byte(accessToken)) == 1
	}

	siteIDs, err := d.readTokenIndex(ctx, accessToken)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return models.SiteCredential{}, err
	}
	for _, id := range siteIDs {
		if siteID != "" && id != siteID {
			continue
		}
		cred, resolveErr := d.ResolveByID(ctx, id)
		switch {
		case resolveErr == nil && matches(cred):
			return cred, nil
		case isStoreFailure(resolveErr):
			return models.SiteCredential{}, resolveErr
		}
	}

	return d.scanFor(ctx, matches)
}

func (d *siteDirectory) Register(ctx context.Context, cred models.SiteCredential, ttl time.Duration) error {
	if cred.SiteID == "" || cred.SiteName == "" || cred.AccessToken == "" {
		return ErrInvalidSiteCredential
	}

	raw, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	if err = d.kv.Put(ctx, SiteKey(cred.SiteID), raw, ttl); err != nil {
		return err
	}
	if err = d.kv.Put(ctx, SiteNameIndexKey(cred.SiteName), []byte(cred.SiteID), ttl); err != nil {
		return err
	}
	if _, err = d.addToTokenIndex(ctx, cred.AccessToken, cred.SiteID, ttl); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("site_id", cred.SiteID).Str("site_name", cred.SiteName).Msg("site registered")
	return nil
}

func (d *siteDirectory) BackfillIndexes(ctx context.Context) (int, error) {
	written := 0
	var writeErr error

	_, err := scan(ctx, d.kv, siteKeyPrefix, d.limits, func(key string) bool {
		cred, ok := d.readSiteEntry(ctx, key)
		if !ok {
			return true
		}

		nameKey := SiteNameIndexKey(cred.SiteName)
		if _, getErr := d.kv.Get(ctx, nameKey); errors.Is(getErr, ErrNotFound) {
			if writeErr = d.kv.Put(ctx, nameKey, []byte(cred.SiteID), d.indexTTL); writeErr != nil {
				return false
			}
			written++
		}

		var added bool
		if added, writeErr = d.addToTokenIndex(ctx, cred.AccessToken, cred.SiteID, d.indexTTL); writeErr != nil {
			return false
		}
		if added {
			written++
		}
		return true
	})
	if err == nil {
		err = writeErr
	}
	if err != nil {
		d.logger.Err(err).Str("func", "*siteDirectory.BackfillIndexes").Msg("index backfill aborted")
		return written, asUnavailable(err)
	}

	return written, nil
}

// scanFor walks site records and returns the first one accepted by match.
// Entries that cannot be read or decoded are skipped.
func (d *siteDirectory) scanFor(ctx context.Context, match func(models.SiteCredential) bool) (models.SiteCredential, error) {
	var found *models.SiteCredential

	_, err := scan(ctx, d.kv, siteKeyPrefix, d.limits, func(key string) bool {
		cred, ok := d.readSiteEntry(ctx, key)
		if ok && match(cred) {
			found = &cred
			return false
		}
		return true
	})
	if found != nil {
		return *found, nil
	}
	if err != nil {
		return models.SiteCredential{}, asUnavailable(err)
	}

	return models.SiteCredential{}, ErrNotFound
}

func (d *siteDirectory) readSiteEntry(ctx context.Context, key string) (models.SiteCredential, bool) {
	siteID := strings.TrimPrefix(key, siteKeyPrefix)
	raw, err := d.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("skipping unreadable site entry")
		}
		return models.SiteCredential{}, false
	}

	cred, err := decodeSiteCredential(siteID, raw)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("skipping malformed site entry")
		return models.SiteCredential{}, false
	}
	return cred, true
}

func (d *siteDirectory) readIndex(ctx context.Context, key string) (string, error) {
	raw, err := d.kv.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", ErrNotFound
	}
	return string(raw), nil
}

// readTokenIndex returns the ids of every site authorized with accessToken.
func (d *siteDirectory) readTokenIndex(ctx context.Context, accessToken string) ([]string, error) {
	raw, err := d.readIndex(ctx, SiteTokenIndexKey(accessToken))
	if err != nil {
		return nil, err
	}
	return strings.Fields(raw), nil
}

// addToTokenIndex adds siteID to the sites of accessToken. One OAuth grant
// usually covers several sites, so the index keeps all of them. It reports
// whether the index changed.
func (d *siteDirectory) addToTokenIndex(ctx context.Context, accessToken, siteID string, ttl time.Duration) (bool, error) {
	siteIDs, err := d.readTokenIndex(ctx, accessToken)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return false, err
	}
	if slices.Contains(siteIDs, siteID) {
		return false, nil
	}

	siteIDs = append(siteIDs, siteID)
	if err = d.kv.Put(ctx, SiteTokenIndexKey(accessToken), []byte(strings.Join(siteIDs, "\n")), ttl); err != nil {
		return false, err
	}
	return true, nil
}

func decodeSiteCredential(siteID string, raw []byte) (models.SiteCredential, error) {
	var cred models.SiteCredential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return models.SiteCredential{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if cred.SiteName == "" || cred.AccessToken == "" {
		return models.SiteCredential{}, ErrMalformedRecord
	}
	cred.SiteID = siteID
	return cred, nil
}

// isStoreFailure reports errors that must abort a lookup. Missing or
// malformed records only make an index stale.
func isStoreFailure(err error) bool {
	return err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrMalformedRecord)
}

func asUnavailable(err error) error {
	if errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
