package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/consent-keeper/models"
)

// KeyValueStore is the storage contract every component builds on.
// Implementations must be safe for concurrent use; a later Put on the same
// key overwrites the earlier value.
type KeyValueStore interface {
	// Get returns the value of key, or [ErrNotFound] when the key is absent
	// or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key. A non-positive ttl means no expiry.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// List returns one page of keys in lexical order.
	List(ctx context.Context, opts ListOptions) (ListPage, error)
}

// Purger is implemented by backends that need expired entries removed
// explicitly.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// SiteDirectory resolves sites to their stored credentials.
type SiteDirectory interface {
	// Resolve finds a site by its canonical short name.
	Resolve(ctx context.Context, siteName string) (models.SiteCredential, error)

	// ResolveByID finds a site by its identifier.
	ResolveByID(ctx context.Context, siteID string) (models.SiteCredential, error)

	// ResolveByAccessToken finds a site authorized with accessToken. One
	// token may cover several sites: a non-empty siteID selects one of them,
	// an empty siteID returns the first.
	ResolveByAccessToken(ctx context.Context, accessToken, siteID string) (models.SiteCredential, error)

	// Register stores a site record and its secondary indexes.
	Register(ctx context.Context, cred models.SiteCredential, ttl time.Duration) error

	// BackfillIndexes writes secondary indexes missing for stored records
	// and returns how many were written.
	BackfillIndexes(ctx context.Context) (int, error)
}

// ConsentStore persists consent records and script categories.
type ConsentStore interface {
	PutConsent(ctx context.Context, key string, record models.ConsentRecord, ttl time.Duration) error
	GetConsent(ctx context.Context, key string) (models.ConsentRecord, error)
	ListConsents(ctx context.Context, siteID string) ([]models.ConsentRecord, error)

	PutScriptCategories(ctx context.Context, siteID string, entries []models.ScriptCategoryEntry, ttl time.Duration) error
	GetScriptCategories(ctx context.Context, siteID string) ([]models.ScriptCategoryEntry, error)
}

// ErrorClassificator decides whether a failed backend call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
