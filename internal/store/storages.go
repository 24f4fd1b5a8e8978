package store

import (
	"context"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/config"
	"github.com/MKhiriev/consent-keeper/internal/logger"
)

// Storages groups every storage component built on one key-value backend.
type Storages struct {
	KV            KeyValueStore
	SiteDirectory SiteDirectory
	ConsentStore  ConsentStore

	close func() error
}

// NewStorages opens the configured backend and builds the stores on it.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	kv, closeFn, err := NewKeyValueStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, err
	}

	return newStorages(kv, ScanLimits{PageSize: cfg.App.ScanPageSize, MaxPages: cfg.App.ScanMaxPages}, cfg.App.SiteTTL, closeFn, log), nil
}

// NewStoragesWithKV builds the stores on an already opened backend.
func NewStoragesWithKV(kv KeyValueStore, limits ScanLimits, siteTTL time.Duration, log *logger.Logger) *Storages {
	return newStorages(kv, limits, siteTTL, nil, log)
}

func newStorages(kv KeyValueStore, limits ScanLimits, siteTTL time.Duration, closeFn func() error, log *logger.Logger) *Storages {
	return &Storages{
		KV:            kv,
		SiteDirectory: NewSiteDirectory(kv, limits, siteTTL, log),
		ConsentStore:  NewConsentStore(kv, limits, log),
		close:         closeFn,
	}
}

// Close releases the backend.
func (s *Storages) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
