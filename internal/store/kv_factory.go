package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/consent-keeper/internal/config"
	"github.com/MKhiriev/consent-keeper/internal/logger"
)

// NewKeyValueStore opens the backend selected by cfg.Backend. The returned
// close function releases backend resources and is never nil.
func NewKeyValueStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory, "":
		return NewMemoryKV(log), noop, nil

	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, noop, err
		}
		return NewPostgresKV(db, log), db.Close, nil

	case config.BackendS3:
		kv, err := NewS3KV(ctx, cfg.S3, log)
		if err != nil {
			return nil, noop, err
		}
		return kv, noop, nil
	}

	return nil, noop, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
