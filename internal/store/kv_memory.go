package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/logger"
)

// MemoryKV is an in-process [KeyValueStore] with per-key expiry. It backs
// local runs and tests.
type MemoryKV struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
	logger  *logger.Logger
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV(logger *logger.Logger) *MemoryKV {
	logger.Debug().Msg("creating in-memory key-value store")
	return &MemoryKV{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
		logger:  logger,
	}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok || e.expired(m.now()) {
		return nil, ErrNotFound
	}

	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

func (m *MemoryKV) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := memoryEntry{value: make([]byte, len(value))}
	copy(e.value, value)
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()

	return nil
}

func (m *MemoryKV) List(_ context.Context, opts ListOptions) (ListPage, error) {
	now := m.now()

	m.mu.RLock()
	keys := make([]string, 0, len(m.entries))
	for k, e := range m.entries {
		if !strings.HasPrefix(k, opts.Prefix) || e.expired(now) {
			continue
		}
		if opts.Cursor != "" && k <= opts.Cursor {
			continue
		}
		keys = append(keys, k)
	}
	m.mu.RUnlock()

	sort.Strings(keys)

	limit := opts.limit()
	if len(keys) <= limit {
		return ListPage{Keys: keys, Complete: true}, nil
	}

	page := keys[:limit]
	return ListPage{Keys: page, Cursor: page[len(page)-1]}, nil
}

// PurgeExpired drops expired entries and reports how many were removed.
func (m *MemoryKV) PurgeExpired(_ context.Context) (int64, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	var purged int64
	for k, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, k)
			purged++
		}
	}
	return purged, nil
}
