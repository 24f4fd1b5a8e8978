package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var acme = models.SiteCredential{SiteID: "site-1", SiteName: "acme", AccessToken: "tok-acme"}

func newTestDirectory(t *testing.T) (*siteDirectory, *MemoryKV) {
	t.Helper()
	kv := NewMemoryKV(logger.Nop())
	dir := NewSiteDirectory(kv, ScanLimits{PageSize: 2, MaxPages: 10}, time.Hour, logger.Nop()).(*siteDirectory)
	return dir, kv
}

// putLegacySite writes a site record without any index.
func putLegacySite(t *testing.T, kv KeyValueStore, id, name, token string) {
	t.Helper()
	raw := fmt.Sprintf(`{"accessToken":%q,"siteName":%q}`, token, name)
	require.NoError(t, kv.Put(context.Background(), SiteKey(id), []byte(raw), 0))
}

func TestSiteDirectory_RegisterAndResolve(t *testing.T) {
	dir, kv := newTestDirectory(t)
	ctx := context.Background()

	require.NoError(t, dir.Register(ctx, acme, 0))

	stored, err := kv.Get(ctx, SiteKey("site-1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"accessToken":"tok-acme","siteName":"acme"}`, string(stored))

	got, err := dir.Resolve(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, acme, got)

	got, err = dir.ResolveByID(ctx, "site-1")
	require.NoError(t, err)
	assert.Equal(t, acme, got)

	got, err = dir.ResolveByAccessToken(ctx, "tok-acme", "")
	require.NoError(t, err)
	assert.Equal(t, acme, got)
}

func TestSiteDirectory_Register_Invalid(t *testing.T) {
	dir, _ := newTestDirectory(t)

	err := dir.Register(context.Background(), models.SiteCredential{SiteID: "x", SiteName: "x"}, 0)
	assert.ErrorIs(t, err, ErrInvalidSiteCredential)
}

func TestSiteDirectory_Resolve_NotFound(t *testing.T) {
	dir, _ := newTestDirectory(t)
	ctx := context.Background()

	_, err := dir.Resolve(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = dir.Resolve(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = dir.ResolveByAccessToken(ctx, "nope", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSiteDirectory_Resolve_ScanFallbackSkipsBadEntries(t *testing.T) {
	dir, kv := newTestDirectory(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, SiteKey("a-broken"), []byte("{not json"), 0))
	require.NoError(t, kv.Put(ctx, SiteKey("b-empty"), []byte(`{}`), 0))
	putLegacySite(t, kv, "c-other", "other", "tok-other")
	putLegacySite(t, kv, "d-acme", "acme", "tok-acme")

	got, err := dir.Resolve(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "d-acme", got.SiteID)

	got, err = dir.ResolveByAccessToken(ctx, "tok-other", "")
	require.NoError(t, err)
	assert.Equal(t, "c-other", got.SiteID)
}

func TestSiteDirectory_Resolve_StaleIndex(t *testing.T) {
	dir, kv := newTestDirectory(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, SiteNameIndexKey("acme"), []byte("gone"), 0))
	putLegacySite(t, kv, "site-9", "acme", "tok")

	got, err := dir.Resolve(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "site-9", got.SiteID)
}

func TestSiteDirectory_Resolve_ScanIsBounded(t *testing.T) {
	kv := NewMemoryKV(logger.Nop())
	dir := NewSiteDirectory(kv, ScanLimits{PageSize: 1, MaxPages: 2}, 0, logger.Nop())

	putLegacySite(t, kv, "1", "one", "t1")
	putLegacySite(t, kv, "2", "two", "t2")
	putLegacySite(t, kv, "3", "three", "t3")

	_, err := dir.Resolve(context.Background(), "three")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSiteDirectory_ResolveByAccessToken_WrongToken(t *testing.T) {
	dir, _ := newTestDirectory(t)
	ctx := context.Background()
	require.NoError(t, dir.Register(ctx, acme, 0))

	_, err := dir.ResolveByAccessToken(ctx, "tok-acm", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSiteDirectory_ResolveByAccessToken_SharedToken(t *testing.T) {
	dir, kv := newTestDirectory(t)
	ctx := context.Background()

	shop := models.SiteCredential{SiteID: "site-2", SiteName: "shop", AccessToken: "tok-acme"}
	other := models.SiteCredential{SiteID: "site-3", SiteName: "other", AccessToken: "tok-other"}
	require.NoError(t, dir.Register(ctx, acme, 0))
	require.NoError(t, dir.Register(ctx, shop, 0))
	require.NoError(t, dir.Register(ctx, other, 0))
	require.NoError(t, dir.Register(ctx, acme, 0))

	ids, err := kv.Get(ctx, SiteTokenIndexKey("tok-acme"))
	require.NoError(t, err)
	assert.Equal(t, "site-1\nsite-2", string(ids))

	tests := []struct {
		name    string
		siteID  string
		want    models.SiteCredential
		wantErr error
	}{
		{name: "first site by default", siteID: "", want: acme},
		{name: "first site by id", siteID: "site-1", want: acme},
		{name: "second site by id", siteID: "site-2", want: shop},
		{name: "site of another token", siteID: "site-3", wantErr: ErrNotFound},
		{name: "unknown site", siteID: "site-9", wantErr: ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dir.ResolveByAccessToken(ctx, "tok-acme", tt.siteID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSiteDirectory_ResolveByAccessToken_SharedTokenWithoutIndex(t *testing.T) {
	dir, kv := newTestDirectory(t)
	ctx := context.Background()

	putLegacySite(t, kv, "1", "one", "shared")
	putLegacySite(t, kv, "2", "two", "shared")

	got, err := dir.ResolveByAccessToken(ctx, "shared", "2")
	require.NoError(t, err)
	assert.Equal(t, "two", got.SiteName)

	n, err := dir.BackfillIndexes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	ids, err := kv.Get(ctx, SiteTokenIndexKey("shared"))
	require.NoError(t, err)
	assert.Equal(t, "1\n2", string(ids))
}

func TestSiteDirectory_BackfillIndexes(t *testing.T) {
	dir, kv := newTestDirectory(t)
	ctx := context.Background()

	putLegacySite(t, kv, "1", "one", "t1")
	putLegacySite(t, kv, "2", "two", "t2")
	require.NoError(t, kv.Put(ctx, SiteKey("3"), []byte("garbage"), 0))
	require.NoError(t, dir.Register(ctx, acme, 0))

	n, err := dir.BackfillIndexes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	id, err := kv.Get(ctx, SiteNameIndexKey("two"))
	require.NoError(t, err)
	assert.Equal(t, "2", string(id))

	id, err = kv.Get(ctx, SiteTokenIndexKey("t1"))
	require.NoError(t, err)
	assert.Equal(t, "1", string(id))

	n, err = dir.BackfillIndexes(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

type failingKV struct {
	KeyValueStore
	err error
}

func (f failingKV) Get(context.Context, string) ([]byte, error) { return nil, f.err }

func (f failingKV) List(context.Context, ListOptions) (ListPage, error) {
	return ListPage{}, f.err
}

func TestSiteDirectory_StoreFailure(t *testing.T) {
	kv := failingKV{err: fmt.Errorf("%w: boom", ErrStoreUnavailable)}
	dir := NewSiteDirectory(kv, DefaultScanLimits, 0, logger.Nop())

	_, err := dir.Resolve(context.Background(), "acme")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.False(t, errors.Is(err, ErrNotFound))
}
