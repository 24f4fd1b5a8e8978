package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/crypto"
	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/mock"
	"github.com/MKhiriev/consent-keeper/internal/store"
	"github.com/MKhiriev/consent-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestScriptCategoryService_SaveAndList(t *testing.T) {
	kv := store.NewMemoryKV(logger.Nop())
	consentStore := store.NewConsentStore(kv, store.DefaultScanLimits, logger.Nop())
	svc := NewScriptCategoryService(crypto.NewPayloadCipher(), consentStore, 30*24*time.Hour, logger.Nop())
	ctx := context.Background()

	entries := []models.ScriptCategoryEntry{
		{Src: strPtr("https://cdn.example.com/ga.js"), Content: strPtr("ignored"), SelectedCategories: []string{"analytics"}},
		{Content: strPtr("console.log('inline')"), SelectedCategories: []string{"marketing", "personalization"}},
	}

	count, err := svc.Save(ctx, "site-1", seal(t, entries))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := svc.List(ctx, "site-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Nil(t, e.Content, "inline content must never be handed out")
	}
	assert.Equal(t, "https://cdn.example.com/ga.js", *got[0].Src)
	assert.Equal(t, []string{"marketing", "personalization"}, got[1].SelectedCategories)

	other, err := svc.List(ctx, "site-2")
	require.NoError(t, err)
	assert.Empty(t, other)
	assert.NotNil(t, other)
}

func TestScriptCategoryService_Save_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consentStore := mock.NewMockConsentStore(ctrl)
	svc := NewScriptCategoryService(crypto.NewPayloadCipher(), consentStore, time.Hour, logger.Nop())
	ctx := context.Background()

	_, err := svc.Save(ctx, "", seal(t, []models.ScriptCategoryEntry{}))
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.Save(ctx, "site-1", models.Envelope{})
	assert.ErrorIs(t, err, ErrBadRequest)

	broken := seal(t, []models.ScriptCategoryEntry{})
	broken.Key[0] ^= 0xff
	_, err = svc.Save(ctx, "site-1", broken)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)

	consentStore.EXPECT().PutScriptCategories(gomock.Any(), "site-1", gomock.Any(), time.Hour).Return(store.ErrStoreUnavailable)
	_, err = svc.Save(ctx, "site-1", seal(t, []models.ScriptCategoryEntry{}))
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

func TestScriptCategoryService_List_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consentStore := mock.NewMockConsentStore(ctrl)
	consentStore.EXPECT().GetScriptCategories(gomock.Any(), "site-1").Return(nil, store.ErrStoreUnavailable)
	svc := NewScriptCategoryService(crypto.NewPayloadCipher(), consentStore, time.Hour, logger.Nop())

	_, err := svc.List(context.Background(), "site-1")
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}
