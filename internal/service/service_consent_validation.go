package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/consent-keeper/internal/validators"
	"github.com/MKhiriev/consent-keeper/models"
)

// ConsentServiceWrapper decorates a ConsentService.
type ConsentServiceWrapper interface {
	Wrap(ConsentService) ConsentService
}

// ConsentValidationService checks consent requests before they reach the
// wrapped [ConsentService], so nothing is decrypted or written for a
// malformed request.
type ConsentValidationService struct {
	inner     ConsentService
	validator validators.Validator
}

func NewConsentValidationService(validator validators.Validator) ConsentServiceWrapper {
	return &ConsentValidationService{
		validator: validator,
	}
}

func (v *ConsentValidationService) Submit(ctx context.Context, identity models.VisitorIdentity, req models.ConsentRequest, meta models.RequestMeta) (models.ConsentRecord, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ConsentRecord{}, fmt.Errorf("error during consent validation before saving: %w", err)
	}
	if identity.VisitorID == "" || identity.SiteID == "" {
		return models.ConsentRecord{}, ErrInvalidVisitorToken
	}

	return v.inner.Submit(ctx, identity, req, meta)
}

func (v *ConsentValidationService) Get(ctx context.Context, identity models.VisitorIdentity) (models.ConsentRecord, error) {
	if identity.VisitorID == "" || identity.SiteID == "" {
		return models.ConsentRecord{}, ErrInvalidVisitorToken
	}
	return v.inner.Get(ctx, identity)
}

func (v *ConsentValidationService) ListForSite(ctx context.Context, siteID string) ([]models.ConsentRecord, error) {
	return v.inner.ListForSite(ctx, siteID)
}

func (v *ConsentValidationService) Wrap(wrapped ConsentService) ConsentService {
	v.inner = wrapped
	return v
}
