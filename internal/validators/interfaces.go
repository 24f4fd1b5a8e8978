// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request DTOs before they reach the services.
//
// Rules are declared as go-playground/validator struct tags on the models.
// Custom tags registered here:
//   - banner_type: the value is a supported consent regime.
//
// Every failure wraps [ErrValidation] so callers can map it to a single
// client error.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates arbitrary input values.
type Validator interface {
	// Validate checks v. When fields are given, only those struct fields
	// (by Go name) are checked.
	Validate(ctx context.Context, v any, fields ...string) error
}
