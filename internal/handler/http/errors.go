// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMissingRequestID is returned when a script category request has no
	// X-Request-ID header.
	ErrMissingRequestID = errors.New("missing request id")

	// ErrMissingCode is returned by the OAuth callback without a code.
	ErrMissingCode = errors.New("no code provided")
)
