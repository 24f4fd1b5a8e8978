package adapter

import "errors"

var (
	// ErrUpstream wraps every failure of the CMS platform API.
	ErrUpstream = errors.New("cms platform request failed")

	ErrUnauthorized      = errors.New("cms platform rejected credentials")
	ErrEmptyAccessToken  = errors.New("cms platform returned no access token")
	ErrInvalidAdapterURL = errors.New("invalid cms platform url")
)
