package service

import "errors"

var (
	ErrBadRequest             = errors.New("bad request")
	ErrInvalidBannerType      = errors.New("invalid banner type")
	ErrInvalidPreferenceValue = errors.New("preference value is not a boolean")

	ErrInvalidVisitorToken      = errors.New("invalid visitor token")
	ErrVisitorTokenExpired      = errors.New("visitor token is expired")
	ErrVisitorTokenSiteMismatch = errors.New("visitor token issued for another site")
	ErrVisitorMismatch          = errors.New("visitor id does not match token")
	ErrInvalidAccessToken       = errors.New("invalid site access token")

	ErrSiteNotFound      = errors.New("site not found")
	ErrNoSitesAuthorized = errors.New("no sites authorized")
)

var ErrVersionIsNotSpecified = errors.New("application version is not specified")
