package store

import "errors"

// Sentinel errors returned by stores. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrNotFound is returned when a key, site or record does not exist or
	// has expired.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable wraps every backend failure (network, driver,
	// object storage). The current request cannot be completed.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrInvalidSiteCredential is returned when registering a site with an
	// empty id, name or access token.
	ErrInvalidSiteCredential = errors.New("invalid site credential")

	// ErrMalformedRecord is returned when a stored value cannot be decoded.
	ErrMalformedRecord = errors.New("malformed stored record")

	// ErrUnknownBackend is returned by the backend factory.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level SQL errors, wrapped together with [ErrStoreUnavailable].
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when reading a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
