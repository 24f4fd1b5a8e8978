package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidStorageConfigs indicates an unknown backend or missing backend
	// settings (for example, an empty DSN for postgres).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates non-positive TTLs or scan limits.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates partial OAuth client settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates non-positive worker intervals.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidFlags is returned when the command line cannot be parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
)
