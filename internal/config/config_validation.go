// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] is usable at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendMemory:
	case BackendPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: postgres backend requires a DSN", ErrInvalidStorageConfigs)
		}
	case BackendS3:
		if cfg.Storage.S3.Bucket == "" || cfg.Storage.S3.Region == "" {
			return fmt.Errorf("%w: s3 backend requires bucket and region", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	app := cfg.App
	if app.TokenTTL <= 0 || app.ConsentTTL <= 0 || app.ScriptCategoryTTL <= 0 || app.SiteTTL <= 0 {
		return fmt.Errorf("%w: TTLs must be positive", ErrInvalidAppConfigs)
	}
	if app.ScanPageSize <= 0 || app.ScanMaxPages <= 0 {
		return fmt.Errorf("%w: scan limits must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.ClientID != "" && (cfg.Adapter.ClientSecret == "" || cfg.Adapter.BaseURL == "") {
		return fmt.Errorf("%w: client id set without secret or base url", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.SweepInterval <= 0 || cfg.Workers.IndexBackfillInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
