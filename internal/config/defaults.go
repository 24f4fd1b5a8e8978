package config

import "time"

// Storage backends accepted by Storage.Backend.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
)

const (
	defaultLogLevel          = "info"
	defaultTokenTTL          = 24 * time.Hour
	defaultConsentTTL        = 365 * 24 * time.Hour
	defaultScriptCategoryTTL = 30 * 24 * time.Hour
	defaultSiteTTL           = 24 * time.Hour
	defaultScanPageSize      = 100
	defaultScanMaxPages      = 10

	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second

	defaultAdapterBaseURL = "https://api.webflow.com"
	defaultAdapterTimeout = 10 * time.Second

	defaultSweepInterval         = time.Minute
	defaultIndexBackfillInterval = 10 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:          defaultLogLevel,
			TokenTTL:          defaultTokenTTL,
			ConsentTTL:        defaultConsentTTL,
			ScriptCategoryTTL: defaultScriptCategoryTTL,
			SiteTTL:           defaultSiteTTL,
			ScanPageSize:      defaultScanPageSize,
			ScanMaxPages:      defaultScanMaxPages,
		},
		Storage: Storage{
			Backend: BackendMemory,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			BaseURL:        defaultAdapterBaseURL,
			RequestTimeout: defaultAdapterTimeout,
		},
		Workers: Workers{
			SweepInterval:         defaultSweepInterval,
			IndexBackfillInterval: defaultIndexBackfillInterval,
		},
	}
}
