package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		LogLevel          string   `json:"log_level"`
		Version           string   `json:"version"`
		TokenTTL          Duration `json:"token_ttl"`
		ConsentTTL        Duration `json:"consent_ttl"`
		ScriptCategoryTTL Duration `json:"script_category_ttl"`
		SiteTTL           Duration `json:"site_ttl"`
		ScanPageSize      int      `json:"scan_page_size"`
		ScanMaxPages      int      `json:"scan_max_pages"`
		AllowedOrigins    []string `json:"allowed_origins"`
	} `json:"app"`

	Storage struct {
		Backend string `json:"backend"`
		DB      struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		S3 struct {
			Bucket    string `json:"bucket"`
			Region    string `json:"region"`
			Endpoint  string `json:"endpoint"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Prefix    string `json:"prefix"`
		} `json:"s3"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		ClientID       string   `json:"client_id"`
		ClientSecret   string   `json:"client_secret"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Workers struct {
		SweepInterval         Duration `json:"sweep_interval"`
		IndexBackfillInterval Duration `json:"index_backfill_interval"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var c StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&c); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:          c.App.LogLevel,
			Version:           c.App.Version,
			TokenTTL:          time.Duration(c.App.TokenTTL),
			ConsentTTL:        time.Duration(c.App.ConsentTTL),
			ScriptCategoryTTL: time.Duration(c.App.ScriptCategoryTTL),
			SiteTTL:           time.Duration(c.App.SiteTTL),
			ScanPageSize:      c.App.ScanPageSize,
			ScanMaxPages:      c.App.ScanMaxPages,
			AllowedOrigins:    c.App.AllowedOrigins,
		},
		Storage: Storage{
			Backend: c.Storage.Backend,
			DB:      DB{DSN: c.Storage.DB.DSN},
			S3: S3{
				Bucket:    c.Storage.S3.Bucket,
				Region:    c.Storage.S3.Region,
				Endpoint:  c.Storage.S3.Endpoint,
				AccessKey: c.Storage.S3.AccessKey,
				SecretKey: c.Storage.S3.SecretKey,
				Prefix:    c.Storage.S3.Prefix,
			},
		},
		Server: Server{
			HTTPAddress:    c.Server.HTTPAddress,
			RequestTimeout: time.Duration(c.Server.RequestTimeout),
		},
		Adapter: Adapter{
			BaseURL:        c.Adapter.BaseURL,
			ClientID:       c.Adapter.ClientID,
			ClientSecret:   c.Adapter.ClientSecret,
			RequestTimeout: time.Duration(c.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SweepInterval:         time.Duration(c.Workers.SweepInterval),
			IndexBackfillInterval: time.Duration(c.Workers.IndexBackfillInterval),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
