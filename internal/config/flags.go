package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// newFlagSet returns the flag set parsed by the builder. Unknown flags are
// reported as errors instead of terminating the process.
func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a               server address in format [host]:[port]
//	-c / -config     JSON config file path
//	-log-level       zerolog level name
//	-backend         storage backend: memory, postgres or s3
//	-d               PostgreSQL DSN
//	-s3-bucket       S3 bucket name
//	-s3-region       S3 region
//	-s3-endpoint     S3-compatible endpoint URL
//	-token-ttl       visitor token lifetime (e.g. "24h")
//	-consent-ttl     consent record retention
//	-request-timeout request timeout (e.g. "30s")
//	-origins         comma separated CORS origins
//	-cms-url         CMS API base URL
//	-cms-client-id   CMS OAuth client id
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		serverAddress  NetAddress
		jsonConfigPath string
		logLevel       string
		backend        string
		databaseDSN    string
		s3Bucket       string
		s3Region       string
		s3Endpoint     string
		tokenTTL       time.Duration
		consentTTL     time.Duration
		requestTimeout time.Duration
		origins        string
		cmsURL         string
		cmsClientID    string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&backend, "backend", "", "Storage backend: memory, postgres or s3")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&s3Bucket, "s3-bucket", "", "S3 bucket")
	fs.StringVar(&s3Region, "s3-region", "", "S3 region")
	fs.StringVar(&s3Endpoint, "s3-endpoint", "", "S3 endpoint URL")
	fs.DurationVar(&tokenTTL, "token-ttl", 0, "Visitor token lifetime (e.g., 24h)")
	fs.DurationVar(&consentTTL, "consent-ttl", 0, "Consent record retention (e.g., 8760h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&origins, "origins", "", "Comma separated CORS origins")
	fs.StringVar(&cmsURL, "cms-url", "", "CMS API base URL")
	fs.StringVar(&cmsClientID, "cms-client-id", "", "CMS OAuth client id")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:       logLevel,
			TokenTTL:       tokenTTL,
			ConsentTTL:     consentTTL,
			AllowedOrigins: splitList(origins),
		},
		Storage: Storage{
			Backend: backend,
			DB:      DB{DSN: databaseDSN},
			S3: S3{
				Bucket:   s3Bucket,
				Region:   s3Region,
				Endpoint: s3Endpoint,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BaseURL:  cmsURL,
			ClientID: cmsClientID,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port and populates the NetAddress. The host must be
// "localhost", empty, or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
