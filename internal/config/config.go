package config

import (
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	APIBaseURL         string
	SessionSecret      string
	SessionTTL         time.Duration
	SecureCookie       bool
	DatabaseURI        string
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	PageSize           int
	LegacyStatusGET    bool
	AuditRetention     time.Duration
	AuditPruneInterval time.Duration
	LogLevel           string
	MetricsEnabled     bool
}

const (
	defaultRunAddress         = ":3000"
	defaultSessionTTL         = 8 * time.Hour
	defaultRequestTimeout     = 15 * time.Second
	defaultShutdownTimeout    = 10 * time.Second
	defaultPageSize           = 10
	defaultAuditRetention     = 720 * time.Hour
	defaultAuditPruneInterval = time.Hour
	defaultLogLevel           = "info"
)

// Load parses configuration from an optional .env file, environment variables and flags.
func Load() (*Config, error) {
	// A missing .env is the normal production case.
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		APIBaseURL:         getString(lookup, "API_BASE_URL", ""),
		SessionSecret:      getString(lookup, "SESSION_SECRET", ""),
		SessionTTL:         getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		SecureCookie:       getBool(lookup, "SECURE_COOKIE", false),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		RequestTimeout:     getDuration(lookup, "REQUEST_TIMEOUT", defaultRequestTimeout),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		PageSize:           getInt(lookup, "PAGE_SIZE", defaultPageSize),
		LegacyStatusGET:    getBool(lookup, "LEGACY_STATUS_GET", false),
		AuditRetention:     getDuration(lookup, "AUDIT_RETENTION", defaultAuditRetention),
		AuditPruneInterval: getDuration(lookup, "AUDIT_PRUNE_INTERVAL", defaultAuditPruneInterval),
		LogLevel:           getString(lookup, "LOG_LEVEL", defaultLogLevel),
		MetricsEnabled:     getBool(lookup, "METRICS_ENABLED", false),
	}

	fs := flag.NewFlagSet("backoffice", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		requestTimeoutStr  = cfg.RequestTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "Backend REST API base URL")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session cookies")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for the audit trail")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Session cookie lifetime")
	fs.StringVar(&requestTimeoutStr, "request-timeout", requestTimeoutStr, "Timeout for backend requests")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "Rows per list page")
	fs.BoolVar(&cfg.SecureCookie, "secure-cookie", cfg.SecureCookie, "Mark session cookies Secure")
	fs.BoolVar(&cfg.LegacyStatusGET, "legacy-status-get", cfg.LegacyStatusGET, "Toggle company status with GET and a body")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "Expose Prometheus metrics on /metrics")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.RequestTimeout, err = time.ParseDuration(requestTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = strings.TrimSpace(string(content))
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}

	if cfg.AuditRetention <= 0 {
		cfg.AuditRetention = defaultAuditRetention
	}

	if cfg.AuditPruneInterval <= 0 {
		cfg.AuditPruneInterval = defaultAuditPruneInterval
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("api base url must be provided")
	}

	if parsed, err := url.Parse(cfg.APIBaseURL); err != nil || !parsed.IsAbs() {
		return nil, fmt.Errorf("api base url must be absolute")
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("session secret must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
