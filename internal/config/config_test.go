package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func envFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func requiredEnv() map[string]string {
	return map[string]string{
		"API_BASE_URL":   "https://api.nedcgroup.local",
		"SESSION_SECRET": "s3cret",
	}
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	_, err := load(nil, func(string) (string, bool) { return "", false })
	if err == nil {
		t.Fatalf("expected error due to missing required envs, got nil")
	}

	cfg, err := load(nil, envFrom(requiredEnv()))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("expected default run address %q, got %q", defaultRunAddress, cfg.RunAddress)
	}
	if cfg.SessionTTL != defaultSessionTTL {
		t.Errorf("expected default session ttl %v, got %v", defaultSessionTTL, cfg.SessionTTL)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Errorf("expected default request timeout %v, got %v", defaultRequestTimeout, cfg.RequestTimeout)
	}
	if cfg.PageSize != defaultPageSize {
		t.Errorf("expected default page size %d, got %d", defaultPageSize, cfg.PageSize)
	}
	if cfg.LegacyStatusGET {
		t.Errorf("expected legacy status GET to be off by default")
	}
	if cfg.MetricsEnabled {
		t.Errorf("expected metrics to be off by default")
	}
	if cfg.DatabaseURI != "" {
		t.Errorf("expected audit database to be optional, got %q", cfg.DatabaseURI)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Errorf("expected default log level %q, got %q", defaultLogLevel, cfg.LogLevel)
	}
}

func TestLoadWithFlagOverrides(t *testing.T) {
	env := requiredEnv()
	env["PAGE_SIZE"] = "25"
	env["SESSION_TTL"] = "1h"

	args := []string{
		"-a", ":9090",
		"-api", "https://override.local",
		"-d", "postgres://override",
		"--session-secret", "flag-secret",
		"--session-ttl", "2h",
		"--request-timeout", "3s",
		"--shutdown-timeout", "20s",
		"--page-size", "50",
		"--secure-cookie",
		"--legacy-status-get",
		"--log-level", "debug",
	}

	cfg, err := load(args, envFrom(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Errorf("expected run address :9090, got %q", cfg.RunAddress)
	}
	if cfg.APIBaseURL != "https://override.local" {
		t.Errorf("expected api override, got %q", cfg.APIBaseURL)
	}
	if cfg.DatabaseURI != "postgres://override" {
		t.Errorf("expected database uri override, got %q", cfg.DatabaseURI)
	}
	if cfg.SessionSecret != "flag-secret" {
		t.Errorf("expected session secret override, got %q", cfg.SessionSecret)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("expected session ttl 2h, got %v", cfg.SessionTTL)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("expected request timeout 3s, got %v", cfg.RequestTimeout)
	}
	if cfg.ShutdownTimeout != 20*time.Second {
		t.Errorf("expected shutdown timeout 20s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.PageSize != 50 {
		t.Errorf("expected page size 50, got %d", cfg.PageSize)
	}
	if !cfg.SecureCookie || !cfg.LegacyStatusGET {
		t.Errorf("expected boolean flags to be set: %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{name: "session ttl", args: []string{"--session-ttl", "bad"}, env: requiredEnv(), want: "invalid session ttl"},
		{name: "request timeout", args: []string{"--request-timeout", "bad"}, env: requiredEnv(), want: "invalid request timeout"},
		{name: "shutdown timeout", args: []string{"--shutdown-timeout", "bad"}, env: requiredEnv(), want: "invalid shutdown timeout"},
		{name: "relative api", args: []string{"-api", "/api"}, env: requiredEnv(), want: "must be absolute"},
		{name: "missing secret", env: map[string]string{"API_BASE_URL": "https://api.local"}, want: "session secret"},
		{name: "unknown flag", args: []string{"--nope"}, env: requiredEnv(), want: "parse flags"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(tc.args, envFrom(tc.env))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadNormalizesNonPositiveValues(t *testing.T) {
	env := requiredEnv()
	env["PAGE_SIZE"] = "-1"
	env["SESSION_TTL"] = "0"
	env["REQUEST_TIMEOUT"] = "0"
	env["SHUTDOWN_TIMEOUT"] = "0"
	env["AUDIT_RETENTION"] = "-1h"
	env["AUDIT_PRUNE_INTERVAL"] = "0"

	cfg, err := load(nil, envFrom(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.PageSize != defaultPageSize {
		t.Errorf("expected default page size %d, got %d", defaultPageSize, cfg.PageSize)
	}
	if cfg.SessionTTL != defaultSessionTTL {
		t.Errorf("expected default session ttl %v, got %v", defaultSessionTTL, cfg.SessionTTL)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Errorf("expected default request timeout %v, got %v", defaultRequestTimeout, cfg.RequestTimeout)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("expected default shutdown timeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
	if cfg.AuditRetention != defaultAuditRetention {
		t.Errorf("expected default audit retention %v, got %v", defaultAuditRetention, cfg.AuditRetention)
	}
	if cfg.AuditPruneInterval != defaultAuditPruneInterval {
		t.Errorf("expected default prune interval %v, got %v", defaultAuditPruneInterval, cfg.AuditPruneInterval)
	}
}

func TestLoadReadsSecretFromFile(t *testing.T) {
	dir := t.TempDir()
	secretFile := filepath.Join(dir, "secret")
	if err := os.WriteFile(secretFile, []byte("file-secret\n"), 0o600); err != nil {
		t.Fatalf("failed to write secret file: %v", err)
	}

	env := requiredEnv()
	env["SESSION_SECRET_FILE"] = secretFile

	cfg, err := load(nil, envFrom(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.SessionSecret != "file-secret" {
		t.Errorf("expected secret from file, got %q", cfg.SessionSecret)
	}

	env["SESSION_SECRET_FILE"] = filepath.Join(dir, "missing")
	if _, err := load(nil, envFrom(env)); err == nil {
		t.Fatal("expected error for missing secret file")
	}
}

func TestLoadMetricsFromEnv(t *testing.T) {
	env := requiredEnv()
	env["METRICS_ENABLED"] = "true"

	cfg, err := load(nil, envFrom(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}
	if !cfg.MetricsEnabled {
		t.Fatal("expected metrics to be enabled from env")
	}
}
