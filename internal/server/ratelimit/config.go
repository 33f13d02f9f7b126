package ratelimit

import (
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/seo-auditor/internal/types"
)

// Environment variables read by ConfigFromEnv
const (
	EnvEnabled   = "SEO_RATE_LIMIT_ENABLED"
	EnvPerMinute = "SEO_RATE_LIMIT_PER_MINUTE"
	EnvBurst     = "SEO_RATE_LIMIT_BURST"
	EnvExempt    = "SEO_RATE_LIMIT_EXEMPT"
	EnvBlocked   = "SEO_RATE_LIMIT_BLOCKED"
)

// Route limits the requests matching Pattern, written "METHOD /path" like a mux pattern.
// A path ending in "/" matches every path below it.
type Route struct {
	Pattern   string
	PerMinute int // 0 exempts the route
	Burst     int // 0 uses PerMinute
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	PerMinute       int // limit for routes without their own entry
	Burst           int
	Routes          []Route
	Exempt          map[string]bool // client IPs never limited
	Blocked         map[string]bool // client IPs always refused
	CleanupInterval time.Duration
	IdleTTL         time.Duration // buckets unused this long are dropped
}

// DefaultConfig limits every client per route, with tighter limits on batch audits.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		PerMinute:       600,
		Burst:           60,
		Routes:          DefaultRoutes(),
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
	}
}

// DefaultRoutes returns the per-route limits of the audit API.
func DefaultRoutes() []Route {
	return []Route{
		{Pattern: "GET /health"},
		{Pattern: "GET /metrics"},
		{Pattern: "POST /audit/batch", PerMinute: 60, Burst: 5},
		{Pattern: "POST /audit", PerMinute: 600, Burst: 50},
		{Pattern: "POST /keywords/rank", PerMinute: 600, Burst: 50},
		{Pattern: "GET /audits", PerMinute: 300, Burst: 30},
		{Pattern: "GET /audits/", PerMinute: 300, Burst: 30},
	}
}

// ConfigFromEnv overlays the SEO_RATE_LIMIT_* variables on DefaultConfig.
// Malformed values are errors rather than silently ignored.
func ConfigFromEnv(getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()

	if raw := getenv(EnvEnabled); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &types.InvalidArgumentError{Argument: EnvEnabled, Value: raw, Message: "must be a boolean"}
		}
		cfg.Enabled = enabled
	}

	var err error
	if cfg.PerMinute, err = envInt(getenv, EnvPerMinute, cfg.PerMinute, 1); err != nil {
		return nil, err
	}
	if cfg.Burst, err = envInt(getenv, EnvBurst, cfg.Burst, 0); err != nil {
		return nil, err
	}

	cfg.Exempt = clientSet(getenv(EnvExempt))
	cfg.Blocked = clientSet(getenv(EnvBlocked))

	return cfg, nil
}

func envInt(getenv func(string) string, key string, fallback, minimum int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < minimum {
		return 0, &types.InvalidArgumentError{Argument: key, Value: raw, Message: "must be an integer >= " + strconv.Itoa(minimum)}
	}
	return v, nil
}

// clientSet parses a comma-separated list of client IPs
func clientSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			set[ip] = true
		}
	}
	return set
}
