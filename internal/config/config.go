package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultListenAddr    = ":8080"
	defaultAPIBaseURL    = "http://localhost:5145/api"
	defaultSessionTTL    = "24h"
	defaultSessionSecret = "change-me-session-secret"
	defaultCookieName    = "siperuk_auth"
	defaultCookieSecure  = "false"
)

// Config holds the runtime settings of the dashboard gateway.
type Config struct {
	AppEnv        string
	ListenAddr    string
	APIBaseURL    string
	SessionSecret string
	SessionTTL    time.Duration
	CookieName    string
	CookieSecure  bool
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.APIBaseURL = strings.TrimRight(getEnv("API_BASE_URL", defaultAPIBaseURL), "/")
	cfg.SessionSecret = strings.TrimSpace(getEnv("SESSION_SECRET", defaultSessionSecret))
	cfg.CookieName = getEnv("SESSION_COOKIE_NAME", defaultCookieName)

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cfg.CookieSecure, err = parseBoolEnv("SESSION_COOKIE_SECURE", defaultCookieSecure)
	if err != nil {
		return nil, err
	}

	if cfg.AppEnv == "prod" && cfg.SessionSecret == defaultSessionSecret {
		return nil, fmt.Errorf("SESSION_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
	return d, nil
}

func parseBoolEnv(key, fallback string) (bool, error) {
	raw := strings.ToLower(getEnv(key, fallback))
	switch raw {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid %s=%q", key, raw)
}
