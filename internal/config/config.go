package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppName         = "FundezyWeb"
	defaultAppEnv          = "development"
	defaultPort            = "8080"
	defaultLogLevel        = "info"
	defaultShutdownDelay   = 10 * time.Second
	defaultBackendTimeout  = 30 * time.Second
	defaultTierCacheTTL    = 60 * time.Second
	defaultSubmitGuardTTL  = 15 * time.Minute
	defaultSessionTTL      = 24 * time.Hour
	defaultPlatformURL     = "https://platform.fundezy.io"
	shutdownSecondsEnvVar  = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar = "SHUTDOWN_TIMEOUT"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName  string
	AppEnv   string
	Port     string
	LogLevel string

	// Trading-account backend (MatchTrader).
	BackendBaseURL string
	BackendTimeout time.Duration

	// Web-terminal targets surfaced to the client.
	PlatformURL         string
	TerminalRedirectURL string

	// Session tokens issued after the auth provider verifies a user.
	SessionSecret string
	SessionTTL    time.Duration

	// Optional infrastructure. Empty values disable the dependent features:
	// without redis the submit guard and tier cache are skipped, without
	// postgres feedback falls back to the in-memory store.
	DatabaseURL string
	RedisURL    string

	TierCacheTTL   time.Duration
	SubmitGuardTTL time.Duration
	ShutdownPeriod time.Duration
}

// Load reads configuration values from the environment and populates a Config
// instance. A .env file in the working directory is merged in first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:             getEnv("APP_NAME", defaultAppName),
		AppEnv:              getEnv("APP_ENV", defaultAppEnv),
		Port:                getEnv("PORT", defaultPort),
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		BackendBaseURL:      os.Getenv("MATCHTRADER_BASE_URL"),
		BackendTimeout:      defaultBackendTimeout,
		PlatformURL:         getEnv("PLATFORM_URL", defaultPlatformURL),
		TerminalRedirectURL: os.Getenv("TERMINAL_REDIRECT_URL"),
		SessionSecret:       os.Getenv("SESSION_SECRET"),
		SessionTTL:          defaultSessionTTL,
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisURL:            os.Getenv("REDIS_URL"),
		TierCacheTTL:        defaultTierCacheTTL,
		SubmitGuardTTL:      defaultSubmitGuardTTL,
		ShutdownPeriod:      defaultShutdownDelay,
	}

	if v := os.Getenv("MATCHTRADER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MATCHTRADER_TIMEOUT: %w", err)
		}
		cfg.BackendTimeout = d
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}

	if v := os.Getenv("TIER_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TIER_CACHE_TTL: %w", err)
		}
		cfg.TierCacheTTL = d
	}

	if v := os.Getenv("SUBMIT_GUARD_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SUBMIT_GUARD_TTL: %w", err)
		}
		cfg.SubmitGuardTTL = d
	}

	if v := os.Getenv(shutdownSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownSecondsEnvVar, err)
		}
		cfg.ShutdownPeriod = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(shutdownDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownDurationEnvVar, err)
		}
		cfg.ShutdownPeriod = d
	}

	if cfg.BackendBaseURL == "" {
		return Config{}, fmt.Errorf("MATCHTRADER_BASE_URL must be set")
	}

	if cfg.SessionSecret == "" {
		if !isDev(cfg.AppEnv) {
			return Config{}, fmt.Errorf("SESSION_SECRET must be set when APP_ENV=%s", cfg.AppEnv)
		}
		cfg.SessionSecret = "dev-only-secret"
	}

	if cfg.TerminalRedirectURL == "" {
		cfg.TerminalRedirectURL = cfg.PlatformURL
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDev reports whether the configuration targets a development environment.
func (c Config) IsDev() bool {
	return isDev(c.AppEnv)
}

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
