package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr        = ":8080"
	defaultDatabaseURL = "frontdesk.db"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultTokenTTL    = "24h"
	defaultSweepSpec   = "*/30 * * * *"
	defaultSMTPPort    = "587"
)

type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration

	// Optional read cache; empty RedisAddr disables it.
	RedisAddr     string
	RedisUser     string
	RedisPassword string

	// Optional SMTP delivery; an empty host routes mail to the log.
	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPPassword string

	SweepSpec string
}

func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

func (c *Config) CacheConfigured() bool {
	return c.RedisAddr != ""
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on process environment")
	}

	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = strings.TrimSpace(getEnv("ADDR", defaultAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.TokenTTL, err = parseDurationEnv("TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		return nil, err
	}

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisUser = strings.TrimSpace(os.Getenv("REDIS_USER"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	cfg.SMTPHost = strings.TrimSpace(os.Getenv("SMTP_HOST"))
	cfg.SMTPPort = strings.TrimSpace(getEnv("SMTP_PORT", defaultSMTPPort))
	cfg.SMTPFrom = strings.TrimSpace(os.Getenv("SMTP_FROM"))
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")

	cfg.SweepSpec = strings.TrimSpace(getEnv("SWEEP_CRON", defaultSweepSpec))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Addr == "" {
		return fmt.Errorf("ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be > 0")
	}
	if cfg.SweepSpec == "" {
		return fmt.Errorf("SWEEP_CRON must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
