package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAccessTokenTTLMinutes is used when ACCESS_TOKEN_EXPIRE_MINUTES is
// absent or unparseable. Falling back must never fail a request.
const DefaultAccessTokenTTLMinutes = 15

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Audit    AuditConfig

	// Warnings collects non-fatal configuration fallbacks so they can be
	// logged once the logger exists.
	Warnings []string
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	AutoSchema     bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr            string
	Password        string
	DB              int
	UserCacheTTLSec int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level    string
	Dir      string
	Filename string
}

// AuthConfig defines authentication parameters. SecretKey and Algorithm have
// no defaults: their absence is a startup failure, never a per-request one.
type AuthConfig struct {
	SecretKey             string
	Algorithm             string
	AccessTokenTTLMinutes int
	BcryptCost            int
}

// AuditConfig holds the optional audit webhook endpoint.
type AuditConfig struct {
	WebhookURL string
}

var supportedAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
}

// Load reads configuration from environment variables, applying defaults where
// possible. Missing secret key or algorithm is a hard error so the process
// refuses to start instead of failing at the first request.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("AUTH_SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("AUTH_SECRET_KEY was not provided")
	}

	algorithm := os.Getenv("AUTH_ALGORITHM")
	if algorithm == "" {
		return nil, fmt.Errorf("AUTH_ALGORITHM was not provided")
	}
	if _, ok := supportedAlgorithms[algorithm]; !ok {
		return nil, fmt.Errorf("unsupported AUTH_ALGORITHM %q", algorithm)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "shift-profile-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			AutoSchema:     getEnvAsBool("POSTGRES_AUTO_SCHEMA", false),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:            getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password:        os.Getenv("REDIS_PASSWORD"),
			DB:              redisDB,
			UserCacheTTLSec: getEnvAsInt("USER_CACHE_TTL_SECONDS", 60),
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Dir:      getEnv("LOG_DIR", "logs"),
			Filename: "main.log",
		},
		Auth: AuthConfig{
			SecretKey:  secret,
			Algorithm:  algorithm,
			BcryptCost: getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Audit: AuditConfig{
			WebhookURL: getEnv("AUDIT_WEBHOOK_URL", ""),
		},
	}

	cfg.Auth.AccessTokenTTLMinutes = loadAccessTokenTTL(cfg)

	return cfg, nil
}

// loadAccessTokenTTL resolves ACCESS_TOKEN_EXPIRE_MINUTES. An unparseable
// value falls back to the default with a warning rather than failing startup.
func loadAccessTokenTTL(cfg *Config) int {
	raw := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES")
	if raw == "" {
		return DefaultAccessTokenTTLMinutes
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf(
			"ACCESS_TOKEN_EXPIRE_MINUTES %q is not a positive integer, set to %d",
			raw, DefaultAccessTokenTTLMinutes))
		return DefaultAccessTokenTTLMinutes
	}
	return minutes
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// AccessTokenTTL returns the session token lifetime.
func (c AuthConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLMinutes) * time.Minute
}

// UserCacheTTL returns the lookup cache entry lifetime.
func (r RedisConfig) UserCacheTTL() time.Duration {
	return time.Duration(r.UserCacheTTLSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
