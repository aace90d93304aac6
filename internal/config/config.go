package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	NotificationsTable string

	// StoreTimeout bounds every DynamoDB call. StoreMaxRetries and
	// StoreRetryBaseDelay apply to reads only; inserts are never retried.
	StoreTimeout        time.Duration
	StoreMaxRetries     int
	StoreRetryBaseDelay time.Duration

	// AllowedOrigins is the CORS allow-list. Defaults to "*" in development.
	// Production requires an explicit ALLOWED_ORIGINS; unset means deny all.
	AllowedOrigins   []string
	AllowCredentials bool

	// OpenAPIPaths are the candidate locations for the served spec document,
	// probed in order.
	OpenAPIPaths []string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	env := getEnv("APP_ENV", "development")

	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  env,

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		NotificationsTable: getEnv("DYNAMO_TABLE_NOTIFICATIONS", "chatwith_notifications"),

		StoreTimeout:        getEnvDuration("STORE_TIMEOUT", 5*time.Second),
		StoreMaxRetries:     getEnvInt("STORE_MAX_RETRIES", 3),
		StoreRetryBaseDelay: getEnvDuration("STORE_RETRY_BASE_DELAY", 100*time.Millisecond),

		AllowedOrigins:   allowedOrigins(env),
		AllowCredentials: true,

		OpenAPIPaths: openAPIPaths(),
	}
}

// allowedOrigins resolves the CORS allow-list. Development falls back to "*";
// production has no fallback, so an unset ALLOWED_ORIGINS denies all origins.
func allowedOrigins(env string) []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		if env == "production" {
			return nil
		}
		return []string{"*"}
	}
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

func openAPIPaths() []string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return []string{
		filepath.Join(cwd, "openapi.yaml"),
		filepath.Join(cwd, "public", "openapi.yaml"),
		filepath.Join(cwd, "..", "openapi.yaml"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
