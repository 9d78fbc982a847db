package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	HTTPTimeout     time.Duration `json:"http_timeout"`

	// Public site
	SiteBaseURL string `json:"site_base_url"`

	// Upstream content API; empty means the seed-backed store serves alone
	UpstreamURL     string        `json:"upstream_url"`
	UpstreamTimeout time.Duration `json:"upstream_timeout"`

	// Redis page cache; empty URL selects the in-memory cache
	RedisURL    string        `json:"redis_url"`
	RedisPrefix string        `json:"redis_prefix"`
	CacheTTL    time.Duration `json:"cache_ttl"`

	// CloudFlare R2 media bucket
	R2Endpoint  string `json:"r2_endpoint"`
	R2AccessKey string `json:"r2_access_key"`
	R2SecretKey string `json:"r2_secret_key"`
	R2Bucket    string `json:"r2_bucket"`
	R2PublicURL string `json:"r2_public_url"`

	// Storage
	StoragePath string `json:"storage_path"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`

	// Security
	AdminAPIKey string `json:"admin_api_key"`
}

// Load loads configuration from environment variables and validates it
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		// Server configuration
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),

		// Public site
		SiteBaseURL: getEnv("SITE_BASE_URL", "http://localhost:8080"),

		// Upstream content API
		UpstreamURL:     getEnv("UPSTREAM_URL", ""),
		UpstreamTimeout: getEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second),

		// Redis page cache
		RedisURL:    getEnv("REDIS_URL", ""),
		RedisPrefix: getEnv("REDIS_PREFIX", "mla-pages:"),
		CacheTTL:    getEnvAsDuration("CACHE_TTL", 5*time.Minute),

		// CloudFlare R2 media bucket
		R2Endpoint:  getEnv("R2_ENDPOINT", ""),
		R2AccessKey: getEnv("R2_ACCESS_KEY", ""),
		R2SecretKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2Bucket:    getEnv("R2_BUCKET", "mla-media"),
		R2PublicURL: getEnv("R2_PUBLIC_URL", ""),

		// Storage
		StoragePath: getEnv("STORAGE_PATH", "./data"),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),

		// Security
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return nil
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
