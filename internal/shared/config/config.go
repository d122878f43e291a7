package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string `validate:"required,numeric"`
	GinMode        string `validate:"oneof=debug release test"`
	APIVersion     string
	APIPrefix      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Database configuration
	Database DatabaseConfig

	// Redis configuration
	Redis RedisConfig

	// Session handling
	Session SessionConfig

	// External services
	Inventory InventoryConfig
	Orders    OrderProcessingConfig

	// Checkout behavior
	Checkout CheckoutConfig

	// Kafka / order events
	Kafka KafkaConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// Logging
	LogLevel string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	DSN      string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string
}

// SessionConfig holds session cookie and storage configuration
type SessionConfig struct {
	CookieName   string
	CookieMaxAge time.Duration
	CookieSecure bool
	TTL          time.Duration
}

// InventoryConfig holds the external inventory service configuration
type InventoryConfig struct {
	BaseURL    string `validate:"required,url"`
	Timeout    time.Duration
	CatalogTTL time.Duration
}

// OrderProcessingConfig holds the external order-processing service configuration
type OrderProcessingConfig struct {
	BaseURL string `validate:"required,url"`
	Timeout time.Duration
}

// CheckoutConfig holds checkout behavior configuration
type CheckoutConfig struct {
	TaxRate float64 `validate:"gte=0,lt=1"`
}

// KafkaConfig holds Kafka configuration for order confirmation events
type KafkaConfig struct {
	Enabled     bool
	Brokers     []string
	OrdersTopic string
	GroupID     string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled          bool          `json:"enabled"`
	WindowDuration   time.Duration `json:"window_duration"`
	DefaultRequests  int           `json:"default_requests"`
	CatalogRequests  int           `json:"catalog_requests"`
	CartRequests     int           `json:"cart_requests"`
	CheckoutRequests int           `json:"checkout_requests"`
	OrderRequests    int           `json:"order_requests"`
	HealthRequests   int           `json:"health_requests"`
	WhitelistedIPs   []string      `json:"whitelisted_ips"`
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		// Database configuration
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "getaway_db"),
			User:     getEnv("DB_USER", "getaway_user"),
			Password: getEnv("DB_PASSWORD", "getaway_password"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		// Redis configuration
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},

		// Session handling
		Session: SessionConfig{
			CookieName:   getEnv("SESSION_COOKIE_NAME", "getaway_session"),
			CookieMaxAge: getDurationEnv("SESSION_COOKIE_MAX_AGE", 24*time.Hour),
			CookieSecure: getBoolEnv("SESSION_COOKIE_SECURE", false),
			TTL:          getDurationEnv("SESSION_TTL", 24*time.Hour),
		},

		// External inventory service
		Inventory: InventoryConfig{
			BaseURL:    getEnv("INVENTORY_BASE_URL", "http://localhost:5002"),
			Timeout:    getDurationEnv("INVENTORY_TIMEOUT", 10*time.Second),
			CatalogTTL: getDurationEnv("CATALOG_CACHE_TTL", 5*time.Minute),
		},

		// External order-processing service
		Orders: OrderProcessingConfig{
			BaseURL: getEnv("ORDER_PROCESSING_BASE_URL", "http://localhost:5003"),
			Timeout: getDurationEnv("ORDER_PROCESSING_TIMEOUT", 10*time.Second),
		},

		// Checkout behavior
		Checkout: CheckoutConfig{
			TaxRate: getFloatEnv("CHECKOUT_TAX_RATE", 0),
		},

		// Kafka / order events
		Kafka: KafkaConfig{
			Enabled:     getBoolEnv("KAFKA_ENABLED", false),
			Brokers:     getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
			OrdersTopic: getEnv("KAFKA_ORDERS_TOPIC", "order-confirmations"),
			GroupID:     getEnv("KAFKA_GROUP_ID", "getaway-order-workers"),
		},

		// Rate limiting
		RateLimit: RateLimitConfig{
			Enabled:          getBoolEnv("RATE_LIMIT_ENABLED", true),
			WindowDuration:   getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			DefaultRequests:  getIntEnv("RATE_LIMIT_DEFAULT_REQUESTS", 60),
			CatalogRequests:  getIntEnv("RATE_LIMIT_CATALOG_REQUESTS", 100),
			CartRequests:     getIntEnv("RATE_LIMIT_CART_REQUESTS", 60),
			CheckoutRequests: getIntEnv("RATE_LIMIT_CHECKOUT_REQUESTS", 30),
			OrderRequests:    getIntEnv("RATE_LIMIT_ORDER_REQUESTS", 10),
			HealthRequests:   getIntEnv("RATE_LIMIT_HEALTH_REQUESTS", 120),
			WhitelistedIPs:   getStringSliceEnv("RATE_LIMIT_WHITELISTED_IPS", []string{}),
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	// Build composite values
	cfg.Database.DSN = buildDatabaseDSN(cfg.Database)
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// Validate checks the loaded configuration for values the server cannot
// start with (bad service URLs, out-of-range tax rate, unknown gin mode).
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// buildDatabaseDSN builds the database connection string
func buildDatabaseDSN(db DatabaseConfig) string {
	return "host=" + db.Host +
		" port=" + db.Port +
		" user=" + db.User +
		" password=" + db.Password +
		" dbname=" + db.Name +
		" sslmode=" + db.SSLMode
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getFloatEnv gets a float environment variable with a fallback value
func getFloatEnv(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the API base path
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix + "/" + c.APIVersion
}
