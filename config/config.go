package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Storage locations
	DataDir   string
	PublicDir string

	// CORS
	AllowedOrigins []string

	// Admin credentials. Either the bcrypt hash or the plain password
	// must be set; the hash wins when both are present.
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	// JWT configuration
	JWTSecret string

	// POS price database (optional)
	PriceDB PriceDBConfig

	// Redis cache (optional)
	Redis RedisConfig
}

// PriceDBConfig describes the connection to the POS price database.
type PriceDBConfig struct {
	Dialect  string
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// Configured reports whether a price database was set up at all.
func (c PriceDBConfig) Configured() bool {
	if c.Dialect == "sqlite" {
		return c.Database != ""
	}
	return c.Host != "" && c.Database != ""
}

// DSN builds the SQL Server connection string.
func (c PriceDBConfig) DSN() string {
	u := url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		RawQuery: url.Values{"database": {c.Database}}.Encode(),
	}
	return u.String()
}

// RedisConfig describes the optional Redis cache connection.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	URL      string
}

// Configured reports whether Redis caching was enabled.
func (c RedisConfig) Configured() bool {
	return c.Addr != "" || c.URL != ""
}

// Load creates a Config from environment variables, then validates it.
func Load() (*Config, error) {
	cfg := &Config{
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DataDir:    getEnv("DATA_DIR", "data"),
		PublicDir:  getEnv("PUBLIC_DIR", "public"),

		AllowedOrigins: splitAndTrim(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		PriceDB: PriceDBConfig{
			Dialect:  getEnv("PRICE_DB_DIALECT", "sqlserver"),
			Host:     os.Getenv("PRICE_DB_HOST"),
			Port:     getEnvAsInt("PRICE_DB_PORT", 1433),
			User:     os.Getenv("PRICE_DB_USER"),
			Password: os.Getenv("PRICE_DB_PASSWORD"),
			Database: os.Getenv("PRICE_DB_NAME"),
		},

		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsInt("REDIS_DB", 0),
			URL:      os.Getenv("REDIS_URL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that everything the server cannot run without is set.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return fmt.Errorf("either ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}
	if c.AdminUsername == "" {
		return fmt.Errorf("ADMIN_USERNAME must not be empty")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_ORIGINS must list at least one origin")
	}
	return nil
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
