package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	App       AppConfig
	Redis     RedisConfig
	Database  DatabaseConfig
	Mail      MailConfig
	Catalog   CatalogConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Admin     AdminConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	// TrustedProxies lists the proxy IPs or CIDRs whose forwarding headers
	// are believed when resolving the client IP. Empty trusts none.
	TrustedProxies []string
}

type AppConfig struct {
	Name        string
	Environment string
	LogLevel    string
	Version     string
}

// RedisConfig backs portfolio filter sessions. An empty Addr disables them.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	SessionTTL time.Duration
}

// DatabaseConfig backs the contact archive. An empty Host disables it.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type MailConfig struct {
	ResendAPIKey  string
	ResendBaseURL string
	Recipient     string
	FromFull      string
	FromQuick     string
	Timeout       time.Duration
}

// CatalogConfig points at an optional YAML catalog replacing the built-in one.
type CatalogConfig struct {
	File string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// AdminConfig guards the admin routes. An empty APIKey keeps them closed.
type AdminConfig struct {
	APIKey string
}

type RateLimitConfig struct {
	ContactPerMinute int
	ContactBurst     int
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			TrustedProxies:  getEnvAsList("TRUSTED_PROXIES", nil),
		},
		App: AppConfig{
			Name:        getEnv("APP_NAME", "digiweb-backend"),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", ""),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvAsInt("REDIS_DB", 0),
			SessionTTL: getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "digiweb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Mail: MailConfig{
			ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
			ResendBaseURL: getEnv("RESEND_BASE_URL", "https://api.resend.com"),
			Recipient:     getEnv("CONTACT_RECIPIENT", "hello@digiweb-agency.com"),
			FromFull:      getEnv("CONTACT_FROM", "Digiweb Contact Form <onboarding@resend.dev>"),
			FromQuick:     getEnv("CONTACT_QUICK_FROM", "Digiweb Quick Contact <onboarding@resend.dev>"),
			Timeout:       getEnvAsDuration("RESEND_TIMEOUT", 10*time.Second),
		},
		Catalog: CatalogConfig{
			File: getEnv("CATALOG_FILE", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		RateLimit: RateLimitConfig{
			ContactPerMinute: getEnvAsInt("CONTACT_RATE_PER_MIN", 5),
			ContactBurst:     getEnvAsInt("CONTACT_RATE_BURST", 3),
		},
		Admin: AdminConfig{
			APIKey: getEnv("ADMIN_API_KEY", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	for _, p := range c.Server.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", p)
			}
		}
	}

	switch c.App.Environment {
	case "development", "staging", "production", "test":
	default:
		return fmt.Errorf("APP_ENV must be one of development, staging, production, test (got %q)", c.App.Environment)
	}

	if c.Mail.Recipient == "" {
		return fmt.Errorf("CONTACT_RECIPIENT is required")
	}

	if c.RateLimit.ContactPerMinute <= 0 || c.RateLimit.ContactBurst <= 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MIN and CONTACT_RATE_BURST must be positive")
	}

	return nil
}

// SessionsEnabled reports whether filter sessions have a Redis backend.
func (c *Config) SessionsEnabled() bool {
	return c.Redis.Addr != ""
}

// ArchiveEnabled reports whether contact submissions are archived.
func (c *Config) ArchiveEnabled() bool {
	return c.Database.Host != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
