package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Notion    NotionConfig
	Storage   StorageConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
	// Timezone determines the calendar day attendance records are keyed by.
	Timezone string
}

// RateLimitConfig configures the login limiter and the failed-login lockout.
type RateLimitConfig struct {
	Store            string // "memory" or "redis"
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	LoginMaxRequests int
	LoginWindow      time.Duration
	LockoutThreshold int
	LockoutWindow    time.Duration
}

// NotionConfig configures the work tag sync integration.
type NotionConfig struct {
	APIKey        string
	DatabaseID    string
	TitleProperty string
	SyncInterval  time.Duration
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timecard"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		Timezone:    getEnv("APP_TIMEZONE", "Asia/Tokyo"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	loginMax, err := strconv.Atoi(getEnv("RATE_LIMIT_LOGIN_MAX", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_LOGIN_MAX: %w", err)
	}

	loginWindow, err := time.ParseDuration(getEnv("RATE_LIMIT_LOGIN_WINDOW", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_LOGIN_WINDOW: %w", err)
	}

	lockoutThreshold, err := strconv.Atoi(getEnv("LOGIN_LOCKOUT_THRESHOLD", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_LOCKOUT_THRESHOLD: %w", err)
	}

	lockoutWindow, err := time.ParseDuration(getEnv("LOGIN_LOCKOUT_WINDOW", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_LOCKOUT_WINDOW: %w", err)
	}

	config.RateLimit = RateLimitConfig{
		Store:            getEnv("RATE_LIMIT_STORE", "memory"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          redisDB,
		LoginMaxRequests: loginMax,
		LoginWindow:      loginWindow,
		LockoutThreshold: lockoutThreshold,
		LockoutWindow:    lockoutWindow,
	}

	syncInterval, err := time.ParseDuration(getEnv("NOTION_SYNC_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid NOTION_SYNC_INTERVAL: %w", err)
	}

	config.Notion = NotionConfig{
		APIKey:        getEnv("NOTION_API_KEY", ""),
		DatabaseID:    getEnv("NOTION_DATABASE_ID", ""),
		TitleProperty: getEnv("NOTION_TITLE_PROPERTY", "Name"),
		SyncInterval:  syncInterval,
	}

	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "uploads/photos"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.RateLimit.Store != "memory" && c.RateLimit.Store != "redis" {
		return fmt.Errorf("RATE_LIMIT_STORE must be either memory or redis")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	return nil
}

// Location returns the attendance timezone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
