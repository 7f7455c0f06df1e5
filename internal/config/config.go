package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "session"

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	Session  SessionConfig
	Cookie   CookieConfig
	Seed     SeedConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver     string
	URL        string
	SQLitePath string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
}

// SessionConfig holds session token configuration
type SessionConfig struct {
	Secret          string
	Hours           int
	CleanupSchedule string
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// SeedConfig holds the credentials of the seeded admin officer
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	config, err := FromEnv()
	if err != nil {
		return nil, err
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s, DB: %s]", config.AppMode, config.Database.Driver)
	return config, nil
}

// FromEnv builds a Config from the current environment only
func FromEnv() (*Config, error) {
	// trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	database, err := loadDatabaseConfig(appMode)
	if err != nil {
		return nil, err
	}

	return &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "5555"),
		Database: database,
		Session:  loadSessionConfig(appMode),
		Cookie:   loadCookieConfig(appMode),
		Seed: SeedConfig{
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@communitywatch.local"),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "password123"),
		},
	}, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) (DatabaseConfig, error) {
	prefix := modePrefix(mode)

	defaultDriver := DriverSQLite
	if mode == "prod" {
		defaultDriver = DriverPostgres
	}

	driver := strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", defaultDriver)))
	switch driver {
	case DriverSQLite, DriverPostgres, DriverMySQL:
	default:
		return DatabaseConfig{}, fmt.Errorf("invalid DB_DRIVER: '%s' (must be sqlite, postgres or mysql)", driver)
	}

	cfg := DatabaseConfig{
		Driver:     driver,
		URL:        normalizeDatabaseURL(getEnv("DATABASE_URL", "")),
		SQLitePath: getEnv("SQLITE_PATH", "app.db"),
		Host:       getEnv(prefix+"DB_HOST", "localhost"),
		Port:       getEnv(prefix+"DB_PORT", "3306"),
		User:       getEnv(prefix+"DB_USER", "root"),
		Password:   getEnv(prefix+"DB_PASS", ""),
		DBName:     getEnv(prefix+"DB_NAME", "community_watch"),
	}

	if driver == DriverPostgres && cfg.URL == "" {
		return DatabaseConfig{}, fmt.Errorf("DATABASE_URL is required when DB_DRIVER is postgres")
	}

	return cfg, nil
}

// normalizeDatabaseURL accepts the legacy postgres:// scheme used by hosting providers
func normalizeDatabaseURL(url string) string {
	url = strings.TrimSpace(url)
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}

// loadSessionConfig loads session config based on mode
func loadSessionConfig(mode string) SessionConfig {
	prefix := modePrefix(mode)

	hours, err := strconv.Atoi(getEnv("SESSION_HOURS", "24"))
	if err != nil || hours <= 0 {
		hours = 24
	}

	return SessionConfig{
		Secret:          getEnv(prefix+"SESSION_SECRET", "default_secret"),
		Hours:           hours,
		CleanupSchedule: getEnv("SESSION_CLEANUP_SCHEDULE", "@every 1h"),
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := modePrefix(mode)

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:3000"
	}
	return origins
}
