package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	Port           string
	Origin         string
	Environment    string
	SessionSecret  string
	SessionTTLDays int
	Database       DatabaseConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load database configuration
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "detailing"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	sessionTTLDays, err := strconv.Atoi(getEnv("SESSION_TTL_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_DAYS: %w", err)
	}

	// Return complete configuration
	return &Config{
		Port:           getEnv("PORT", "5000"),
		Origin:         getEnv("ORIGIN", "http://localhost:5173"),
		Environment:    getEnv("NODE_ENV", "development"),
		SessionSecret:  getEnv("SESSION_SECRET", "default_session_secret"),
		SessionTTLDays: sessionTTLDays,
		Database:       dbConfig,
	}, nil
}

// SessionTTL returns the configured session lifetime.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLDays) * 24 * time.Hour
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
