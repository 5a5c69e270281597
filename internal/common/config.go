package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Sync     SyncConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// SyncConfig holds file-sync pipeline configuration
type SyncConfig struct {
	// Dir is the watched directory; created if absent.
	Dir string
	// UploadURL is the document-analysis upload endpoint.
	UploadURL string
	UploadTimeout time.Duration
	// Debounce coalesces filesystem event bursts into one resync pass.
	Debounce time.Duration
	// MaxAttempts quarantines a file after this many failed uploads.
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Sync: SyncConfig{
			Dir:           getEnv("RESUME_DIR", "./public/images/resume"),
			UploadURL:     getEnv("UPLOAD_URL", "http://localhost:8000/api/upload_pdf"),
			UploadTimeout: getEnvAsDuration("UPLOAD_TIMEOUT", 30*time.Second),
			Debounce:      getEnvAsDuration("SYNC_DEBOUNCE", 500*time.Millisecond),
			MaxAttempts:   getEnvAsInt("SYNC_MAX_ATTEMPTS", 5),
			BaseBackoff:   getEnvAsDuration("SYNC_BASE_BACKOFF", 30*time.Second),
			MaxBackoff:    getEnvAsDuration("SYNC_MAX_BACKOFF", 15*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Sync.Dir == "" {
		return NewAppError("CONFIG_ERROR", "RESUME_DIR is required", ErrInvalidInput)
	}
	if c.Sync.UploadURL == "" {
		return NewAppError("CONFIG_ERROR", "UPLOAD_URL is required", ErrInvalidInput)
	}
	return nil
}
