package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load loads configuration from environment variables with fallback to defaults
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		fmt.Printf("Warning: Error loading .env file: %v", err)
		fmt.Println("Continuing with environment variables...")
	}

	config := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "localhost"),
			Port:         getEnvInt("SERVER_PORT", 3000),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 120),
			GracefulStop: getEnvInt("SERVER_GRACEFUL_STOP", 30),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			Database:        getEnv("DB_NAME", "yatrimap.db"),
			Username:        getEnv("DB_USERNAME", ""),
			Password:        getEnv("DB_PASSWORD", ""),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("DB_CONN_MAX_LIFETIME", 300),
		},
		Security: SecurityConfig{
			JWTSecret:           getEnv("JWT_SECRET", ""),
			JWTExpirationHours:  getEnvInt("JWT_EXPIRATION_HOURS", 24),
			ResetTokenMinutes:   getEnvInt("RESET_TOKEN_MINUTES", 30),
			BcryptCost:          getEnvInt("BCRYPT_COST", 10),
			SessionCookieName:   getEnv("SESSION_COOKIE_NAME", "yatrimap_session"),
			SessionCookieSecure: getEnvBool("SESSION_COOKIE_SECURE", true),
			RateLimitEnabled:    getEnvBool("RATE_LIMIT_ENABLED", true),
			RateLimitPerMinute:  getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
			RateLimitBurstSize:  getEnvInt("RATE_LIMIT_BURST_SIZE", 20),
			AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS",
				[]string{"http://localhost:3000", "http://localhost:5173"}),
			AdminEmail:    getEnv("ADMIN_EMAIL", ""),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE_PATH", "logs/yatrimap.log"),
			MaxSize:    getEnvInt("LOG_MAX_SIZE", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAge:     getEnvInt("LOG_MAX_AGE", 28),
			Compress:   getEnvBool("LOG_COMPRESS", true),
		},
		Mail: MailConfig{
			SMTPHost:        getEnv("MAIL_SMTP_HOST", ""),
			SMTPPort:        getEnvInt("MAIL_SMTP_PORT", 587),
			Username:        getEnv("MAIL_USERNAME", ""),
			Password:        getEnv("MAIL_PASSWORD", ""),
			From:            getEnv("MAIL_FROM", "no-reply@yatrimap.local"),
			WorkerCount:     getEnvInt("MAIL_WORKER_COUNT", 2),
			RetryAttempts:   getEnvInt("MAIL_RETRY_ATTEMPTS", 3),
			RetryBackoffMin: getEnvInt("MAIL_RETRY_BACKOFF_MIN", 5),
			RetryBackoffMax: getEnvInt("MAIL_RETRY_BACKOFF_MAX", 300),
		},
		Uploads: UploadConfig{
			DestinationImageDir: getEnv("UPLOAD_DESTINATION_DIR", "storage/destinations_image"),
			AccommodationDir:    getEnv("UPLOAD_ACCOMMODATION_DIR", "storage/uploads"),
			MaxSizeMB:           getEnvInt("UPLOAD_MAX_SIZE_MB", 8),
		},
	}

	// Validate required fields
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// validateConfig validates required configuration fields
func validateConfig(config *Config) error {
	if config.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if config.Security.BcryptCost < 4 || config.Security.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31: Given: %v", config.Security.BcryptCost)
	}

	switch config.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database driver: %s", config.Database.Driver)
	}

	// Mail is optional: when SMTP is not configured the queue falls back to a
	// log-only sender, so nothing to validate here.

	return nil
}

// MailConfigured reports whether an SMTP host has been set up
func (c *MailConfig) MailConfigured() bool {
	return c.SMTPHost != ""
}

// GetSMTPAddr returns the SMTP host:port string
func (c *MailConfig) GetSMTPAddr() string {
	return fmt.Sprintf("%s:%d", c.SMTPHost, c.SMTPPort)
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	switch c.Driver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode)
	case "sqlite":
		return c.Database
	default:
		return ""
	}
}

// GetServerAddr returns the server address string
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
