package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP server
	Port string

	// Database
	SQLiteDBPath string

	// Auth
	JWTSecret     string
	TokenTTL      time.Duration
	ResetTokenTTL time.Duration

	// AMQP
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Ledger export
	ExportBackend       string
	GoogleSpreadsheetID string
	GoogleSheetName     string

	// Worker
	ExportBatchSize int
	ExportInterval  time.Duration
}

const (
	ExportBackendSheets = "sheets"
	ExportBackendMemory = "memory"
	ExportBackendNone   = "none"
)

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/fincheck.db"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTL:      getEnvDuration("TOKEN_TTL", 24*time.Hour),
		ResetTokenTTL: getEnvDuration("RESET_TOKEN_TTL", 15*time.Minute),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "fincheck"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "export_transactions"),

		ExportBackend:       getEnv("EXPORT_BACKEND", ExportBackendNone),
		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", "Ledger"),

		ExportBatchSize: getEnvInt("EXPORT_BATCH_SIZE", 25),
		ExportInterval:  getEnvDuration("EXPORT_INTERVAL", 30*time.Second),
	}
}

// Validate checks the configuration and returns every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET must be set")
	} else if len(c.JWTSecret) < 16 {
		problems = append(problems, "JWT_SECRET too short: need at least 16 bytes")
	}

	if c.TokenTTL < time.Minute {
		problems = append(problems, fmt.Sprintf("invalid token TTL %v: must be at least 1 minute", c.TokenTTL))
	}
	if c.ResetTokenTTL < time.Minute {
		problems = append(problems, fmt.Sprintf("invalid reset token TTL %v: must be at least 1 minute", c.ResetTokenTTL))
	}

	if c.SQLiteDBPath == "" {
		problems = append(problems, "SQLite database path cannot be empty")
	} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				problems = append(problems, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
			}
		}
	}

	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			problems = append(problems, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	switch c.ExportBackend {
	case ExportBackendSheets:
		if c.GoogleSpreadsheetID == "" {
			problems = append(problems, "GOOGLE_SPREADSHEET_ID is required when using the sheets export backend")
		}
		if c.GoogleSheetName == "" {
			problems = append(problems, "GOOGLE_SHEET_NAME cannot be empty when using the sheets export backend")
		}
	case ExportBackendMemory, ExportBackendNone:
	default:
		problems = append(problems, fmt.Sprintf("invalid export backend '%s': must be one of sheets, memory, none", c.ExportBackend))
	}

	if c.ExportBatchSize < 1 || c.ExportBatchSize > 1000 {
		problems = append(problems, fmt.Sprintf("invalid export batch size %d: must be between 1 and 1000", c.ExportBatchSize))
	}
	if c.ExportInterval < time.Second || c.ExportInterval > 24*time.Hour {
		problems = append(problems, fmt.Sprintf("invalid export interval %v: must be between 1s and 24h", c.ExportInterval))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
