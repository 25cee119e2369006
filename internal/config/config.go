package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Mail transports
const (
	TransportSMTP   = "smtp"
	TransportResend = "resend"
	TransportLog    = "log"
)

// Config holds all configuration for the server
// Following 12-factor app principles, all config is loaded from environment variables
// (optionally seeded from a .env file)
type Config struct {
	Server    ServerConfig
	Mail      MailConfig
	Breaker   BreakerConfig
	CORS      CORSConfig
	StoreName string
	LogLevel  string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type MailConfig struct {
	Transport     string
	SMTPHost      string
	SMTPPort      int
	Username      string
	Password      string
	From          string
	Receivers     []string
	ResendAPIKey  string
	ResendBaseURL string
	SendTimeout   int
}

type BreakerConfig struct {
	ConsecutiveFailures int
	OpenTimeout         int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// ClientConfig configures the storefront client
type ClientConfig struct {
	Endpoint string
	Timeout  time.Duration
	LogLevel string
}

// Load reads server configuration from environment variables
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	username := getEnv("GMAIL_USER", "")
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 30),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Mail: MailConfig{
			Transport:     strings.ToLower(getEnv("MAIL_TRANSPORT", TransportSMTP)),
			SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:      getEnvAsInt("SMTP_PORT", 587),
			Username:      username,
			Password:      getEnv("GMAIL_PASS", ""),
			From:          getEnv("MAIL_FROM", username),
			Receivers:     getEnvAsSlice("RECEIVER_EMAIL", nil),
			ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
			ResendBaseURL: getEnv("RESEND_BASE_URL", ""),
			SendTimeout:   getEnvAsInt("MAIL_SEND_TIMEOUT", 20),
		},
		Breaker: BreakerConfig{
			ConsecutiveFailures: getEnvAsInt("BREAKER_CONSECUTIVE_FAILURES", 5),
			OpenTimeout:         getEnvAsInt("BREAKER_OPEN_TIMEOUT", 30),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		StoreName: getEnv("STORE_NAME", "Galactic Greens"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if err := validateLogLevel(c.LogLevel); err != nil {
		return err
	}

	if c.Breaker.ConsecutiveFailures <= 0 {
		return fmt.Errorf("BREAKER_CONSECUTIVE_FAILURES must be positive")
	}

	switch c.Mail.Transport {
	case TransportSMTP:
		if c.Mail.Username == "" || c.Mail.Password == "" {
			return fmt.Errorf("GMAIL_USER and GMAIL_PASS are required for the smtp transport")
		}
	case TransportResend:
		if c.Mail.ResendAPIKey == "" {
			return fmt.Errorf("RESEND_API_KEY is required for the resend transport")
		}
		if c.Mail.From == "" {
			return fmt.Errorf("MAIL_FROM is required for the resend transport")
		}
	case TransportLog:
		// nothing is delivered, receivers are optional
		return nil
	default:
		return fmt.Errorf("invalid MAIL_TRANSPORT: %s (must be smtp, resend, or log)", c.Mail.Transport)
	}

	if len(c.Mail.Receivers) == 0 {
		return fmt.Errorf("RECEIVER_EMAIL is required")
	}

	return nil
}

// LoadClient reads storefront client configuration from environment variables
func LoadClient() (*ClientConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		Endpoint: getEnv("ORDER_ENDPOINT", "http://localhost:8080/api/send-email"),
		Timeout:  time.Duration(getEnvAsInt("NOTIFY_TIMEOUT", 15)) * time.Second,
		LogLevel: getEnv("LOG_LEVEL", "warn"),
	}

	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("invalid configuration: ORDER_ENDPOINT is required")
	}
	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func validateLogLevel(level string) error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", level)
	}
	return nil
}

// loadDotEnv seeds the environment from ENV_FILE (default .env). Variables
// already set in the environment win; a missing file is not an error.
func loadDotEnv() error {
	path := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Helper functions for reading environment variables

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
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
