package config

import (
	"fmt"
	"strings"
	"time"

	"continuous-improvement-backend/internal/mail"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	BasePath    string `mapstructure:"API_BASE_PATH"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration, comma separated
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	// SMTP configuration
	SMTPHost               string `mapstructure:"SMTP_HOST"`
	SMTPPort               int    `mapstructure:"SMTP_PORT"`
	SMTPUseSSL             bool   `mapstructure:"SMTP_USE_SSL"`
	SMTPUsername           string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword           string `mapstructure:"SMTP_PASSWORD"`
	SMTPSenderEmail        string `mapstructure:"SMTP_SENDER_EMAIL"`
	SMTPSenderName         string `mapstructure:"SMTP_SENDER_NAME"`
	SMTPInsecureSkipVerify bool   `mapstructure:"SMTP_INSECURE_SKIP_VERIFY"`
	SMTPTimeoutSec         int    `mapstructure:"SMTP_TIMEOUT_SEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_BASE_PATH", "/api/v1/continuous-improvement")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "continuous_improvement")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4200")

	// SMTP defaults; an empty host disables delivery and mail is only logged
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USE_SSL", true)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_SENDER_EMAIL", "")
	viper.SetDefault("SMTP_SENDER_NAME", "Continuous Improvement Team")
	viper.SetDefault("SMTP_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("SMTP_TIMEOUT_SEC", 10)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.SMTPPort <= 0 {
		return fmt.Errorf("SMTP_PORT must be a positive number")
	}

	if config.IsProduction() {
		if config.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST must be set in production")
		}
		if config.SMTPSenderEmail == "" {
			return fmt.Errorf("SMTP_SENDER_EMAIL must be set in production")
		}
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Origins splits ALLOWED_ORIGINS into a trimmed list, skipping empty entries
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// MailEnabled reports whether an SMTP server is configured
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != ""
}

// Mail returns the SMTP settings handed to the notification sender
func (c *Config) Mail() mail.Config {
	return mail.Config{
		Host:               c.SMTPHost,
		Port:               c.SMTPPort,
		UseSSL:             c.SMTPUseSSL,
		Username:           c.SMTPUsername,
		Password:           c.SMTPPassword,
		SenderEmail:        c.SMTPSenderEmail,
		SenderName:         c.SMTPSenderName,
		InsecureSkipVerify: c.SMTPInsecureSkipVerify,
		Timeout:            time.Duration(c.SMTPTimeoutSec) * time.Second,
	}
}
