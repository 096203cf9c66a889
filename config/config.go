package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Sheets        SheetsConfig
	Provider      ProviderConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	AllowedOrigins []string
}

// SheetsConfig identifies the source spreadsheet. The bulk route resolves the
// spreadsheet by name when no ID is configured; the submit route requires the ID.
type SheetsConfig struct {
	SpreadsheetName string
	SpreadsheetID   string
	WorksheetName   string
	CredentialsJSON string
}

// ProviderConfig holds the outbound messaging endpoints and secrets.
// These are deliberately NOT validated at startup: each dispatch path checks
// its own pair and fails closed with a configuration error at request time.
type ProviderConfig struct {
	ClientAPIEndpoint     string
	ClientAPIKey          string
	WhatsAppAccessToken   string
	WhatsAppPhoneNumberID string
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "*")
	v.SetDefault("WORKSHEET_NAME", "Data")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("O11Y_SERVICE_NAME", "whatsapp-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "whatsapp-bridge")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	// Parse allowed CORS origins (comma-separated)
	allowedOrigins := []string{}
	originsStr := v.GetString("ALLOWED_CORS_ORIGINS")
	if originsStr != "" {
		for _, origin := range strings.Split(originsStr, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			AllowedOrigins: allowedOrigins,
		},
		Sheets: SheetsConfig{
			SpreadsheetName: v.GetString("SHEET_NAME"),
			SpreadsheetID:   v.GetString("SHEET_ID"),
			WorksheetName:   v.GetString("WORKSHEET_NAME"),
			CredentialsJSON: v.GetString("GOOGLE_CREDENTIALS"),
		},
		Provider: ProviderConfig{
			ClientAPIEndpoint:     v.GetString("CLIENT_API_ENDPOINT"),
			ClientAPIKey:          v.GetString("CLIENT_API_KEY"),
			WhatsAppAccessToken:   v.GetString("WHATSAPP_ACCESS_TOKEN"),
			WhatsAppPhoneNumberID: v.GetString("WHATSAPP_PHONE_NUMBER_ID"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set.
// Provider and spreadsheet secrets are intentionally excluded: a missing value
// there surfaces as a per-request configuration error (HTTP 500), matching the
// fail-closed behaviour of the dispatch and sheet-access paths.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}
	if c.Sheets.WorksheetName == "" {
		return fmt.Errorf("WORKSHEET_NAME is required")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
