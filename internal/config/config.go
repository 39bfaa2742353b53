// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	FrontendURL string
	DBPath      string
	SessionTTL  time.Duration
	Gemini      GeminiConfig
	License     LicenseConfig
}

// GeminiConfig configures the completion-service client. Either APIKey or
// the Project/Location pair (Vertex deployment) must be set.
type GeminiConfig struct {
	APIKey   string
	Project  string
	Location string
	Model    string
}

// UsesVertex returns true when the Vertex project/location backend is
// configured instead of an API key.
func (g GeminiConfig) UsesVertex() bool {
	return g.APIKey == "" && g.Project != "" && g.Location != ""
}

// LicenseConfig configures license-key verification. An empty ProductID
// disables licensing entirely: sessions start authenticated.
type LicenseConfig struct {
	ProductID string
	VerifyURL string
}

// Enabled returns true when license verification is required.
func (l LicenseConfig) Enabled() bool {
	return l.ProductID != ""
}

// DefaultVerifyURL is the Gumroad license verification endpoint.
const DefaultVerifyURL = "https://api.gumroad.com/v2/licenses/verify"

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	sessionTTLHours := getEnvInt("SESSION_TTL_HOURS", 24)
	if sessionTTLHours <= 0 {
		sessionTTLHours = 24
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", ""),
		DBPath:      getEnv("DB_PATH", "./data/procsim.db"),
		SessionTTL:  time.Duration(sessionTTLHours) * time.Hour,
		Gemini: GeminiConfig{
			APIKey:   getEnv("GEMINI_API_KEY", ""),
			Project:  getEnv("GOOGLE_CLOUD_PROJECT", ""),
			Location: getEnv("GOOGLE_CLOUD_LOCATION", ""),
			Model:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		License: LicenseConfig{
			ProductID: getEnv("LICENSE_PRODUCT_ID", ""),
			VerifyURL: getEnv("LICENSE_VERIFY_URL", DefaultVerifyURL),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
// A missing completion-service credential is a hard stop: the whole
// application is useless without it.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.Gemini.APIKey == "" && !c.Gemini.UsesVertex() {
		return fmt.Errorf("GEMINI_API_KEY (or GOOGLE_CLOUD_PROJECT + GOOGLE_CLOUD_LOCATION) must be set")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("GEMINI_MODEL cannot be empty")
	}
	if c.License.Enabled() && c.License.VerifyURL == "" {
		return fmt.Errorf("LICENSE_VERIFY_URL cannot be empty when licensing is enabled")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
