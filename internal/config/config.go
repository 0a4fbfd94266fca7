// Package config loads and validates the process configuration for the
// Firebase project and the Razorpay account from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config carries every named setting the backend needs. Only the Firebase
// core values are required for initialization; Razorpay values are checked
// separately by the payment service so that content-only deployments work
// without payment credentials.
type Config struct {
	APIKey            string `env:"FIREBASE_API_KEY"`
	AuthDomain        string `env:"FIREBASE_AUTH_DOMAIN"`
	ProjectID         string `env:"FIREBASE_PROJECT_ID"`
	StorageBucket     string `env:"FIREBASE_STORAGE_BUCKET"`
	MessagingSenderID string `env:"FIREBASE_MESSAGING_SENDER_ID"`
	AppID             string `env:"FIREBASE_APP_ID"`

	RazorpayKeyID     string `env:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `env:"RAZORPAY_KEY_SECRET"`

	OrganizationName string `env:"ORGANIZATION_NAME" envDefault:"Sikh Aid Charitable Trust"`
	SiteURL          string `env:"SITE_URL" envDefault:"www.sikhaidindia.com"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks that every required value is non-empty. All missing keys
// are reported in a single ConfigurationError so one deploy fixes them all.
func (c Config) Validate() error {
	var missing []string
	if c.APIKey == "" {
		missing = append(missing, "FIREBASE_API_KEY")
	}
	if c.ProjectID == "" {
		missing = append(missing, "FIREBASE_PROJECT_ID")
	}
	if c.StorageBucket == "" {
		missing = append(missing, "FIREBASE_STORAGE_BUCKET")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

// IsProduction reports whether the process runs with the production
// environment tag.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// ConfigurationError reports required settings that are missing or empty.
// It is fatal: callers must not retry until the environment changes.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration incomplete: missing %s", strings.Join(e.Missing, ", "))
}
