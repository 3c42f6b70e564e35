// Package config loads process-level configuration from the environment.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvProduction represents the production environment.
	EnvProduction = "production"
)

// Config holds all application configuration.
type Config struct {
	Env string `envconfig:"WAVEKIT_ENV" default:"development"`

	// Capture settings
	SampleRate int `envconfig:"WAVEKIT_SAMPLE_RATE" default:"16000"`
	Channels   int `envconfig:"WAVEKIT_CHANNELS" default:"1"`

	// Monitor server settings
	MonitorPort string `envconfig:"WAVEKIT_MONITOR_PORT" default:"8080"`

	// Logging settings
	LogLevel string `envconfig:"WAVEKIT_LOG_LEVEL" default:"info"`
}

// Load reads configuration from a .env file (optional) and environment
// variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Not an error if the file doesn't exist (expected in production)
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return &config, nil
}
