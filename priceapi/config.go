package priceapi

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Config holds the price API service configuration.
type Config struct {
	// Address the HTTP server listens on.
	Address string `yaml:"address"`

	// AllowedOrigins for cross-origin requests from the storefront.
	// An empty list allows every origin.
	AllowedOrigins []string `yaml:"allowedOrigins"`

	WriteTimeout      time.Duration `yaml:"writeTimeout"`
	ReadTimeout       time.Duration `yaml:"readTimeout"`
	IdleTimeout       time.Duration `yaml:"idleTimeout"`
	ReadHeaderTimeout time.Duration `yaml:"readHeaderTimeout"`
}

// DefaultConfig returns the configuration used when no config file
// is provided.
func DefaultConfig() Config {
	return Config{
		Address:           ":8080",
		WriteTimeout:      10 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       time.Minute,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// LoadConfig reads a YAML config file and unmarshals it over the
// defaults, so a partial file only overrides what it names.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}
