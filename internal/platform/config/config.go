// Package config loads server configuration from the environment, plus the
// optional YAML seed file the register can be pre-populated from.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogFormat       string
	LogLevel        string
	SeedFile        string
	ShutdownTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:            envOr("EDUBASE_ADDR", ":8080"),
		LogFormat:       envOr("EDUBASE_LOG_FORMAT", "text"),
		LogLevel:        envOr("EDUBASE_LOG_LEVEL", "info"),
		SeedFile:        os.Getenv("EDUBASE_SEED_FILE"),
		ShutdownTimeout: durationOr("EDUBASE_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// SeedRecord is one establishment row in the seed file. Fields are raw on
// purpose; the service validates them on registration.
type SeedRecord struct {
	URN             int    `yaml:"urn"`
	Name            string `yaml:"name"`
	WebsiteURL      string `yaml:"website_url"`
	TelephoneNumber string `yaml:"telephone_number"`
}

type seedFile struct {
	Establishments []SeedRecord `yaml:"establishments"`
}

// LoadSeed reads establishment records from the YAML file at path.
func LoadSeed(path string) ([]SeedRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return f.Establishments, nil
}
