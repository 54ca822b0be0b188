// Package config loads the fabricmock CLI configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the file read when no --config flag is given.
const DefaultPath = "fabricmock.yaml"

// RedisConfig configures the Redis snapshot store.
type RedisConfig struct {
	Addr     string        `yaml:"addr" json:"addr"`
	Password string        `yaml:"password" json:"password"`
	DB       int           `yaml:"db" json:"db"`
	Prefix   string        `yaml:"prefix" json:"prefix"`
	TTL      time.Duration `yaml:"ttl" json:"ttl"`
	// Redact lists regular expressions; matching prop keys are masked before saving.
	Redact []string `yaml:"redact" json:"redact"`
	// EncryptionKey is a base64 encoded 32 byte AES key. Empty disables encryption.
	EncryptionKey string `yaml:"encryption_key" json:"encryption_key"`
}

// ServeConfig configures the inspection server.
type ServeConfig struct {
	Port string `yaml:"port" json:"port"`
}

// Config represents the structure of fabricmock.yaml.
type Config struct {
	LogLevel string      `yaml:"log_level" json:"log_level"`
	Redis    RedisConfig `yaml:"redis" json:"redis"`
	Serve    ServeConfig `yaml:"serve" json:"serve"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "fabricmock:root:",
		},
		Serve: ServeConfig{
			Port: "8080",
		},
	}
}

// Load reads a configuration file (YAML or JSON) on top of Default.
// A missing file is not an error unless required is true.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return cfg, nil
}
