package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no file is given.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Port:             8080,
			AllowedOrigins:   []string{"*"},
			RequestTimeoutMS: 2000,
		},
		Routing: RoutingConfig{
			LinePenalty: 2,
		},
		Network: NetworkConfig{
			Source:          SourceSample,
			TransferMinutes: 3,
		},
	}
}

// Load reads path over the defaults (an empty path skips the file), applies
// environment overrides and validates the result.
func Load(path string) (*AppConfig, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every section.
func (c *AppConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c.Server); err != nil {
		return fmt.Errorf("config: server: %w", err)
	}
	if err := v.Struct(c.Routing); err != nil {
		return fmt.Errorf("config: routing: %w", err)
	}
	if err := v.Struct(c.Network); err != nil {
		return fmt.Errorf("config: network: %w", err)
	}

	return nil
}

// applyEnv overrides file values with non-empty environment variables.
func applyEnv(c *AppConfig) error {
	if v := os.Getenv("METROROUTE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: METROROUTE_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("METROROUTE_LINE_PENALTY"); v != "" {
		p, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: METROROUTE_LINE_PENALTY: %w", err)
		}
		c.Routing.LinePenalty = p
	}
	c.Network.Source = getEnv("METROROUTE_NETWORK_SOURCE", c.Network.Source)
	c.Network.Path = getEnv("METROROUTE_NETWORK_PATH", c.Network.Path)
	c.Network.DatabaseURL = getEnv("DATABASE_URL", c.Network.DatabaseURL)

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
