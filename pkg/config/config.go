// Package config loads the YAML configuration of the stemming server.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config is the server configuration file.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Stemmer StemmerConfig `yaml:"stemmer"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	MaxRequestSize int           `yaml:"max_request_size"`
	Concurrency    int           `yaml:"concurrency"`
}

// StemmerConfig configures the stemmer behind the server.
type StemmerConfig struct {
	Engine    string `yaml:"engine"`
	LowerCase bool   `yaml:"lower_case"`
	WarmUp    bool   `yaml:"warm_up"`
}

// LogConfig configures logging. An empty File means stdout.
type LogConfig struct {
	File string `yaml:"file"`
	JSON bool   `yaml:"json"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			MaxRequestSize: 1024 * 1024,
		},
		Stemmer: StemmerConfig{
			Engine: "porter",
			WarmUp: true,
		},
		Log: LogConfig{
			JSON: true,
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := Default()
	if err := yaml.Unmarshal(yamlFile, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("server port must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return errors.New("server timeouts must be greater than 0")
	}
	if c.Server.MaxRequestSize <= 0 {
		return errors.New("max request size must be greater than 0")
	}
	if c.Server.Concurrency < 0 {
		return errors.New("concurrency must not be negative")
	}
	switch c.Stemmer.Engine {
	case "porter", "reference":
	default:
		return fmt.Errorf("unknown stemmer engine %q", c.Stemmer.Engine)
	}
	return nil
}
