// Package config provides configuration management for the catalogue publisher.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingDataFile          = errors.New("paths.data_file is required")
	ErrMissingContentDir        = errors.New("paths.content_dir is required")
	ErrMissingTmpDir            = errors.New("paths.tmp_dir is required")
	ErrInvalidMaxAttempts       = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("retry.timeout_sec must be at least 1")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat         = errors.New("logging.format must be 'text' or 'json'")
)

// Config represents the complete publisher configuration.
type Config struct {
	Publisher PublisherConfig `yaml:"publisher"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// PublisherConfig contains publisher-specific settings.
type PublisherConfig struct {
	Paths PathsConfig `yaml:"paths"`
	Retry RetryPolicy `yaml:"retry"`
}

// PathsConfig locates the catalogue input and content output on disk.
type PathsConfig struct {
	DataFile   string `yaml:"data_file"`
	ContentDir string `yaml:"content_dir"`
	TmpDir     string `yaml:"tmp_dir"`
}

// RetryPolicy defines retry behavior for outbound HTTP requests.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no config file is
// provided. The paths match the fixed layout the publisher has always
// used: catalogue under static/components, pages under content/components.
func DefaultConfig() *Config {
	return &Config{
		Publisher: PublisherConfig{
			Paths: PathsConfig{
				DataFile:   "static/components/data.json",
				ContentDir: "content/components",
				TmpDir:     "static/components/tmp",
			},
			Retry: RetryPolicy{
				MaxAttempts:       3,
				InitialDelayMs:    500,
				MaxDelayMs:        30000,
				BackoffMultiplier: 2.0,
				TimeoutSec:        30,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Publisher.Paths.DataFile == "" {
		return ErrMissingDataFile
	}

	if c.Publisher.Paths.ContentDir == "" {
		return ErrMissingContentDir
	}

	if c.Publisher.Paths.TmpDir == "" {
		return ErrMissingTmpDir
	}

	if c.Publisher.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Publisher.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Publisher.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if c.Publisher.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	// Cap at max delay
	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{DataFile: %s, ContentDir: %s, MaxAttempts: %d}",
		c.Publisher.Paths.DataFile,
		c.Publisher.Paths.ContentDir,
		c.Publisher.Retry.MaxAttempts,
	)
}
