package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for jsonlite
type Config struct {
	Indent   int       `yaml:"indent"`
	KeyStyle string    `yaml:"key_style"`
	Color    bool      `yaml:"color"`
	MaxDepth int       `yaml:"max_depth"`
	Stats    bool      `yaml:"stats"`
	Dev      DevConfig `yaml:"dev"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Indent:   2,
		KeyStyle: "none",
		Color:    false,
		MaxDepth: 0,
		Stats:    false,
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file, starting from defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Indent < 0 {
		return nil, fmt.Errorf("invalid config: indent must not be negative, got %d", cfg.Indent)
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("invalid config: max_depth must not be negative, got %d", cfg.MaxDepth)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonlite.yml", ".jsonlite.yaml", "jsonlite.yml", "jsonlite.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// CLIOverrides carries the flag values that may override the config file.
// Set fields win over file values only when they differ from the flag
// defaults, so a config file still applies when a flag was left alone.
type CLIOverrides struct {
	Indent   int
	KeyStyle string
	Color    bool
	MaxDepth int
	Stats    bool
	Debug    bool
}

// LoadConfigWithCLI loads config with CLI argument precedence
func LoadConfigWithCLI(configPath string, cli CLIOverrides) (*Config, error) {
	cfg := NewConfig()

	if configPath == "" {
		configPath = FindConfigFile()
	}
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	// Apply CLI overrides only when they differ from the flag defaults;
	// boolean flags override whenever set to true.
	if cli.Indent != 2 {
		cfg.Indent = cli.Indent
	}
	if cli.KeyStyle != "" && cli.KeyStyle != "none" {
		cfg.KeyStyle = cli.KeyStyle
	}
	if cli.MaxDepth != 0 {
		cfg.MaxDepth = cli.MaxDepth
	}
	if cli.Color {
		cfg.Color = true
	}
	if cli.Stats {
		cfg.Stats = true
	}
	if cli.Debug {
		cfg.Dev.Debug = true
	}

	return cfg, nil
}
