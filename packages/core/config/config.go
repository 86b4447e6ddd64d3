package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/abdul-hamid-achik/chaigo/packages/reporter"
)

// Config represents the chaigo configuration
type Config struct {
	Mode        string   `json:"mode,omitempty"`        // single or multiple
	Reporters   []string `json:"reporters,omitempty"`   // Output reporters
	OutputFile  string   `json:"outputFile,omitempty"`  // File for machine-readable output
	Tags        []string `json:"tags,omitempty"`        // Default tag filter
	Parallel    *bool    `json:"parallel,omitempty"`
	Concurrency int      `json:"concurrency,omitempty"` // Number of parallel cases
	Bail        *bool    `json:"bail,omitempty"`
	Verbose     *bool    `json:"verbose,omitempty"`
	NoColor     *bool    `json:"noColor,omitempty"`
}

// boolPtr returns a pointer to a bool value
func boolPtr(b bool) *bool {
	return &b
}

// BoolPtr is exported version of boolPtr for external use
func BoolPtr(b bool) *bool {
	return boolPtr(b)
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetMode returns the reporting mode, defaulting to single
func (c *Config) GetMode() (reporter.Mode, error) {
	if c.Mode == "" {
		return reporter.Single, nil
	}
	return reporter.ParseMode(c.Mode)
}

// GetParallel returns the parallel setting, defaulting to false
func (c *Config) GetParallel() bool {
	return getBool(c.Parallel, false)
}

// GetBail returns the bail setting, defaulting to false
func (c *Config) GetBail() bool {
	return getBool(c.Bail, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// Reporter returns the first configured reporter, defaulting to console
func (c *Config) Reporter() string {
	if len(c.Reporters) == 0 {
		return "console"
	}
	return c.Reporters[0]
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".chaigo.config.json",
	"chaigo.config.json",
	".chaigorc",
	".chaigorc.json",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search for config file in current directory
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := config.GetMode(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Mode != "" {
		result.Mode = other.Mode
	}
	if other.OutputFile != "" {
		result.OutputFile = other.OutputFile
	}
	if other.Concurrency > 0 {
		result.Concurrency = other.Concurrency
	}

	// Boolean flags - only override if explicitly set in other config
	if other.Parallel != nil {
		result.Parallel = other.Parallel
	}
	if other.Bail != nil {
		result.Bail = other.Bail
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	if len(other.Reporters) > 0 {
		result.Reporters = slices.Clone(other.Reporters)
	}
	if len(other.Tags) > 0 {
		result.Tags = slices.Clone(other.Tags)
	}

	return &result
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}
