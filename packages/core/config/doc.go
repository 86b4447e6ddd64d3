// Package config handles configuration loading and management for chaigo.
//
// It provides functionality for:
//   - Loading configuration from .chaigo.config.json or .chaigorc files
//   - Default configuration values
//   - Merging file settings with command-line overrides
package config
