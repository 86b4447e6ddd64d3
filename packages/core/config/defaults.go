package config

import "slices"

// DefaultConcurrency matches the runner's default for parallel cases.
const DefaultConcurrency = 5

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Mode:        "single",
		Reporters:   []string{"console"},
		Concurrency: DefaultConcurrency,
		Parallel:    boolPtr(false),
		Bail:        boolPtr(false),
		Verbose:     boolPtr(false),
		NoColor:     boolPtr(false),
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.Mode == defaults.Mode &&
		slices.Equal(c.Reporters, defaults.Reporters) &&
		c.OutputFile == defaults.OutputFile &&
		len(c.Tags) == 0 &&
		c.Concurrency == defaults.Concurrency &&
		c.GetParallel() == defaults.GetParallel() &&
		c.GetBail() == defaults.GetBail() &&
		c.GetVerbose() == defaults.GetVerbose() &&
		c.GetNoColor() == defaults.GetNoColor()
}
