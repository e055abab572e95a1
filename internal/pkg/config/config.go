package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Logging LoggingConfig           `yaml:"logging"`
	Sources map[string]SourceConfig `yaml:"sources"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SourceConfig carries the per-sportsbook settings the settled-slip parser
// consults. Everything has a compiled-in default; a YAML file overrides at
// source granularity.
type SourceConfig struct {
	Book string `yaml:"book"`

	// DefaultUTCOffset is applied when a placed-at timestamp carries no
	// timezone abbreviation, or one that cannot be mapped precisely.
	DefaultUTCOffset string `yaml:"default_utc_offset"`

	// StatKeywords mark leg-row candidates and separate real selections from
	// promotional "parlay available" mentions.
	StatKeywords []string `yaml:"stat_keywords"`

	// TeamNicknames bound matchup extraction: a known nickname is the last
	// acceptable trailing token, so an over-greedy team regex cannot swallow
	// a following player name.
	TeamNicknames []string `yaml:"team_nicknames"`

	// Icon fill colors that signal a settled leg.
	WinColors  []string `yaml:"win_colors"`
	LossColors []string `yaml:"loss_colors"`
}

// Load reads a config file, layered over the embedded defaults.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Default returns the compiled-in configuration.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		// The embedded defaults are part of the build; failing to parse them
		// is a programming error, not a runtime condition.
		panic(fmt.Sprintf("embedded defaults.yaml is invalid: %v", err))
	}
	return &cfg
}

// Source returns the settings for one sportsbook, falling back to the
// embedded defaults when the book is unknown.
func (c *Config) Source(book string) SourceConfig {
	if sc, ok := c.Sources[book]; ok {
		return sc
	}
	sc := Default().Sources["fanduel"]
	sc.Book = book
	return sc
}
