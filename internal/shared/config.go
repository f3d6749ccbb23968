package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Missing-author policy values for [ConvertConfig.OnMissingAuthor].
const (
	MissingAuthorFail = "fail"
	MissingAuthorSkip = "skip"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Team    TeamConfig    `toml:"team"`
	Output  OutputConfig  `toml:"output"`
	Convert ConvertConfig `toml:"convert"`
}

// TeamConfig names the synthetic team all imported records belong to.
type TeamConfig struct {
	Name        string `toml:"name"`
	DisplayName string `toml:"display_name"`
}

// OutputConfig contains output document settings.
type OutputConfig struct {
	File string `toml:"file"`
}

// ConvertConfig contains conversion policy knobs.
type ConvertConfig struct {
	SkipDeletedMessages bool   `toml:"skip_deleted_messages"`
	OnMissingAuthor     string `toml:"on_missing_author"`
}

// Validate checks policy values that have a closed set of accepted inputs.
func (c *Config) Validate() error {
	switch c.Convert.OnMissingAuthor {
	// Empty means not configured; the engine falls back to fail.
	case "", MissingAuthorFail, MissingAuthorSkip:
		return nil
	default:
		return fmt.Errorf("%w: on_missing_author must be %q or %q, got %q",
			ErrInvalidConfig, MissingAuthorFail, MissingAuthorSkip, c.Convert.OnMissingAuthor)
	}
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
