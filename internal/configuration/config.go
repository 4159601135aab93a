// Package configuration loads the settings of the fixture generator from a YAML file.
package configuration

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/backbone81/wal-fixtures/internal/fixture"
	"github.com/backbone81/wal-fixtures/internal/generator"
	"github.com/backbone81/wal-fixtures/internal/logging"
)

type FixedConfig struct {
	Entries []generator.KeyValue `yaml:"entries" validate:"dive"`
	Delay   time.Duration        `yaml:"delay" validate:"gte=0"`
}

type PaddedConfig struct {
	Entries   []generator.KeyValue `yaml:"entries" validate:"dive"`
	Threshold uint64               `yaml:"threshold"`

	// Dictionary is the path to a word list. The built-in word list is used when it is empty.
	Dictionary string `yaml:"dictionary"`

	// Seed makes the choice of words reproducible. A random seed is used when it is not set.
	Seed *uint64 `yaml:"seed"`
}

type Config struct {
	Directory string         `yaml:"directory" validate:"required"`
	Logging   logging.Config `yaml:"logging"`
	Fixed     FixedConfig    `yaml:"fixed"`
	Padded    PaddedConfig   `yaml:"padded"`
}

// DefaultConfig returns the configuration used when no configuration file is given.
func DefaultConfig() *Config {
	return &Config{
		Directory: fixture.DefaultDirectory,
		Logging: logging.Config{
			Level:  "info",
			Output: "stderr",
		},
		Fixed: FixedConfig{
			Entries: slices.Clone(generator.DefaultFixedEntries),
			Delay:   generator.DefaultFixedDelay,
		},
		Padded: PaddedConfig{
			Entries:   slices.Clone(generator.DefaultPaddedEntries),
			Threshold: generator.DefaultPaddedThreshold,
		},
	}
}

// LoadConfig reads the YAML file at the given path on top of the default configuration and validates the result.
// Settings missing from the file keep their default value.
func LoadConfig(configFilePath string) (*Config, error) {
	data, err := os.ReadFile(configFilePath) //nolint:gosec // The configuration path is chosen by the user.
	if err != nil {
		return nil, fmt.Errorf("reading configuration %q: %w", configFilePath, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing configuration %q: %w", configFilePath, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration %q: %w", configFilePath, err)
	}
	return config, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate makes sure that all settings are usable.
func (c *Config) Validate() error {
	return validate.Struct(c)
}
