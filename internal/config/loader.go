package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if one exists
// 3. Override with environment variables
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFromFile(ConfigFilePath()); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigFilePath returns the path of the YAML config file under the XDG
// config directory. The file is optional.
func ConfigFilePath() string {
	return filepath.Join(xdg.ConfigHome, "backoffice", "config.yaml")
}

// fileConfig is the YAML shape of the config file. Durations are strings in
// Go duration syntax; absent fields leave the defaults untouched.
type fileConfig struct {
	Database struct {
		Dir          string `yaml:"dir"`
		Filename     string `yaml:"filename"`
		QueryTimeout string `yaml:"query_timeout"`
		WriteTimeout string `yaml:"write_timeout"`
	} `yaml:"database"`
	Validation struct {
		DescriptionMaxLength *int   `yaml:"description_max_length"`
		MaxEntryDuration     string `yaml:"max_entry_duration"`
	} `yaml:"validation"`
	Application struct {
		Timeout string `yaml:"timeout"`
		Verbose *bool  `yaml:"verbose"`
	} `yaml:"application"`
}

// loadFromFile merges a YAML config file into the configuration. A missing
// file is not an error.
func (l *Loader) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.Database.Dir != "" {
		l.config.Database.Dir = fc.Database.Dir
	}
	if fc.Database.Filename != "" {
		l.config.Database.Filename = fc.Database.Filename
	}
	if err := mergeDuration(&l.config.Database.QueryTimeout, fc.Database.QueryTimeout, "database.query_timeout"); err != nil {
		return err
	}
	if err := mergeDuration(&l.config.Database.WriteTimeout, fc.Database.WriteTimeout, "database.write_timeout"); err != nil {
		return err
	}
	if fc.Validation.DescriptionMaxLength != nil {
		l.config.Validation.DescriptionMaxLength = *fc.Validation.DescriptionMaxLength
	}
	if err := mergeDuration(&l.config.Validation.MaxEntryDuration, fc.Validation.MaxEntryDuration, "validation.max_entry_duration"); err != nil {
		return err
	}
	if err := mergeDuration(&l.config.Application.Timeout, fc.Application.Timeout, "application.timeout"); err != nil {
		return err
	}
	if fc.Application.Verbose != nil {
		l.config.Application.Verbose = *fc.Application.Verbose
	}

	return nil
}

func mergeDuration(dst *time.Duration, value, field string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*dst = d
	return nil
}
