// Package config manages the packrat policy configuration file. The file is
// YAML, created with restrictive defaults on first run, and read fresh at the
// start of every mutating operation.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/fsutil"
	"github.com/packrat-tools/packrat/pkg/model"
)

// Config represents the persisted policy configuration.
type Config struct {
	// LicenseMode controls whether a non-OK license status blocks (restrictive)
	// or merely warns (permissive) on mutating operations.
	LicenseMode model.PolicyMode `yaml:"license_mode"`

	// AssetRootURL is the human-browsable root of the asset storage. It is
	// informational and only used when offering to open a browse location.
	AssetRootURL string `yaml:"asset_root_url,omitempty"`

	// CacheDir overrides the default archive cache directory when set.
	CacheDir string `yaml:"cache_dir,omitempty"`

	// LogLevel sets the logger verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level,omitempty"`
}

const yamlIndent = 2

// DefaultConfig returns a configuration with the restrictive default mode.
func DefaultConfig() *Config {
	return &Config{
		LicenseMode: model.ModeRestrictive,
		LogLevel:    "info",
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if !model.ValidMode(string(c.LicenseMode)) {
		return errors.Wrapf(errors.ErrConfigValidation, "unknown license mode %q", c.LicenseMode)
	}
	return nil
}

// Load reads the configuration from path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file %s", path)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}
	if config.LicenseMode == "" {
		config.LicenseMode = model.ModeRestrictive
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the configuration to path, replacing the file atomically.
func (c *Config) Save(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), fsutil.DirModeDefault); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	tempPath := path + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(err, "failed to create config file")
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(err, "failed to replace config file")
	}
	return nil
}

// LoadDefault loads the configuration from the default location, creating the
// file with defaults on first run.
func LoadDefault() (*Config, string, error) {
	path, err := fsutil.GetConfigPath()
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to resolve config path")
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		if err := cfg.Save(path); err != nil {
			return nil, "", err
		}
	}
	return cfg, path, nil
}
