package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	serr "mdtui/internal/errors"

	"gopkg.in/yaml.v3"
)

// AppName names the settings directory under ~/.config
const AppName = "mdtui"

// Config represents the persisted application settings.
type Config struct {
	FolderPath       string `yaml:"folder_path,omitempty"` // Base folder for notes; empty until `mdtui config` runs
	DefaultExtension string `yaml:"default_extension"`     // Appended by `open` when the name has no extension
	Editor           struct {
		TabWidth    int  `yaml:"tab_width"`    // Spaces inserted for Tab in edit mode
		LineNumbers bool `yaml:"line_numbers"` // Show the line-number gutter
	} `yaml:"editor"`
	Log struct {
		File  string `yaml:"file"`  // Log file; empty discards logs while the editor runs
		Level string `yaml:"level"` // debug, info, warn or error
		JSON  bool   `yaml:"json"`  // JSON lines instead of key=value text
	} `yaml:"log"`
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

// DefaultPath returns ~/.config/mdtui/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", serr.NewConfigError("cannot locate home directory", "", serr.ConfigNotFound, err)
	}
	return filepath.Join(home, ".config", AppName, "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	cfg.FolderPath = tempCfg.FolderPath
	if tempCfg.DefaultExtension != "" {
		cfg.DefaultExtension = tempCfg.DefaultExtension
	}
	if tempCfg.Editor.TabWidth != 0 {
		cfg.Editor.TabWidth = tempCfg.Editor.TabWidth
	}
	// A file that mentions the editor section at all decides line numbers
	if hasKey(data, "editor", "line_numbers") {
		cfg.Editor.LineNumbers = tempCfg.Editor.LineNumbers
	}
	cfg.Log.File = tempCfg.Log.File
	if tempCfg.Log.Level != "" {
		cfg.Log.Level = tempCfg.Log.Level
	}
	cfg.Log.JSON = tempCfg.Log.JSON

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return cfg, nil
}

// hasKey reports whether the YAML document sets section.key.
func hasKey(data []byte, section, key string) bool {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return false
	}
	sec, ok := raw[section].(map[string]interface{})
	if !ok {
		return false
	}
	_, ok = sec[key]
	return ok
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.DefaultExtension = ".md"
	cfg.Editor.TabWidth = 4
	cfg.Editor.LineNumbers = true
	cfg.Log.Level = "info"
	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid configuration: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetFolder stores folder as an absolute, cleaned path.
func (c *Config) SetFolder(folder string) error {
	if strings.TrimSpace(folder) == "" {
		return serr.NewConfigError("empty folder path", "folder_path", serr.InvalidConfig, nil)
	}
	abs, err := filepath.Abs(folder)
	if err != nil {
		return serr.NewConfigError("cannot resolve folder path", "folder_path", serr.InvalidConfig, err)
	}
	c.FolderPath = abs
	return nil
}

// Folder returns the configured notes folder or ErrFolderNotConfigured.
func (c *Config) Folder() (string, error) {
	if c == nil || c.FolderPath == "" {
		return "", serr.ErrFolderNotConfigured
	}
	return c.FolderPath, nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if c.FolderPath != "" && !filepath.IsAbs(c.FolderPath) {
		return serr.NewConfigError("folder path must be absolute", "folder_path", serr.InvalidConfig, nil)
	}

	if c.DefaultExtension != "" && !strings.HasPrefix(c.DefaultExtension, ".") {
		return serr.NewConfigError("extension must start with a dot", "default_extension", serr.InvalidConfig, nil)
	}

	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return serr.NewConfigError(fmt.Sprintf("tab width %d out of range 1-16", c.Editor.TabWidth), "editor.tab_width", serr.InvalidConfig, nil)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[c.Log.Level] {
		return serr.NewConfigError(fmt.Sprintf("invalid log level %q", c.Log.Level), "log.level", serr.InvalidConfig, nil)
	}

	return nil
}
