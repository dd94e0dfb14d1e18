// Package config handles configuration loading and validation for filedrop.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	FileNotFound    ConfigErrorType = "FILE_NOT_FOUND"
	InvalidJSON     ConfigErrorType = "INVALID_JSON"
	ValidationError ConfigErrorType = "VALIDATION_ERROR"
)

// ConfigError represents an error that occurred during configuration loading.
type ConfigError struct {
	Type    ConfigErrorType
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("configuration file not found: %s", e.Path)
	case InvalidJSON:
		return fmt.Sprintf("invalid JSON in configuration file: %s", e.Message)
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// WatchConfig configures watch mode: new files appearing in the drop
// directory are deposited into the target folder alias.
type WatchConfig struct {
	DropDirectory     string   `json:"dropDirectory"`
	Folder            string   `json:"folder"`
	DebounceSeconds   int      `json:"debounceSeconds,omitempty"`
	StableThresholdMs int      `json:"stableThresholdMs,omitempty"`
	IgnorePatterns    []string `json:"ignorePatterns,omitempty"`
}

// Configuration holds all settings for filedrop.
type Configuration struct {
	Folders   map[string]string `json:"folders"`
	SafeNames bool              `json:"safenames,omitempty"`
	Watch     *WatchConfig      `json:"watch,omitempty"`
}

// Validate checks that the configuration has all required fields.
func (c *Configuration) Validate() error {
	for alias, dir := range c.Folders {
		if alias == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: "folders contains an empty alias",
			}
		}
		if dir == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("folders[%q] has an empty directory path", alias),
			}
		}
	}

	if c.Watch != nil {
		if c.Watch.DropDirectory == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: "watch.dropDirectory cannot be empty",
			}
		}
		if c.Watch.Folder == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: "watch.folder cannot be empty",
			}
		}
		if _, ok := c.Folders[c.Watch.Folder]; !ok {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("watch.folder %q is not a registered folder alias", c.Watch.Folder),
			}
		}
	}

	return nil
}

// ApplyWatchDefaults fills in zero-valued watch settings. A nil Watch
// block stays nil: watch mode is opt-in.
func (c *Configuration) ApplyWatchDefaults() {
	if c.Watch == nil {
		return
	}
	if c.Watch.DebounceSeconds == 0 {
		c.Watch.DebounceSeconds = 2
	}
	if c.Watch.StableThresholdMs == 0 {
		c.Watch.StableThresholdMs = 1000
	}
	// Empty IgnorePatterns means the watcher uses its defaults.
}

// HasFolder checks if an alias already exists in the configuration.
func (c *Configuration) HasFolder(alias string) bool {
	_, ok := c.Folders[alias]
	return ok
}

// SetFolder adds or replaces a folder alias mapping.
func (c *Configuration) SetFolder(alias, dir string) {
	if c.Folders == nil {
		c.Folders = make(map[string]string)
	}
	c.Folders[alias] = dir
}

// Load reads and parses a configuration file from the given path.
func Load(filePath string) (*Configuration, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{
				Type: FileNotFound,
				Path: filePath,
			}
		}
		return nil, &ConfigError{
			Type:    FileNotFound,
			Path:    filePath,
			Message: err.Error(),
		}
	}

	var config Configuration
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, &ConfigError{
			Type:    InvalidJSON,
			Message: err.Error(),
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.ApplyWatchDefaults()

	return &config, nil
}

// LoadOrCreate loads config if it exists, or returns an empty config if
// the file doesn't exist.
func LoadOrCreate(filePath string) (*Configuration, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Configuration{
				Folders: make(map[string]string),
			}, nil
		}
		return nil, &ConfigError{
			Type:    FileNotFound,
			Path:    filePath,
			Message: err.Error(),
		}
	}

	var config Configuration
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, &ConfigError{
			Type:    InvalidJSON,
			Message: err.Error(),
		}
	}

	config.ApplyWatchDefaults()

	return &config, nil
}

// Save serializes and writes a configuration to the given path.
func Save(config *Configuration, filePath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(filePath, data, 0644)
}
