// Package config loads plugin configuration. JSON files hold per-plugin
// settings seeded from a default value; environment variables cover the
// process level settings.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mitchellh/go-homedir"
)

const fileExt = ".json"

// ConfigManager resolves configuration files inside a plugin's data folder.
type ConfigManager struct {
	dataDir string
}

// NewConfigManager creates the data folder if needed. A leading "~" is
// expanded to the user's home directory.
func NewConfigManager(dataDir string) (*ConfigManager, error) {
	dir, err := homedir.Expand(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data dir %s: %w", dataDir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &ConfigManager{dataDir: dir}, nil
}

// DefaultDataDir is ~/.craftkit, or ".craftkit" when no home is available.
func DefaultDataDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return ".craftkit"
	}
	return filepath.Join(home, ".craftkit")
}

func (m *ConfigManager) DataDir() string { return m.dataDir }

// Path returns the file for a config name; ".json" is added when missing and
// the name may contain sub folders.
func (m *ConfigManager) Path(name string) string {
	if !strings.HasSuffix(strings.ToLower(name), fileExt) {
		name += fileExt
	}
	return filepath.Join(m.dataDir, filepath.FromSlash(name))
}

// Config is a typed handle on one JSON configuration file.
type Config[T any] struct {
	path     string
	defaults T
	value    T
	mu       sync.RWMutex
}

// LoadConfig loads name from the manager's data folder. A missing file is
// created from defaults; an existing one is decoded over a copy of the
// defaults so keys absent from the file keep their default value.
func LoadConfig[T any](m *ConfigManager, name string, defaults T) (*Config[T], error) {
	c := &Config[T]{path: m.Path(name), defaults: defaults}

	if _, err := os.Stat(c.path); errors.Is(err, os.ErrNotExist) {
		value, err := clone(defaults)
		if err != nil {
			return nil, fmt.Errorf("failed to copy defaults for %s: %w", c.path, err)
		}
		c.value = value
		if err := c.Save(); err != nil {
			return nil, err
		}
		return c, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to check config %s: %w", c.path, err)
	}

	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config[T]) Path() string { return c.path }

// Get returns the current value.
func (c *Config[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Update applies fn to the value and optionally writes it to disk.
func (c *Config[T]) Update(fn func(*T), save bool) error {
	c.mu.Lock()
	fn(&c.value)
	c.mu.Unlock()

	if save {
		return c.Save()
	}
	return nil
}

// Save writes the value as indented JSON without HTML escaping.
func (c *Config[T]) Save() error {
	c.mu.RLock()
	data, err := encode(c.value)
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode config %s: %w", c.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	return os.WriteFile(c.path, data, 0644)
}

// Reload reads the file again, starting from the defaults.
func (c *Config[T]) Reload() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", c.path, err)
	}

	value, err := decodeOver(c.defaults, data)
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", c.path, err)
	}

	c.mu.Lock()
	c.value = value
	c.mu.Unlock()
	return nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// clone deep-copies v through JSON so maps and slices in the defaults are
// never shared with the live value.
func clone[T any](v T) (T, error) {
	var out T
	data, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(data, &out)
	return out, err
}

func decodeOver[T any](defaults T, data []byte) (T, error) {
	value, err := clone(defaults)
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, err
	}
	return value, nil
}
