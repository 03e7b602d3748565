package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Manager reads settings from the process environment.
type Manager interface {
	GetString(key string) (string, error)
	GetStringWithDefault(key, defaultValue string) string
	RequireString(key string) string
	GetInt(key string) (int, error)
	GetIntWithDefault(key string, defaultValue int) int
	GetBoolWithDefault(key string, defaultValue bool) bool
}

// EnvManager implements Manager over os.Getenv
type EnvManager struct{}

// NewManager returns an environment backed Manager. Any .env files given are
// loaded first; missing files are ignored and existing variables win.
func NewManager(envFiles ...string) Manager {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}
	return &EnvManager{}
}

// GetString gets a configuration value by key, returns error if not found
func (m *EnvManager) GetString(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("configuration key %s not found", key)
	}
	return value, nil
}

// GetStringWithDefault gets a configuration value by key, returns default if not found
func (m *EnvManager) GetStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// RequireString gets a configuration value by key, panics if not found
func (m *EnvManager) RequireString(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required configuration key %s not found", key))
	}
	return value
}

// GetInt gets an integer configuration value by key
func (m *EnvManager) GetInt(key string) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return 0, fmt.Errorf("configuration key %s not found", key)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("configuration key %s has invalid integer value: %s", key, value)
	}
	return n, nil
}

func (m *EnvManager) GetIntWithDefault(key string, defaultValue int) int {
	n, err := m.GetInt(key)
	if err != nil {
		return defaultValue
	}
	return n
}

func (m *EnvManager) GetBoolWithDefault(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}
