package mdocx

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
)

// Config contains package-wide defaults for conversions
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string `yaml:"log_level"`
	// Theme is the theme name used when Options.Theme is empty
	Theme string `yaml:"theme"`
	// IncludeTOC enables table of contents generation
	IncludeTOC bool `yaml:"toc"`
	// LegacyInline selects the per-delimiter inline scanner
	LegacyInline bool `yaml:"legacy_inline"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	// Initialize global config from environment on first use
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		Theme:        string(DefaultTheme),
		IncludeTOC:   false,
		LegacyInline: false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()
	config.applyEnvironment()
	return config
}

func (c *Config) applyEnvironment() {
	// MDOCX_LOG_LEVEL
	if val := os.Getenv("MDOCX_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}

	// MDOCX_THEME
	if val := os.Getenv("MDOCX_THEME"); val != "" {
		c.Theme = val
	}

	// MDOCX_TOC
	if val := os.Getenv("MDOCX_TOC"); val != "" {
		c.IncludeTOC = parseBool(val)
	}

	// MDOCX_LEGACY_INLINE
	if val := os.Getenv("MDOCX_LEGACY_INLINE"); val != "" {
		c.LegacyInline = parseBool(val)
	}
}

// LoadConfigFile reads a YAML configuration file. Keys missing from the file
// keep their defaults, and MDOCX_* environment variables override the file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	config.applyEnvironment()
	return config, nil
}

// ParseConfig decodes YAML configuration on top of DefaultConfig
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// YAML encodes the configuration in the format LoadConfigFile reads
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// NewConfigWithDefaults creates a new configuration with defaults applied to unset fields
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()

	if overrides == nil {
		return defaults
	}

	// Create a copy of the overrides
	config := *overrides

	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}

	if config.Theme == "" {
		config.Theme = defaults.Theme
	}

	return &config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if _, err := ParseTheme(c.Theme); err != nil {
		return err
	}

	return nil
}

// Options derives conversion options from the configuration
func (c *Config) Options() (Options, error) {
	theme, err := ParseTheme(c.Theme)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Theme:        theme,
		IncludeTOC:   c.IncludeTOC,
		LegacyInline: c.LegacyInline,
	}, nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
