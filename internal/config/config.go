// Package config loads CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-katexify/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// Field length limits.
const (
	MaxBaseURLLength = 2048 // Browser limit
	MaxFormatLength  = 10   // "html", "markdown"
	MaxTimeoutLength = 20   // "250ms", "1.5s"
)

// Config holds all configuration for the katexify CLI.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Assets AssetsConfig `yaml:"assets"`
	Filter FilterConfig `yaml:"filter"`
}

// InputConfig defines input handling options.
type InputConfig struct {
	DefaultFormat string `yaml:"defaultFormat"` // "html" or "markdown" (empty = html)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = stdout/alongside input)
}

// AssetsConfig defines KaTeX asset tag injection options.
type AssetsConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"baseURL"` // KaTeX distribution base URL
	Defer   bool   `yaml:"defer"`   // deferred script loading
}

// FilterConfig defines matcher options.
type FilterConfig struct {
	MatchTimeout string `yaml:"matchTimeout"` // Go duration, e.g. "250ms" (empty = default)
}

// DefaultConfig returns a neutral configuration with all features disabled.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultFormat: ""},
		Output: OutputConfig{DefaultDir: ""},
		Assets: AssetsConfig{Enabled: false},
		Filter: FilterConfig{MatchTimeout: ""},
	}
}

// Validate checks field lengths and value syntax.
func (c *Config) Validate() error {
	if len(c.Assets.BaseURL) > MaxBaseURLLength {
		return fmt.Errorf("%w: assets.baseURL (%d > %d)", ErrFieldTooLong, len(c.Assets.BaseURL), MaxBaseURLLength)
	}
	if len(c.Input.DefaultFormat) > MaxFormatLength {
		return fmt.Errorf("%w: input.defaultFormat", ErrFieldTooLong)
	}
	if len(c.Filter.MatchTimeout) > MaxTimeoutLength {
		return fmt.Errorf("%w: filter.matchTimeout", ErrFieldTooLong)
	}
	if c.Filter.MatchTimeout != "" {
		d, err := time.ParseDuration(c.Filter.MatchTimeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: filter.matchTimeout %q (must be a positive Go duration)", ErrInvalidField, c.Filter.MatchTimeout)
		}
	}
	switch strings.ToLower(c.Input.DefaultFormat) {
	case "", "html", "markdown":
	default:
		return fmt.Errorf("%w: input.defaultFormat %q (must be html or markdown)", ErrInvalidField, c.Input.DefaultFormat)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-katexify/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-katexify", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
