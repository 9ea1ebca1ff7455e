package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-webpack-assets/internal/fileutil"
	"github.com/alnah/go-webpack-assets/internal/hints"
	"github.com/alnah/go-webpack-assets/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength    = 4096 // PATH_MAX on Linux
	MaxDirNameLength = 255  // single path segment
	MaxURLLength     = 2048 // Browser limit
)

// appDirName is the directory searched under os.UserConfigDir().
const appDirName = "webpack-assets"

// Default layout, matching the library defaults.
const (
	DefaultStatsFile = "stats.json"
	DefaultPublicDir = "public"
	DefaultOutputDir = "dist"
)

// Config holds project layout settings for the CLI.
type Config struct {
	ProjectDir string        `yaml:"projectDir"` // Empty = current directory
	PublicDir  string        `yaml:"publicDir"`  // Web root, relative to projectDir
	Webpack    WebpackConfig `yaml:"webpack"`
	BaseURL    string        `yaml:"baseURL"` // Origin for absolute tags (empty = disabled)
}

// WebpackConfig describes where the build writes its output.
type WebpackConfig struct {
	StatsFile string `yaml:"statsFile"` // Stats file, relative to projectDir
	OutputDir string `yaml:"outputDir"` // Output directory, relative to publicDir
}

// Validate checks field lengths and layout values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("projectDir", c.ProjectDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("publicDir", c.PublicDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("webpack.statsFile", c.Webpack.StatsFile, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("webpack.outputDir", c.Webpack.OutputDir, MaxDirNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("baseURL", c.BaseURL, MaxURLLength); err != nil {
		return err
	}

	if err := validateRelative("publicDir", c.PublicDir); err != nil {
		return err
	}
	if err := validateRelative("webpack.outputDir", c.Webpack.OutputDir); err != nil {
		return err
	}
	if c.BaseURL != "" && !fileutil.IsURL(c.BaseURL) {
		return fmt.Errorf("%w: baseURL: %q must start with http:// or https://", ErrInvalidField, c.BaseURL)
	}

	return nil
}

// ApplyDefaults fills empty layout fields with the stock webpack layout.
func (c *Config) ApplyDefaults() {
	if c.PublicDir == "" {
		c.PublicDir = DefaultPublicDir
	}
	if c.Webpack.StatsFile == "" {
		c.Webpack.StatsFile = DefaultStatsFile
	}
	if c.Webpack.OutputDir == "" {
		c.Webpack.OutputDir = DefaultOutputDir
	}
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateRelative rejects absolute paths and parent segments in directories
// that are joined under the project root.
func validateRelative(fieldName, value string) error {
	if value == "" {
		return nil
	}
	if filepath.IsAbs(value) {
		return fmt.Errorf("%w: %s: %q must be relative", ErrInvalidField, fieldName, value)
	}
	for _, seg := range strings.FieldsFunc(value, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return fmt.Errorf("%w: %s: %q must not contain ..", ErrInvalidField, fieldName, value)
		}
	}
	return nil
}

// DefaultConfig returns the stock webpack layout rooted at the current directory.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Empty fields keep their zero value; call ApplyDefaults after merging
// other sources.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
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
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/webpack-assets/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s%s", ErrConfigNotFound,
		strings.Join(triedPaths, ", "), hints.ForConfigNotFound(triedPaths))
}
