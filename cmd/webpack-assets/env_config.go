package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-webpack-assets/internal/config"
)

// envPrefix is shared by every recognized variable.
const envPrefix = "WEBPACK_ASSETS_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // WEBPACK_ASSETS_CONFIG: config file name or path
	ProjectDir string // WEBPACK_ASSETS_PROJECT_DIR: project root
	Manifest   string // WEBPACK_ASSETS_MANIFEST: stats file, relative to project root
	PublicDir  string // WEBPACK_ASSETS_PUBLIC_DIR: web root, relative to project root
	OutputDir  string // WEBPACK_ASSETS_OUTPUT_DIR: build output, relative to web root
	BaseURL    string // WEBPACK_ASSETS_BASE_URL: origin for absolute tags
	Workers    int    // WEBPACK_ASSETS_WORKERS: parallel check workers
}

// knownEnvVars lists valid WEBPACK_ASSETS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"WEBPACK_ASSETS_CONFIG":      true,
	"WEBPACK_ASSETS_PROJECT_DIR": true,
	"WEBPACK_ASSETS_MANIFEST":    true,
	"WEBPACK_ASSETS_PUBLIC_DIR":  true,
	"WEBPACK_ASSETS_OUTPUT_DIR":  true,
	"WEBPACK_ASSETS_BASE_URL":    true,
	"WEBPACK_ASSETS_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("WEBPACK_ASSETS_CONFIG"),
		ProjectDir: os.Getenv("WEBPACK_ASSETS_PROJECT_DIR"),
		Manifest:   os.Getenv("WEBPACK_ASSETS_MANIFEST"),
		PublicDir:  os.Getenv("WEBPACK_ASSETS_PUBLIC_DIR"),
		OutputDir:  os.Getenv("WEBPACK_ASSETS_OUTPUT_DIR"),
		BaseURL:    os.Getenv("WEBPACK_ASSETS_BASE_URL"),
	}

	// Invalid or non-positive values fall back to auto sizing
	if workers := os.Getenv("WEBPACK_ASSETS_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized WEBPACK_ASSETS_* variable.
func warnUnknownEnvVars(logger *slog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig overrides config file values with set environment variables.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ProjectDir != "" {
		cfg.ProjectDir = env.ProjectDir
	}
	if env.Manifest != "" {
		cfg.Webpack.StatsFile = env.Manifest
	}
	if env.PublicDir != "" {
		cfg.PublicDir = env.PublicDir
	}
	if env.OutputDir != "" {
		cfg.Webpack.OutputDir = env.OutputDir
	}
	if env.BaseURL != "" {
		cfg.BaseURL = env.BaseURL
	}
}
