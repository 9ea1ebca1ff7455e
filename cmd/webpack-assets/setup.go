package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	webpackassets "github.com/alnah/go-webpack-assets"
	"github.com/alnah/go-webpack-assets/internal/config"
)

// session is the resolved state shared by every command.
type session struct {
	registry *webpackassets.Registry
	logger   *slog.Logger
	config   *config.Config
	env      *envConfig
}

// newLogger returns a text logger on w.
// Verbose enables debug output; quiet keeps errors only.
func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newSession merges configuration sources and builds a Registry.
func newSession(f *commonFlags, env *Environment) (*session, error) {
	logger := newLogger(env.Stderr, f.verbose, f.quiet)
	warnUnknownEnvVars(logger)

	envCfg := loadEnvConfig()
	cfg, err := resolveConfig(f, envCfg)
	if err != nil {
		return nil, err
	}

	reg, err := newRegistry(cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration resolved",
		"manifest", reg.ManifestPath(),
		"assetDir", reg.AssetDir(),
		"baseURL", cfg.BaseURL)

	return &session{registry: reg, logger: logger, config: cfg, env: envCfg}, nil
}

// resolveConfig merges configuration sources.
// Priority: CLI flags > env vars > config file > defaults.
func resolveConfig(f *commonFlags, env *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	name := f.config
	if name == "" {
		name = env.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		cfg.ApplyDefaults()
	}

	applyEnvConfig(env, cfg)
	mergeFlags(f, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags overrides config values with explicitly set flags.
func mergeFlags(f *commonFlags, cfg *config.Config) {
	if f.projectDir != "" {
		cfg.ProjectDir = f.projectDir
	}
	if f.manifest != "" {
		cfg.Webpack.StatsFile = f.manifest
	}
	if f.publicDir != "" {
		cfg.PublicDir = f.publicDir
	}
	if f.outputDir != "" {
		cfg.Webpack.OutputDir = f.outputDir
	}
	if f.baseURL != "" {
		cfg.BaseURL = f.baseURL
	}
}

// newRegistry builds a Registry for cfg. An empty project directory means
// the current directory.
func newRegistry(cfg *config.Config, logger *slog.Logger) (*webpackassets.Registry, error) {
	projectDir := cfg.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}

	return webpackassets.NewRegistry(abs,
		webpackassets.WithManifestPath(cfg.Webpack.StatsFile),
		webpackassets.WithPublicDir(cfg.PublicDir),
		webpackassets.WithOutputDir(cfg.Webpack.OutputDir),
		webpackassets.WithBaseURL(cfg.BaseURL),
		webpackassets.WithLogger(logger),
	)
}
