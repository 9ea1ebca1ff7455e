package main

import (
	"errors"
	"os"

	webpackassets "github.com/alnah/go-webpack-assets"
	"github.com/alnah/go-webpack-assets/internal/config"
)

// Exit codes for the webpack-assets CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // All requested entrypoints resolved
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or unknown entrypoint
	ExitIO       = 3 // Manifest or asset file missing or unreadable
	ExitManifest = 4 // Manifest malformed or without entrypoints
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Manifest format errors (exit 4)
	if errors.Is(err, webpackassets.ErrManifestParse) ||
		errors.Is(err, webpackassets.ErrManifestSectionMissing) {
		return ExitManifest
	}

	// I/O errors (exit 3)
	if errors.Is(err, webpackassets.ErrManifestNotFound) ||
		errors.Is(err, webpackassets.ErrManifestRead) ||
		errors.Is(err, webpackassets.ErrAssetFileMissing) ||
		errors.Is(err, webpackassets.ErrAssetRead) ||
		errors.Is(err, webpackassets.ErrInvalidAssetPath) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoEntries) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, webpackassets.ErrUnknownEntrypoint) ||
		errors.Is(err, webpackassets.ErrInvalidAssetType) ||
		errors.Is(err, webpackassets.ErrInvalidBaseURL) ||
		errors.Is(err, webpackassets.ErrNoURLResolver) ||
		errors.Is(err, webpackassets.ErrEmptyProjectDir) {
		return ExitUsage
	}

	return ExitGeneral
}
