package webpackassets

import (
	"errors"

	"github.com/alnah/go-webpack-assets/internal/manifest"
	"github.com/alnah/go-webpack-assets/internal/resolver"
)

// Sentinel errors for library operations.
var (
	// Manifest errors.
	ErrManifestNotFound       = errors.New("manifest file not found")
	ErrManifestRead           = errors.New("failed to read manifest")
	ErrManifestParse          = errors.New("failed to parse manifest")
	ErrManifestSectionMissing = errors.New(`absent or empty manifest section "entrypoints"`)

	// Resolution errors.
	ErrUnknownEntrypoint = errors.New("entrypoint not found in webpack stats file")
	ErrAssetFileMissing  = errors.New("failed to locate webpack output file")
	ErrAssetRead         = errors.New("failed to read asset")
	ErrInvalidAssetPath  = errors.New("invalid asset path")
	ErrInvalidAssetType  = errors.New("invalid asset type")

	// Configuration and markup errors.
	ErrEmptyProjectDir   = errors.New("project directory cannot be empty")
	ErrInvalidBaseURL    = errors.New("invalid base URL")
	ErrNoURLResolver     = errors.New("absolute URLs requested without a URL resolver")
	ErrInvalidEntryNames = errors.New("entrypoint names must be strings")
)

// convertError maps internal errors to public errors.
func convertError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, manifest.ErrNotFound):
		return wrapError(ErrManifestNotFound, err)
	case errors.Is(err, manifest.ErrRead):
		return wrapError(ErrManifestRead, err)
	case errors.Is(err, manifest.ErrParse):
		return wrapError(ErrManifestParse, err)
	case errors.Is(err, manifest.ErrSectionMissing):
		return wrapError(ErrManifestSectionMissing, err)
	case errors.Is(err, manifest.ErrInvalidAssetType):
		return wrapError(ErrInvalidAssetType, err)
	case errors.Is(err, resolver.ErrUnknownEntrypoint):
		return wrapError(ErrUnknownEntrypoint, err)
	case errors.Is(err, resolver.ErrAssetFileMissing):
		return wrapError(ErrAssetFileMissing, err)
	case errors.Is(err, resolver.ErrAssetRead):
		return wrapError(ErrAssetRead, err)
	case errors.Is(err, resolver.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedError) Unwrap() error {
	return e.sentinel
}
