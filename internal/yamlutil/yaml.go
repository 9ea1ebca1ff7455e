// Package yamlutil wraps YAML parsing to isolate the external dependency.
// JSON is a subset of YAML, so webpack stats files are decoded here as well.
// This allows swapping the underlying YAML library without modifying callers.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits config input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

// MaxManifestSize limits bundler manifests (default 64MB).
// Full webpack stats output with module graphs is routinely tens of megabytes.
var MaxManifestSize = 64 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any, limit int) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > limit {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), limit)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, MaxInputSize, yaml.Strict())
}

// UnmarshalManifest decodes a JSON or YAML bundler manifest.
// Unknown fields are ignored: stats files carry far more than entrypoints.
func UnmarshalManifest(data []byte, v any) error {
	return decode(data, v, MaxManifestSize)
}

func decode(data []byte, v any, limit int, opts ...yaml.DecodeOption) error {
	if err := validateInput(data, v, limit); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
