package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-webpack-assets/internal/hints"
)

// Sentinel errors for resolution.
var (
	// ErrUnknownEntrypoint indicates a requested entrypoint is not declared in the manifest.
	ErrUnknownEntrypoint = errors.New("entrypoint not found in webpack stats file")

	// ErrAssetFileMissing indicates a manifest-listed file is absent from the output directory.
	ErrAssetFileMissing = errors.New("failed to locate webpack output file")

	// ErrAssetRead indicates an I/O error while reading an asset's content.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates a manifest filename that escapes the output directory.
	ErrPathTraversal = errors.New("asset path escapes output directory")
)

// UnknownEntrypointError reports an entrypoint absent from the manifest.
type UnknownEntrypointError struct {
	Name         string
	ManifestPath string
	Available    []string
}

func (e *UnknownEntrypointError) Error() string {
	return fmt.Sprintf("%v: %q in %s%s",
		ErrUnknownEntrypoint, e.Name, e.ManifestPath, hints.ForUnknownEntrypoint(e.Available))
}

func (e *UnknownEntrypointError) Unwrap() error {
	return ErrUnknownEntrypoint
}

// MissingAssetError reports a manifest-listed file that does not exist on disk.
type MissingAssetError struct {
	Path       string
	Entrypoint string
	Requested  []string // every entrypoint in the failed call
}

func (e *MissingAssetError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: %q for entry point %q", ErrAssetFileMissing, e.Path, e.Entrypoint)
	if len(e.Requested) > 1 {
		fmt.Fprintf(&b, " (requested: %s)", quoteAll(e.Requested))
	}
	b.WriteString(hints.ForStaleStats())
	return b.String()
}

func (e *MissingAssetError) Unwrap() error {
	return ErrAssetFileMissing
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
