package manifest

import "errors"

// Sentinel errors for manifest operations.
var (
	// ErrNotFound indicates the manifest file does not exist.
	ErrNotFound = errors.New("manifest file not found")

	// ErrRead indicates an I/O error other than absence while reading the manifest.
	ErrRead = errors.New("failed to read manifest")

	// ErrParse indicates the manifest is not valid JSON/YAML or has an
	// unexpected shape.
	ErrParse = errors.New("failed to parse manifest")

	// ErrSectionMissing indicates the "entrypoints" section is absent or empty.
	ErrSectionMissing = errors.New(`absent or empty manifest section "entrypoints"`)

	// ErrInvalidAssetType indicates an asset type other than css or js.
	ErrInvalidAssetType = errors.New("invalid asset type")
)
