package manifest

import (
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/alnah/go-webpack-assets/internal/yamlutil"
)

// AssetType selects one classification bucket of an entrypoint.
type AssetType string

const (
	CSS AssetType = "css"
	JS  AssetType = "js"
)

// ParseAssetType converts "css" or "js" (any case) to an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	switch t := AssetType(strings.ToLower(strings.TrimSpace(s))); t {
	case CSS, JS:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q (must be css or js)", ErrInvalidAssetType, s)
	}
}

// Valid reports whether t is CSS or JS.
func (t AssetType) Valid() bool {
	return t == CSS || t == JS
}

// EntrypointAssets holds one entrypoint's files in manifest order.
type EntrypointAssets struct {
	CSS []string
	JS  []string
}

// Files returns the bucket for t, or nil for an invalid type.
func (e EntrypointAssets) Files(t AssetType) []string {
	switch t {
	case CSS:
		return e.CSS
	case JS:
		return e.JS
	default:
		return nil
	}
}

// Manifest maps entrypoint names to their classified assets.
// It is never modified after Parse returns.
type Manifest struct {
	entries map[string]EntrypointAssets
}

// Lookup returns the assets of the named entrypoint.
func (m *Manifest) Lookup(name string) (EntrypointAssets, bool) {
	e, ok := m.entries[name]
	return e, ok
}

// Entrypoints returns all entrypoint names, sorted.
func (m *Manifest) Entrypoints() []string {
	names := make([]string, 0, len(m.entries))
	for name := range m.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of entrypoints.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// rawManifest is the on-disk schema; only the entrypoints section is decoded.
type rawManifest struct {
	Entrypoints map[string]*rawEntrypoint `yaml:"entrypoints"`
}

type rawEntrypoint struct {
	Assets assetList `yaml:"assets"`
}

// assetList accepts a list or a single value, each element being a filename
// or an object carrying the filename under "name".
type assetList []string

func (a *assetList) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	items, ok := raw.([]any)
	if !ok {
		if raw == nil {
			*a = nil
			return nil
		}
		items = []any{raw}
	}

	names := make([]string, 0, len(items))
	for i, item := range items {
		name, err := assetName(item)
		if err != nil {
			return fmt.Errorf("assets[%d]: %w", i, err)
		}
		names = append(names, name)
	}
	*a = names
	return nil
}

func assetName(item any) (string, error) {
	switch v := item.(type) {
	case string:
		return v, nil
	case map[string]any:
		if name, ok := v["name"].(string); ok {
			return name, nil
		}
		return "", errors.New(`object without string "name" field`)
	default:
		return "", fmt.Errorf("unsupported value of type %T", item)
	}
}

// Parse decodes manifest data. source names the file in error messages.
func Parse(data []byte, source string) (*Manifest, error) {
	var raw rawManifest
	if err := yamlutil.UnmarshalManifest(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, source, err)
	}

	if len(raw.Entrypoints) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSectionMissing, source)
	}

	m := &Manifest{entries: make(map[string]EntrypointAssets, len(raw.Entrypoints))}
	for name, entry := range raw.Entrypoints {
		var assets EntrypointAssets
		if entry != nil {
			assets = classify(entry.Assets)
		}
		m.entries[name] = assets
	}
	return m, nil
}

// classify splits filenames into CSS and JS by extension, preserving order.
func classify(files []string) EntrypointAssets {
	var e EntrypointAssets
	for _, f := range files {
		switch strings.ToLower(path.Ext(f)) {
		case ".css":
			e.CSS = append(e.CSS, f)
		case ".js":
			e.JS = append(e.JS, f)
		}
	}
	return e
}
