// Package resolver turns entrypoint names into deduplicated, validated asset
// URLs and filesystem paths, and aggregates CSS content for inlining.
package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/alnah/go-webpack-assets/internal/fileutil"
	"github.com/alnah/go-webpack-assets/internal/manifest"
)

// ManifestSource supplies the parsed manifest. *manifest.Loader implements it.
type ManifestSource interface {
	Load() (*manifest.Manifest, error)
	Path() string
}

// Layout describes where built files live.
// Files are expected at {ProjectDir}/{PublicDir}/{OutputDir}/{filename}
// and served at /{OutputDir}/{filename}.
type Layout struct {
	ProjectDir string
	PublicDir  string
	OutputDir  string
}

// ResolvedAsset is one validated asset of a resolution.
type ResolvedAsset struct {
	Entrypoint string // first entrypoint that produced this URL
	URL        string // root-relative, e.g. /dist/app.css
	Path       string // absolute or project-relative filesystem path
}

// Resolver resolves entrypoints against a manifest. Safe for concurrent use.
type Resolver struct {
	source    ManifestSource
	urlPrefix string
	assetDir  string
	readFile  func(string) ([]byte, error)
}

// New creates a Resolver reading the manifest from source.
func New(source ManifestSource, layout Layout) *Resolver {
	return &Resolver{
		source:    source,
		urlPrefix: path.Join("/", filepath.ToSlash(layout.OutputDir)),
		assetDir:  filepath.Join(layout.ProjectDir, layout.PublicDir, layout.OutputDir),
		readFile:  os.ReadFile,
	}
}

// AssetDir returns the directory asset files are resolved against.
func (r *Resolver) AssetDir() string {
	return r.assetDir
}

// Assets resolves names to the assets of type t in first-seen order.
//
// Blank names are skipped; if none remain, Assets returns nil without
// touching the manifest. Any unknown entrypoint or missing file fails the
// whole call with no partial result. A known entrypoint with no files of
// type t contributes nothing and is not an error.
func (r *Resolver) Assets(names []string, t manifest.AssetType) ([]ResolvedAsset, error) {
	names = CompactNames(names)
	if len(names) == 0 {
		return nil, nil
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", manifest.ErrInvalidAssetType, string(t))
	}

	m, err := r.source.Load()
	if err != nil {
		return nil, err
	}

	var assets []ResolvedAsset
	seen := make(map[string]struct{})
	for _, name := range names {
		entry, ok := m.Lookup(name)
		if !ok {
			return nil, &UnknownEntrypointError{
				Name:         name,
				ManifestPath: r.source.Path(),
				Available:    m.Entrypoints(),
			}
		}

		for _, file := range entry.Files(t) {
			url := path.Join(r.urlPrefix, file)
			if _, dup := seen[url]; dup {
				continue
			}

			filePath, err := r.locate(file)
			if err != nil {
				return nil, err
			}
			if !fileutil.FileExists(filePath) {
				return nil, &MissingAssetError{Path: filePath, Entrypoint: name, Requested: names}
			}

			seen[url] = struct{}{}
			assets = append(assets, ResolvedAsset{Entrypoint: name, URL: url, Path: filePath})
		}
	}
	return assets, nil
}

// URLs resolves names to root-relative URLs of type t.
// See Assets for ordering and failure semantics.
func (r *Resolver) URLs(names []string, t manifest.AssetType) ([]string, error) {
	assets, err := r.Assets(names, t)
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return nil, nil
	}
	urls := make([]string, len(assets))
	for i, a := range assets {
		urls[i] = a.URL
	}
	return urls, nil
}

// CSSContent concatenates the content of every CSS file of names, in
// resolution order, with no separator. Blank-only input returns "" without I/O.
func (r *Resolver) CSSContent(names []string) (string, error) {
	assets, err := r.Assets(names, manifest.CSS)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, a := range assets {
		data, err := r.readFile(a.Path) // #nosec G304 -- path contained in asset dir
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", &MissingAssetError{Path: a.Path, Entrypoint: a.Entrypoint, Requested: CompactNames(names)}
			}
			return "", fmt.Errorf("%w: %s: %v", ErrAssetRead, a.Path, err)
		}
		b.Write(data)
	}
	return b.String(), nil
}

// locate maps a manifest filename to its path under the asset directory.
func (r *Resolver) locate(file string) (string, error) {
	p := filepath.Join(r.assetDir, filepath.FromSlash(file))
	if !fileutil.WithinDir(r.assetDir, p) {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, file)
	}
	return p, nil
}

// CompactNames drops empty and whitespace-only names, keeping order.
// The input slice is not modified.
func CompactNames(names []string) []string {
	var out []string
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}
