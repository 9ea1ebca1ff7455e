package webpackassets

import (
	"log/slog"

	"github.com/alnah/go-webpack-assets/internal/manifest"
	"github.com/alnah/go-webpack-assets/internal/resolver"
)

// Registry resolves entrypoints of one project's manifest.
// Create with NewRegistry. Safe for concurrent use.
type Registry struct {
	loader   *manifest.Loader
	resolver *resolver.Resolver
	tags     *TagFormatter
	logger   *slog.Logger
}

// NewRegistry creates a Registry for the project rooted at projectDir.
// The manifest is not read until the first resolution.
// Returns ErrEmptyProjectDir or ErrInvalidBaseURL for bad configuration.
func NewRegistry(projectDir string, opts ...Option) (*Registry, error) {
	if projectDir == "" {
		return nil, ErrEmptyProjectDir
	}

	cfg := registryConfig{
		manifestPath: DefaultManifestPath,
		publicDir:    DefaultPublicDir,
		outputDir:    DefaultOutputDir,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.manifestPath == "" {
		cfg.manifestPath = DefaultManifestPath
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	urls := cfg.urlResolver
	if urls == nil && cfg.baseURL != "" {
		base, err := NewBaseURLResolver(cfg.baseURL)
		if err != nil {
			return nil, err
		}
		urls = base
	}

	loader := manifest.NewLoader(projectDir, cfg.manifestPath, cfg.logger)
	return &Registry{
		loader: loader,
		resolver: resolver.New(loader, resolver.Layout{
			ProjectDir: projectDir,
			PublicDir:  cfg.publicDir,
			OutputDir:  cfg.outputDir,
		}),
		tags:   NewTagFormatter(urls),
		logger: cfg.logger,
	}, nil
}

// ManifestPath returns the full path of the stats file.
func (r *Registry) ManifestPath() string {
	return r.loader.Path()
}

// AssetDir returns the directory asset files are looked up in.
func (r *Registry) AssetDir() string {
	return r.resolver.AssetDir()
}

// URLs returns root-relative URLs of type t for the named entrypoints.
func (r *Registry) URLs(t AssetType, names ...string) ([]string, error) {
	urls, err := r.resolver.URLs(names, manifest.AssetType(t))
	if err != nil {
		return nil, convertError(err)
	}
	r.logger.Debug("resolved urls", "type", t, "entrypoints", names, "count", len(urls))
	return urls, nil
}

// CSSURLs returns stylesheet URLs for the named entrypoints.
func (r *Registry) CSSURLs(names ...string) ([]string, error) {
	return r.URLs(CSS, names...)
}

// JSURLs returns script URLs for the named entrypoints.
func (r *Registry) JSURLs(names ...string) ([]string, error) {
	return r.URLs(JS, names...)
}

// Assets is like URLs but also reports filesystem paths and the
// entrypoint each file was first reached through.
func (r *Registry) Assets(t AssetType, names ...string) ([]Asset, error) {
	resolved, err := r.resolver.Assets(names, manifest.AssetType(t))
	if err != nil {
		return nil, convertError(err)
	}
	if len(resolved) == 0 {
		return nil, nil
	}
	assets := make([]Asset, len(resolved))
	for i, a := range resolved {
		assets[i] = Asset{Entrypoint: a.Entrypoint, URL: a.URL, Path: a.Path}
	}
	return assets, nil
}

// CSSContent returns the concatenated content of every stylesheet of the
// named entrypoints, in URL order, with no separator.
func (r *Registry) CSSContent(names ...string) (string, error) {
	content, err := r.resolver.CSSContent(names)
	if err != nil {
		return "", convertError(err)
	}
	r.logger.Debug("aggregated css", "entrypoints", names, "bytes", len(content))
	return content, nil
}

// LinkTags renders a <link rel="stylesheet"> tag per stylesheet, one per line.
// With absolute set, URLs go through the configured URLResolver.
func (r *Registry) LinkTags(absolute bool, names ...string) (string, error) {
	urls, err := r.CSSURLs(names...)
	if err != nil {
		return "", err
	}
	return r.tags.LinkTags(urls, absolute)
}

// ScriptTags renders a <script> tag per script, one per line.
func (r *Registry) ScriptTags(absolute bool, names ...string) (string, error) {
	urls, err := r.JSURLs(names...)
	if err != nil {
		return "", err
	}
	return r.tags.ScriptTags(urls, absolute)
}

// Entrypoints lists every manifest entrypoint, sorted by name.
// Files are not checked on disk.
func (r *Registry) Entrypoints() ([]Entrypoint, error) {
	m, err := r.loader.Load()
	if err != nil {
		return nil, convertError(err)
	}

	names := m.Entrypoints()
	entries := make([]Entrypoint, 0, len(names))
	for _, name := range names {
		assets, _ := m.Lookup(name)
		entries = append(entries, Entrypoint{Name: name, CSS: assets.CSS, JS: assets.JS})
	}
	return entries, nil
}

// Entrypoint returns a single manifest entrypoint.
// Returns ErrUnknownEntrypoint if the manifest does not declare it.
func (r *Registry) Entrypoint(name string) (Entrypoint, error) {
	m, err := r.loader.Load()
	if err != nil {
		return Entrypoint{}, convertError(err)
	}
	assets, ok := m.Lookup(name)
	if !ok {
		return Entrypoint{}, convertError(&resolver.UnknownEntrypointError{
			Name:         name,
			ManifestPath: r.loader.Path(),
			Available:    m.Entrypoints(),
		})
	}
	return Entrypoint{Name: name, CSS: assets.CSS, JS: assets.JS}, nil
}
