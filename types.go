package webpackassets

import (
	"log/slog"
	"strings"

	"github.com/alnah/go-webpack-assets/internal/manifest"
)

// Default layout, matching a stock webpack setup served from public/.
const (
	DefaultManifestPath = "stats.json"
	DefaultPublicDir    = "public"
	DefaultOutputDir    = "dist"
)

// AssetType selects stylesheets or scripts.
type AssetType string

const (
	CSS AssetType = "css"
	JS  AssetType = "js"
)

// ParseAssetType converts "css" or "js" (any case) to an AssetType.
// Returns ErrInvalidAssetType for anything else.
func ParseAssetType(s string) (AssetType, error) {
	t, err := manifest.ParseAssetType(s)
	if err != nil {
		return "", convertError(err)
	}
	return AssetType(t), nil
}

// String implements fmt.Stringer.
func (t AssetType) String() string {
	return string(t)
}

// Asset is one resolved, existing asset file.
type Asset struct {
	Entrypoint string // first requested entrypoint that references the file
	URL        string // root-relative URL, e.g. /dist/app.css
	Path       string // filesystem path
}

// Entrypoint describes one manifest entrypoint.
type Entrypoint struct {
	Name string
	CSS  []string // filenames in manifest order
	JS   []string
}

// Option configures a Registry.
type Option func(*registryConfig)

// registryConfig holds internal configuration for Registry.
type registryConfig struct {
	manifestPath string
	publicDir    string
	outputDir    string
	baseURL      string
	urlResolver  URLResolver
	logger       *slog.Logger
}

// WithManifestPath sets the stats file path, relative to the project directory.
// An empty path keeps DefaultManifestPath.
func WithManifestPath(p string) Option {
	return func(c *registryConfig) {
		c.manifestPath = p
	}
}

// WithPublicDir sets the web root directory name, relative to the project directory.
func WithPublicDir(dir string) Option {
	return func(c *registryConfig) {
		c.publicDir = dir
	}
}

// WithOutputDir sets the build output directory, relative to the public directory.
// It is also the first URL path segment of every resolved asset.
func WithOutputDir(dir string) Option {
	return func(c *registryConfig) {
		c.outputDir = strings.Trim(dir, "/")
	}
}

// WithBaseURL enables absolute URLs in tags by joining base and each
// root-relative URL. Ignored when WithURLResolver is also given.
func WithBaseURL(base string) Option {
	return func(c *registryConfig) {
		c.baseURL = base
	}
}

// WithURLResolver sets the capability that absolutizes URLs in tags.
func WithURLResolver(r URLResolver) Option {
	return func(c *registryConfig) {
		c.urlResolver = r
	}
}

// WithLogger sets the logger for debug output. Defaults to discarding.
func WithLogger(l *slog.Logger) Option {
	return func(c *registryConfig) {
		c.logger = l
	}
}
