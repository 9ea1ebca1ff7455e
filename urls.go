package webpackassets

import (
	"fmt"
	"net/url"

	"github.com/alnah/go-webpack-assets/internal/fileutil"
)

// URLResolver turns a root-relative URL into an absolute one.
// Hosts typically back it with their request or site configuration.
type URLResolver interface {
	AbsoluteURL(path string) string
}

// URLResolverFunc adapts a function to URLResolver.
type URLResolverFunc func(path string) string

func (f URLResolverFunc) AbsoluteURL(path string) string {
	return f(path)
}

// BaseURLResolver prefixes URLs with a fixed origin and optional base path.
type BaseURLResolver struct {
	base *url.URL
}

// NewBaseURLResolver parses base, which must be an http or https URL with a host.
// A path in base is kept: "https://cdn.example.com/app" turns "/dist/a.css"
// into "https://cdn.example.com/app/dist/a.css".
func NewBaseURLResolver(base string) (*BaseURLResolver, error) {
	if !fileutil.IsURL(base) {
		return nil, fmt.Errorf("%w: %q (must start with http:// or https://)", ErrInvalidBaseURL, base)
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidBaseURL, base)
	}

	u.RawQuery = ""
	u.Fragment = ""
	if u.Path == "" {
		u.Path = "/"
	}
	return &BaseURLResolver{base: u}, nil
}

// AbsoluteURL joins the base with path. Already absolute URLs are returned as is.
func (b *BaseURLResolver) AbsoluteURL(path string) string {
	if fileutil.IsURL(path) {
		return path
	}
	return b.base.JoinPath(path).String()
}

// Compile-time interface checks.
var (
	_ URLResolver = (*BaseURLResolver)(nil)
	_ URLResolver = URLResolverFunc(nil)
)
