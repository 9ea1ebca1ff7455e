package webpackassets

import (
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-webpack-assets/internal/hints"
)

const (
	linkTagFormat   = `<link rel="stylesheet" href="%s" />`
	scriptTagFormat = `<script src="%s"></script>`
)

// TagFormatter renders resolved URLs as HTML tags.
// It holds no resolution logic.
type TagFormatter struct {
	urls URLResolver // nil disables absolute URLs
}

// NewTagFormatter creates a TagFormatter. urls may be nil when only
// relative URLs are needed.
func NewTagFormatter(urls URLResolver) *TagFormatter {
	return &TagFormatter{urls: urls}
}

// LinkTags renders one stylesheet link per URL, joined by newlines.
func (f *TagFormatter) LinkTags(urls []string, absolute bool) (string, error) {
	return f.render(urls, absolute, linkTagFormat)
}

// ScriptTags renders one script tag per URL, joined by newlines.
func (f *TagFormatter) ScriptTags(urls []string, absolute bool) (string, error) {
	return f.render(urls, absolute, scriptTagFormat)
}

func (f *TagFormatter) render(urls []string, absolute bool, format string) (string, error) {
	if len(urls) == 0 {
		return "", nil
	}
	if absolute && f.urls == nil {
		return "", fmt.Errorf("%w%s", ErrNoURLResolver, hints.ForBaseURL())
	}

	tags := make([]string, len(urls))
	for i, u := range urls {
		if absolute {
			u = f.urls.AbsoluteURL(u)
		}
		tags[i] = fmt.Sprintf(format, html.EscapeString(u))
	}
	return strings.Join(tags, "\n"), nil
}
