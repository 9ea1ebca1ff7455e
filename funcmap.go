package webpackassets

import (
	"fmt"
	"html/template"
)

// FuncMap exposes the registry to html/template:
//
//	entry_css_source    concatenated CSS (template.CSS) for <style> blocks
//	entry_css_urls      stylesheet URLs
//	entry_js_urls       script URLs
//	print_css_link_tags <link> tags (template.HTML), optional absolute flag
//	print_js_script_tags <script> tags (template.HTML), optional absolute flag
//
// Entrypoints may be given as one string, a []string, or several string
// arguments. Asset content and URLs come from the project's own build and
// are trusted.
func (r *Registry) FuncMap() template.FuncMap {
	return template.FuncMap{
		"entry_css_source": func(entries ...any) (template.CSS, error) {
			names, err := entryNames(entries...)
			if err != nil {
				return "", err
			}
			css, err := r.CSSContent(names...)
			return template.CSS(css), err // #nosec G203 -- build output
		},
		"entry_css_urls": func(entries ...any) ([]string, error) {
			names, err := entryNames(entries...)
			if err != nil {
				return nil, err
			}
			return r.CSSURLs(names...)
		},
		"entry_js_urls": func(entries ...any) ([]string, error) {
			names, err := entryNames(entries...)
			if err != nil {
				return nil, err
			}
			return r.JSURLs(names...)
		},
		"print_css_link_tags": func(entries any, absolute ...bool) (template.HTML, error) {
			names, err := entryNames(entries)
			if err != nil {
				return "", err
			}
			tags, err := r.LinkTags(firstOr(absolute, false), names...)
			return template.HTML(tags), err // #nosec G203 -- escaped by TagFormatter
		},
		"print_js_script_tags": func(entries any, absolute ...bool) (template.HTML, error) {
			names, err := entryNames(entries)
			if err != nil {
				return "", err
			}
			tags, err := r.ScriptTags(firstOr(absolute, false), names...)
			return template.HTML(tags), err // #nosec G203 -- escaped by TagFormatter
		},
	}
}

// entryNames flattens template arguments into a list of names.
// Accepts strings, []string and []any holding strings; nil is skipped.
func entryNames(args ...any) ([]string, error) {
	var names []string
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case string:
			names = append(names, v)
		case []string:
			names = append(names, v...)
		case []any:
			nested, err := entryNames(v...)
			if err != nil {
				return nil, err
			}
			names = append(names, nested...)
		default:
			return nil, fmt.Errorf("%w: got %T", ErrInvalidEntryNames, arg)
		}
	}
	return names, nil
}

func firstOr(values []bool, fallback bool) bool {
	if len(values) == 0 {
		return fallback
	}
	return values[0]
}
