package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
)

// defaultHighlightStyle is the chroma style used by --highlight.
const defaultHighlightStyle = "monokai"

// runSource prints the concatenated CSS of the named entrypoints.
func runSource(args []string, env *Environment) error {
	f, names, err := parseSourceFlags(args, env)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return ErrNoEntries
	}

	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}

	css, err := s.registry.CSSContent(names...)
	if err != nil {
		return err
	}
	if css == "" {
		return nil
	}

	if f.highlight {
		if err := quick.Highlight(env.Stdout, css, "css", "terminal256", f.style); err != nil {
			return fmt.Errorf("highlighting css: %w", err)
		}
		return nil
	}
	_, err = io.WriteString(env.Stdout, css)
	return err
}
