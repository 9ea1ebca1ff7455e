package main

import (
	"fmt"
	"text/tabwriter"
)

// runEntries lists every manifest entrypoint with its file counts.
// Files are not checked on disk; use check for that.
func runEntries(args []string, env *Environment) error {
	f, rest, err := parseEntriesFlags(args, env)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: entries takes no arguments, got %q", ErrUsage, rest)
	}

	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}

	entries, err := s.registry.Entrypoints()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
	if !f.common.quiet {
		fmt.Fprintln(tw, "ENTRYPOINT\tCSS\tJS")
	}
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", e.Name, len(e.CSS), len(e.JS))
	}
	return tw.Flush()
}
