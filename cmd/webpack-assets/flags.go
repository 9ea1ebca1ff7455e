package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config     string
	projectDir string
	manifest   string
	publicDir  string
	outputDir  string
	baseURL    string // registered by tags only
	quiet      bool
	verbose    bool
}

// urlsFlags holds flags for the urls command.
type urlsFlags struct {
	common    commonFlags
	assetType string
}

// sourceFlags holds flags for the source command.
type sourceFlags struct {
	common    commonFlags
	highlight bool
	style     string
}

// tagsFlags holds flags for the tags command.
type tagsFlags struct {
	common    commonFlags
	assetType string // empty = both
	absolute  bool
}

// entriesFlags holds flags for the entries command.
type entriesFlags struct {
	common commonFlags
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	common  commonFlags
	workers int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.projectDir, "project-dir", "p", "", "project root (default: current directory)")
	fs.StringVarP(&f.manifest, "manifest", "m", "", "stats file, relative to the project root")
	fs.StringVar(&f.publicDir, "public-dir", "", "web root, relative to the project root")
	fs.StringVar(&f.outputDir, "output-dir", "", "build output directory, relative to the web root")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// newFlagSet creates a FlagSet that reports to env.Stderr.
func newFlagSet(name string, env *Environment, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { usage(env.Stderr) }
	return fs
}

// parseFlagSet parses args and marks parse failures as usage errors.
func parseFlagSet(fs *flag.FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return fs.Args(), nil
}

func parseURLsFlags(args []string, env *Environment) (*urlsFlags, []string, error) {
	f := &urlsFlags{}
	fs := newFlagSet("urls", env, printURLsUsage)
	fs.StringVarP(&f.assetType, "type", "t", "css", "asset type: css or js")
	addCommonFlags(fs, &f.common)

	rest, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

func parseSourceFlags(args []string, env *Environment) (*sourceFlags, []string, error) {
	f := &sourceFlags{}
	fs := newFlagSet("source", env, printSourceUsage)
	fs.BoolVar(&f.highlight, "highlight", false, "colorize CSS for the terminal")
	fs.StringVar(&f.style, "style", defaultHighlightStyle, "highlight color scheme")
	addCommonFlags(fs, &f.common)

	rest, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

func parseTagsFlags(args []string, env *Environment) (*tagsFlags, []string, error) {
	f := &tagsFlags{}
	fs := newFlagSet("tags", env, printTagsUsage)
	fs.StringVarP(&f.assetType, "type", "t", "", "asset type: css or js (default: both)")
	fs.BoolVarP(&f.absolute, "absolute", "a", false, "prefix URLs with the base URL")
	fs.StringVar(&f.common.baseURL, "base-url", "", "origin for absolute URLs, e.g. https://cdn.example.com")
	addCommonFlags(fs, &f.common)

	rest, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

func parseEntriesFlags(args []string, env *Environment) (*entriesFlags, []string, error) {
	f := &entriesFlags{}
	fs := newFlagSet("entries", env, printEntriesUsage)
	addCommonFlags(fs, &f.common)

	rest, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

func parseCheckFlags(args []string, env *Environment) (*checkFlags, []string, error) {
	f := &checkFlags{}
	fs := newFlagSet("check", env, printCheckUsage)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)

	rest, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	if f.workers < 0 {
		return nil, nil, fmt.Errorf("%w: --workers must be >= 0, got %d", ErrUsage, f.workers)
	}
	return f, rest, nil
}
