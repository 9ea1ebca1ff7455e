package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	webpackassets "github.com/alnah/go-webpack-assets"
)

// maxCheckWorkers caps auto-sized parallelism; checks are stat calls.
const maxCheckWorkers = 16

// checkResult is the outcome for one entrypoint.
type checkResult struct {
	name  string
	css   int
	js    int
	bytes uint64
	err   error
}

// runCheck resolves the CSS and JS of each entrypoint in parallel and
// reports every failure. Without arguments, all entrypoints are checked.
// Arguments may be glob patterns, e.g. "admin/**".
func runCheck(ctx context.Context, args []string, env *Environment) error {
	f, patterns, err := parseCheckFlags(args, env)
	if err != nil {
		return err
	}

	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}

	names, err := expandEntries(s.registry, patterns)
	if err != nil {
		return err
	}

	workers := resolveWorkers(f.workers, s.env.Workers)
	s.logger.Debug("checking entrypoints", "count", len(names), "workers", workers)

	results := checkEntries(ctx, s.registry, names, workers)
	return reportCheck(results, f.common.quiet, env)
}

// expandEntries turns check arguments into entrypoint names.
// Plain names pass through unchanged, so unknown ones still fail resolution.
// Glob patterns are matched against the manifest and must match at least once.
// No arguments selects every entrypoint.
func expandEntries(reg *webpackassets.Registry, patterns []string) ([]string, error) {
	hasGlob := false
	for _, p := range patterns {
		if isGlob(p) {
			hasGlob = true
			break
		}
	}
	if len(patterns) > 0 && !hasGlob {
		return patterns, nil
	}

	entries, err := reg.Entrypoints()
	if err != nil {
		return nil, err
	}
	if len(patterns) == 0 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name
		}
		return names, nil
	}

	var names []string
	seen := make(map[string]bool)
	for _, p := range patterns {
		if !isGlob(p) {
			if !seen[p] {
				seen[p] = true
				names = append(names, p)
			}
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w: invalid pattern %q", ErrUsage, p)
		}
		matched := false
		for _, e := range entries {
			if ok, _ := doublestar.Match(p, e.Name); ok {
				matched = true
				if !seen[e.Name] {
					seen[e.Name] = true
					names = append(names, e.Name)
				}
			}
		}
		if !matched {
			return nil, fmt.Errorf("%w: no entrypoint matches %q", ErrUsage, p)
		}
	}
	return names, nil
}

func isGlob(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > env var > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 {
		return envWorkers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > maxCheckWorkers {
		return maxCheckWorkers
	}
	return n
}

// checkEntries resolves each entrypoint with at most workers in flight.
// Results keep the order of names. Entrypoints not started before ctx is
// canceled report ctx.Err().
func checkEntries(ctx context.Context, reg *webpackassets.Registry, names []string, workers int) []checkResult {
	results := make([]checkResult, len(names))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, name := range names {
		g.Go(func() error {
			results[i] = checkEntry(ctx, reg, name)
			return nil
		})
	}
	_ = g.Wait() // goroutines never fail; errors live in results

	return results
}

func checkEntry(ctx context.Context, reg *webpackassets.Registry, name string) checkResult {
	r := checkResult{name: name}
	if err := ctx.Err(); err != nil {
		r.err = err
		return r
	}

	css, err := reg.Assets(webpackassets.CSS, name)
	if err != nil {
		r.err = err
		return r
	}
	js, err := reg.Assets(webpackassets.JS, name)
	if err != nil {
		r.err = err
		return r
	}

	r.css, r.js = len(css), len(js)
	for _, a := range append(css, js...) {
		if info, err := os.Stat(a.Path); err == nil {
			r.bytes += uint64(info.Size()) // #nosec G115 -- file sizes are non-negative
		}
	}
	return r
}

// reportCheck prints one line per entrypoint and a summary.
// Returns a *checkError if any entrypoint failed.
func reportCheck(results []checkResult, quiet bool, env *Environment) error {
	var failed int
	var first error
	var total uint64
	for _, r := range results {
		if r.err != nil {
			failed++
			if first == nil {
				first = r.err
			}
			fmt.Fprintf(env.Stderr, "FAIL %s: %v\n", r.name, r.err)
			continue
		}
		total += r.bytes
		if !quiet {
			fmt.Fprintf(env.Stdout, "ok   %s (%d css, %d js, %s)\n", r.name, r.css, r.js, humanize.Bytes(r.bytes))
		}
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "%d entrypoints checked, %d failed, %s of assets\n",
			len(results), failed, humanize.Bytes(total))
	}
	if failed > 0 {
		return &checkError{failed: failed, total: len(results), first: first}
	}
	return nil
}
