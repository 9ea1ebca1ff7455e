package main

import (
	"fmt"

	webpackassets "github.com/alnah/go-webpack-assets"
)

// runURLs prints the URL of every asset of one type, one per line.
func runURLs(args []string, env *Environment) error {
	f, names, err := parseURLsFlags(args, env)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return ErrNoEntries
	}
	t, err := webpackassets.ParseAssetType(f.assetType)
	if err != nil {
		return err
	}

	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}

	urls, err := s.registry.URLs(t, names...)
	if err != nil {
		return err
	}
	for _, u := range urls {
		fmt.Fprintln(env.Stdout, u)
	}
	return nil
}
