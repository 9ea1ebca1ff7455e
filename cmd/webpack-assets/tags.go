package main

import (
	"fmt"
	"strings"

	webpackassets "github.com/alnah/go-webpack-assets"
)

// runTags prints <link> and <script> tags for the named entrypoints.
// Without --type, stylesheets come first, then scripts.
func runTags(args []string, env *Environment) error {
	f, names, err := parseTagsFlags(args, env)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return ErrNoEntries
	}

	var only webpackassets.AssetType
	if f.assetType != "" {
		only, err = webpackassets.ParseAssetType(f.assetType)
		if err != nil {
			return err
		}
	}

	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}

	var blocks []string
	if only == "" || only == webpackassets.CSS {
		tags, err := s.registry.LinkTags(f.absolute, names...)
		if err != nil {
			return err
		}
		if tags != "" {
			blocks = append(blocks, tags)
		}
	}
	if only == "" || only == webpackassets.JS {
		tags, err := s.registry.ScriptTags(f.absolute, names...)
		if err != nil {
			return err
		}
		if tags != "" {
			blocks = append(blocks, tags)
		}
	}

	if len(blocks) > 0 {
		fmt.Fprintln(env.Stdout, strings.Join(blocks, "\n"))
	}
	return nil
}
