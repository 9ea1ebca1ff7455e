// Package webpackassets resolves webpack entrypoints to the CSS and JS files
// they emit, using the bundler's statistics file as the source of truth.
//
// # Quick Start
//
// Point a Registry at the project root and ask for an entrypoint's files:
//
//	reg, err := webpackassets.NewRegistry("/srv/app")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	urls, err := reg.CSSURLs("common_layout", "homepage")
//	// ["/dist/common.css", "/dist/homepage.css"]
//
// The manifest is produced by the build, for example:
//
//	webpack --quiet --json > stats.json
//
// and assets are expected under {projectDir}/public/dist. Use WithManifestPath,
// WithPublicDir and WithOutputDir for other layouts.
//
// # Resolution Rules
//
//   - URLs are root-relative: /{outputDir}/{filename}.
//   - Results follow request order, then manifest order; a file shared by
//     several entrypoints appears once, at its first position.
//   - Every file is checked on disk. An unknown entrypoint or a missing file
//     fails the whole call (ErrUnknownEntrypoint, ErrAssetFileMissing).
//   - An entrypoint with no files of the requested type yields nothing.
//   - Blank names are ignored; no names at all returns an empty result
//     without reading the manifest.
//
// # Caching
//
// A Registry reads the manifest once, on first use, and keeps it for its
// lifetime. Rebuilding assets requires a new Registry (usually a restart).
//
// # Markup and Templates
//
// LinkTags and ScriptTags render <link> and <script> tags. Absolute URLs need
// a base URL (WithBaseURL) or a custom URLResolver (WithURLResolver).
//
// CSSContent concatenates stylesheet content for inlining, e.g. into email
// bodies. FuncMap exposes everything to html/template:
//
//	tmpl := template.New("page").Funcs(reg.FuncMap())
//
//	{{ print_css_link_tags "homepage" }}
//	<style>{{ entry_css_source "email" }}</style>
package webpackassets
