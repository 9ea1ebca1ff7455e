// Package manifest loads the bundler's compiled statistics file and exposes
// its entrypoints as typed, classified asset lists.
//
// # Manifest Shape
//
// Only the "entrypoints" section is read; everything else in the stats
// output (modules, chunks, timings) is ignored:
//
//	{
//	  "entrypoints": {
//	    "app": {"assets": ["runtime.js", "app.css", "app.js"]},
//	    "admin": {"assets": [{"name": "admin.css"}, {"name": "admin.js"}]},
//	    "email": {"assets": "email.css"}
//	  }
//	}
//
// Assets may be plain filenames (webpack 4), objects with a "name" field
// (webpack 5), or a single value instead of a list. Filenames are sorted
// into CSS and JS buckets by extension; anything else is dropped.
//
// # Caching
//
// A Loader reads and parses the file at most once. After the first
// successful Load the manifest is cached for the loader's lifetime and never
// re-validated against the file on disk: a rebuilt manifest requires a new
// Loader (in practice, a process restart). Failed loads are not cached.
package manifest
