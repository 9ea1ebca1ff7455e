// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// maxListed caps how many names ForUnknownEntrypoint prints.
const maxListed = 10

// StatsCommand is the webpack invocation that produces a parseable manifest.
const StatsCommand = "webpack --quiet --json > stats.json"

// ForStaleStats returns a hint for asset files listed in the manifest but
// absent on disk, which almost always means the stats file is out of date.
func ForStaleStats() string {
	return format("did you forget to re-create the stats file during the last build? run: " + StatsCommand)
}

// ForManifestNotFound returns hints for a missing manifest file.
func ForManifestNotFound() string {
	return formatHints([]string{
		"generate it with: " + StatsCommand,
		"or point --manifest at the stats file relative to the project directory",
	})
}

// ForUnknownEntrypoint suggests regenerating the stats file and lists the
// entrypoints the manifest does declare.
func ForUnknownEntrypoint(available []string) string {
	regenerate := "re-create the stats file if the entrypoint was added since the last build: " + StatsCommand
	if len(available) == 0 {
		return format(regenerate)
	}
	listed := available
	suffix := ""
	if len(listed) > maxListed {
		listed = listed[:maxListed]
		suffix = ", ..."
	}
	return formatHints([]string{"available: " + strings.Join(listed, ", ") + suffix, regenerate})
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/webpack-assets/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "webpack-assets") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForBaseURL returns a hint for absolute URLs requested without a base URL.
func ForBaseURL() string {
	return format("set --base-url or WEBPACK_ASSETS_BASE_URL (e.g. https://cdn.example.com)")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
