package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webpack-assets <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  urls       Print asset URLs of entrypoints")
	fmt.Fprintln(w, "  source     Print the concatenated CSS of entrypoints")
	fmt.Fprintln(w, "  tags       Print <link> and <script> tags of entrypoints")
	fmt.Fprintln(w, "  entries    List entrypoints declared in the stats file")
	fmt.Fprintln(w, "  check      Verify that every asset file exists")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'webpack-assets help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Project:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -p, --project-dir <path>  Project root (default: current directory)")
	fmt.Fprintln(w, "  -m, --manifest <path>     Stats file, relative to the project root (default: stats.json)")
	fmt.Fprintln(w, "      --public-dir <path>   Web root, relative to the project root (default: public)")
	fmt.Fprintln(w, "      --output-dir <path>   Build output, relative to the web root (default: dist)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  WEBPACK_ASSETS_CONFIG, WEBPACK_ASSETS_PROJECT_DIR, WEBPACK_ASSETS_MANIFEST,")
	fmt.Fprintln(w, "  WEBPACK_ASSETS_PUBLIC_DIR, WEBPACK_ASSETS_OUTPUT_DIR, WEBPACK_ASSETS_BASE_URL,")
	fmt.Fprintln(w, "  WEBPACK_ASSETS_WORKERS")
}

// printURLsUsage prints usage for the urls command.
func printURLsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webpack-assets urls [flags] <entrypoint>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the root-relative URL of every asset, one per line.")
	fmt.Fprintln(w, "Files shared by several entrypoints are printed once.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --type <s>            Asset type: css, js (default: css)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printSourceUsage prints usage for the source command.
func printSourceUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webpack-assets source [flags] <entrypoint>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the stylesheets of entrypoints concatenated, for inlining.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --highlight           Colorize output for the terminal")
	fmt.Fprintln(w, "      --style <s>           Highlight color scheme (default: monokai)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printTagsUsage prints usage for the tags command.
func printTagsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webpack-assets tags [flags] <entrypoint>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print <link rel=\"stylesheet\"> and <script> tags, stylesheets first.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --type <s>            Only one asset type: css, js")
	fmt.Fprintln(w, "  -a, --absolute            Prefix URLs with the base URL")
	fmt.Fprintln(w, "      --base-url <url>      Origin for absolute URLs, e.g. https://cdn.example.com")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printEntriesUsage prints usage for the entries command.
func printEntriesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webpack-assets entries [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List entrypoints with their stylesheet and script counts.")
	fmt.Fprintln(w, "Files are not checked on disk.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webpack-assets check [flags] [entrypoint...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resolve every asset of the given entrypoints (default: all) and")
	fmt.Fprintln(w, "report each one that is missing on disk.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  all assets found")
	fmt.Fprintln(w, "  2  unknown entrypoint or invalid configuration")
	fmt.Fprintln(w, "  3  stats file or asset file missing")
	fmt.Fprintln(w, "  4  stats file malformed")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "urls":
		printURLsUsage(env.Stdout)
	case "source":
		printSourceUsage(env.Stdout)
	case "tags":
		printTagsUsage(env.Stdout)
	case "entries":
		printEntriesUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: webpack-assets version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: webpack-assets help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
