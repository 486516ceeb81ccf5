package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdfront <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  extract    Print the frontmatter of markdown files")
	fmt.Fprintln(w, "  render     Convert markdown files to HTML, skipping the frontmatter")
	fmt.Fprintln(w, "  split      Split one document into header, metadata and body")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdfront help <command>' for details on a specific command.")
}

// printCommonUsage prints flags shared by every command.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

// printExtractUsage prints usage for the extract command.
func printExtractUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdfront extract <file|dir>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read the header of each file and print its metadata as one list.")
	fmt.Fprintln(w, "Only the first --buffer-size bytes are read unless --full is set.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extraction:")
	fmt.Fprintln(w, "  -f, --full                Also return the body; a leading # heading")
	fmt.Fprintln(w, "                            becomes the title and leaves the body")
	fmt.Fprintln(w, "      --buffer-size <n>     Header scan window in bytes (default 2048)")
	fmt.Fprintln(w, "      --meta-format <s>     Header format: lines, yaml, toml")
	fmt.Fprintln(w, "      --date-format <s>     publish_date fallback format")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss")
	fmt.Fprintln(w, "                            Presets: iso, datetime, european, us, long")
	fmt.Fprintln(w, "      --allow-missing       Files without a header yield empty metadata")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --format <s>          json (default) or yaml")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  mdfront extract post.md")
	fmt.Fprintln(w, "  mdfront extract --full --format yaml ./content")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdfront render <file|dir>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown to HTML. The frontmatter is never rendered.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file, directory, or - for stdout")
	fmt.Fprintln(w, "                            (default: next to each source file)")
	fmt.Fprintln(w, "      --standalone          Wrap in a full HTML document using the metadata")
	fmt.Fprintln(w, "      --style <s>           Stylesheet name or .css path (default: default)")
	fmt.Fprintln(w, "                            Built-in: default, minimal")
	fmt.Fprintln(w, "      --style-dir <path>    Directory of custom {name}.css styles")
	fmt.Fprintln(w, "      --no-style            No stylesheet")
	fmt.Fprintln(w, "      --css <path>          Extra CSS file appended to the style")
	fmt.Fprintln(w, "      --base-url <url>      Resolve relative links and images against this URL")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --legacy              Safe mode only: no hard breaks, markup escaping")
	fmt.Fprintln(w, "                            or highlighting")
	fmt.Fprintln(w, "      --no-highlight        Disable code highlighting")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style name")
	fmt.Fprintln(w)
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  mdfront render post.md -o -")
	fmt.Fprintln(w, "  mdfront render --standalone -o ./public ./content")
}

// printSplitUsage prints usage for the split command.
func printSplitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdfront split <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Split a document at the first --- or +++ line. When no title is set,")
	fmt.Fprintln(w, "a leading # heading is moved out of the body into the title.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --format <s>          json (default) or yaml")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command or general usage.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "extract":
		printExtractUsage(env.Stdout)
	case "render":
		printRenderUsage(env.Stdout)
	case "split":
		printSplitUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdfront version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdfront help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
