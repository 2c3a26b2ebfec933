package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2mail <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to mail bodies (default)")
	fmt.Fprintln(w, "  lint       Report markdown the mail format does not support")
	fmt.Fprintln(w, "  footers    List available footer sets")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2mail help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2mail convert [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to HTML and plain-text mail bodies.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (default: input.defaultDir, \"md\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A single file in a single format is printed to stdout unless -o is set.")
	fmt.Fprintln(w, "Directories write HTML to .html/ and text to .text/ by default.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: html, text, both")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -b, --batch               Convert the configured input directory")
	fmt.Fprintln(w, "  -r, --recursive           Include subdirectories")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Footer:")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory holding footers/<name>/")
	fmt.Fprintln(w, "      --footer <name>       Footer set name (default: default)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug diagnostics")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2MAIL_CONFIG, MD2MAIL_FORMAT, MD2MAIL_INPUT_DIR, MD2MAIL_HTML_DIR,")
	fmt.Fprintln(w, "  MD2MAIL_TEXT_DIR, MD2MAIL_ASSET_PATH, MD2MAIL_WORKERS")
}

// printLintUsage prints usage for the lint command.
func printLintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2mail lint [flags] [input...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report constructs that would pass through conversion literally.")
	fmt.Fprintln(w, "Exits with status 1 when issues are found.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -r, --recursive           Include subdirectories")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show issues")
	fmt.Fprintln(w, "  -v, --verbose             Show debug diagnostics")
}

// printFootersUsage prints usage for the footers command.
func printFootersUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2mail footers [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List footer sets; the selected one is marked with *.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --asset-path <dir>    Directory holding footers/<name>/")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
// Returns false when the command is unknown.
func runHelp(args []string, env *Environment) bool {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return true
	}

	switch args[0] {
	case cmdConvert:
		printConvertUsage(env.Stdout)
	case cmdLint:
		printLintUsage(env.Stdout)
	case cmdFooters:
		printFootersUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: md2mail version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: md2mail help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return false
	}
	return true
}
