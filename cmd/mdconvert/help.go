package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdconvert [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert between Markdown and HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Input file (omit to read stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -t, --to <format>         Target format: html, markdown (default: html)")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -d, --detect              Print the detected content type and exit")
	fmt.Fprintln(w, "  -s, --stats               Print a conversion summary to stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --no-tables           Disable pipe table rendering")
	fmt.Fprintln(w, "      --no-breaks           Do not turn soft line breaks into <br>")
	fmt.Fprintln(w, "      --no-gfm              Disable GFM extensions")
	fmt.Fprintln(w, "      --no-smart-lists      Disable list spacing normalization")
	fmt.Fprintln(w, "      --no-header-ids       Disable heading slug ids")
	fmt.Fprintln(w, "      --no-highlight        Disable syntax highlighting")
	fmt.Fprintln(w, "      --pedantic            Strict original-Markdown semantics")
	fmt.Fprintln(w, "      --smartypants         Typographic quotes and dashes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show processing details")
	fmt.Fprintln(w, "      --version             Show version information")
}
