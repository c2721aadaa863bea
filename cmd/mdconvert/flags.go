package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by every invocation.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds Markdown rendering toggles. The defaults come from the
// config file; disable flags switch individual features off.
type renderFlags struct {
	noTables     bool
	noBreaks     bool
	noGFM        bool
	noSmartLists bool
	noHeaderIDs  bool
	noHighlight  bool
	pedantic     bool
	smartypants  bool
}

// cliFlags holds all parsed flags for a run.
type cliFlags struct {
	common  commonFlags
	output  string
	to      string
	detect  bool
	stats   bool
	version bool
	render  renderFlags

	// fs is kept so merging can ask which flags were set explicitly.
	fs *flag.FlagSet
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show processing details")
}

// addRenderFlags adds rendering toggle flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.BoolVar(&f.noTables, "no-tables", false, "disable pipe table rendering")
	fs.BoolVar(&f.noBreaks, "no-breaks", false, "do not turn soft line breaks into <br>")
	fs.BoolVar(&f.noGFM, "no-gfm", false, "disable GFM extensions")
	fs.BoolVar(&f.noSmartLists, "no-smart-lists", false, "disable list spacing normalization")
	fs.BoolVar(&f.noHeaderIDs, "no-header-ids", false, "disable heading slug ids")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable syntax highlighting")
	fs.BoolVar(&f.pedantic, "pedantic", false, "strict original-Markdown semantics")
	fs.BoolVar(&f.smartypants, "smartypants", false, "typographic quotes and dashes")
}

// parseFlags parses CLI flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdconvert", flag.ContinueOnError)
	f := &cliFlags{fs: fs}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVarP(&f.to, "to", "t", "", "target format: html or markdown")
	fs.BoolVarP(&f.detect, "detect", "d", false, "print the detected content type and exit")
	fs.BoolVarP(&f.stats, "stats", "s", false, "print a conversion summary to stderr")
	fs.BoolVar(&f.version, "version", false, "show version information")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
