package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	mdconvert "github.com/alnah/go-mdconvert"
	"github.com/alnah/go-mdconvert/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage         = errors.New("invalid usage")
	ErrInvalidTarget = errors.New("invalid target format")
	ErrReadInput     = errors.New("failed to read input")
	ErrWriteOutput   = errors.New("failed to write output file")
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// run executes one CLI invocation. All I/O goes through the given streams so
// tests can drive it end to end.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags, positional, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if flags.version {
		fmt.Fprintf(stdout, "mdconvert %s\n", Version)
		return nil
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	mergeFlags(flags, cfg)

	input, err := readInput(positional, stdin)
	if err != nil {
		return err
	}

	engine := mdconvert.New(mdconvert.WithGFMOptions(renderOptions(cfg)))

	if flags.detect {
		fmt.Fprintln(stdout, engine.DetectContentType(input))
		return nil
	}

	target, err := targetType(cfg.Convert.Target)
	if err != nil {
		return err
	}

	result, err := engine.Convert(input, target)
	if err != nil {
		return err
	}

	if err := writeOutput(cfg.Output.Path, result.Content, stdout); err != nil {
		return err
	}

	if !flags.common.quiet {
		if cfg.Convert.Stats {
			fmt.Fprintln(stderr, engine.ConversionStats(result))
		}
		if flags.common.verbose {
			for _, w := range result.Warnings {
				fmt.Fprintf(stderr, "warning: %s\n", w)
			}
		}
	}

	return nil
}

// mergeFlags overrides config values with explicitly set CLI flags (CLI wins).
func mergeFlags(f *cliFlags, cfg *config.Config) {
	if f.fs.Changed("to") {
		cfg.Convert.Target = f.to
	}
	if f.fs.Changed("stats") {
		cfg.Convert.Stats = f.stats
	}
	if f.fs.Changed("output") {
		cfg.Output.Path = f.output
	}

	if f.render.noTables {
		cfg.Render.Tables = false
	}
	if f.render.noBreaks {
		cfg.Render.Breaks = false
	}
	if f.render.noGFM {
		cfg.Render.GFM = false
	}
	if f.render.noSmartLists {
		cfg.Render.SmartLists = false
	}
	if f.render.noHeaderIDs {
		cfg.Render.HeaderIDs = false
	}
	if f.render.noHighlight {
		cfg.Render.SyntaxHighlight = false
	}
	if f.render.pedantic {
		cfg.Render.Pedantic = true
	}
	if f.render.smartypants {
		cfg.Render.SmartyPants = true
	}
}

// renderOptions maps config render toggles to engine options.
func renderOptions(cfg *config.Config) *mdconvert.GFMOptions {
	return &mdconvert.GFMOptions{
		Tables:          cfg.Render.Tables,
		Breaks:          cfg.Render.Breaks,
		Pedantic:        cfg.Render.Pedantic,
		GFM:             cfg.Render.GFM,
		SmartLists:      cfg.Render.SmartLists,
		Smartypants:     cfg.Render.SmartyPants,
		HeaderIDs:       cfg.Render.HeaderIDs,
		SyntaxHighlight: cfg.Render.SyntaxHighlight,
	}
}

// targetType maps the config target string to a content type.
func targetType(target string) (mdconvert.ContentType, error) {
	switch strings.ToLower(target) {
	case "", "html":
		return mdconvert.ContentTypeHTML, nil
	case "markdown", "md":
		return mdconvert.ContentTypeMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q (must be html or markdown)", ErrInvalidTarget, target)
	}
}

// readInput reads the positional input file, or stdin when none is given.
func readInput(positional []string, stdin io.Reader) (string, error) {
	if len(positional) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		return string(data), nil
	}
	if len(positional) > 1 {
		return "", fmt.Errorf("%w: expected at most one input file, got %d", ErrUsage, len(positional))
	}

	data, err := os.ReadFile(positional[0]) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrReadInput, positional[0], err)
	}
	return string(data), nil
}

// writeOutput writes content to the output path, or stdout when empty.
// Stdout output gets a trailing newline for terminal friendliness; file
// output is written verbatim.
func writeOutput(path, content string, stdout io.Writer) error {
	if path == "" {
		fmt.Fprintln(stdout, content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	return nil
}
