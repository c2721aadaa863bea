package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates structured HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// RenderOptions selects Markdown dialect features for one render call.
// It mirrors the public GFMOptions without importing the root package.
type RenderOptions struct {
	Tables          bool
	Breaks          bool
	Pedantic        bool
	GFM             bool
	SmartLists      bool
	Smartypants     bool
	HeaderIDs       bool
	SyntaxHighlight bool
}

// MarkdownRenderer abstracts Markdown to HTML conversion.
// Implementations must be safe for concurrent use.
type MarkdownRenderer interface {
	Render(markdown string, opts RenderOptions) (string, error)
}

// GoldmarkRenderer converts Markdown to an HTML fragment using goldmark.
// The goldmark instance is assembled per call from the requested options,
// keeping the renderer stateless across calls.
type GoldmarkRenderer struct{}

// NewGoldmarkRenderer creates a GoldmarkRenderer.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{}
}

// Render converts Markdown content to an HTML fragment.
// A goldmark parse panic is recovered and reported as an error so the caller
// can select the degraded rendering path.
func (r *GoldmarkRenderer) Render(markdown string, opts RenderOptions) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = ""
			err = fmt.Errorf("%w: parser panic: %v", ErrHTMLConversion, rec)
		}
	}()

	md := buildGoldmark(opts)

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// buildGoldmark assembles a goldmark instance from render options.
func buildGoldmark(opts RenderOptions) goldmark.Markdown {
	var exts []goldmark.Extender

	// Pedantic mode means strict original-Markdown semantics: no GFM extras.
	if opts.GFM && !opts.Pedantic {
		if opts.Tables {
			exts = append(exts, extension.Table)
		}
		exts = append(exts,
			extension.Strikethrough,
			extension.TaskList,
			extension.Linkify,
		)
	}
	if opts.Smartypants {
		exts = append(exts, extension.Typographer)
	}
	if opts.SyntaxHighlight {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				// CSS classes keep the fragment small and let callers style
				// tokens externally. Unknown languages pass through as-is.
				chromahtml.WithClasses(true),
			),
		))
	}

	var popts []parser.Option
	if opts.HeaderIDs {
		// Deterministic slug ids; duplicates get a -1, -2... suffix.
		popts = append(popts, parser.WithAutoHeadingID())
	}

	ropts := []renderer.Option{
		html.WithXHTML(), // Self-closing tags
	}
	if opts.Breaks {
		ropts = append(ropts, html.WithHardWraps()) // Treat newlines as <br>
	}

	return goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(popts...),
		goldmark.WithRendererOptions(ropts...),
	)
}

// GFM feature signals used for informational warnings on the render path.
var (
	featurePipeTable = regexp.MustCompile(`(?m)^\s*\|.+\|\s*$`)
	featureTaskItem  = regexp.MustCompile(`(?m)^\s*[-*+]\s+\[( |x|X)\]\s`)
	featureFence     = regexp.MustCompile("(?m)^(```|~~~)")
)

// DetectGFMFeatures reports which GFM constructs the source uses.
// These notes are informational: HTML is a superset representation of
// Markdown, so none of them implies data loss.
func DetectGFMFeatures(markdown string) []string {
	var notes []string
	if featurePipeTable.MatchString(markdown) {
		notes = append(notes, "Tables detected")
	}
	if featureTaskItem.MatchString(markdown) {
		notes = append(notes, "Task lists detected")
	}
	if featureFence.MatchString(markdown) {
		notes = append(notes, "Code blocks detected")
	}
	return notes
}
