package mdconvert

import "github.com/yuin/goldmark-emoji/definition"

// ContentType classifies raw input text by its dominant markup format.
type ContentType string

// Content type verdicts produced by DetectContentType.
const (
	ContentTypeHTML     ContentType = "html"
	ContentTypeMarkdown ContentType = "markdown"
	ContentTypeMixed    ContentType = "mixed"
	ContentTypePlain    ContentType = "plain"
)

// ConversionResult is the universal output of any conversion direction.
type ConversionResult struct {
	// Content is the converted output. Empty on total failure; a zero
	// ConversionResult is a valid empty result.
	Content string

	// Warnings are human-readable fidelity notes in detection order.
	// An empty slice means a clean conversion.
	Warnings []string

	// DataLoss is true iff at least one warning reflects content the
	// target format cannot represent. Purely informational warnings
	// (e.g. "Tables detected") do not set it.
	DataLoss bool

	// OriginalLength and ConvertedLength are character (rune) counts of
	// input and output, used only for diagnostics.
	OriginalLength  int
	ConvertedLength int
}

// GFMOptions configures a single Markdown render. Immutable per call.
type GFMOptions struct {
	Tables          bool // render pipe tables
	Breaks          bool // soft line breaks become <br>
	Pedantic        bool // strict original-Markdown semantics, no GFM extras
	GFM             bool // strikethrough, task lists, autolinks
	SmartLists      bool // normalize list spacing before parsing
	Smartypants     bool // typographic quotes and dashes
	HeaderIDs       bool // generate slug ids on headings
	SyntaxHighlight bool // tokenize fenced code by declared language
}

// DefaultGFMOptions returns render options with default values.
func DefaultGFMOptions() *GFMOptions {
	return &GFMOptions{
		Tables:          true,
		Breaks:          true,
		Pedantic:        false,
		GFM:             true,
		SmartLists:      true,
		Smartypants:     false,
		HeaderIDs:       true,
		SyntaxHighlight: true,
	}
}

// resolve returns the effective options for a render call.
// Nil means use the engine-level defaults.
func (o *GFMOptions) resolve(fallback GFMOptions) GFMOptions {
	if o == nil {
		return fallback
	}
	return *o
}

// Option configures an Engine.
type Option func(*Engine)

// engineConfig holds internal configuration for Engine.
type engineConfig struct {
	options GFMOptions
	emojis  definition.Emojis
}

// WithGFMOptions sets the engine-level default render options.
// Per-call options passed to MarkdownToHTML take precedence.
// Panics if opts is nil (programmer error, similar to time.NewTicker).
func WithGFMOptions(opts *GFMOptions) Option {
	if opts == nil {
		panic("mdconvert: WithGFMOptions requires non-nil options")
	}
	return func(e *Engine) {
		e.cfg.options = *opts
	}
}

// WithEmojis sets the shortcode-to-glyph table used for :name: expansion.
// Defaults to the GitHub emoji set.
func WithEmojis(emojis definition.Emojis) Option {
	return func(e *Engine) {
		e.cfg.emojis = emojis
	}
}
