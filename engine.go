package mdconvert

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark-emoji/definition"

	"github.com/alnah/go-mdconvert/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.Classifier         = (*pipeline.SignalClassifier)(nil)
	_ pipeline.MarkdownNormalizer = (*pipeline.GFMNormalizer)(nil)
	_ pipeline.MarkdownRenderer   = (*pipeline.GoldmarkRenderer)(nil)
	_ pipeline.MarkdownRenderer   = (*pipeline.RegexRenderer)(nil)
	_ pipeline.HTMLSanitizer      = (*pipeline.PolicySanitizer)(nil)
	_ pipeline.MarkdownConverter  = (*pipeline.DocumentConverter)(nil)
)

// Engine is the content conversion and classification engine.
// Create with New(). All methods are pure functions over their inputs; an
// Engine holds no cross-call state and is safe for concurrent use.
type Engine struct {
	cfg        engineConfig
	classifier pipeline.Classifier
	normalizer pipeline.MarkdownNormalizer
	structured pipeline.MarkdownRenderer
	degraded   pipeline.MarkdownRenderer
	post       *pipeline.PostProcessor
	sanitizer  pipeline.HTMLSanitizer
	reverser   pipeline.MarkdownConverter
}

// New creates an Engine with default configuration.
// Use options to customize behavior (e.g., WithGFMOptions, WithEmojis).
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg: engineConfig{
			options: *DefaultGFMOptions(),
			emojis:  definition.Github(),
		},
		classifier: &pipeline.SignalClassifier{},
		normalizer: &pipeline.GFMNormalizer{},
		structured: pipeline.NewGoldmarkRenderer(),
		degraded:   pipeline.NewRegexRenderer(),
		sanitizer:  pipeline.NewPolicySanitizer(),
		reverser:   pipeline.NewDocumentConverter(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.post = pipeline.NewPostProcessor(e.cfg.emojis)
	return e
}

// DetectContentType classifies text as html, markdown, mixed, or plain from
// structural signal counts. Informational only; no conversion path depends
// on calling it first.
func (e *Engine) DetectContentType(text string) ContentType {
	return ContentType(e.classifier.Classify(text))
}

// MarkdownToHTML renders Markdown to an HTML fragment with GFM extensions.
// Pass nil opts to use the engine defaults.
//
// The structured parser is the primary strategy; if it fails or produces
// nothing for non-empty input, a degraded regex renderer takes over. The
// call never fails: worst case is best-effort HTML with a warning. HTML is
// a superset representation of Markdown, so DataLoss is always false here.
func (e *Engine) MarkdownToHTML(markdown string, opts *GFMOptions) (result ConversionResult) {
	resolved := opts.resolve(e.cfg.options)
	ropts := toRenderOptions(resolved)
	warnings := pipeline.DetectGFMFeatures(markdown)

	defer func() {
		if r := recover(); r != nil {
			// The degraded renderer never panics. Feature notes were
			// computed up front so both fallback entries report them.
			content, _ := e.degraded.Render(markdown, ropts)
			result = e.finishRender(markdown, content,
				append(warnings, "Structured rendering failed; degraded rendering applied"))
		}
	}()

	normalized := e.normalizer.Normalize(markdown, resolved.SmartLists)

	content, err := e.structured.Render(normalized, ropts)
	if err != nil || (strings.TrimSpace(content) == "" && strings.TrimSpace(normalized) != "") {
		content, _ = e.degraded.Render(normalized, ropts)
		warnings = append(warnings, "Structured rendering failed; degraded rendering applied")
	}

	return e.finishRender(markdown, content, warnings)
}

// HTMLToMarkdown converts HTML to GFM Markdown, warning about every
// construct the target format cannot represent. Script and style content
// never appears in the output. The call never fails.
func (e *Engine) HTMLToMarkdown(html string) (result ConversionResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ConversionResult{
				Warnings:       []string{"Conversion failed; content was dropped"},
				DataLoss:       true,
				OriginalLength: utf8.RuneCountInString(html),
			}
		}
	}()

	content, warnings, dataLoss := e.reverser.Convert(html)
	return ConversionResult{
		Content:         content,
		Warnings:        warnings,
		DataLoss:        dataLoss,
		OriginalLength:  utf8.RuneCountInString(html),
		ConvertedLength: utf8.RuneCountInString(content),
	}
}

// Sanitize strips HTML down to the fixed allow-list. It fails closed: on
// internal error the input is returned escaped as inert text, never raw.
func (e *Engine) Sanitize(html string) string {
	return e.sanitizer.Sanitize(html)
}

// Convert dispatches by target format. Markdown targeted at HTML is
// rendered; HTML targeted at HTML is sanitized instead of re-rendered;
// anything targeted at Markdown goes through the reverse converter.
// Only an unknown target returns an error.
func (e *Engine) Convert(input string, target ContentType) (ConversionResult, error) {
	switch target {
	case ContentTypeHTML:
		if e.DetectContentType(input) == ContentTypeHTML {
			clean := e.Sanitize(input)
			return ConversionResult{
				Content:         clean,
				OriginalLength:  utf8.RuneCountInString(input),
				ConvertedLength: utf8.RuneCountInString(clean),
			}, nil
		}
		return e.MarkdownToHTML(input, nil), nil
	case ContentTypeMarkdown:
		return e.HTMLToMarkdown(input), nil
	default:
		return ConversionResult{}, fmt.Errorf("%w: %q", ErrUnsupportedDirection, target)
	}
}

// finishRender post-processes rendered HTML and assembles the result.
func (e *Engine) finishRender(original, content string, warnings []string) ConversionResult {
	content = e.post.Process(content)
	return ConversionResult{
		Content:         content,
		Warnings:        warnings,
		DataLoss:        false,
		OriginalLength:  utf8.RuneCountInString(original),
		ConvertedLength: utf8.RuneCountInString(content),
	}
}

// toRenderOptions converts public GFMOptions to internal render options.
func toRenderOptions(o GFMOptions) pipeline.RenderOptions {
	return pipeline.RenderOptions{
		Tables:          o.Tables,
		Breaks:          o.Breaks,
		Pedantic:        o.Pedantic,
		GFM:             o.GFM,
		SmartLists:      o.SmartLists,
		Smartypants:     o.Smartypants,
		HeaderIDs:       o.HeaderIDs,
		SyntaxHighlight: o.SyntaxHighlight,
	}
}
