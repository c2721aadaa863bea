// Package mdconvert classifies and converts content between Markdown and
// HTML with fidelity reporting.
//
// # Quick Start
//
// Create an engine and convert in either direction:
//
//	engine := mdconvert.New()
//
//	res := engine.MarkdownToHTML("# Hello\n\n**World**", nil)
//	fmt.Println(res.Content) // sanitizer-ready HTML fragment
//
//	back := engine.HTMLToMarkdown(res.Content)
//	fmt.Println(back.Content, back.Warnings, back.DataLoss)
//
// Every conversion returns a ConversionResult carrying the output, ordered
// fidelity warnings, and a data-loss flag. Conversion never fails: malformed
// input degrades to a best-effort result with warnings.
//
// # Conversion Pipeline
//
// Markdown to HTML runs these stages:
//
//  1. Normalization (line endings, list spacing when SmartLists is set)
//  2. Structured GFM parsing via Goldmark (tables, task lists, autolinks,
//     strikethrough, syntax highlighting); a degraded regex renderer takes
//     over if structured parsing fails
//  3. Post-processing (emoji shortcodes, bare-URL autolinking, table and
//     code-block containers, task-list normalization)
//
// HTML to Markdown scans the DOM for constructs Markdown cannot express
// (scripts, frames, form controls, inline styling), strips them while
// recording warnings, then converts the cleaned tree.
//
// # Sanitization
//
// Sanitize applies a fixed allow-list policy and fails closed: if the input
// cannot be processed, the result is escaped text, never the raw markup.
// Rendered Markdown is not sanitized implicitly; callers embedding untrusted
// output should run it through Sanitize.
//
// # Classification
//
// DetectContentType scores text as html, markdown, mixed, or plain from
// structural signals. It is informational; no conversion depends on it.
//
// # Configuration
//
// Use functional options to customize the engine:
//
//	engine := mdconvert.New(
//	    mdconvert.WithGFMOptions(&mdconvert.GFMOptions{GFM: true, Tables: true}),
//	    mdconvert.WithEmojis(definition.Github()),
//	)
//
// Per-render options are passed to MarkdownToHTML; nil means the engine
// defaults.
//
// # Concurrency
//
// All operations are pure, synchronous computations over immutable inputs.
// A single Engine may be shared across goroutines without coordination.
package mdconvert
