// Package pipeline implements the conversion stages: content classification,
// Markdown rendering (structured and degraded), HTML post-processing,
// allow-list sanitization, and HTML to Markdown reverse conversion.
//
// Every stage is a pure function over its inputs. Stages hold no mutable
// state after construction, so a single instance is safe for concurrent use.
package pipeline
