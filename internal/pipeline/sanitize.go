package pipeline

import (
	stdhtml "html"

	"github.com/microcosm-cc/bluemonday"
)

// The sanitizer allow-list is data, not code: a fixed policy table consumed
// by a generic filter, auditable and testable in isolation.
//
// This list is a compatibility contract. Do not extend it without updating
// every consumer of the engine.
var (
	allowedTags = []string{
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "strong", "em", "u", "s", "del",
		"a", "img",
		"ul", "ol", "li",
		"blockquote", "code", "pre",
		"table", "thead", "tbody", "tr", "th", "td",
		"div", "span", "input",
	}

	allowedAttributes = []string{
		"href", "src", "alt", "title", "class", "id",
		"type", "checked", "disabled",
	}

	// Only these URL schemes survive in href/src; everything else
	// (javascript:, data:, vbscript:, ...) is dropped. Relative paths
	// are permitted.
	allowedURLSchemes = []string{"http", "https", "mailto"}
)

// HTMLSanitizer strips markup down to the allow-list.
type HTMLSanitizer interface {
	Sanitize(html string) string
}

// PolicySanitizer applies the fixed allow-list via bluemonday.
// The policy is built once at construction and read-only afterwards.
type PolicySanitizer struct {
	policy *bluemonday.Policy
}

// NewPolicySanitizer builds the sanitizer from the allow-list tables.
func NewPolicySanitizer() *PolicySanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(allowedTags...)
	p.AllowAttrs(allowedAttributes...).Globally()
	p.AllowURLSchemes(allowedURLSchemes...)
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)
	// data-* attributes are intentionally not allowed.
	return &PolicySanitizer{policy: p}
}

// Sanitize strips every element and attribute not in the allow-list.
// Script and style content is removed entirely, never passed through.
//
// Fails closed: if the underlying filter cannot process the input, the
// result is an escaped-text rendering of it. The original markup is never
// returned unsanitized.
func (s *PolicySanitizer) Sanitize(input string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = stdhtml.EscapeString(input)
		}
	}()
	return s.policy.Sanitize(input)
}
