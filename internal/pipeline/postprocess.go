package pipeline

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark-emoji/definition"
)

// Post-processing patterns.
var (
	emojiShortcode = regexp.MustCompile(`:([a-zA-Z0-9_+-]+):`)

	// Regions that must never be rewritten: code content and existing links.
	codeRegion       = regexp.MustCompile(`(?s)<pre\b.*?</pre>|<code\b[^>]*>.*?</code>`)
	codeOrLinkRegion = regexp.MustCompile(`(?s)<pre\b.*?</pre>|<code\b[^>]*>.*?</code>|<a\b[^>]*>.*?</a>`)

	bareURLInText = regexp.MustCompile(`(^|[\s>])(https?://[^\s<>"']+)`)
	preOpenTag    = regexp.MustCompile(`<pre(\s[^>]*)?>`)
	taskCheckbox  = regexp.MustCompile(`<input\b[^>]*type="checkbox"[^>]*/?>`)
)

// PostProcessor applies the fixed HTML post-processing sequence after
// rendering: emoji shortcode expansion, bare-URL autolinking, table and
// code-block containers, and task-list normalization.
type PostProcessor struct {
	emojis definition.Emojis
}

// NewPostProcessor creates a PostProcessor using the given shortcode table.
// A nil table disables emoji expansion.
func NewPostProcessor(emojis definition.Emojis) *PostProcessor {
	return &PostProcessor{emojis: emojis}
}

// Process runs all post-processing steps in order. Rewrites that could
// corrupt content (emoji, autolinking) are masked away from code spans,
// code blocks, and existing anchors.
func (p *PostProcessor) Process(html string) string {
	html = p.expandEmoji(html)
	html = autolinkBareURLs(html)
	html = wrapTables(html)
	html = normalizeTaskItems(html)
	html = wrapCodeBlocks(html)
	return html
}

// expandEmoji replaces :name: shortcodes with their Unicode glyphs outside
// of code spans. Unknown shortcodes pass through unchanged.
func (p *PostProcessor) expandEmoji(html string) string {
	if p.emojis == nil {
		return html
	}
	return replaceOutside(html, codeRegion, func(seg string) string {
		return emojiShortcode.ReplaceAllStringFunc(seg, func(m string) string {
			name := strings.Trim(m, ":")
			if em, ok := p.emojis.Get(name); ok && em.IsUnicode() {
				return string(em.Unicode)
			}
			return m
		})
	})
}

// autolinkBareURLs wraps bare http(s) URLs in anchors when they are not
// already inside an anchor or code region.
func autolinkBareURLs(html string) string {
	return replaceOutside(html, codeOrLinkRegion, func(seg string) string {
		return bareURLInText.ReplaceAllString(seg, `$1<a href="$2">$2</a>`)
	})
}

// wrapTables wraps every table in a container element so callers can make
// wide tables scrollable without touching the engine output.
func wrapTables(html string) string {
	html = strings.ReplaceAll(html, "<table>", `<div class="table-container"><table>`)
	html = strings.ReplaceAll(html, "</table>", "</table></div>")
	return html
}

// normalizeTaskItems rewrites task-list checkboxes to one consistent form
// and tags their list items, regardless of which renderer produced them.
func normalizeTaskItems(html string) string {
	html = taskCheckbox.ReplaceAllStringFunc(html, func(m string) string {
		if strings.Contains(m, "checked") {
			return `<input type="checkbox" checked disabled />`
		}
		return `<input type="checkbox" disabled />`
	})
	return strings.ReplaceAll(html, `<li><input type="checkbox"`,
		`<li class="task-list-item"><input type="checkbox"`)
}

// wrapCodeBlocks wraps every <pre> block in a container element.
func wrapCodeBlocks(html string) string {
	html = preOpenTag.ReplaceAllString(html, `<div class="code-block"><pre$1>`)
	html = strings.ReplaceAll(html, "</pre>", "</pre></div>")
	return html
}

// replaceOutside applies fn to the spans of s not matched by region,
// leaving matched regions untouched.
func replaceOutside(s string, region *regexp.Regexp, fn func(string) string) string {
	locs := region.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return fn(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range locs {
		b.WriteString(fn(s[last:loc[0]]))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(fn(s[last:]))
	return b.String()
}
