package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// Degraded rendering patterns, applied in priority order so greedier
// constructs (fences, headings, code spans) are resolved before generic
// paragraph wrapping.
var (
	fbFencedBlock    = regexp.MustCompile("(?s)(```|~~~)([a-zA-Z0-9_+-]*)\n(.*?)\n?(```|~~~)")
	fbHeading        = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+?)\s*$`)
	fbInlineCode     = regexp.MustCompile("`([^`\n]+)`")
	fbCheckedItem    = regexp.MustCompile(`(?m)^\s*[-*+]\s+\[[xX]\]\s+(.*)$`)
	fbUncheckedItem  = regexp.MustCompile(`(?m)^\s*[-*+]\s+\[ \]\s+(.*)$`)
	fbImage          = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)\)`)
	fbLink           = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	fbBold           = regexp.MustCompile(`\*\*([^*\n]+)\*\*|__([^_\n]+)__`)
	fbItalic         = regexp.MustCompile(`\*([^*\n]+)\*`)
	fbStrikethrough  = regexp.MustCompile(`~~([^~\n]+)~~`)
	fbBareURL        = regexp.MustCompile(`(^|\s)(https?://[^\s<&"]+)`)
	fbTableSeparator = regexp.MustCompile(`(?m)^\s*\|[\s:|-]+\|\s*$`)
	fbTableRow       = regexp.MustCompile(`(?m)^\s*\|(.+)\|\s*$`)
	fbListItem       = regexp.MustCompile(`(?m)^\s*[-*+]\s+(.*)$`)
	fbOrderedItem    = regexp.MustCompile(`(?m)^\s*\d+\.\s+(.*)$`)
)

// fbPlaceholder marks extracted code segments. NUL never occurs in valid
// Markdown text, so round-tripping is unambiguous.
const fbPlaceholder = "\x00fb:%d\x00"

var fbPlaceholderPattern = regexp.MustCompile("\x00fb:\\d+\x00")

// htmlEscaper escapes markup-significant characters. Quotes are left alone:
// the degraded output is display HTML, not attribute context.
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// RegexRenderer is the degraded rendering strategy: a fixed sequence of
// regex substitutions that always produces best-effort HTML and never fails.
// Selected when the structured parser cannot interpret the input.
type RegexRenderer struct{}

// NewRegexRenderer creates a RegexRenderer.
func NewRegexRenderer() *RegexRenderer {
	return &RegexRenderer{}
}

// Render converts Markdown to best-effort HTML. The error is always nil; the
// signature matches MarkdownRenderer so both strategies are interchangeable.
func (r *RegexRenderer) Render(markdown string, _ RenderOptions) (string, error) {
	text := normalizeLineEndings(markdown)

	// Code content must survive verbatim, so fences and spans are pulled out
	// before any other substitution and restored at the end.
	var saved []string
	text = fbFencedBlock.ReplaceAllStringFunc(text, func(m string) string {
		sub := fbFencedBlock.FindStringSubmatch(m)
		lang, body := sub[2], sub[3]
		block := "<pre><code"
		if lang != "" {
			block += ` class="language-` + lang + `"`
		}
		block += ">" + htmlEscaper.Replace(body) + "</code></pre>"
		saved = append(saved, block)
		return fmt.Sprintf(fbPlaceholder, len(saved)-1)
	})

	text = htmlEscaper.Replace(text)

	text = fbHeading.ReplaceAllStringFunc(text, func(m string) string {
		sub := fbHeading.FindStringSubmatch(m)
		level := len(sub[1])
		return fmt.Sprintf("<h%d>%s</h%d>", level, sub[2], level)
	})

	text = fbInlineCode.ReplaceAllStringFunc(text, func(m string) string {
		sub := fbInlineCode.FindStringSubmatch(m)
		saved = append(saved, "<code>"+sub[1]+"</code>")
		return fmt.Sprintf(fbPlaceholder, len(saved)-1)
	})

	text = fbCheckedItem.ReplaceAllString(text,
		`<li class="task-list-item"><input type="checkbox" checked disabled /> $1</li>`)
	text = fbUncheckedItem.ReplaceAllString(text,
		`<li class="task-list-item"><input type="checkbox" disabled /> $1</li>`)

	text = fbImage.ReplaceAllString(text, `<img src="$2" alt="$1" />`)
	text = fbLink.ReplaceAllString(text, `<a href="$2">$1</a>`)

	text = fbBold.ReplaceAllString(text, "<strong>$1$2</strong>")
	text = fbItalic.ReplaceAllString(text, "<em>$1</em>")
	text = fbStrikethrough.ReplaceAllString(text, "<del>$1</del>")

	text = fbBareURL.ReplaceAllString(text, `$1<a href="$2">$2</a>`)

	text = convertTableRows(text)
	text = convertListItems(text)
	text = wrapParagraphs(text)

	// Restore extracted code segments.
	text = fbPlaceholderPattern.ReplaceAllStringFunc(text, func(m string) string {
		var idx int
		if _, err := fmt.Sscanf(m, fbPlaceholder, &idx); err != nil || idx >= len(saved) {
			return m
		}
		return saved[idx]
	})

	return text, nil
}

// convertTableRows performs naive pipe-table-to-row conversion: separator
// lines are dropped, row lines become <tr>, and contiguous runs of rows are
// wrapped in a <table>.
func convertTableRows(text string) string {
	text = fbTableSeparator.ReplaceAllString(text, "\x00row\x00")
	text = fbTableRow.ReplaceAllStringFunc(text, func(m string) string {
		sub := fbTableRow.FindStringSubmatch(m)
		cells := strings.Split(sub[1], "|")
		var row strings.Builder
		row.WriteString("\x00row\x00<tr>")
		for _, cell := range cells {
			row.WriteString("<td>" + strings.TrimSpace(cell) + "</td>")
		}
		row.WriteString("</tr>")
		return row.String()
	})
	return wrapRuns(text, "\x00row\x00", "<table>", "</table>")
}

// convertListItems performs naive list-item conversion: each marker line
// becomes <li>, and contiguous runs of items are wrapped in <ul>/<ol>.
func convertListItems(text string) string {
	text = fbListItem.ReplaceAllString(text, "\x00uli\x00<li>$1</li>")
	text = fbOrderedItem.ReplaceAllString(text, "\x00oli\x00<li>$1</li>")
	text = wrapRuns(text, "\x00uli\x00", "<ul>", "</ul>")
	text = wrapRuns(text, "\x00oli\x00", "<ol>", "</ol>")
	return text
}

// wrapRuns removes the line marker and wraps maximal runs of consecutive
// marked lines with open/close tags.
func wrapRuns(text, marker, openTag, closeTag string) string {
	lines := strings.Split(text, "\n")
	var out []string
	inRun := false
	for _, line := range lines {
		marked := strings.HasPrefix(line, marker)
		if marked {
			line = strings.TrimPrefix(line, marker)
		}
		switch {
		case marked && !inRun:
			out = append(out, openTag, line)
			inRun = true
		case !marked && inRun:
			out = append(out, closeTag, line)
			inRun = false
		default:
			out = append(out, line)
		}
	}
	if inRun {
		out = append(out, closeTag)
	}
	// Drop lines that were pure separators (e.g. table delimiter rows).
	filtered := out[:0]
	for _, line := range out {
		if line != "" || len(filtered) == 0 || filtered[len(filtered)-1] != "" {
			filtered = append(filtered, line)
		}
	}
	return strings.Join(filtered, "\n")
}

// wrapParagraphs wraps blank-line-separated prose blocks in <p> tags.
// Blocks already converted to block-level HTML pass through.
func wrapParagraphs(text string) string {
	blocks := strings.Split(text, "\n\n")
	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "<") || strings.HasPrefix(trimmed, "\x00") {
			out = append(out, trimmed)
			continue
		}
		out = append(out, "<p>"+strings.ReplaceAll(trimmed, "\n", "<br />\n")+"</p>")
	}
	return strings.Join(out, "\n")
}
