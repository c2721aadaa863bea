package pipeline

import (
	"bytes"
	"regexp"
	"strings"

	htmltomd "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// MarkdownConverter abstracts HTML to Markdown conversion with fidelity
// reporting.
type MarkdownConverter interface {
	Convert(html string) (markdown string, warnings []string, dataLoss bool)
}

// droppedElements maps tags with no Markdown equivalent to their warning.
// Their content must never appear in the Markdown output.
var droppedElements = map[string]string{
	"script":   "Script content removed; scripts cannot be represented in Markdown",
	"style":    "Style content removed; stylesheets cannot be represented in Markdown",
	"iframe":   "Embedded frame removed; <iframe> has no Markdown equivalent",
	"object":   "Embedded object removed; <object> has no Markdown equivalent",
	"embed":    "Embedded content removed; <embed> has no Markdown equivalent",
	"form":     "Form removed; forms cannot be represented in Markdown",
	"select":   "Form control removed; <select> has no Markdown equivalent",
	"textarea": "Form control removed; <textarea> has no Markdown equivalent",
	"button":   "Form control removed; <button> has no Markdown equivalent",
	"video":    "Media element removed; <video> has no Markdown equivalent",
	"audio":    "Media element removed; <audio> has no Markdown equivalent",
	"canvas":   "Drawing surface removed; <canvas> has no Markdown equivalent",
}

// languageClass extracts a language hint from code element classes.
// Common patterns: "language-go", "lang-go", "chroma language-python".
var languageClass = regexp.MustCompile(`(?:^|\s)(?:language|lang)-([a-zA-Z0-9_+-]+)(?:\s|$)`)

// stripTagsPattern is the last-resort text extraction for unparseable input.
var stripTagsPattern = regexp.MustCompile(`<[^>]*>`)

// DocumentConverter converts HTML documents to GFM Markdown.
//
// Conversion is a two-stage process: a DOM scan strips constructs Markdown
// cannot express (recording warnings and the data-loss flag), then the
// cleaned tree is converted. Script and style content never reaches the
// output.
type DocumentConverter struct {
	conv *htmltomd.Converter
}

// NewDocumentConverter creates a DocumentConverter with GFM mappings:
// ATX headings, ** strong, * emphasis, - bullets, fenced code.
func NewDocumentConverter() *DocumentConverter {
	conv := htmltomd.NewConverter("", true, &htmltomd.Options{
		HeadingStyle:     "atx",
		EmDelimiter:      "*",
		StrongDelimiter:  "**",
		BulletListMarker: "-",
		CodeBlockStyle:   "fenced",
		Fence:            "```",
	})
	conv.Use(plugin.GitHubFlavored()) // tables, strikethrough, task items
	conv.AddRules(codeBlockRule())
	return &DocumentConverter{conv: conv}
}

// Convert transforms HTML to Markdown, reporting every construct that could
// not be carried over. It never fails: unparseable input degrades to tag
// stripping with a warning.
func (c *DocumentConverter) Convert(input string) (string, []string, bool) {
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		text := strings.TrimSpace(stripTagsPattern.ReplaceAllString(input, " "))
		return text, []string{"Input could not be parsed as HTML; text extracted"}, true
	}

	scan := newLossScan()
	scan.walk(doc)

	var buf bytes.Buffer
	cleaned := input
	if rerr := html.Render(&buf, doc); rerr == nil {
		cleaned = buf.String()
	}

	out, cerr := c.conv.ConvertString(cleaned)
	if cerr != nil {
		text := strings.TrimSpace(stripTagsPattern.ReplaceAllString(cleaned, " "))
		warnings := append(scan.warnings, "Structured conversion failed; plain text extracted")
		return text, warnings, true
	}

	return strings.TrimSpace(out), scan.warnings, scan.dataLoss
}

// codeBlockRule preserves fenced code blocks with their language hint from
// pre > code[class=language-X].
func codeBlockRule() htmltomd.Rule {
	return htmltomd.Rule{
		Filter: []string{"pre"},
		Replacement: func(_ string, selec *goquery.Selection, _ *htmltomd.Options) *string {
			code := selec.Find("code").First()
			if code.Length() == 0 {
				// Fall back to default content conversion.
				return nil
			}

			lang := detectLanguage(code)
			text := code.Text()
			text = strings.ReplaceAll(text, "\r\n", "\n")
			text = strings.TrimSuffix(text, "\n")

			fence := "```"
			if strings.Contains(text, "```") {
				fence = "````"
			}

			block := "\n\n" + fence + lang + "\n" + text + "\n" + fence + "\n\n"
			return &block
		},
	}
}

// detectLanguage reads the language hint from a code element's class list.
func detectLanguage(code *goquery.Selection) string {
	class, _ := code.Attr("class")
	m := languageClass.FindStringSubmatch(strings.TrimSpace(class))
	if len(m) == 2 {
		return strings.ToLower(m[1])
	}
	return ""
}

// lossScan walks a parsed tree, removing constructs Markdown cannot express
// and collecting fidelity warnings. Each distinct warning appears once, in
// detection order.
type lossScan struct {
	warnings []string
	dataLoss bool
	seen     map[string]bool
}

func newLossScan() *lossScan {
	return &lossScan{seen: make(map[string]bool)}
}

// warnOnce records a warning the first time it is detected.
func (s *lossScan) warnOnce(msg string, loss bool) {
	if !s.seen[msg] {
		s.seen[msg] = true
		s.warnings = append(s.warnings, msg)
	}
	if loss {
		s.dataLoss = true
	}
}

// walk processes n and its subtree, removing droppable elements and
// scrubbing attributes. Cell text is left untouched: the conversion library
// escapes pipes and backslashes for GFM tables itself.
func (s *lossScan) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		s.scrubAttributes(n)
	}

	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		if child.Type == html.ElementNode && s.shouldDrop(child) {
			n.RemoveChild(child)
			child = next
			continue
		}
		s.walk(child)
		child = next
	}
}

// shouldDrop reports whether the element (and its entire content) must be
// removed, recording the corresponding warning.
func (s *lossScan) shouldDrop(el *html.Node) bool {
	name := strings.ToLower(el.Data)

	if msg, ok := droppedElements[name]; ok {
		s.warnOnce(msg, true)
		return true
	}

	if name == "input" {
		if attrValue(el, "type") == "checkbox" {
			return false // task-list checkboxes map to - [ ] / - [x]
		}
		s.warnOnce("Form control removed; only checkbox inputs map to Markdown", true)
		return true
	}

	switch name {
	case "table":
		s.warnOnce("Tables converted to pipe syntax; cell formatting may be simplified", false)
	case "div", "span":
		// Flattening a class-only container keeps all of its text, so the
		// warning stays informational. Styling carried in a style attribute
		// is recorded as loss by scrubAttributes instead.
		if attrValue(el, "style") == "" && attrValue(el, "class") != "" {
			s.warnOnce("Generic containers flattened; layout is not preserved", false)
		}
	}

	return false
}

// scrubAttributes removes attributes Markdown cannot carry: inline event
// handlers and inline styles. Both carry information with no Markdown
// representation, so each is recorded as loss.
func (s *lossScan) scrubAttributes(el *html.Node) {
	kept := el.Attr[:0]
	for _, a := range el.Attr {
		key := strings.ToLower(a.Key)
		switch {
		case strings.HasPrefix(key, "on"):
			s.warnOnce("Inline event handlers removed", true)
		case key == "style":
			s.warnOnce("Inline styles removed; Markdown cannot represent CSS styling", true)
		default:
			kept = append(kept, a)
		}
	}
	el.Attr = kept
}

// attrValue returns the value of the named attribute, or "".
func attrValue(el *html.Node, name string) string {
	for _, a := range el.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

