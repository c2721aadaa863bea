package pipeline

import "regexp"

// Content type verdicts. Mirrored by the public ContentType constants.
const (
	VerdictHTML     = "html"
	VerdictMarkdown = "markdown"
	VerdictMixed    = "mixed"
	VerdictPlain    = "plain"
)

// Precompiled signal patterns for classification.
var (
	// A plausible tag shape: name starts with a letter. A lone < or >
	// (comparison operators in prose) never matches.
	htmlOpenTag  = regexp.MustCompile(`<[a-zA-Z][a-zA-Z0-9-]*(\s[^<>]*)?/?>`)
	htmlCloseTag = regexp.MustCompile(`</[a-zA-Z][a-zA-Z0-9-]*\s*>`)

	// Markdown structural signals.
	mdATXHeading  = regexp.MustCompile(`(?m)^#{1,6}\s`)
	mdEmphasis    = regexp.MustCompile(`(\*\*|__)\S(.*?\S)?(\*\*|__)|(^|\s)[*_]\S[^*_]*[*_]`)
	mdListMarker  = regexp.MustCompile(`(?m)^\s{0,3}([-*+]|\d+\.)\s+\S`)
	mdFencedCode  = regexp.MustCompile("(?m)^(```|~~~)")
	mdPipeTable   = regexp.MustCompile(`(?m)^\s*\|.+\|\s*$`)
	mdLinkOrImage = regexp.MustCompile(`!?\[[^\]]*\]\([^)]+\)`)
)

// Classifier scores raw text as html, markdown, mixed, or plain.
type Classifier interface {
	Classify(text string) string
}

// SignalClassifier counts structural HTML and Markdown signals and decides
// by which families are present. Recomputed per call; no persistent state.
type SignalClassifier struct{}

// Classify returns the verdict for text.
// Both families present means mixed; neither means plain.
func (c *SignalClassifier) Classify(text string) string {
	htmlScore := c.htmlSignals(text)
	mdScore := c.markdownSignals(text)

	switch {
	case htmlScore > 0 && mdScore > 0:
		return VerdictMixed
	case htmlScore > 0:
		return VerdictHTML
	case mdScore > 0:
		return VerdictMarkdown
	default:
		return VerdictPlain
	}
}

// htmlSignals counts tag-shaped patterns, weighting matched open/close pairs.
func (c *SignalClassifier) htmlSignals(text string) int {
	open := len(htmlOpenTag.FindAllString(text, -1))
	closed := len(htmlCloseTag.FindAllString(text, -1))

	score := open + closed
	if open > 0 && closed > 0 {
		score++ // matched pairs are a stronger signal than stray tags
	}
	return score
}

// markdownSignals counts heading, emphasis, list, fence, table, and link
// markers.
func (c *SignalClassifier) markdownSignals(text string) int {
	score := 0
	score += len(mdATXHeading.FindAllString(text, -1))
	score += len(mdEmphasis.FindAllString(text, -1))
	score += len(mdListMarker.FindAllString(text, -1))
	score += len(mdFencedCode.FindAllString(text, -1))
	score += len(mdPipeTable.FindAllString(text, -1))
	score += len(mdLinkOrImage.FindAllString(text, -1))
	return score
}
