package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Fenced code block delimiter (backticks or tildes)
	fencedCodeDelim = regexp.MustCompile("^(```|~~~)")

	// Header pattern (ATX style)
	atxHeader = regexp.MustCompile(`^#{1,6}\s`)

	// List item patterns (unordered and ordered)
	unorderedListItem = regexp.MustCompile(`^[-*+]\s`)
	orderedListItem   = regexp.MustCompile(`^[0-9]+\.\s`)

	// Indented code block (4 spaces or tab)
	indentedCode = regexp.MustCompile(`^(    |\t)`)
)

// MarkdownNormalizer defines the contract for markdown normalization.
type MarkdownNormalizer interface {
	Normalize(content string, smartLists bool) string
}

// GFMNormalizer applies transformations before Markdown parsing.
type GFMNormalizer struct{}

// Normalize prepares Markdown for conversion. Line endings and blank-line
// compression always apply; list/heading spacing fixes only when smartLists
// is set, since they change how loosely written documents parse.
func (n *GFMNormalizer) Normalize(content string, smartLists bool) string {
	content = normalizeLineEndings(content)
	if smartLists {
		content = ensureBlankBeforeHeaders(content)
		content = ensureBlankBeforeLists(content)
	}
	content = compressBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// ensureBlankBeforeHeaders adds a blank line before ATX headers (#, ##, etc.)
// if the previous line is non-empty. Skips content inside code blocks.
func ensureBlankBeforeHeaders(content string) string {
	return processOutsideCodeBlocks(content, func(prev, current string) string {
		if atxHeader.MatchString(current) && prev != "" && !isBlankLine(prev) {
			return "\n" + current
		}
		return current
	})
}

// ensureBlankBeforeLists adds a blank line before list items (-, *, +, 1.)
// if the previous line is text. Skips content inside code blocks.
func ensureBlankBeforeLists(content string) string {
	return processOutsideCodeBlocks(content, func(prev, current string) string {
		if isListItem(current) && prev != "" && !isBlankLine(prev) &&
			!isListItem(prev) && !atxHeader.MatchString(prev) {
			return "\n" + current
		}
		return current
	})
}

// processOutsideCodeBlocks processes each line with a callback,
// but skips lines inside fenced or indented code blocks.
func processOutsideCodeBlocks(content string, process func(prev, current string) string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	inCodeBlock := false
	var previousLine string

	for i, line := range lines {
		// Track fenced code blocks
		if fencedCodeDelim.MatchString(line) {
			inCodeBlock = !inCodeBlock
		}

		if inCodeBlock || indentedCode.MatchString(line) {
			result = append(result, line)
			previousLine = line
			continue
		}

		// First line has no previous
		if i == 0 {
			result = append(result, line)
			previousLine = line
			continue
		}

		processed := process(previousLine, line)
		if strings.HasPrefix(processed, "\n") {
			// Insert blank line before current line
			result = append(result, "")
			result = append(result, processed[1:])
		} else {
			result = append(result, processed)
		}

		// Match against the original line next iteration, not inserted blanks.
		previousLine = line
	}

	return strings.Join(result, "\n")
}

// isBlankLine returns true if the line is empty or contains only whitespace.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isListItem returns true if the line starts with a list marker (-, *, +, or 1.).
func isListItem(line string) bool {
	return unorderedListItem.MatchString(line) || orderedListItem.MatchString(line)
}
