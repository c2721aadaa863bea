package mdconvert

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Minimum output/input length ratios for ValidateConversion. Stripping
// markup legitimately shrinks output, so conversions out of HTML get a much
// lower bar.
const (
	minRetentionRatio      = 0.5
	minRetentionRatioLossy = 0.1
)

// ValidateConversion is a heuristic round-trip smoke test: did the
// conversion plausibly preserve content? It returns false when converted is
// empty for non-empty input, or implausibly small for the direction.
// It is not a semantic diff and never fails legitimate compression such as
// whitespace stripping.
func (e *Engine) ValidateConversion(original, converted string, from, to ContentType) bool {
	orig := strings.TrimSpace(original)
	conv := strings.TrimSpace(converted)

	if orig == "" {
		return true
	}
	if conv == "" {
		return false
	}

	ratio := minRetentionRatio
	if from == ContentTypeHTML || from == ContentTypeMixed || to == ContentTypePlain {
		ratio = minRetentionRatioLossy
	}

	return float64(utf8.RuneCountInString(conv)) >= ratio*float64(utf8.RuneCountInString(orig))
}

// ConversionStats formats a ConversionResult into a single deterministic
// report line. The literal field formats are a compatibility contract with
// existing consumers; do not change them.
func (e *Engine) ConversionStats(result ConversionResult) string {
	loss := "No"
	if result.DataLoss {
		loss = "Yes"
	}
	return fmt.Sprintf("Original: %d chars | Converted: %d chars | Data loss: %s | Warnings: %d",
		result.OriginalLength, result.ConvertedLength, loss, len(result.Warnings))
}
