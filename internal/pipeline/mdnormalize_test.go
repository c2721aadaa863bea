package pipeline

import (
	"strings"
	"testing"
)

func TestGFMNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	n := &GFMNormalizer{}

	tests := []struct {
		name       string
		input      string
		smartLists bool
		want       string
	}{
		{
			name:  "crlf normalized",
			input: "line one\r\nline two\rline three",
			want:  "line one\nline two\nline three",
		},
		{
			name:  "blank lines compressed",
			input: "a\n\n\n\n\nb",
			want:  "a\n\nb",
		},
		{
			name:       "blank inserted before list after text",
			input:      "intro text\n- item",
			smartLists: true,
			want:       "intro text\n\n- item",
		},
		{
			name:       "blank inserted before heading after text",
			input:      "intro text\n# Heading",
			smartLists: true,
			want:       "intro text\n\n# Heading",
		},
		{
			name:       "no blank inserted between list items",
			input:      "- one\n- two",
			smartLists: true,
			want:       "- one\n- two",
		},
		{
			name:       "code blocks untouched",
			input:      "```\ntext\n- not a list fix\n```",
			smartLists: true,
			want:       "```\ntext\n- not a list fix\n```",
		},
		{
			name:       "smartLists off leaves spacing alone",
			input:      "intro text\n- item",
			smartLists: false,
			want:       "intro text\n- item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := n.Normalize(tt.input, tt.smartLists); got != tt.want {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tt.input, tt.smartLists, got, tt.want)
			}
		})
	}
}

func TestGFMNormalizer_OrderedLists(t *testing.T) {
	t.Parallel()

	n := &GFMNormalizer{}

	got := n.Normalize("steps:\n1. first\n2. second", true)
	if !strings.Contains(got, "steps:\n\n1. first") {
		t.Errorf("Normalize ordered list = %q, want blank line before 1.", got)
	}
	if strings.Contains(got, "first\n\n2.") {
		t.Errorf("Normalize ordered list = %q, blank must not be inserted between items", got)
	}
}
