package pipeline

import (
	"strings"
	"testing"
)

func TestRegexRenderer_Render(t *testing.T) {
	t.Parallel()

	r := NewRegexRenderer()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:         "heading levels",
			input:        "# One\n\n### Three",
			wantContains: []string{"<h1>One</h1>", "<h3>Three</h3>"},
		},
		{
			name:         "bold italic strikethrough",
			input:        "**b** *i* ~~s~~",
			wantContains: []string{"<strong>b</strong>", "<em>i</em>", "<del>s</del>"},
		},
		{
			name:         "underscore bold",
			input:        "__b__",
			wantContains: []string{"<strong>b</strong>"},
		},
		{
			name:         "inline code content protected",
			input:        "run `x **not bold** y` now",
			wantContains: []string{"<code>x **not bold** y</code>"},
			wantNot:      []string{"<strong>not bold</strong>"},
		},
		{
			name:         "fenced code with language",
			input:        "```go\nfunc main() {}\n```",
			wantContains: []string{`<pre><code class="language-go">`, "func main() {}"},
		},
		{
			name:         "fenced code content escaped and protected",
			input:        "```\n<script>alert(1)</script>\n# not a heading\n```",
			wantContains: []string{"&lt;script&gt;"},
			wantNot:      []string{"<script>", "<h1>"},
		},
		{
			name:  "checkboxes",
			input: "- [x] done\n- [ ] todo",
			wantContains: []string{
				`<input type="checkbox" checked disabled /> done`,
				`<input type="checkbox" disabled /> todo`,
				`class="task-list-item"`,
			},
		},
		{
			name:         "link and image",
			input:        "[text](https://a.test) ![alt](b.png)",
			wantContains: []string{`<a href="https://a.test">text</a>`, `<img src="b.png" alt="alt" />`},
		},
		{
			name:         "bare url autolinked",
			input:        "see https://example.com here",
			wantContains: []string{`<a href="https://example.com">https://example.com</a>`},
		},
		{
			name:         "naive table rows",
			input:        "| a | b |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{"<table>", "<tr><td>a</td><td>b</td></tr>", "<td>1</td>", "</table>"},
		},
		{
			name:         "list items wrapped",
			input:        "- one\n- two",
			wantContains: []string{"<ul>", "<li>one</li>", "<li>two</li>", "</ul>"},
		},
		{
			name:         "ordered items wrapped",
			input:        "1. first\n2. second",
			wantContains: []string{"<ol>", "<li>first</li>", "<li>second</li>", "</ol>"},
		},
		{
			name:         "paragraph wrapping",
			input:        "first block\n\nsecond block",
			wantContains: []string{"<p>first block</p>", "<p>second block</p>"},
		},
		{
			name:         "html in source is escaped",
			input:        "literal <div> stays text",
			wantContains: []string{"&lt;div&gt;"},
			wantNot:      []string{"<div>"},
		},
		{
			name:         "empty input",
			input:        "",
			wantContains: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Render(tt.input, RenderOptions{})
			if err != nil {
				t.Fatalf("Render(%q) returned error: %v", tt.input, err)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Render(%q) = %q, want contains %q", tt.input, got, want)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("Render(%q) = %q, want NOT contains %q", tt.input, got, not)
				}
			}
		})
	}
}

func TestRegexRenderer_NeverEmptyForContent(t *testing.T) {
	t.Parallel()

	r := NewRegexRenderer()

	inputs := []string{
		"plain words",
		"# broken [ markup ~~ everywhere **",
		"|||weird|||",
		"\n\n\n",
	}

	for _, input := range inputs {
		got, err := r.Render(input, RenderOptions{})
		if err != nil {
			t.Fatalf("Render(%q) returned error: %v", input, err)
		}
		if strings.TrimSpace(input) != "" && strings.TrimSpace(got) == "" {
			t.Errorf("Render(%q) produced empty output", input)
		}
	}
}
