package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, f *cliFlags, positional []string)
	}{
		{
			name: "defaults",
			args: []string{"mdconvert"},
			check: func(t *testing.T, f *cliFlags, positional []string) {
				if f.to != "" || f.detect || f.stats || f.output != "" {
					t.Errorf("defaults not zero: %+v", f)
				}
				if len(positional) != 0 {
					t.Errorf("positional = %v, want none", positional)
				}
			},
		},
		{
			name: "target and output",
			args: []string{"mdconvert", "--to", "markdown", "-o", "out.md", "doc.html"},
			check: func(t *testing.T, f *cliFlags, positional []string) {
				if f.to != "markdown" {
					t.Errorf("to = %q, want markdown", f.to)
				}
				if f.output != "out.md" {
					t.Errorf("output = %q, want out.md", f.output)
				}
				if len(positional) != 1 || positional[0] != "doc.html" {
					t.Errorf("positional = %v, want [doc.html]", positional)
				}
			},
		},
		{
			name: "render toggles",
			args: []string{"mdconvert", "--no-breaks", "--no-tables", "--pedantic"},
			check: func(t *testing.T, f *cliFlags, _ []string) {
				if !f.render.noBreaks || !f.render.noTables || !f.render.pedantic {
					t.Errorf("render toggles not set: %+v", f.render)
				}
			},
		},
		{
			name: "short flags",
			args: []string{"mdconvert", "-d", "-s", "-q", "-c", "myconf"},
			check: func(t *testing.T, f *cliFlags, _ []string) {
				if !f.detect || !f.stats || !f.common.quiet {
					t.Errorf("short flags not set: %+v", f)
				}
				if f.common.config != "myconf" {
					t.Errorf("config = %q, want myconf", f.common.config)
				}
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"mdconvert", "--no-such-flag"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, positional, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFlags() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			tt.check(t, f, positional)
		})
	}
}

func TestParseFlags_ChangedTracking(t *testing.T) {
	t.Parallel()

	f, _, err := parseFlags([]string{"mdconvert", "--to", "html"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if !f.fs.Changed("to") {
		t.Error("Changed(to) = false, want true")
	}
	if f.fs.Changed("output") {
		t.Error("Changed(output) = true, want false")
	}
}
