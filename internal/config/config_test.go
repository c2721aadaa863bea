package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Convert.Target != "html" {
		t.Errorf("Convert.Target = %q, want %q", cfg.Convert.Target, "html")
	}
	if !cfg.Render.Tables || !cfg.Render.Breaks || !cfg.Render.GFM {
		t.Error("core render toggles should default to enabled")
	}
	if !cfg.Render.SmartLists || !cfg.Render.HeaderIDs || !cfg.Render.SyntaxHighlight {
		t.Error("smartLists, headerIds, syntaxHighlight should default to enabled")
	}
	if cfg.Render.Pedantic || cfg.Render.SmartyPants {
		t.Error("pedantic and smartypants should default to disabled")
	}
	if cfg.Output.Path != "" {
		t.Errorf("Output.Path = %q, want empty (stdout)", cfg.Output.Path)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full config",
			content: `convert:
  target: markdown
  stats: true
render:
  breaks: false
output:
  path: out.md
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Convert.Target != "markdown" {
					t.Errorf("Target = %q, want markdown", cfg.Convert.Target)
				}
				if !cfg.Convert.Stats {
					t.Error("Stats = false, want true")
				}
				if cfg.Output.Path != "out.md" {
					t.Errorf("Output.Path = %q, want out.md", cfg.Output.Path)
				}
			},
		},
		{
			name: "absent fields keep defaults",
			content: `render:
  breaks: false
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Render.Breaks {
					t.Error("Breaks = true, want false from file")
				}
				if !cfg.Render.Tables {
					t.Error("Tables = false, want default true")
				}
				if cfg.Convert.Target != "html" {
					t.Errorf("Target = %q, want default html", cfg.Convert.Target)
				}
			},
		},
		{
			name:    "unknown field rejected",
			content: "convert:\n  target: html\n  pages: 3\n",
			wantErr: ErrConfigParse,
		},
		{
			name:    "invalid target rejected",
			content: "convert:\n  target: pdf\n",
		},
		{
			name:    "empty file keeps defaults",
			content: "",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Convert.Target != "html" {
					t.Errorf("Target = %q, want default html", cfg.Convert.Target)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tt.content)
			cfg, err := LoadConfig(path)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadConfig() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.check == nil && err == nil {
				t.Fatal("LoadConfig() error = nil, want validation error")
			}
			if tt.check != nil {
				if err != nil {
					t.Fatalf("LoadConfig() error = %v", err)
				}
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadConfig_EmptyName(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfig_NotFound(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_NameResolutionFailure(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig("no-such-config-name")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "no-such-config-name.yaml") {
		t.Errorf("error %q should list tried paths", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Output.Path = strings.Repeat("a", MaxPathLength+1)
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for oversized path")
	}

	cfg = DefaultConfig()
	cfg.Convert.Target = "MARKDOWN"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, target matching is case-insensitive", err)
	}
}
