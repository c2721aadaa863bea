package mdconvert

import (
	"strings"
	"testing"
)

func TestDefaultGFMOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultGFMOptions()

	if !opts.Tables || !opts.Breaks || !opts.GFM || !opts.SmartLists ||
		!opts.HeaderIDs || !opts.SyntaxHighlight {
		t.Errorf("defaults should enable tables, breaks, gfm, smartLists, headerIds, syntaxHighlight: %+v", opts)
	}
	if opts.Pedantic || opts.Smartypants {
		t.Errorf("defaults should disable pedantic and smartypants: %+v", opts)
	}
}

func TestGFMOptions_Resolve(t *testing.T) {
	t.Parallel()

	fallback := *DefaultGFMOptions()

	t.Run("nil means fallback", func(t *testing.T) {
		t.Parallel()
		var opts *GFMOptions
		if got := opts.resolve(fallback); got != fallback {
			t.Errorf("resolve(nil) = %+v, want fallback %+v", got, fallback)
		}
	})

	t.Run("non-nil wins", func(t *testing.T) {
		t.Parallel()
		opts := &GFMOptions{Pedantic: true}
		got := opts.resolve(fallback)
		if !got.Pedantic || got.Tables {
			t.Errorf("resolve(custom) = %+v, want custom values", got)
		}
	})
}

func TestWithGFMOptions_NilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithGFMOptions(nil) should panic")
		}
	}()
	WithGFMOptions(nil)
}

func TestWithEmojis_NilDisablesExpansion(t *testing.T) {
	t.Parallel()

	engine := New(WithEmojis(nil))
	result := engine.MarkdownToHTML("Hello :smile:", nil)

	if want := ":smile:"; !strings.Contains(result.Content, want) {
		t.Errorf("content = %q, want shortcode untouched %q", result.Content, want)
	}
}
