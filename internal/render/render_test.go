package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-notes2script/internal/assets"
)

// ---------------------------------------------------------------------------
// TestGoldmarkConverter_ToHTML - Markdown to HTML document
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		title    string
		content  string
		contains []string
	}{
		{
			name:     "document shell and escaped title",
			title:    "Go & You",
			content:  "# Go & You",
			contains: []string{"<!DOCTYPE html>", "<title>Go &amp; You</title>", `<main class="transcript">`},
		},
		{
			name:     "empty title uses default",
			content:  "text",
			contains: []string{"<title>" + DefaultTitle + "</title>"},
		},
		{
			name:     "heading ids",
			title:    "T",
			content:  "## Call to Action",
			contains: []string{`id="call-to-action"`},
		},
		{
			name:     "highlighted code uses classes",
			title:    "T",
			content:  "```go\nfunc main() {}\n```",
			contains: []string{`class="chroma"`},
		},
		{
			name:     "hard wraps",
			title:    "T",
			content:  "line one\nline two",
			contains: []string{"<br />"},
		},
		{
			name:     "raw html is not rendered",
			title:    "T",
			content:  "<script>alert(1)</script>",
			contains: []string{"<!-- raw HTML omitted -->"},
		},
	}

	c := NewGoldmarkConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.ToHTML(context.Background(), tt.title, tt.content)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "T", "text")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestInjectCSS - Style block placement
// ---------------------------------------------------------------------------

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		css  string
		want string
	}{
		{
			name: "before head close",
			html: "<html><head></head><body></body></html>",
			css:  "p{}",
			want: "<html><head><style>p{}</style></head><body></body></html>",
		},
		{
			name: "uppercase head",
			html: "<HTML><HEAD></HEAD></HTML>",
			css:  "p{}",
			want: "<HTML><HEAD><style>p{}</style></HEAD></HTML>",
		},
		{
			name: "after body open",
			html: `<body class="x"><p>hi</p></body>`,
			css:  "p{}",
			want: `<body class="x"><style>p{}</style><p>hi</p></body>`,
		},
		{
			name: "prepend fallback",
			html: "<p>hi</p>",
			css:  "p{}",
			want: "<style>p{}</style><p>hi</p>",
		},
		{
			name: "empty css unchanged",
			html: "<p>hi</p>",
			css:  "",
			want: "<p>hi</p>",
		},
		{
			name: "closing tag escaped",
			html: "<p>hi</p>",
			css:  "</style><script>",
			want: `<style><\/style><script></style><p>hi</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := InjectCSS(tt.html, tt.css); got != tt.want {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPreviewer - Styled preview rendering
// ---------------------------------------------------------------------------

type stubLoader struct {
	css string
	err error
}

func (s stubLoader) LoadPreset(string) ([]byte, error) { return nil, assets.ErrPresetNotFound }
func (s stubLoader) LoadStyle(string) (string, error)  { return s.css, s.err }

type failingConverter struct{}

func (failingConverter) ToHTML(context.Context, string, string) (string, error) {
	return "", ErrHTMLConversion
}

func TestPreviewer_Preview(t *testing.T) {
	t.Parallel()

	t.Run("embedded style inlined", func(t *testing.T) {
		t.Parallel()

		p := NewPreviewer(assets.NewEmbeddedLoader())
		got, err := p.Preview(context.Background(), "Widgets", "# Widgets\n\n## Hook\n\nHello.")
		if err != nil {
			t.Fatalf("Preview() error = %v", err)
		}
		css, _ := assets.LoadStyle(assets.DefaultStyleName)
		if !strings.Contains(got, "<style>"+sanitizeCSS(css)+"</style></head>") {
			t.Error("Preview() should inline the default stylesheet in <head>")
		}
		if !strings.Contains(got, "<h2 id=\"hook\">Hook</h2>") {
			t.Errorf("Preview() missing rendered heading:\n%s", got)
		}
	})

	t.Run("style load error", func(t *testing.T) {
		t.Parallel()

		p := NewPreviewer(stubLoader{err: assets.ErrStyleNotFound}, WithStyle("missing"))
		_, err := p.Preview(context.Background(), "T", "text")
		if !errors.Is(err, assets.ErrStyleNotFound) {
			t.Errorf("Preview() error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("conversion error", func(t *testing.T) {
		t.Parallel()

		p := NewPreviewer(stubLoader{css: "p{}"}, WithConverter(failingConverter{}))
		_, err := p.Preview(context.Background(), "T", "text")
		if !errors.Is(err, ErrHTMLConversion) {
			t.Errorf("Preview() error = %v, want ErrHTMLConversion", err)
		}
	})
}

func TestWithStyle_PanicsOnInvalidName(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	WithStyle("../escape")
}
