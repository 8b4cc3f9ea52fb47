package render

import (
	"context"
	"fmt"

	"github.com/alnah/go-notes2script/internal/assets"
)

// Previewer renders transcripts as styled HTML documents.
type Previewer struct {
	converter Converter
	loader    assets.AssetLoader
	style     string
}

// PreviewerOption configures a Previewer.
type PreviewerOption func(*Previewer)

// WithConverter replaces the goldmark converter.
func WithConverter(c Converter) PreviewerOption {
	return func(p *Previewer) { p.converter = c }
}

// WithStyle selects the stylesheet by name. Panics if name is invalid.
func WithStyle(name string) PreviewerOption {
	if err := assets.ValidateAssetName(name); err != nil {
		panic(fmt.Sprintf("render: %v", err))
	}
	return func(p *Previewer) { p.style = name }
}

// NewPreviewer creates a Previewer reading stylesheets from loader.
func NewPreviewer(loader assets.AssetLoader, opts ...PreviewerOption) *Previewer {
	p := &Previewer{
		converter: NewGoldmarkConverter(),
		loader:    loader,
		style:     assets.DefaultStyleName,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Preview renders markdown into a complete HTML document with the selected
// stylesheet inlined.
func (p *Previewer) Preview(ctx context.Context, title, markdown string) (string, error) {
	css, err := p.loader.LoadStyle(p.style)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", p.style, err)
	}

	doc, err := p.converter.ToHTML(ctx, title, markdown)
	if err != nil {
		return "", err
	}

	return InjectCSS(doc, css), nil
}
