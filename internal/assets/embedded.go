package assets

import (
	"embed"
	"fmt"
)

//go:embed presets/*.yaml styles/*.css
var builtin embed.FS

// EmbeddedLoader serves the assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadPreset returns the raw YAML record of a built-in preset.
func (e *EmbeddedLoader) LoadPreset(name string) ([]byte, error) {
	return e.read(presetKind, name)
}

// LoadStyle returns a built-in stylesheet.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	content, err := e.read(styleKind, name)
	return string(content), err
}

func (e *EmbeddedLoader) read(k kind, name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	content, err := builtin.ReadFile(k.rel(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", k.notFound, name)
	}
	return content, nil
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
