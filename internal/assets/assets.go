package assets

import "path"

// DefaultStyleName is the name of the built-in preview stylesheet.
const DefaultStyleName = "preview"

// kind describes where one type of asset lives and how a miss is reported.
type kind struct {
	dir      string
	ext      string
	notFound error
}

var (
	presetKind = kind{dir: "presets", ext: ".yaml", notFound: ErrPresetNotFound}
	styleKind  = kind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
)

// rel is the slash-separated path of name relative to an asset root.
func (k kind) rel(name string) string {
	return path.Join(k.dir, name+k.ext)
}

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadPreset returns a built-in preset record. The name carries no extension.
func LoadPreset(name string) ([]byte, error) {
	return defaultLoader.LoadPreset(name)
}

// LoadStyle returns a built-in stylesheet.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}
