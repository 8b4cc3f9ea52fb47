package notes2script

import (
	"github.com/alnah/go-notes2script/internal/assets"
)

// DefaultStyle is the name of the built-in preview stylesheet.
const DefaultStyle = assets.DefaultStyleName

// AssetLoader defines the contract for loading preset records and preview
// stylesheets. Implementations may load from the filesystem, embedded assets
// or any other store.
type AssetLoader interface {
	// LoadPreset loads a YAML preset record by name (without extension).
	// Returns ErrPresetNotFound if the record doesn't exist.
	LoadPreset(name string) ([]byte, error)

	// LoadStyle loads a CSS stylesheet by name (without extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, returns a loader using only embedded assets.
// If basePath is set, custom assets take precedence with fallback to embedded.
//
// The basePath directory may contain:
//   - presets/{name}.yaml for preset records (neutral, xiaohongshu, professional)
//   - styles/{name}.css for preview stylesheets
//
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, wrapAssetPathError(err)
	}
	return resolver, nil
}
