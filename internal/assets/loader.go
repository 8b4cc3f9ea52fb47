package assets

// AssetLoader loads preset records and preview stylesheets by name.
type AssetLoader interface {
	// LoadPreset loads a preset record by name (without .yaml extension).
	// Returns ErrPresetNotFound if the preset doesn't exist.
	LoadPreset(name string) ([]byte, error)

	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)
}
