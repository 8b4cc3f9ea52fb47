// Package assets provides the style preset records and the preview stylesheet.
// Assets can be loaded from embedded files or a custom filesystem path.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in presets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver lets a user override a single preset record or the preview
// stylesheet while keeping every other built-in asset.
//
// # Directory Structure
//
//	{basePath}/
//	├── presets/
//	│   └── {name}.yaml          # Preset record (e.g., professional.yaml)
//	└── styles/
//	    └── {name}.css           # HTML preview stylesheet
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
