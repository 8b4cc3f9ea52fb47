package assets

import "errors"

// Lookup failures. AssetResolver falls back to embedded assets on these only.
var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrStyleNotFound  = errors.New("style not found")
)

// Rejections of names and directories supplied by the user.
var (
	// ErrInvalidAssetName: empty, too long, or containing separators or dots.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath: the custom asset directory is missing or unreadable.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrPathTraversal: a resolved asset path left the custom directory.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrAssetRead wraps I/O failures other than a missing file.
	ErrAssetRead = errors.New("failed to read asset")
)
