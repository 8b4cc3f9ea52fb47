package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader serves assets from a user directory laid out like the
// embedded set: presets/{name}.yaml and styles/{name}.css.
type FilesystemLoader struct {
	basePath string // absolute, symlinks resolved
}

// NewFilesystemLoader checks that basePath is a readable directory.
// Every failure wraps ErrInvalidBasePath.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	root, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	if _, err := os.ReadDir(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, root)
		}
		// ReadDir also fails on regular files; name that case plainly.
		if info, statErr := os.Stat(root); statErr == nil && !info.IsDir() {
			return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, root)
		}
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: root}, nil
}

// BasePath returns the resolved absolute base directory.
func (f *FilesystemLoader) BasePath() string {
	return f.basePath
}

// LoadPreset reads presets/{name}.yaml.
func (f *FilesystemLoader) LoadPreset(name string) ([]byte, error) {
	return f.read(presetKind, name)
}

// LoadStyle reads styles/{name}.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	content, err := f.read(styleKind, name)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func (f *FilesystemLoader) read(k kind, name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	target, err := f.contain(filepath.Join(f.basePath, filepath.FromSlash(k.rel(name))))
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(target) // #nosec G304 -- confined to basePath
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %q", k.notFound, name)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return content, nil
}

// contain resolves symlinks in p and rejects results outside basePath.
// A missing file keeps its lexical path so the read reports not found.
func (f *FilesystemLoader) contain(p string) (string, error) {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	if !strings.HasPrefix(p, f.basePath+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s escapes %s", ErrPathTraversal, p, f.basePath)
	}
	return p, nil
}

var _ AssetLoader = (*FilesystemLoader)(nil)
