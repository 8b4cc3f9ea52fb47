package notes2script

import (
	"errors"

	"github.com/alnah/go-notes2script/internal/assets"
	"github.com/alnah/go-notes2script/internal/render"
	"github.com/alnah/go-notes2script/internal/style"
)

// Sentinel errors for library operations.
var (
	ErrInvalidMinutes         = errors.New("invalid target duration")
	ErrInvalidAssetPath       = errors.New("invalid asset path")
	ErrInvalidTimestampFormat = errors.New("invalid timestamp format")
	ErrPresetRegistry         = errors.New("failed to load style presets")

	// Errors surfaced from internal stages, re-exported for errors.Is.
	ErrInvalidPreset  = style.ErrInvalidPreset
	ErrPresetNotFound = assets.ErrPresetNotFound
	ErrStyleNotFound  = assets.ErrStyleNotFound
	ErrInvalidStyle   = assets.ErrInvalidAssetName
	ErrHTMLConversion = render.ErrHTMLConversion
)
