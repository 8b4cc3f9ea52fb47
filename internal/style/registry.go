package style

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alnah/go-notes2script/internal/advisory"
	"github.com/alnah/go-notes2script/internal/assets"
	"github.com/alnah/go-notes2script/internal/yamlutil"
)

// ErrInvalidPreset indicates a preset record failed to decode or validate.
var ErrInvalidPreset = errors.New("invalid preset record")

// validate is shared; *validator.Validate is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Registry is the closed mapping from Name to Preset.
type Registry struct {
	presets map[Name]Preset
}

// LoadRegistry reads the record of every Name from loader. A record must be
// valid and must declare the name it is stored under.
func LoadRegistry(loader assets.AssetLoader) (*Registry, error) {
	r := &Registry{presets: make(map[Name]Preset, len(Names()))}
	for _, name := range Names() {
		data, err := loader.LoadPreset(string(name))
		if err != nil {
			return nil, fmt.Errorf("loading preset %q: %w", name, err)
		}
		p, err := DecodePreset(data)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		if p.Name != name {
			return nil, fmt.Errorf("%w: record stored as %q declares name %q", ErrInvalidPreset, name, p.Name)
		}
		r.presets[name] = p
	}
	return r, nil
}

// DecodePreset parses and validates a single YAML preset record.
func DecodePreset(data []byte) (Preset, error) {
	var p Preset
	if err := yamlutil.Decode(data, &p, yamlutil.Strict(), yamlutil.WithValidator(validate)); err != nil {
		return Preset{}, fmt.Errorf("%w: %s", ErrInvalidPreset, yamlutil.Describe(err))
	}
	// A document with no mapping never reaches the decoder's validator.
	if err := validate.Struct(p); err != nil {
		return Preset{}, fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}
	return p, nil
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return LoadRegistry(assets.NewEmbeddedLoader())
})

// DefaultRegistry returns the registry of built-in presets.
func DefaultRegistry() (*Registry, error) {
	return defaultRegistry()
}

// Get returns a copy of the preset for name, or Neutral when name is not
// part of the closed set.
func (r *Registry) Get(name Name) Preset {
	if p, ok := r.presets[name]; ok {
		return p.clone()
	}
	return r.presets[Neutral].clone()
}

// Resolve parses a raw preset identifier. An empty identifier selects
// Neutral silently; an unknown one selects Neutral with an advisory.
func (r *Registry) Resolve(raw string) (Preset, []advisory.Advisory) {
	if strings.TrimSpace(raw) == "" {
		return r.Get(Neutral), nil
	}
	if name, ok := ParseName(raw); ok {
		return r.Get(name), nil
	}
	return r.Get(Neutral), []advisory.Advisory{
		advisory.New(advisory.CodeUnknownPreset, "unknown style preset %q, using %s", raw, Neutral),
	}
}

// All returns every preset in display order.
func (r *Registry) All() []Preset {
	all := make([]Preset, 0, len(r.presets))
	for _, name := range Names() {
		all = append(all, r.Get(name))
	}
	return all
}
