// Package yamlutil wraps YAML parsing for config files and preset records.
// Callers never import the YAML library directly.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// DefaultMaxInputSize limits YAML input to prevent memory exhaustion (1MB).
const DefaultMaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

type decodeConfig struct {
	strict    bool
	maxSize   int
	validator StructValidator
}

// StructValidator validates decoded structs. *validator.Validate from
// go-playground/validator satisfies it.
type StructValidator interface {
	Struct(any) error
}

// DecodeOption configures Decode.
type DecodeOption func(*decodeConfig)

// Strict rejects keys that have no matching struct field.
func Strict() DecodeOption {
	return func(c *decodeConfig) { c.strict = true }
}

// MaxSize overrides DefaultMaxInputSize. Non-positive values are ignored.
func MaxSize(n int) DecodeOption {
	return func(c *decodeConfig) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// WithValidator runs v on every decoded struct. Failures are reported as
// decode errors that point at the offending key.
func WithValidator(v StructValidator) DecodeOption {
	return func(c *decodeConfig) { c.validator = v }
}

// Decode parses data into v.
func Decode(data []byte, v any, opts ...DecodeOption) error {
	cfg := decodeConfig{maxSize: DefaultMaxInputSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > cfg.maxSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), cfg.maxSize)
	}
	if v == nil {
		return ErrNilDestination
	}

	var yopts []yaml.DecodeOption
	if cfg.strict {
		yopts = append(yopts, yaml.DisallowUnknownField())
	}
	if cfg.validator != nil {
		yopts = append(yopts, yaml.Validator(cfg.validator))
	}
	if err := yaml.UnmarshalWithOptions(data, v, yopts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict is Decode with Strict.
func UnmarshalStrict(data []byte, v any) error {
	return Decode(data, v, Strict())
}

// Marshal encodes v with two-space indentation and indented sequences.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}

// Describe renders a decode error with the offending source lines when the
// underlying parser reported a position. Other errors are returned as is.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	return yaml.FormatError(err, false, true)
}
