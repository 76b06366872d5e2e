// Package profile loads parser profiles: a culture, number and date styles,
// null sentinels and strings to strip, stored as YAML or TOML.
//
//	culture: de-DE
//	number_styles: [number, currency_symbol]
//	date_styles: [allow_white_spaces, assume_universal]
//	null_values: ["N/A", "NULL", "-"]
//	strip: ["€"]
//
// A loaded profile configures a parse.Builder with Apply.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/shapestone/shape-csvvalue/pkg/culture"
	"github.com/shapestone/shape-csvvalue/pkg/parse"
)

// Format is the encoding of a profile file.
type Format int

const (
	// FormatYAML is YAML (.yaml, .yml).
	FormatYAML Format = iota
	// FormatTOML is TOML (.toml).
	FormatTOML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ErrUnsupportedFormat is returned for formats other than YAML and TOML.
var ErrUnsupportedFormat = errors.New("unsupported profile format")

// Profile is a parser profile. Empty style lists select the defaults:
// culture.DefaultNumberStyles and culture.DateTimeStylesNone.
type Profile struct {
	Culture      string   `yaml:"culture" toml:"culture"`
	NumberStyles []string `yaml:"number_styles" toml:"number_styles"`
	DateStyles   []string `yaml:"date_styles" toml:"date_styles"`
	NullValues   []string `yaml:"null_values" toml:"null_values"`
	Strip        []string `yaml:"strip" toml:"strip"`
}

// DetectFormat determines the format from a file extension. Unknown
// extensions are read as YAML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Load reads and validates the profile at path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	p, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a profile. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Profile, error) {
	var p Profile
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("TOML parse error: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the culture name and the style names.
func (p *Profile) Validate() error {
	_, err := p.FormatContext()
	return err
}

// FormatContext builds the FormatContext described by p.
func (p *Profile) FormatContext() (culture.FormatContext, error) {
	c, err := culture.Lookup(p.Culture)
	if err != nil {
		return culture.FormatContext{}, err
	}
	ns := culture.DefaultNumberStyles
	if len(p.NumberStyles) > 0 {
		if ns, err = culture.ParseNumberStyles(p.NumberStyles...); err != nil {
			return culture.FormatContext{}, err
		}
	}
	ds, err := culture.ParseDateTimeStyles(p.DateStyles...)
	if err != nil {
		return culture.FormatContext{}, err
	}
	fc := culture.NewContext(c, ns, ds)
	if err := fc.Validate(); err != nil {
		return culture.FormatContext{}, err
	}
	return fc, nil
}

// Preprocessor returns a function that removes every Strip string from a
// token, or nil if there is nothing to strip.
func (p *Profile) Preprocessor() func(string) string {
	if len(p.Strip) == 0 {
		return nil
	}
	pairs := make([]string, 0, 2*len(p.Strip))
	for _, s := range p.Strip {
		if s != "" {
			pairs = append(pairs, s, "")
		}
	}
	if len(pairs) == 0 {
		return nil
	}
	r := strings.NewReplacer(pairs...)
	return r.Replace
}

// Apply configures b with the profile's culture, styles, null sentinels and
// strip preprocessor.
func Apply[T any](p *Profile, b *parse.Builder[T]) error {
	fc, err := p.FormatContext()
	if err != nil {
		return err
	}
	b.WithFormatContext(fc)
	if len(p.NullValues) > 0 {
		b.WithNullValues(p.NullValues...)
	}
	if pre := p.Preprocessor(); pre != nil {
		b.WithPreprocessor(pre)
	}
	return nil
}
