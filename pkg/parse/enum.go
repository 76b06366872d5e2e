package parse

import (
	"fmt"
	"strings"

	"github.com/shapestone/shape-csvvalue/pkg/culture"
)

// Enum is satisfied by enumeration types whose String method returns the
// symbolic name of each value.
type Enum interface {
	comparable
	fmt.Stringer
}

// EnumParser parses the symbolic names of a fixed set of values.
type EnumParser[T comparable] struct {
	names      map[string]T
	folded     map[string]T
	ignoreCase bool
}

// NewEnumParser creates an EnumParser from explicit name/value pairs.
// Matching is case-sensitive unless ignoreCase is set.
func NewEnumParser[T comparable](names map[string]T, ignoreCase bool) EnumParser[T] {
	p := EnumParser[T]{
		names:      make(map[string]T, len(names)),
		folded:     make(map[string]T, len(names)),
		ignoreCase: ignoreCase,
	}
	for name, v := range names {
		p.names[name] = v
		key := strings.ToLower(name)
		if _, dup := p.folded[key]; !dup {
			p.folded[key] = v
		}
	}
	return p
}

// EnumOf creates an EnumParser whose names are the String forms of values.
func EnumOf[T Enum](ignoreCase bool, values ...T) EnumParser[T] {
	names := make(map[string]T, len(values))
	for _, v := range values {
		names[v.String()] = v
	}
	return NewEnumParser(names, ignoreCase)
}

// IgnoreCase reports whether matching is case-insensitive.
func (p EnumParser[T]) IgnoreCase() bool { return p.ignoreCase }

// TryParse implements TryParser. Surrounding whitespace is ignored.
func (p EnumParser[T]) TryParse(token string, _ culture.FormatContext) (T, error) {
	var zero T
	s := strings.TrimSpace(token)
	if s == "" {
		return zero, ErrEmptyToken
	}
	if v, ok := p.names[s]; ok {
		return v, nil
	}
	if p.ignoreCase {
		if v, ok := p.folded[strings.ToLower(s)]; ok {
			return v, nil
		}
	}
	return zero, fmt.Errorf("%w: %q is not a defined %s", ErrInvalidFormat, token, TypeName[T]())
}

// Parse implements Parser. Unknown names yield the zero value.
func (p EnumParser[T]) Parse(token string, fc culture.FormatContext) T {
	v, _ := p.TryParse(token, fc)
	return v
}

// CanParse implements Parser.
func (p EnumParser[T]) CanParse(token string, fc culture.FormatContext) bool {
	_, err := p.TryParse(token, fc)
	return err == nil
}
