package parse

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"

	"github.com/shapestone/shape-csvvalue/pkg/culture"
)

// Unmarshaler is implemented by types that parse themselves with culture
// information. The generic strategy prefers it over every other path.
type Unmarshaler interface {
	UnmarshalCulture(token string, fc culture.FormatContext) error
}

var (
	unmarshalerType     = reflect.TypeFor[Unmarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// GenericParser is the fallback strategy for any type without a dedicated
// rule. It tries, in order:
//
//  1. Unmarshaler (culture-aware, on *T)
//  2. The culture rules for decimal.Decimal, time.Time, uuid.UUID and Char
//  3. encoding.TextUnmarshaler (on *T)
//  4. Coercion by kind: numbers with the culture's Integer or Float styles,
//     strings as-is, and bools and durations through spf13/cast
//
// Types with no path fail with ErrUnsupportedType.
type GenericParser[T any] struct {
	typ reflect.Type
}

// NewGenericParser creates a generic strategy for T.
func NewGenericParser[T any]() GenericParser[T] {
	return GenericParser[T]{typ: reflect.TypeFor[T]()}
}

// TryParse implements TryParser.
func (p GenericParser[T]) TryParse(token string, fc culture.FormatContext) (v T, err error) {
	defer recoverInto(&err)
	if strings.TrimSpace(token) == "" {
		return v, ErrEmptyToken
	}
	t := p.typ
	if t == nil {
		t = reflect.TypeFor[T]()
	}
	rv, err := convertGeneric(token, fc, t)
	if err != nil {
		return v, err
	}
	return rv.Interface().(T), nil
}

// Parse implements Parser. Failures yield the zero value.
func (p GenericParser[T]) Parse(token string, fc culture.FormatContext) T {
	v, _ := p.TryParse(token, fc)
	return v
}

// CanParse implements Parser.
func (p GenericParser[T]) CanParse(token string, fc culture.FormatContext) bool {
	_, err := p.TryParse(token, fc)
	return err == nil
}

func convertGeneric(token string, fc culture.FormatContext, t reflect.Type) (reflect.Value, error) {
	ptr := reflect.New(t)
	if ptr.Type().Implements(unmarshalerType) {
		if err := ptr.Interface().(Unmarshaler).UnmarshalCulture(token, fc); err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return ptr.Elem(), nil
	}

	// time.Time, decimal.Decimal and uuid.UUID implement TextUnmarshaler
	// with invariant formats only; the culture rules take precedence.
	kind := kindOfType(t)
	switch kind {
	case KindDecimal:
		return parseNumber(token, fc.Culture(), culture.NumberStylesNumber, t, kind)
	case KindDateTime:
		tm, err := culture.ParseDateTime(token, fc.Culture(), culture.DateTimeStylesNone)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return reflect.ValueOf(tm).Convert(t), nil
	case KindGUID, KindChar:
		return parseValue(token, fc, t, kind)
	}

	if ptr.Type().Implements(textUnmarshalerType) {
		text := []byte(strings.TrimSpace(token))
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText(text); err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return ptr.Elem(), nil
	}

	switch kind {
	case KindInteger, KindUnsigned:
		return parseNumber(token, fc.Culture(), culture.NumberStylesInteger, t, kind)
	case KindFloat:
		return parseNumber(token, fc.Culture(), culture.NumberStylesFloat, t, kind)
	case KindBool:
		b, err := cast.ToBoolE(strings.TrimSpace(token))
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return reflect.ValueOf(b).Convert(t), nil
	}

	switch {
	case t == durationType:
		d, err := cast.ToDurationE(strings.TrimSpace(token))
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return reflect.ValueOf(d), nil
	case t.Kind() == reflect.String:
		return reflect.ValueOf(token).Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}
