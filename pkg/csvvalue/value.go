// Package csvvalue tracks where a typed cell value came from.
//
// A Value holds the raw token a cell was read from, the value originally
// parsed from it and the current value. Values are immutable: editing or
// resetting produces a new Value that keeps the same original token and
// original value.
//
//	v := csvvalue.Create("123", 123)
//	edited := v.WithNewValue(456)   // edited.IsModified() == true
//	edited.ResetToOriginal()        // current 123, IsModified() == false
//
// Visitors operate on the type-erased Cell interface so that values of
// different types can be processed together:
//
//	stats := csvvalue.NewStatisticsVisitor()
//	csvvalue.WalkAll([]csvvalue.Cell{price, date, name}, stats)
package csvvalue

import (
	"math"
	"math/cmplx"
	"reflect"

	"github.com/shapestone/shape-csvvalue/pkg/culture"
	"github.com/shapestone/shape-csvvalue/pkg/parse"
)

// Cell is the type-erased view of a Value used by visitors.
type Cell interface {
	// OriginalToken returns the raw token and whether there was one.
	OriginalToken() (string, bool)
	// Original returns the originally parsed value, or nil.
	Original() any
	// Current returns the current value, or nil.
	Current() any
	// IsModified reports whether the current value differs from the original.
	IsModified() bool
	// TypeName returns the name of the value type.
	TypeName() string
	// Kind returns the parse kind of the value type.
	Kind() parse.Kind
}

// Value is an immutable cell value with provenance. The zero Value has no
// token and no value.
type Value[T any] struct {
	token    *string
	original *T
	current  *T
}

// Create wraps a token and the value parsed from it.
func Create[T any](token string, original T) Value[T] {
	return Value[T]{token: &token, original: &original, current: &original}
}

// CreateNullable wraps an optional token and an optional parsed value.
func CreateNullable[T any](token *string, original *T) Value[T] {
	return Value[T]{token: clone(token), original: clone(original), current: clone(original)}
}

// Parse runs token through b and wraps the outcome. A token recognized as
// absent yields a Value without an original value. It returns false, and a
// Value holding only the token, when b cannot parse the token.
func Parse[T any](token string, b *parse.Builder[T]) (Value[T], bool) {
	r := b.Parse(token)
	if !r.IsSuccess() {
		return CreateNullable[T](&token, nil), false
	}
	return CreateNullable(&token, r.Ptr()), true
}

// WithNewValue returns a copy of v whose current value is nv.
func (v Value[T]) WithNewValue(nv T) Value[T] {
	return Value[T]{token: v.token, original: v.original, current: &nv}
}

// WithNullableValue returns a copy of v whose current value is nv, which may be nil.
func (v Value[T]) WithNullableValue(nv *T) Value[T] {
	return Value[T]{token: v.token, original: v.original, current: clone(nv)}
}

// ResetToOriginal returns a copy of v whose current value is the original value.
func (v Value[T]) ResetToOriginal() Value[T] {
	return Value[T]{token: v.token, original: v.original, current: v.original}
}

// IsModified reports whether the current value differs from the original.
// Two absent values are equal; an absent and a present value are not.
func (v Value[T]) IsModified() bool {
	return !equal(v.original, v.current)
}

// HasValue reports whether the current value equals x.
func (v Value[T]) HasValue(x T) bool {
	return equal(v.current, &x)
}

// TryGetCurrent returns the current value and whether there is one.
func (v Value[T]) TryGetCurrent() (T, bool) { return get(v.current) }

// TryGetOriginal returns the original value and whether there is one.
func (v Value[T]) TryGetOriginal() (T, bool) { return get(v.original) }

// TryGetOriginalToken returns the raw token and whether there is one.
func (v Value[T]) TryGetOriginalToken() (string, bool) { return get(v.token) }

// OriginalToken implements Cell.
func (v Value[T]) OriginalToken() (string, bool) { return v.TryGetOriginalToken() }

// Original implements Cell.
func (v Value[T]) Original() any { return boxed(v.original) }

// Current implements Cell.
func (v Value[T]) Current() any { return boxed(v.current) }

// TypeName implements Cell.
func (v Value[T]) TypeName() string { return parse.TypeName[T]() }

// Kind implements Cell.
func (v Value[T]) Kind() parse.Kind { return parse.KindOf[T]() }

// String renders the current value with the invariant culture, or "" if
// there is none.
func (v Value[T]) String() string {
	return v.Format(culture.Invariant, "")
}

// Format renders the current value for culture c with a number or date
// format as understood by culture.FormatValue. Values implementing
// culture.Formattable format themselves.
func (v Value[T]) Format(c *culture.Culture, format string) string {
	if v.current == nil {
		return ""
	}
	return culture.FormatValue(*v.current, format, c)
}

// Accept calls visitor with v.
func (v Value[T]) Accept(visitor VoidVisitor) {
	visitor.Visit(v)
}

type equaler[T any] interface {
	Equal(T) bool
}

// equal compares optional values. Types with an Equal method, such as
// time.Time and decimal.Decimal, are compared with it. Everything else is
// compared deeply, with NaN equal to NaN.
func equal[T any](a, b *T) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if e, ok := any(*a).(equaler[T]); ok {
		return e.Equal(*b)
	}
	if reflect.DeepEqual(*a, *b) {
		return true
	}
	return nanEqual(reflect.ValueOf(a).Elem(), reflect.ValueOf(b).Elem())
}

// nanEqual reports whether x and y differ only by NaNs in float kinds.
func nanEqual(x, y reflect.Value) bool {
	if !x.IsValid() || !y.IsValid() {
		return x.IsValid() == y.IsValid()
	}
	if x.Type() != y.Type() {
		return false
	}
	switch x.Kind() {
	case reflect.Float32, reflect.Float64:
		fx, fy := x.Float(), y.Float()
		return fx == fy || (math.IsNaN(fx) && math.IsNaN(fy))
	case reflect.Complex64, reflect.Complex128:
		cx, cy := x.Complex(), y.Complex()
		return cx == cy || (cmplx.IsNaN(cx) && cmplx.IsNaN(cy))
	case reflect.Struct:
		for i := 0; i < x.NumField(); i++ {
			if !nanEqual(x.Field(i), y.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if x.IsNil() != y.IsNil() {
			return false
		}
		fallthrough
	case reflect.Array:
		if x.Len() != y.Len() {
			return false
		}
		for i := 0; i < x.Len(); i++ {
			if !nanEqual(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Pointer, reflect.Interface:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() == y.IsNil()
		}
		return nanEqual(x.Elem(), y.Elem())
	case reflect.Map:
		if x.IsNil() != y.IsNil() || x.Len() != y.Len() {
			return false
		}
		iter := x.MapRange()
		for iter.Next() {
			yv := y.MapIndex(iter.Key())
			if !yv.IsValid() || !nanEqual(iter.Value(), yv) {
				return false
			}
		}
		return true
	}
	if x.Comparable() {
		return x.Equal(y)
	}
	return false
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func get[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

func boxed[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
