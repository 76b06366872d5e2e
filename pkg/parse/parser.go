// Package parse converts raw cell tokens into typed values under a culture
// and number/date style flags.
//
// Three API shapes share the same typed strategies:
//
//	// Nullable: absence is success with no value.
//	v, ok := parse.TryParseNullable[int]("42")
//
//	// Result: Success(value), Success(<nil>) or Failure(message).
//	r := parse.TryParse[float64]("abc") // Failure(Cannot parse 'abc' as float64)
//
//	// Fluent builder with culture, sentinels and a preprocessor.
//	r = parse.For[float64]().
//		WithCulture("de-DE").
//		WithNullValues("N/A", "-").
//		WithPreprocessor(func(s string) string { return strings.TrimSuffix(s, "€") }).
//		Parse("1.234,56€") // Success(1234.56)
//
// Strategies are resolved per type by a Factory, which memoizes them for
// the default configuration.
//
// # Failure Policy
//
// Strategies never panic and never return errors from Parse or CanParse: a
// token that cannot be parsed yields the zero value (Parse) or false
// (CanParse). Only ParseOrThrow reports an error, and only MustParse and
// contract violations (nil preprocessor, nil custom parser) panic.
package parse

import (
	"fmt"

	"github.com/shapestone/shape-csvvalue/pkg/culture"
)

// Parser is a typed parsing strategy.
//
// Parse returns the zero value of T when the token is blank or invalid.
// CanParse reports whether Parse would succeed. Neither may panic.
type Parser[T any] interface {
	Parse(token string, fc culture.FormatContext) T
	CanParse(token string, fc culture.FormatContext) bool
}

// TryParser is implemented by strategies that can report why a token failed.
// All built-in strategies implement it.
type TryParser[T any] interface {
	TryParse(token string, fc culture.FormatContext) (T, error)
}

// ParserFunc is a function adapter for the Parser interface. Panics raised
// by the function are treated as failures.
type ParserFunc[T any] func(token string, fc culture.FormatContext) (T, error)

// TryParse implements TryParser.
func (f ParserFunc[T]) TryParse(token string, fc culture.FormatContext) (v T, err error) {
	defer recoverInto(&err)
	return f(token, fc)
}

// Parse implements Parser.
func (f ParserFunc[T]) Parse(token string, fc culture.FormatContext) T {
	v, err := f.TryParse(token, fc)
	if err != nil {
		var zero T
		return zero
	}
	return v
}

// CanParse implements Parser.
func (f ParserFunc[T]) CanParse(token string, fc culture.FormatContext) bool {
	_, err := f.TryParse(token, fc)
	return err == nil
}

// tryWith runs p and reports failure as an error. Custom parsers that only
// implement Parser are probed with CanParse first.
func tryWith[T any](p Parser[T], token string, fc culture.FormatContext) (v T, err error) {
	defer recoverInto(&err)
	if tp, ok := p.(TryParser[T]); ok {
		return tp.TryParse(token, fc)
	}
	if !p.CanParse(token, fc) {
		var zero T
		return zero, ErrInvalidFormat
	}
	return p.Parse(token, fc), nil
}

// recoverInto converts a panic into an ErrInvalidFormat error.
func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: recovered: %v", ErrInvalidFormat, r)
	}
}
