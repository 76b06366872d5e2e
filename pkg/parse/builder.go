package parse

import (
	"github.com/shapestone/shape-csvvalue/pkg/culture"
)

// Builder is a fluent, reusable parse pipeline for T:
//
//  1. blank tokens and configured sentinels yield Success(<nil>), skipping
//     the remaining steps;
//  2. the preprocessor, if any, transforms the raw token;
//  3. the strict strategy for T parses the result under the configured
//     FormatContext.
//
// Configure a Builder before sharing it; Parse is safe for concurrent use.
type Builder[T any] struct {
	kind     Kind
	typeName string
	fc       culture.FormatContext
	nulls    NullPolicy
	pre      func(string) string
	custom   Parser[T]
}

// For creates a Builder for T with the invariant culture and
// culture.DefaultNumberStyles.
func For[T any]() *Builder[T] {
	return &Builder[T]{
		kind:     KindOf[T](),
		typeName: TypeName[T](),
		fc:       culture.DefaultContext(),
	}
}

// ForEnum creates a Builder that parses the symbolic names of values.
func ForEnum[T Enum](ignoreCase bool, values ...T) *Builder[T] {
	b := For[T]()
	b.kind = KindEnum
	b.custom = EnumOf(ignoreCase, values...)
	return b
}

// WithCulture sets the culture by name. It panics if the name is unknown;
// use WithFormatContext with culture.Lookup for names from untrusted input.
func (b *Builder[T]) WithCulture(name string) *Builder[T] {
	b.fc = b.fc.WithCulture(culture.MustLookup(name))
	return b
}

// WithFormatContext replaces the culture and both style sets.
func (b *Builder[T]) WithFormatContext(fc culture.FormatContext) *Builder[T] {
	b.fc = fc
	return b
}

// WithNumberStyles sets the number styles.
func (b *Builder[T]) WithNumberStyles(styles culture.NumberStyles) *Builder[T] {
	b.fc = b.fc.WithNumberStyles(styles)
	return b
}

// WithDateStyles sets the date/time styles.
func (b *Builder[T]) WithDateStyles(styles culture.DateTimeStyles) *Builder[T] {
	b.fc = b.fc.WithDateStyles(styles)
	return b
}

// WithNullValues sets the sentinels treated as "no value", replacing any
// set before. Matching is case-insensitive.
func (b *Builder[T]) WithNullValues(values ...string) *Builder[T] {
	b.nulls = NewNullPolicy(values...)
	return b
}

// WithPreprocessor sets a transform applied to non-null tokens before
// parsing. It panics if fn is nil.
func (b *Builder[T]) WithPreprocessor(fn func(string) string) *Builder[T] {
	if fn == nil {
		panic("parse: WithPreprocessor: nil preprocessor")
	}
	b.pre = fn
	return b
}

// WithParser replaces the strict strategy with p. It panics if p is nil.
func (b *Builder[T]) WithParser(p Parser[T]) *Builder[T] {
	if p == nil {
		panic("parse: WithParser: nil parser")
	}
	b.custom = p
	return b
}

// FormatContext returns the configured FormatContext.
func (b *Builder[T]) FormatContext() culture.FormatContext { return b.fc }

// NullValues returns the configured sentinels.
func (b *Builder[T]) NullValues() []string { return b.nulls.Values() }

// Kind returns the kind resolved for T.
func (b *Builder[T]) Kind() Kind { return b.kind }

// Parse runs the pipeline on token.
func (b *Builder[T]) Parse(token string) Result[T] {
	if b.nulls.IsNull(token) {
		return Success[T](nil)
	}
	processed := token
	if b.pre != nil {
		processed = b.pre(token)
	}

	var v T
	var err error
	if b.custom != nil {
		v, err = tryWith(b.custom, processed, b.fc)
	} else {
		v, err = parseAs[T](processed, b.fc, b.kind)
	}
	if err != nil {
		return Failure[T](failureMessage(processed, b.typeName))
	}
	return SuccessValue(v)
}

// ParseNullable runs the pipeline and reports the outcome in the nullable
// form: (nil, true) for absence, (nil, false) for failure.
func (b *Builder[T]) ParseNullable(token string) (*T, bool) {
	r := b.Parse(token)
	return r.Ptr(), r.IsSuccess()
}
