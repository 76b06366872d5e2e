package csvvalue

import (
	"github.com/shapestone/shape-csvvalue/pkg/culture"
	"github.com/shapestone/shape-csvvalue/pkg/parse"
)

// Builder parses a token with a strict strategy and wraps the result in a
// Value. The strategy is, in order of preference: the parser set with
// WithParser, one built for the configuration set with WithConfiguration,
// or the default strategy for T.
//
// Strict strategies yield the zero value for blank tokens and for tokens
// they cannot parse; use Parse with a parse.Builder when absence or failure
// must be told apart.
type Builder[T any] struct {
	token   string
	culture *culture.Culture
	custom  parse.Parser[T]
	cfg     *parse.Configuration
	factory *parse.Factory
}

// NewBuilder creates a Builder for token with the invariant culture.
func NewBuilder[T any](token string) *Builder[T] {
	return &Builder[T]{token: token, culture: culture.Invariant}
}

// WithCulture sets the culture used for parsing.
func (b *Builder[T]) WithCulture(c *culture.Culture) *Builder[T] {
	b.culture = c
	return b
}

// WithParser sets a custom strategy. It panics if p is nil.
func (b *Builder[T]) WithParser(p parse.Parser[T]) *Builder[T] {
	if p == nil {
		panic("csvvalue: WithParser: nil parser")
	}
	b.custom = p
	return b
}

// WithConfiguration sets the styles used to build the strategy.
func (b *Builder[T]) WithConfiguration(cfg parse.Configuration) *Builder[T] {
	b.cfg = &cfg
	return b
}

// WithFactory resolves strategies through f, sharing its cache. Without a
// factory each Build creates its strategy.
func (b *Builder[T]) WithFactory(f *parse.Factory) *Builder[T] {
	b.factory = f
	return b
}

// Build parses the token and returns the resulting Value. Every token,
// blank ones included, goes through the strategy, so blank and invalid
// tokens yield the zero value.
func (b *Builder[T]) Build() Value[T] {
	v := b.strategy().Parse(b.token, culture.ContextFor(b.culture))
	return Create(b.token, v)
}

func (b *Builder[T]) strategy() parse.Parser[T] {
	if b.factory != nil {
		return parse.Resolve(b.factory, b.custom, b.cfg)
	}
	switch {
	case b.custom != nil:
		return b.custom
	case b.cfg != nil:
		return parse.NewStrategy[T](*b.cfg)
	default:
		return parse.NewStrategy[T](parse.DefaultConfiguration())
	}
}
