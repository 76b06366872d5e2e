package parse

import (
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shapestone/shape-csvvalue/internal/cache"
)

// Cache stores strategies keyed by target type.
type Cache interface {
	Get(key reflect.Type) (any, bool)
	Set(key reflect.Type, value any)
	Clear()
}

// loadOrStorer is implemented by caches that can settle concurrent first
// requests on a single surviving strategy.
type loadOrStorer interface {
	LoadOrStore(key reflect.Type, value any) (any, bool)
}

// Factory resolves the strategy for a target type. Strategies for the
// default configuration are built once per type and cached; strategies for
// an explicit Configuration are built on every call.
//
// A Factory is safe for concurrent use.
type Factory struct {
	cache  Cache
	logger *slog.Logger
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger used for debug output. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithCache replaces the strategy cache.
func WithCache(c Cache) Option {
	return func(f *Factory) {
		if c != nil {
			f.cache = c
		}
	}
}

// NewFactory creates a Factory with its own empty cache.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		cache:  cache.New[reflect.Type, any](),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ClearCache drops every cached strategy. Safe to call concurrently with Get.
func (f *Factory) ClearCache() {
	f.cache.Clear()
	f.logger.Debug("parser cache cleared")
}

// Get returns the cached strategy for T, building it on first use.
func Get[T any](f *Factory) Parser[T] {
	key := reflect.TypeFor[T]()
	if v, ok := f.cache.Get(key); ok {
		if p, ok := v.(Parser[T]); ok {
			return p
		}
	}

	p := NewStrategy[T](DefaultConfiguration())
	if ls, ok := f.cache.(loadOrStorer); ok {
		// A concurrent caller may have won; its strategy survives.
		if actual, loaded := ls.LoadOrStore(key, p); loaded {
			if existing, ok := actual.(Parser[T]); ok {
				return existing
			}
			f.cache.Set(key, p)
		}
	} else {
		f.cache.Set(key, p)
	}
	f.logger.Debug("parser resolved",
		slog.String("type", key.String()),
		slog.String("strategy", fmt.Sprintf("%T", p)))
	return p
}

// GetWithConfiguration builds a strategy for T with cfg. The result is not cached.
func GetWithConfiguration[T any](f *Factory, cfg Configuration) Parser[T] {
	p := NewStrategy[T](cfg)
	f.logger.Debug("parser built for configuration",
		slog.String("type", reflect.TypeFor[T]().String()),
		slog.String("strategy", fmt.Sprintf("%T", p)),
		slog.String("number_styles", cfg.NumberStyles.String()),
		slog.String("date_styles", cfg.DateStyles.String()))
	return p
}

// Resolve picks the strategy for T: custom always wins, then a strategy
// built for cfg, then the cached default.
func Resolve[T any](f *Factory, custom Parser[T], cfg *Configuration) Parser[T] {
	switch {
	case custom != nil:
		return custom
	case cfg != nil:
		return GetWithConfiguration[T](f, *cfg)
	default:
		return Get[T](f)
	}
}

// NewStrategy builds the strategy for T without a Factory: time.Time uses
// DateTimeParser with cfg.DateStyles, decimal.Decimal uses DecimalParser
// with cfg.NumberStyles, and every other type uses GenericParser.
func NewStrategy[T any](cfg Configuration) Parser[T] {
	var p any
	switch reflect.TypeFor[T]() {
	case timeType:
		p = NewDateTimeParser(cfg.DateStyles)
	case decimalType:
		p = NewDecimalParserWithStyles(cfg.NumberStyles)
	default:
		return NewGenericParser[T]()
	}
	return p.(Parser[T])
}

var (
	_ Parser[time.Time]       = DateTimeParser{}
	_ Parser[decimal.Decimal] = DecimalParser{}
)
