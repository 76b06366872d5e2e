package parse

import "github.com/shapestone/shape-csvvalue/pkg/culture"

// Configuration overrides the styles used when a Factory builds a strategy.
// Strategies built from a Configuration are never cached.
type Configuration struct {
	// NumberStyles applies to the decimal strategy.
	NumberStyles culture.NumberStyles
	// DateStyles applies to the date/time strategy.
	DateStyles culture.DateTimeStyles
}

// DefaultConfiguration returns the configuration used for cached strategies:
// DefaultDecimalStyles and no date styles.
func DefaultConfiguration() Configuration {
	return Configuration{
		NumberStyles: DefaultDecimalStyles,
		DateStyles:   culture.DateTimeStylesNone,
	}
}

// CurrencyConfiguration additionally accepts parentheses for negative amounts.
func CurrencyConfiguration() Configuration {
	return Configuration{
		NumberStyles: culture.NumberStylesCurrency,
		DateStyles:   culture.DateTimeStylesNone,
	}
}

// StrictDateTimeConfiguration rejects inner whitespace in dates and reads
// zone-less values as UTC. Zoned values keep their offset.
func StrictDateTimeConfiguration() Configuration {
	return Configuration{
		NumberStyles: DefaultDecimalStyles,
		DateStyles:   culture.DateTimeStylesNone,
	}
}

// Validate checks the style combination.
func (c Configuration) Validate() error {
	return culture.NewContext(nil, c.NumberStyles, c.DateStyles).Validate()
}
