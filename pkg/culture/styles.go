package culture

import (
	"fmt"
	"strings"
)

// NumberStyles is a set of flags that controls which elements may appear in
// a numeric token.
type NumberStyles uint16

const (
	// NumberStylesNone permits digits only.
	NumberStylesNone NumberStyles = 0
	// AllowLeadingWhite permits whitespace before the number.
	AllowLeadingWhite NumberStyles = 1 << iota
	// AllowTrailingWhite permits whitespace after the number.
	AllowTrailingWhite
	// AllowLeadingSign permits a leading '+' or '-'.
	AllowLeadingSign
	// AllowTrailingSign permits a trailing '+' or '-'.
	AllowTrailingSign
	// AllowParentheses permits a number enclosed in parentheses, meaning negative.
	AllowParentheses
	// AllowDecimalPoint permits the culture's decimal separator.
	AllowDecimalPoint
	// AllowThousands permits the culture's group separator.
	AllowThousands
	// AllowExponent permits an exponent ("e" or "E" followed by an optional sign and digits).
	AllowExponent
	// AllowCurrencySymbol permits the culture's currency symbol before or after the number.
	AllowCurrencySymbol
	// AllowHexSpecifier treats the token as hexadecimal digits. Integer kinds only.
	AllowHexSpecifier
)

// Composite number styles.
const (
	NumberStylesInteger   = AllowLeadingWhite | AllowTrailingWhite | AllowLeadingSign
	NumberStylesHexNumber = AllowLeadingWhite | AllowTrailingWhite | AllowHexSpecifier
	NumberStylesNumber    = NumberStylesInteger | AllowTrailingSign | AllowDecimalPoint | AllowThousands
	NumberStylesFloat     = NumberStylesInteger | AllowDecimalPoint | AllowExponent
	NumberStylesCurrency  = NumberStylesNumber | AllowParentheses | AllowCurrencySymbol
	NumberStylesAny       = NumberStylesCurrency | AllowExponent

	// DefaultNumberStyles is used by the nullable facade and the fluent builder
	// when no styles are given.
	DefaultNumberStyles = NumberStylesAny
)

var numberStyleNames = []struct {
	flag NumberStyles
	name string
}{
	{AllowLeadingWhite, "leading_white"},
	{AllowTrailingWhite, "trailing_white"},
	{AllowLeadingSign, "leading_sign"},
	{AllowTrailingSign, "trailing_sign"},
	{AllowParentheses, "parentheses"},
	{AllowDecimalPoint, "decimal_point"},
	{AllowThousands, "thousands"},
	{AllowExponent, "exponent"},
	{AllowCurrencySymbol, "currency_symbol"},
	{AllowHexSpecifier, "hex_specifier"},
}

var numberStyleComposites = map[string]NumberStyles{
	"none":       NumberStylesNone,
	"integer":    NumberStylesInteger,
	"hex_number": NumberStylesHexNumber,
	"number":     NumberStylesNumber,
	"float":      NumberStylesFloat,
	"currency":   NumberStylesCurrency,
	"any":        NumberStylesAny,
	"default":    DefaultNumberStyles,
}

// Has reports whether all flags in f are set.
func (s NumberStyles) Has(f NumberStyles) bool {
	return s&f == f
}

// String returns the flag names joined by '|', or "none".
func (s NumberStyles) String() string {
	if s == NumberStylesNone {
		return "none"
	}
	var parts []string
	rest := s
	for _, n := range numberStyleNames {
		if s.Has(n.flag) {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("NumberStyles(%#x)", uint16(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseNumberStyles combines flag and composite names ("thousands", "currency", ...)
// into a NumberStyles value. Names are case-insensitive; '-' and '_' are interchangeable.
func ParseNumberStyles(names ...string) (NumberStyles, error) {
	var s NumberStyles
	for _, raw := range names {
		name := normalizeFlagName(raw)
		if c, ok := numberStyleComposites[name]; ok {
			s |= c
			continue
		}
		found := false
		for _, n := range numberStyleNames {
			if n.name == name || "allow_"+n.name == name {
				s |= n.flag
				found = true
				break
			}
		}
		if !found {
			return 0, &OptionsError{Field: "NumberStyles", Message: fmt.Sprintf("unknown style %q", raw)}
		}
	}
	return s, nil
}

// DateTimeStyles is a set of flags that controls how date/time tokens are
// interpreted.
type DateTimeStyles uint8

const (
	// DateTimeStylesNone applies the defaults: outer whitespace is ignored and
	// values without a zone are read as UTC.
	DateTimeStylesNone DateTimeStyles = 0
	// AllowInnerWhite collapses runs of whitespace inside the token before matching.
	AllowInnerWhite DateTimeStyles = 1 << iota
	// AssumeLocal reads values without a zone in the local time zone.
	AssumeLocal
	// AssumeUniversal reads values without a zone as UTC.
	AssumeUniversal
	// AdjustToUniversal converts the parsed value to UTC.
	AdjustToUniversal
)

var dateStyleNames = []struct {
	flag DateTimeStyles
	name string
}{
	{AllowInnerWhite, "inner_white"},
	{AssumeLocal, "assume_local"},
	{AssumeUniversal, "assume_universal"},
	{AdjustToUniversal, "adjust_to_universal"},
}

// Has reports whether all flags in f are set.
func (s DateTimeStyles) Has(f DateTimeStyles) bool {
	return s&f == f
}

// String returns the flag names joined by '|', or "none".
func (s DateTimeStyles) String() string {
	if s == DateTimeStylesNone {
		return "none"
	}
	var parts []string
	for _, n := range dateStyleNames {
		if s.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseDateTimeStyles combines flag names into a DateTimeStyles value.
// "allow_white_spaces" is accepted as an alias of "inner_white".
func ParseDateTimeStyles(names ...string) (DateTimeStyles, error) {
	var s DateTimeStyles
	for _, raw := range names {
		name := normalizeFlagName(raw)
		switch name {
		case "none":
			continue
		case "allow_white_spaces", "white_spaces", "allow_inner_white":
			s |= AllowInnerWhite
			continue
		}
		found := false
		for _, n := range dateStyleNames {
			if n.name == name {
				s |= n.flag
				found = true
				break
			}
		}
		if !found {
			return 0, &OptionsError{Field: "DateTimeStyles", Message: fmt.Sprintf("unknown style %q", raw)}
		}
	}
	return s, nil
}

func normalizeFlagName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}
