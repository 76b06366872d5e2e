// Package culture provides the format context used by every parse attempt:
// a culture (number symbols and date layouts for a locale) plus number and
// date/time style flags.
//
// Cultures are resolved from BCP 47 names with golang.org/x/text/language, so
// "de-DE", "de_DE", "de" and "de-LU" all resolve to the German culture. The
// empty name and "invariant" resolve to Invariant.
//
//	de := culture.MustLookup("de-DE")
//	fc := culture.DefaultContext().WithCulture(de)
//
// # Thread Safety
//
// Cultures and FormatContexts are immutable and safe for concurrent use.
package culture

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnknownCulture is returned when a culture name cannot be matched to any
// supported culture.
var ErrUnknownCulture = errors.New("unknown culture")

// Culture holds the locale-specific symbols and layouts used to read and
// write numbers and dates.
type Culture struct {
	name     string
	tag      language.Tag
	decimal  string
	group    string
	currency string
	// currencyAfter places the symbol after the amount when formatting.
	currencyAfter bool
	dateLayouts   []string
	timeLayouts   []string
	longDate      string
}

// Name returns the culture name, e.g. "de-DE". Invariant returns "".
func (c *Culture) Name() string { return c.culture().name }

// Tag returns the language tag of the culture (language.Und for Invariant).
func (c *Culture) Tag() language.Tag { return c.culture().tag }

// DecimalSeparator returns the decimal separator.
func (c *Culture) DecimalSeparator() string { return c.culture().decimal }

// GroupSeparator returns the digit group (thousands) separator.
func (c *Culture) GroupSeparator() string { return c.culture().group }

// CurrencySymbol returns the local currency symbol.
func (c *Culture) CurrencySymbol() string { return c.culture().currency }

// ShortDateLayout returns the Go layout of the culture's short date pattern.
func (c *Culture) ShortDateLayout() string { return c.culture().dateLayouts[0] }

// LongTimeLayout returns the Go layout of the culture's long time pattern.
func (c *Culture) LongTimeLayout() string { return c.culture().timeLayouts[0] }

// ShortTimeLayout returns the Go layout of the culture's short time pattern.
func (c *Culture) ShortTimeLayout() string {
	cc := c.culture()
	return cc.timeLayouts[len(cc.timeLayouts)-1]
}

// LongDateLayout returns the Go layout of the culture's long date pattern.
func (c *Culture) LongDateLayout() string { return c.culture().longDate }

// IsInvariant reports whether c is the invariant culture.
func (c *Culture) IsInvariant() bool { return c.culture() == Invariant }

// String implements fmt.Stringer.
func (c *Culture) String() string {
	if c.IsInvariant() {
		return "invariant"
	}
	return c.name
}

// culture maps a nil receiver to Invariant.
func (c *Culture) culture() *Culture {
	if c == nil {
		return Invariant
	}
	return c
}

// Invariant is the culture-neutral culture: '.' decimal separator, ','
// group separator, month/day/year dates.
var Invariant = &Culture{
	name:        "",
	tag:         language.Und,
	decimal:     ".",
	group:       ",",
	currency:    "¤",
	dateLayouts: []string{"01/02/2006", "1/2/2006"},
	timeLayouts: []string{"15:04:05", "15:04"},
	longDate:    "Monday, 02 January 2006",
}

const (
	nbsp       = "\u00a0"
	narrowNbsp = "\u202f"
)

var builtin = []*Culture{
	{
		name: "en-US", decimal: ".", group: ",", currency: "$",
		dateLayouts: []string{"1/2/2006", "01/02/2006", "January 2, 2006", "Jan 2, 2006"},
		timeLayouts: []string{"3:04:05 PM", "15:04:05", "3:04 PM", "15:04"},
		longDate:    "Monday, January 2, 2006",
	},
	{
		name: "en-GB", decimal: ".", group: ",", currency: "£",
		dateLayouts: []string{"02/01/2006", "2/1/2006", "2 January 2006", "2 Jan 2006"},
		timeLayouts: []string{"15:04:05", "15:04"},
		longDate:    "Monday, 2 January 2006",
	},
	{
		name: "de-DE", decimal: ",", group: ".", currency: "€", currencyAfter: true,
		dateLayouts: []string{"02.01.2006", "2.1.2006"},
		timeLayouts: []string{"15:04:05", "15:04"},
		longDate:    "02.01.2006",
	},
	{
		name: "de-CH", decimal: ".", group: "’", currency: "CHF",
		dateLayouts: []string{"02.01.2006", "2.1.2006"},
		timeLayouts: []string{"15:04:05", "15:04"},
		longDate:    "02.01.2006",
	},
	{
		name: "fr-FR", decimal: ",", group: narrowNbsp, currency: "€", currencyAfter: true,
		dateLayouts: []string{"02/01/2006", "2/1/2006"},
		timeLayouts: []string{"15:04:05", "15:04"},
		longDate:    "02/01/2006",
	},
	{
		name: "es-ES", decimal: ",", group: ".", currency: "€", currencyAfter: true,
		dateLayouts: []string{"02/01/2006", "2/1/2006"},
		timeLayouts: []string{"15:04:05", "15:04"},
		longDate:    "02/01/2006",
	},
	{
		name: "it-IT", decimal: ",", group: ".", currency: "€", currencyAfter: true,
		dateLayouts: []string{"02/01/2006", "2/1/2006"},
		timeLayouts: []string{"15:04:05", "15:04"},
		longDate:    "02/01/2006",
	},
	{
		name: "nl-NL", decimal: ",", group: ".", currency: "€",
		dateLayouts: []string{"02-01-2006", "2-1-2006"},
		timeLayouts: []string{"15:04:05", "15:04"},
		longDate:    "02-01-2006",
	},
	{
		name: "pt-BR", decimal: ",", group: ".", currency: "R$",
		dateLayouts: []string{"02/01/2006", "2/1/2006"},
		timeLayouts: []string{"15:04:05", "15:04"},
		longDate:    "02/01/2006",
	},
	{
		name: "sv-SE", decimal: ",", group: nbsp, currency: "kr", currencyAfter: true,
		dateLayouts: []string{"2006-01-02"},
		timeLayouts: []string{"15:04:05", "15:04"},
		longDate:    "2006-01-02",
	},
	{
		name: "pl-PL", decimal: ",", group: nbsp, currency: "zł", currencyAfter: true,
		dateLayouts: []string{"02.01.2006", "2.01.2006"},
		timeLayouts: []string{"15:04:05", "15:04"},
		longDate:    "02.01.2006",
	},
	{
		name: "ru-RU", decimal: ",", group: nbsp, currency: "₽", currencyAfter: true,
		dateLayouts: []string{"02.01.2006", "2.1.2006"},
		timeLayouts: []string{"15:04:05", "15:04"},
		longDate:    "02.01.2006",
	},
	{
		name: "ja-JP", decimal: ".", group: ",", currency: "¥",
		dateLayouts: []string{"2006/01/02", "2006/1/2"},
		timeLayouts: []string{"15:04:05", "15:04"},
		longDate:    "2006/01/02",
	},
	{
		name: "zh-CN", decimal: ".", group: ",", currency: "¥",
		dateLayouts: []string{"2006/1/2", "2006/01/02"},
		timeLayouts: []string{"15:04:05", "15:04"},
		longDate:    "2006/01/02",
	},
}

var (
	byName  = map[string]*Culture{}
	matcher language.Matcher
)

func init() {
	tags := make([]language.Tag, len(builtin))
	for i, c := range builtin {
		c.tag = language.MustParse(c.name)
		tags[i] = c.tag
		byName[strings.ToLower(c.name)] = c
	}
	matcher = language.NewMatcher(tags)
}

// Lookup resolves a culture name. Exact names ("de-DE") are returned
// directly; other valid BCP 47 names are matched to the closest supported
// culture ("de-AT" -> "de-DE", "en" -> "en-US"). The empty string and
// "invariant" return Invariant.
func Lookup(name string) (*Culture, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
	if key == "" || key == "invariant" || key == "und" {
		return Invariant, nil
	}
	if c, ok := byName[key]; ok {
		return c, nil
	}
	tag, err := language.Parse(key)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownCulture, name, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return nil, fmt.Errorf("%w %q", ErrUnknownCulture, name)
	}
	return builtin[idx], nil
}

// MustLookup is like Lookup but panics if the name cannot be resolved.
func MustLookup(name string) *Culture {
	c, err := Lookup(name)
	if err != nil {
		panic("culture: " + err.Error())
	}
	return c
}

// Supported returns the names of the built-in cultures.
func Supported() []string {
	names := make([]string, len(builtin))
	for i, c := range builtin {
		names[i] = c.name
	}
	return names
}

// isSpaceSeparator reports whether sep is one of the space characters used
// as a group separator.
func isSpaceSeparator(sep string) bool {
	return sep == " " || sep == nbsp || sep == narrowNbsp
}

// HasSpaceGroupSeparator reports whether the culture groups digits with a
// space character. Parsers accept any space variant in that case.
func (c *Culture) HasSpaceGroupSeparator() bool {
	return isSpaceSeparator(c.GroupSeparator())
}
