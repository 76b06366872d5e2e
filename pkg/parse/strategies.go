package parse

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shapestone/shape-csvvalue/pkg/culture"
)

// NumberParser parses any integer or floating-point type with the number
// styles of the FormatContext.
type NumberParser[T any] struct {
	kind Kind
}

// NewNumberParser creates a NumberParser for T. It panics if T is not an
// integer, float or decimal type.
func NewNumberParser[T any]() NumberParser[T] {
	kind := KindOf[T]()
	if !kind.IsNumeric() {
		panic(fmt.Sprintf("parse: NewNumberParser: %s is not a numeric type", TypeName[T]()))
	}
	return NumberParser[T]{kind: kind}
}

// TryParse implements TryParser.
func (p NumberParser[T]) TryParse(token string, fc culture.FormatContext) (T, error) {
	kind := p.kind
	if kind == KindOther {
		kind = KindOf[T]()
	}
	return parseAs[T](token, fc, kind)
}

// Parse implements Parser. Blank and invalid tokens yield zero.
func (p NumberParser[T]) Parse(token string, fc culture.FormatContext) T {
	v, _ := p.TryParse(token, fc)
	return v
}

// CanParse implements Parser.
func (p NumberParser[T]) CanParse(token string, fc culture.FormatContext) bool {
	_, err := p.TryParse(token, fc)
	return err == nil
}

// DecimalParser parses decimal.Decimal values. It uses its own number
// styles and takes only the culture from the FormatContext.
type DecimalParser struct {
	styles culture.NumberStyles
}

// DefaultDecimalStyles are the styles of a DecimalParser created without
// explicit styles: grouping, decimal point, signs and a currency symbol.
const DefaultDecimalStyles = culture.NumberStylesNumber | culture.AllowCurrencySymbol

// NewDecimalParser creates a DecimalParser with DefaultDecimalStyles.
func NewDecimalParser() DecimalParser {
	return DecimalParser{styles: DefaultDecimalStyles}
}

// NewDecimalParserWithStyles creates a DecimalParser with the given styles.
func NewDecimalParserWithStyles(styles culture.NumberStyles) DecimalParser {
	return DecimalParser{styles: styles}
}

// Styles returns the number styles used by p.
func (p DecimalParser) Styles() culture.NumberStyles { return p.styles }

// TryParse implements TryParser.
func (p DecimalParser) TryParse(token string, fc culture.FormatContext) (decimal.Decimal, error) {
	return parseAs[decimal.Decimal](token, fc.WithNumberStyles(p.styles), KindDecimal)
}

// Parse implements Parser. Blank and invalid tokens yield decimal.Zero.
func (p DecimalParser) Parse(token string, fc culture.FormatContext) decimal.Decimal {
	v, _ := p.TryParse(token, fc)
	return v
}

// CanParse implements Parser.
func (p DecimalParser) CanParse(token string, fc culture.FormatContext) bool {
	_, err := p.TryParse(token, fc)
	return err == nil
}

// DateTimeParser parses time.Time values with the culture's layouts. It uses
// its own date styles and takes only the culture from the FormatContext.
type DateTimeParser struct {
	styles culture.DateTimeStyles
}

// NewDateTimeParser creates a DateTimeParser with the given styles.
func NewDateTimeParser(styles culture.DateTimeStyles) DateTimeParser {
	return DateTimeParser{styles: styles}
}

// Styles returns the date styles used by p.
func (p DateTimeParser) Styles() culture.DateTimeStyles { return p.styles }

// TryParse implements TryParser.
func (p DateTimeParser) TryParse(token string, fc culture.FormatContext) (time.Time, error) {
	return parseAs[time.Time](token, fc.WithDateStyles(p.styles), KindDateTime)
}

// Parse implements Parser. Blank and invalid tokens yield the zero time.
func (p DateTimeParser) Parse(token string, fc culture.FormatContext) time.Time {
	v, _ := p.TryParse(token, fc)
	return v
}

// CanParse implements Parser.
func (p DateTimeParser) CanParse(token string, fc culture.FormatContext) bool {
	_, err := p.TryParse(token, fc)
	return err == nil
}

// BoolParser accepts "true" and "false", case-insensitively.
type BoolParser struct{}

// TryParse implements TryParser.
func (BoolParser) TryParse(token string, fc culture.FormatContext) (bool, error) {
	return parseAs[bool](token, fc, KindBool)
}

// Parse implements Parser.
func (p BoolParser) Parse(token string, fc culture.FormatContext) bool {
	v, _ := p.TryParse(token, fc)
	return v
}

// CanParse implements Parser.
func (p BoolParser) CanParse(token string, fc culture.FormatContext) bool {
	_, err := p.TryParse(token, fc)
	return err == nil
}

// CharParser accepts exactly one character.
type CharParser struct{}

// TryParse implements TryParser.
func (CharParser) TryParse(token string, fc culture.FormatContext) (Char, error) {
	return parseAs[Char](token, fc, KindChar)
}

// Parse implements Parser.
func (p CharParser) Parse(token string, fc culture.FormatContext) Char {
	v, _ := p.TryParse(token, fc)
	return v
}

// CanParse implements Parser.
func (p CharParser) CanParse(token string, fc culture.FormatContext) bool {
	_, err := p.TryParse(token, fc)
	return err == nil
}

// GUIDParser accepts the forms understood by uuid.Parse: canonical,
// braced, urn:uuid: and 32 hex digits.
type GUIDParser struct{}

// TryParse implements TryParser.
func (GUIDParser) TryParse(token string, fc culture.FormatContext) (uuid.UUID, error) {
	return parseAs[uuid.UUID](token, fc, KindGUID)
}

// Parse implements Parser.
func (p GUIDParser) Parse(token string, fc culture.FormatContext) uuid.UUID {
	v, _ := p.TryParse(token, fc)
	return v
}

// CanParse implements Parser.
func (p GUIDParser) CanParse(token string, fc culture.FormatContext) bool {
	_, err := p.TryParse(token, fc)
	return err == nil
}
