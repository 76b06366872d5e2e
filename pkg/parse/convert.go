package parse

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shapestone/shape-csvvalue/internal/numlex"
	"github.com/shapestone/shape-csvvalue/pkg/culture"
)

// parseAs converts token to T with the strict rule for kind. Blank tokens
// fail with ErrEmptyToken.
func parseAs[T any](token string, fc culture.FormatContext, kind Kind) (v T, err error) {
	defer recoverInto(&err)
	rv, err := parseValue(token, fc, reflect.TypeFor[T](), kind)
	if err != nil {
		return v, err
	}
	return rv.Interface().(T), nil
}

// parseValue is the strict conversion shared by the typed strategies and the
// facade. Numbers use fc's number styles and dates fc's date styles.
func parseValue(token string, fc culture.FormatContext, t reflect.Type, kind Kind) (reflect.Value, error) {
	if strings.TrimSpace(token) == "" {
		return reflect.Value{}, ErrEmptyToken
	}
	switch kind {
	case KindInteger, KindUnsigned, KindFloat, KindDecimal:
		return parseNumber(token, fc.Culture(), fc.NumberStyles(), t, kind)
	case KindDateTime:
		tm, err := culture.ParseDateTime(token, fc.Culture(), fc.DateStyles())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return reflect.ValueOf(tm).Convert(t), nil
	case KindBool:
		b, err := parseBool(token)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(b).Convert(t), nil
	case KindGUID:
		id, err := uuid.Parse(strings.TrimSpace(token))
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return reflect.ValueOf(id).Convert(t), nil
	case KindChar:
		c, err := parseChar(token)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(c).Convert(t), nil
	}
	return convertGeneric(token, fc, t)
}

// parseBool accepts "true" and "false" in any case, ignoring surrounding whitespace.
func parseBool(token string) (bool, error) {
	s := strings.TrimSpace(token)
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidFormat, token)
}

// parseChar accepts exactly one character.
func parseChar(token string) (Char, error) {
	r, size := utf8.DecodeRuneInString(token)
	if size == 0 || size != len(token) || (r == utf8.RuneError && size == 1) {
		return 0, fmt.Errorf("%w: %q is not a single character", ErrInvalidFormat, token)
	}
	return Char(r), nil
}

// parseNumber reads a culture-formatted number into a value of type t.
func parseNumber(token string, c *culture.Culture, styles culture.NumberStyles, t reflect.Type, kind Kind) (reflect.Value, error) {
	out := reflect.New(t).Elem()

	if styles.Has(culture.AllowHexSpecifier) {
		return parseHex(token, styles, out, kind)
	}
	if kind == KindFloat {
		if f, ok := parseSpecialFloat(token, styles); ok {
			out.SetFloat(f)
			return out, nil
		}
	}

	num, err := numlex.Parse(token, c, styles)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	lit := num.Literal()

	switch kind {
	case KindFloat:
		f, err := strconv.ParseFloat(lit, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %s overflows %s", ErrOverflow, lit, t)
		}
		out.SetFloat(f)
		return out, nil

	case KindDecimal:
		d, err := decimal.NewFromString(lit)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		out.Set(reflect.ValueOf(d))
		return out, nil
	}

	i, err := integerValue(lit)
	if err != nil {
		return reflect.Value{}, err
	}
	if kind == KindUnsigned {
		if !i.IsUint64() || out.OverflowUint(i.Uint64()) {
			return reflect.Value{}, fmt.Errorf("%w: %s overflows %s", ErrOverflow, lit, t)
		}
		out.SetUint(i.Uint64())
		return out, nil
	}
	if !i.IsInt64() || out.OverflowInt(i.Int64()) {
		return reflect.Value{}, fmt.Errorf("%w: %s overflows %s", ErrOverflow, lit, t)
	}
	out.SetInt(i.Int64())
	return out, nil
}

// integerValue converts a canonical literal to an integer. Fractions must be
// zero ("12.00" and "1.2e1" are integers, "1.5" is not).
func integerValue(lit string) (*big.Int, error) {
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if !d.IsInteger() {
		return nil, fmt.Errorf("%w: %s is not an integer", ErrInvalidFormat, lit)
	}
	return d.BigInt(), nil
}

// parseHex reads hexadecimal digits. Signed types use two's complement of
// their own width, so "FF" is -1 for int8.
func parseHex(token string, styles culture.NumberStyles, out reflect.Value, kind Kind) (reflect.Value, error) {
	if kind != KindInteger && kind != KindUnsigned {
		return reflect.Value{}, fmt.Errorf("%w: hex_specifier requires an integer type, got %s", ErrInvalidFormat, out.Type())
	}
	s := token
	if styles.Has(culture.AllowLeadingWhite) {
		s = strings.TrimLeft(s, " \t\r\n\v\f")
	}
	if styles.Has(culture.AllowTrailingWhite) {
		s = strings.TrimRight(s, " \t\r\n\v\f")
	}
	u, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidFormat, token)
	}

	bits := out.Type().Bits()
	if bits < 64 && u >= 1<<bits {
		return reflect.Value{}, fmt.Errorf("%w: %s overflows %s", ErrOverflow, s, out.Type())
	}
	if kind == KindUnsigned {
		out.SetUint(u)
		return out, nil
	}
	i := int64(u)
	if bits < 64 && u >= 1<<(bits-1) {
		i -= 1 << bits
	}
	out.SetInt(i)
	return out, nil
}

// parseSpecialFloat recognizes NaN and the infinities.
func parseSpecialFloat(token string, styles culture.NumberStyles) (float64, bool) {
	s := token
	if styles.Has(culture.AllowLeadingWhite) {
		s = strings.TrimLeft(s, " \t")
	}
	if styles.Has(culture.AllowTrailingWhite) {
		s = strings.TrimRight(s, " \t")
	}
	switch strings.ToLower(s) {
	case "nan":
		return math.NaN(), true
	case "infinity", "∞":
		return math.Inf(1), true
	case "-infinity", "-∞":
		if styles.Has(culture.AllowLeadingSign) {
			return math.Inf(-1), true
		}
	case "+infinity", "+∞":
		if styles.Has(culture.AllowLeadingSign) {
			return math.Inf(1), true
		}
	}
	return 0, false
}
