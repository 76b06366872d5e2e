package culture

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Formattable is implemented by values that know how to render themselves
// for a culture. FormatValue prefers it over every built-in rule.
type Formattable interface {
	FormatCulture(format string, c *Culture) string
}

// FormatValue renders v for culture c.
//
// Number formats: "" or "G" (general), "F<n>" (fixed), "N<n>" (fixed with
// group separators), "C<n>" (currency), "D<n>" (integer, zero padded).
// Date/time formats: "d", "D", "t", "T", "g", "G" (culture patterns), "s",
// "o", "u" (sortable/round-trip), or a custom pattern such as "yyyy-MM-dd".
//
// nil renders as "". Values without a culture rule use fmt.Stringer or fmt.Sprint.
func FormatValue(v any, format string, c *Culture) string {
	switch x := v.(type) {
	case nil:
		return ""
	case Formattable:
		return x.FormatCulture(format, c)
	case string:
		return x
	case decimal.Decimal:
		return FormatDecimal(x, format, c)
	case time.Time:
		return FormatTime(x, format, c)
	case float64:
		return FormatFloat(x, 64, format, c)
	case float32:
		return FormatFloat(float64(x), 32, format, c)
	case fmt.Stringer:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FormatInt(rv.Int(), format, c)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return formatCanonical(strconv.FormatUint(rv.Uint(), 10), format, true, c)
	case reflect.Float32:
		return FormatFloat(rv.Float(), 32, format, c)
	case reflect.Float64:
		return FormatFloat(rv.Float(), 64, format, c)
	case reflect.String:
		return rv.String()
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}
		return FormatValue(rv.Elem().Interface(), format, c)
	}
	return fmt.Sprint(v)
}

// FormatInt renders an integer.
func FormatInt(i int64, format string, c *Culture) string {
	return formatCanonical(strconv.FormatInt(i, 10), format, true, c)
}

// FormatFloat renders a floating-point value of the given bit size.
func FormatFloat(f float64, bitSize int, format string, c *Culture) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	spec := parseNumberFormat(format)
	switch spec.kind {
	case 'F', 'N', 'C':
		return formatCanonical(strconv.FormatFloat(f, 'f', spec.precision, bitSize), format, false, c)
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mantissa := localizeCanonical(s[:i], false, c)
		return mantissa + "E" + s[i+1:]
	}
	return localizeCanonical(s, false, c)
}

// FormatDecimal renders a decimal value.
func FormatDecimal(d decimal.Decimal, format string, c *Culture) string {
	spec := parseNumberFormat(format)
	switch spec.kind {
	case 'F', 'N', 'C':
		return formatCanonical(d.StringFixed(int32(spec.precision)), format, false, c)
	}
	return localizeCanonical(d.String(), false, c)
}

type numberFormat struct {
	kind      byte // 'G', 'F', 'N', 'C', 'D'
	precision int
	explicit  bool
}

func parseNumberFormat(format string) numberFormat {
	if format == "" {
		return numberFormat{kind: 'G'}
	}
	kind := format[0]
	if kind >= 'a' && kind <= 'z' {
		kind -= 'a' - 'A'
	}
	nf := numberFormat{kind: kind, precision: 2}
	switch kind {
	case 'F', 'N', 'C':
	case 'D':
		nf.precision = 0
	default:
		return numberFormat{kind: 'G'}
	}
	if len(format) > 1 {
		p, err := strconv.Atoi(format[1:])
		if err != nil || p < 0 || p > 99 {
			return numberFormat{kind: 'G'}
		}
		nf.precision = p
		nf.explicit = true
	}
	return nf
}

// formatCanonical applies a number format to a canonical literal such as
// "-1234.50". integral reports whether the literal came from an integer.
func formatCanonical(s, format string, integral bool, c *Culture) string {
	spec := parseNumberFormat(format)
	switch spec.kind {
	case 'D':
		if !integral {
			return localizeCanonical(s, false, c)
		}
		neg := strings.HasPrefix(s, "-")
		digits := strings.TrimPrefix(s, "-")
		if pad := spec.precision - len(digits); pad > 0 {
			digits = strings.Repeat("0", pad) + digits
		}
		if neg {
			return "-" + digits
		}
		return digits
	case 'F', 'N', 'C':
		if integral && spec.precision > 0 {
			s += "." + strings.Repeat("0", spec.precision)
		}
		out := localizeCanonical(s, spec.kind != 'F', c)
		if spec.kind == 'C' {
			return withCurrency(out, c)
		}
		return out
	}
	return localizeCanonical(s, false, c)
}

// localizeCanonical swaps the invariant separators of a canonical literal
// for the culture's, optionally grouping the integer digits.
func localizeCanonical(s string, grouped bool, c *Culture) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if grouped {
		intPart = groupDigits(intPart, c.GroupSeparator())
	}
	if hasFrac {
		return sign + intPart + c.DecimalSeparator() + frac
	}
	return sign + intPart
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func withCurrency(amount string, c *Culture) string {
	sign := ""
	if strings.HasPrefix(amount, "-") {
		sign, amount = "-", amount[1:]
	}
	cc := c.culture()
	if cc.currencyAfter {
		return sign + amount + nbsp + cc.currency
	}
	return sign + cc.currency + amount
}

// FormatTime renders t with a culture pattern or a custom pattern.
func FormatTime(t time.Time, format string, c *Culture) string {
	switch format {
	case "", "G":
		return t.Format(c.ShortDateLayout() + " " + c.LongTimeLayout())
	case "g":
		return t.Format(c.ShortDateLayout() + " " + c.ShortTimeLayout())
	case "d":
		return t.Format(c.ShortDateLayout())
	case "D":
		return t.Format(c.LongDateLayout())
	case "t":
		return t.Format(c.ShortTimeLayout())
	case "T":
		return t.Format(c.LongTimeLayout())
	case "s":
		return t.Format("2006-01-02T15:04:05")
	case "u":
		return t.UTC().Format("2006-01-02 15:04:05Z")
	case "o", "O":
		return t.Format(time.RFC3339Nano)
	}
	return t.Format(ConvertPattern(format))
}

var patternTokens = map[string]string{
	"yyyy": "2006", "yyy": "2006", "yy": "06", "y": "6",
	"MMMM": "January", "MMM": "Jan", "MM": "01", "M": "1",
	"dddd": "Monday", "ddd": "Mon", "dd": "02", "d": "2",
	"HH": "15", "H": "15", "hh": "03", "h": "3",
	"mm": "04", "m": "4", "ss": "05", "s": "5",
	"tt": "PM", "t": "PM",
	"zzz": "-07:00", "zz": "-07", "z": "-07",
	"K": "Z07:00",
}

// ConvertPattern translates a custom date pattern ("yyyy-MM-dd HH:mm:ss")
// into a Go time layout. Text in single quotes and backslash-escaped
// characters are copied literally.
func ConvertPattern(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		ch := pattern[i]
		switch {
		case ch == '\'':
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				b.WriteString(pattern[i+1:])
				return b.String()
			}
			b.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		case ch == '\\' && i+1 < len(pattern):
			b.WriteByte(pattern[i+1])
			i += 2
			continue
		case ch == 'f' || ch == 'F':
			j := i
			for j < len(pattern) && pattern[j] == ch {
				j++
			}
			fill := "0"
			if ch == 'F' {
				fill = "9"
			}
			b.WriteString(strings.Repeat(fill, j-i))
			i = j
			continue
		}
		j := i
		for j < len(pattern) && pattern[j] == ch {
			j++
		}
		run := pattern[i:j]
		for len(run) > 0 {
			n := len(run)
			for n > 0 {
				if layout, ok := patternTokens[run[:n]]; ok {
					b.WriteString(layout)
					break
				}
				n--
			}
			if n == 0 {
				b.WriteString(run)
				break
			}
			run = run[n:]
		}
		i = j
	}
	return b.String()
}
