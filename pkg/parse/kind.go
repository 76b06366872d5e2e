package parse

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies a target type by the strategy that parses it. It is
// resolved once when a strategy or builder is constructed.
type Kind uint8

const (
	// KindOther is any type without a dedicated rule; it uses the generic strategy.
	KindOther Kind = iota
	// KindInteger covers signed integer types.
	KindInteger
	// KindUnsigned covers unsigned integer types.
	KindUnsigned
	// KindFloat covers float32 and float64.
	KindFloat
	// KindDecimal is decimal.Decimal.
	KindDecimal
	// KindDateTime is time.Time.
	KindDateTime
	// KindBool covers bool types.
	KindBool
	// KindGUID is uuid.UUID.
	KindGUID
	// KindChar is Char.
	KindChar
	// KindEnum marks builders and strategies created from a fixed set of names.
	KindEnum
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindInteger:
		return "integer"
	case KindUnsigned:
		return "unsigned"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindDateTime:
		return "datetime"
	case KindBool:
		return "bool"
	case KindGUID:
		return "guid"
	case KindChar:
		return "char"
	case KindEnum:
		return "enum"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// IsNumeric reports whether k is parsed by the numeric grammar.
func (k Kind) IsNumeric() bool {
	return k == KindInteger || k == KindUnsigned || k == KindFloat || k == KindDecimal
}

// Char is a single character. It is distinct from rune, which parses as a number.
type Char rune

// String returns the character as a string.
func (c Char) String() string { return string(c) }

var (
	decimalType  = reflect.TypeFor[decimal.Decimal]()
	timeType     = reflect.TypeFor[time.Time]()
	uuidType     = reflect.TypeFor[uuid.UUID]()
	charType     = reflect.TypeFor[Char]()
	durationType = reflect.TypeFor[time.Duration]()
)

// KindOf returns the Kind of T.
func KindOf[T any]() Kind {
	return kindOfType(reflect.TypeFor[T]())
}

func kindOfType(t reflect.Type) Kind {
	switch t {
	case decimalType:
		return KindDecimal
	case timeType:
		return KindDateTime
	case uuidType:
		return KindGUID
	case charType:
		return KindChar
	case durationType:
		return KindOther
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInteger
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUnsigned
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Bool:
		return KindBool
	}
	return KindOther
}

// TypeName returns the name used for T in diagnostics, e.g. "int",
// "float64", "Decimal" or "Time".
func TypeName[T any]() string {
	return typeName(reflect.TypeFor[T]())
}

func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
