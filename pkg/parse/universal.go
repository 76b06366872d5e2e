package parse

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shapestone/shape-csvvalue/pkg/culture"
)

// TryParseNullable parses token as T with the default FormatContext.
//
// Blank tokens return (nil, true): absence is success. Tokens that cannot
// be parsed return (nil, false).
func TryParseNullable[T any](token string) (*T, bool) {
	return TryParseNullableWith[T](token, culture.DefaultContext())
}

// TryParseNullableWith is TryParseNullable with an explicit FormatContext.
// Numbers use its number styles and dates its date styles.
func TryParseNullableWith[T any](token string, fc culture.FormatContext) (*T, bool) {
	if IsBlank(token) {
		return nil, true
	}
	v, err := parseAs[T](token, fc, KindOf[T]())
	if err != nil {
		return nil, false
	}
	return &v, true
}

// TryParseNullableTime parses a date/time under fc.
func TryParseNullableTime(token string, fc culture.FormatContext) (*time.Time, bool) {
	return TryParseNullableWith[time.Time](token, fc)
}

// TryParseNullableGUID parses a GUID.
func TryParseNullableGUID(token string) (*uuid.UUID, bool) {
	return TryParseNullable[uuid.UUID](token)
}

// TryParseNullableBool parses "true" or "false", case-insensitively.
func TryParseNullableBool(token string) (*bool, bool) {
	return TryParseNullable[bool](token)
}

// TryParseNullableChar parses a single character.
func TryParseNullableChar(token string) (*Char, bool) {
	return TryParseNullable[Char](token)
}

// TryParseNullableEnum parses the symbolic name of one of values.
func TryParseNullableEnum[T Enum](token string, ignoreCase bool, values ...T) (*T, bool) {
	if IsBlank(token) {
		return nil, true
	}
	v, err := EnumOf(ignoreCase, values...).TryParse(token, culture.DefaultContext())
	if err != nil {
		return nil, false
	}
	return &v, true
}

// TryParse parses token as T with the default FormatContext and reports the
// outcome as a Result.
func TryParse[T any](token string) Result[T] {
	return TryParseWith[T](token, culture.DefaultContext())
}

// TryParseWith is TryParse with an explicit FormatContext.
func TryParseWith[T any](token string, fc culture.FormatContext) Result[T] {
	v, ok := TryParseNullableWith[T](token, fc)
	if !ok {
		return Failure[T](failureMessage(token, TypeName[T]()))
	}
	return Success(v)
}

// ParseOrNull returns the parsed value, or nil on absence or failure.
func ParseOrNull[T any](token string) *T {
	v, _ := TryParseNullable[T](token)
	return v
}

// ParseOrDefault returns the parsed value, or fallback on absence or failure.
func ParseOrDefault[T any](token string, fallback T) T {
	if v, ok := TryParseNullable[T](token); ok && v != nil {
		return *v
	}
	return fallback
}

// ParseOrThrow returns the parsed value, or nil for a blank token: absence
// is not an error. A present token that cannot be parsed yields a
// *FormatError naming the token and, if param is not empty, the parameter.
// It wraps ErrInvalidFormat, ErrOverflow or ErrUnsupportedType.
func ParseOrThrow[T any](token string, param string) (*T, error) {
	if IsBlank(token) {
		return nil, nil
	}
	v, err := parseAs[T](token, culture.DefaultContext(), KindOf[T]())
	if err != nil {
		if !errors.Is(err, ErrOverflow) && !errors.Is(err, ErrUnsupportedType) && !errors.Is(err, ErrInvalidFormat) {
			err = errors.Join(ErrInvalidFormat, err)
		}
		return nil, &FormatError{Token: token, TypeName: TypeName[T](), Param: param, Err: err}
	}
	return &v, nil
}

// MustParse is like ParseOrThrow but panics with the *FormatError.
func MustParse[T any](token string) *T {
	v, err := ParseOrThrow[T](token, "")
	if err != nil {
		panic(err)
	}
	return v
}
