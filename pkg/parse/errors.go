package parse

import (
	"errors"
	"fmt"
)

// Common parsing errors. Strategies wrap one of these; none of them ever
// escapes Parse or CanParse.
var (
	// ErrEmptyToken indicates a blank or absent token.
	ErrEmptyToken = errors.New("empty token")

	// ErrInvalidFormat indicates a token that does not match the target type
	// under the active culture and styles.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOverflow indicates a well-formed number outside the target type's range.
	ErrOverflow = errors.New("value out of range")

	// ErrUnsupportedType indicates that no conversion path exists for the target type.
	ErrUnsupportedType = errors.New("unsupported type")
)

// FormatError is returned by ParseOrThrow when a present token cannot be
// parsed.
type FormatError struct {
	// Token is the raw token.
	Token string
	// TypeName is the name of the target type.
	TypeName string
	// Param is the optional parameter name supplied by the caller.
	Param string
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message naming the token, type and parameter.
func (e *FormatError) Error() string {
	msg := fmt.Sprintf("Unable to parse '%s' as %s", e.Token, e.TypeName)
	if e.Param != "" {
		msg += fmt.Sprintf(" for parameter '%s'", e.Param)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// failureMessage is the diagnostic carried by a failed Result.
func failureMessage(token, typeName string) string {
	return fmt.Sprintf("Cannot parse '%s' as %s", token, typeName)
}
