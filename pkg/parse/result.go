package parse

import "fmt"

// Result is the outcome of a parse attempt: Success with an optional value,
// or Failure with a diagnostic message. Success with no value means the
// token was recognized as absent.
type Result[T any] struct {
	ok    bool
	value *T
	msg   string
}

// Success returns a successful Result. A nil v means "no value".
func Success[T any](v *T) Result[T] {
	if v == nil {
		return Result[T]{ok: true}
	}
	c := *v
	return Result[T]{ok: true, value: &c}
}

// SuccessValue returns a successful Result holding v.
func SuccessValue[T any](v T) Result[T] {
	return Result[T]{ok: true, value: &v}
}

// Failure returns a failed Result with the given message.
func Failure[T any](msg string) Result[T] {
	return Result[T]{msg: msg}
}

// IsSuccess reports whether the parse succeeded, with or without a value.
func (r Result[T]) IsSuccess() bool { return r.ok }

// HasValue reports whether the Result is a success holding a value.
func (r Result[T]) HasValue() bool { return r.ok && r.value != nil }

// Value returns the parsed value and whether there is one.
func (r Result[T]) Value() (T, bool) {
	if r.value == nil {
		var zero T
		return zero, false
	}
	return *r.value, true
}

// Ptr returns a copy of the parsed value, or nil.
func (r Result[T]) Ptr() *T {
	if r.value == nil {
		return nil
	}
	c := *r.value
	return &c
}

// Err returns the failure message, or "" on success.
func (r Result[T]) Err() string { return r.msg }

// ValueOr returns the parsed value, or fallback on failure or absence.
func (r Result[T]) ValueOr(fallback T) T {
	if v, ok := r.Value(); ok {
		return v
	}
	return fallback
}

// Match calls onSuccess with the optional value, or onFailure with the message.
func (r Result[T]) Match(onSuccess func(*T), onFailure func(string)) {
	if r.ok {
		onSuccess(r.Ptr())
		return
	}
	onFailure(r.msg)
}

// MatchResult maps r to a single value of type R.
func MatchResult[T, R any](r Result[T], onSuccess func(*T) R, onFailure func(string) R) R {
	if r.ok {
		return onSuccess(r.Ptr())
	}
	return onFailure(r.msg)
}

// String implements fmt.Stringer.
func (r Result[T]) String() string {
	switch {
	case !r.ok:
		return fmt.Sprintf("Failure(%s)", r.msg)
	case r.value == nil:
		return "Success(<nil>)"
	default:
		return fmt.Sprintf("Success(%v)", *r.value)
	}
}
