package parse_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shapestone/shape-csvvalue/pkg/culture"
	"github.com/shapestone/shape-csvvalue/pkg/parse"
)

func TestTryParseNullable(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		tests := []struct {
			token string
			want  *int
			ok    bool
		}{
			{"42", ptr(42), true},
			{"1,234", ptr(1234), true},
			{" -7 ", ptr(-7), true},
			{"(5)", ptr(-5), true},
			{"5-", ptr(-5), true},
			{"", nil, true},
			{"   ", nil, true},
			{"abc", nil, false},
			{"1.5", nil, false},
			{"99999999999999999999", nil, false},
		}
		for _, tt := range tests {
			got, ok := parse.TryParseNullable[int](tt.token)
			if ok != tt.ok || !equalPtr(got, tt.want) {
				t.Errorf("TryParseNullable(%q) = %v, %v; want %v, %v", tt.token, deref(got), ok, deref(tt.want), tt.ok)
			}
		}
	})

	t.Run("float", func(t *testing.T) {
		got, ok := parse.TryParseNullable[float64]("¤1,234.5")
		if !ok || got == nil || *got != 1234.5 {
			t.Errorf("TryParseNullable(¤1,234.5) = %v, %v", deref(got), ok)
		}
		if _, ok := parse.TryParseNullable[float64]("$5"); ok {
			t.Error("dollar accepted by the invariant culture")
		}
		if got, ok := parse.TryParseNullable[float64]("(5)"); !ok || got == nil || *got != -5 {
			t.Errorf("TryParseNullable((5)) = %v, %v; want -5", deref(got), ok)
		}
		nan, ok := parse.TryParseNullable[float64]("nan")
		if !ok || !math.IsNaN(*nan) {
			t.Errorf("TryParseNullable(nan) = %v, %v", deref(nan), ok)
		}
	})

	t.Run("decimal", func(t *testing.T) {
		got, ok := parse.TryParseNullable[decimal.Decimal]("0.10")
		if !ok || !got.Equal(decimal.RequireFromString("0.1")) {
			t.Errorf("TryParseNullable(0.10) = %v, %v", got, ok)
		}
	})

	t.Run("with context", func(t *testing.T) {
		got, ok := parse.TryParseNullableWith[float64]("1.234,5", german)
		if !ok || *got != 1234.5 {
			t.Errorf("TryParseNullableWith(german) = %v, %v", deref(got), ok)
		}
		if _, ok := parse.TryParseNullableWith[float64]("1.234,5", invariant); ok {
			t.Error("german number accepted by invariant culture")
		}
	})
}

func TestTryParseNullableTyped(t *testing.T) {
	t.Run("time", func(t *testing.T) {
		got, ok := parse.TryParseNullableTime("1/15/2024 3:04:05 PM", american)
		want := time.Date(2024, 1, 15, 15, 4, 5, 0, time.UTC)
		if !ok || !got.Equal(want) {
			t.Errorf("TryParseNullableTime = %v, %v", got, ok)
		}
		if v, ok := parse.TryParseNullableTime("", american); !ok || v != nil {
			t.Errorf("TryParseNullableTime(\"\") = %v, %v", v, ok)
		}
		utc := american.WithDateStyles(culture.AdjustToUniversal)
		got, ok = parse.TryParseNullableTime("2024-01-15T12:00:00+02:00", utc)
		if !ok || got.Location() != time.UTC || got.Hour() != 10 {
			t.Errorf("TryParseNullableTime(adjust) = %v, %v", got, ok)
		}
	})

	t.Run("guid", func(t *testing.T) {
		id := uuid.New()
		got, ok := parse.TryParseNullableGUID("{" + id.String() + "}")
		if !ok || *got != id {
			t.Errorf("TryParseNullableGUID = %v, %v", got, ok)
		}
		if _, ok := parse.TryParseNullableGUID("nope"); ok {
			t.Error("TryParseNullableGUID(nope) ok")
		}
	})

	t.Run("bool", func(t *testing.T) {
		if got, ok := parse.TryParseNullableBool("False"); !ok || *got {
			t.Errorf("TryParseNullableBool(False) = %v, %v", deref(got), ok)
		}
		if _, ok := parse.TryParseNullableBool("yes"); ok {
			t.Error("TryParseNullableBool(yes) ok")
		}
	})

	t.Run("char", func(t *testing.T) {
		if got, ok := parse.TryParseNullableChar("é"); !ok || *got != 'é' {
			t.Errorf("TryParseNullableChar(é) = %v, %v", got, ok)
		}
		if _, ok := parse.TryParseNullableChar("ab"); ok {
			t.Error("TryParseNullableChar(ab) ok")
		}
	})

	t.Run("enum", func(t *testing.T) {
		if got, ok := parse.TryParseNullableEnum("red", true, red, green, blue); !ok || *got != red {
			t.Errorf("TryParseNullableEnum(red) = %v, %v", got, ok)
		}
		if _, ok := parse.TryParseNullableEnum("red", false, red, green, blue); ok {
			t.Error("case-sensitive enum matched")
		}
		if got, ok := parse.TryParseNullableEnum(" ", false, red); !ok || got != nil {
			t.Errorf("TryParseNullableEnum(blank) = %v, %v", got, ok)
		}
	})
}

func TestTryParseResult(t *testing.T) {
	if r := parse.TryParse[int]("12"); r.String() != "Success(12)" {
		t.Errorf("TryParse(12) = %v", r)
	}
	if r := parse.TryParse[int](""); r.String() != "Success(<nil>)" {
		t.Errorf("TryParse(\"\") = %v", r)
	}
	if r := parse.TryParse[float64]("abc"); r.Err() != "Cannot parse 'abc' as float64" {
		t.Errorf("TryParse(abc) = %v", r)
	}
	if r := parse.TryParseWith[int]("1.000", german); r.ValueOr(0) != 1000 {
		t.Errorf("TryParseWith(german) = %v", r)
	}
}

func TestParseOrNullAndDefault(t *testing.T) {
	if got := parse.ParseOrNull[int]("x"); got != nil {
		t.Errorf("ParseOrNull(x) = %v", *got)
	}
	if got := parse.ParseOrNull[int]("5"); got == nil || *got != 5 {
		t.Errorf("ParseOrNull(5) = %v", deref(got))
	}
	if got := parse.ParseOrDefault("x", 3); got != 3 {
		t.Errorf("ParseOrDefault(x) = %d", got)
	}
	if got := parse.ParseOrDefault("", 3); got != 3 {
		t.Errorf("ParseOrDefault(\"\") = %d", got)
	}
	if got := parse.ParseOrDefault("8", 3); got != 8 {
		t.Errorf("ParseOrDefault(8) = %d", got)
	}
}

func TestParseOrThrow(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		param   string
		wantErr error
		wantMsg string
	}{
		{"invalid", "abc", "", parse.ErrInvalidFormat, "Unable to parse 'abc' as int"},
		{"invalid with param", "abc", "age", parse.ErrInvalidFormat, "Unable to parse 'abc' as int for parameter 'age'"},
		{"overflow", "99999999999999999999", "", parse.ErrOverflow, "Unable to parse '99999999999999999999' as int"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse.ParseOrThrow[int](tt.token, tt.param)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var fe *parse.FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error %T is not *FormatError", err)
			}
			if fe.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", fe.Error(), tt.wantMsg)
			}
		})
	}

	got, err := parse.ParseOrThrow[int]("  17 ", "")
	if err != nil || got == nil || *got != 17 {
		t.Errorf("ParseOrThrow(17) = %v, %v", deref(got), err)
	}

	for _, token := range []string{"", "   "} {
		got, err := parse.ParseOrThrow[int](token, "age")
		if got != nil || err != nil {
			t.Errorf("ParseOrThrow(%q) = %v, %v; want <nil>, <nil>", token, deref(got), err)
		}
	}
}

func TestParseOrThrowUnsupported(t *testing.T) {
	_, err := parse.ParseOrThrow[point]("1,2", "")
	if !errors.Is(err, parse.ErrUnsupportedType) {
		t.Errorf("error = %v, want ErrUnsupportedType", err)
	}
}

func TestMustParse(t *testing.T) {
	if got := parse.MustParse[uint16]("65535"); got == nil || *got != 65535 {
		t.Errorf("MustParse = %v", deref(got))
	}
	if got := parse.MustParse[uint16](""); got != nil {
		t.Errorf("MustParse(\"\") = %v, want <nil>", *got)
	}
	defer func() {
		r := recover()
		if _, ok := r.(*parse.FormatError); !ok {
			t.Errorf("recover() = %v, want *FormatError", r)
		}
	}()
	parse.MustParse[uint16]("65536")
}

func ptr[T any](v T) *T { return &v }

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
