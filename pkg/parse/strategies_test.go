package parse_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shapestone/shape-csvvalue/pkg/culture"
	"github.com/shapestone/shape-csvvalue/pkg/parse"
)

var (
	invariant = culture.DefaultContext()
	german    = culture.DefaultContext().WithCulture(culture.MustLookup("de-DE"))
	american  = culture.DefaultContext().WithCulture(culture.MustLookup("en-US"))
)

func TestNumberParserInt(t *testing.T) {
	p := parse.NewNumberParser[int]()
	tests := []struct {
		name    string
		token   string
		fc      culture.FormatContext
		want    int
		wantErr error
	}{
		{"plain", "42", invariant, 42, nil},
		{"negative", "-42", invariant, -42, nil},
		{"padded", " 42 ", invariant, 42, nil},
		{"grouped", "1,234,567", invariant, 1234567, nil},
		{"german grouped", "1.234", german, 1234, nil},
		{"zero fraction", "12.00", invariant, 12, nil},
		{"exponent", "1.2e1", invariant, 12, nil},
		{"fraction", "1.5", invariant, 0, parse.ErrInvalidFormat},
		{"german fraction", "1.234,5", german, 0, parse.ErrInvalidFormat},
		{"letters", "abc", invariant, 0, parse.ErrInvalidFormat},
		{"blank", "  ", invariant, 0, parse.ErrEmptyToken},
		{"trailing sign by default", "123-", invariant, -123, nil},
		{"parentheses by default", "(5)", invariant, -5, nil},
		{"trailing sign not allowed", "123-", invariant.WithNumberStyles(culture.NumberStylesFloat), 0, parse.ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.TryParse(tt.token, tt.fc)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("TryParse(%q) error = %v, want %v", tt.token, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("TryParse(%q) = %d, want %d", tt.token, got, tt.want)
			}
			if p.CanParse(tt.token, tt.fc) != (tt.wantErr == nil) {
				t.Errorf("CanParse(%q) disagrees with TryParse", tt.token)
			}
			if got := p.Parse(tt.token, tt.fc); got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

func TestNumberParserOverflow(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		_, err := parse.NewNumberParser[int8]().TryParse("128", invariant)
		if !errors.Is(err, parse.ErrOverflow) {
			t.Errorf("error = %v, want ErrOverflow", err)
		}
		got, err := parse.NewNumberParser[int8]().TryParse("-128", invariant)
		if err != nil || got != -128 {
			t.Errorf("TryParse(-128) = %d, %v", got, err)
		}
	})
	t.Run("int64", func(t *testing.T) {
		p := parse.NewNumberParser[int64]()
		if got := p.Parse("9223372036854775807", invariant); got != math.MaxInt64 {
			t.Errorf("Parse(max) = %d", got)
		}
		if _, err := p.TryParse("9223372036854775808", invariant); !errors.Is(err, parse.ErrOverflow) {
			t.Errorf("error = %v, want ErrOverflow", err)
		}
	})
	t.Run("uint8", func(t *testing.T) {
		p := parse.NewNumberParser[uint8]()
		if got := p.Parse("255", invariant); got != 255 {
			t.Errorf("Parse(255) = %d", got)
		}
		if p.CanParse("256", invariant) {
			t.Error("CanParse(256) = true")
		}
		if p.CanParse("-1", invariant) {
			t.Error("CanParse(-1) = true")
		}
	})
	t.Run("float32", func(t *testing.T) {
		_, err := parse.NewNumberParser[float32]().TryParse("1e39", invariant)
		if !errors.Is(err, parse.ErrOverflow) {
			t.Errorf("error = %v, want ErrOverflow", err)
		}
	})
}

func TestNumberParserHex(t *testing.T) {
	hex := invariant.WithNumberStyles(culture.NumberStylesHexNumber)

	if got := parse.NewNumberParser[int8]().Parse("FF", hex); got != -1 {
		t.Errorf("int8 FF = %d, want -1", got)
	}
	if got := parse.NewNumberParser[int8]().Parse("7f", hex); got != 127 {
		t.Errorf("int8 7f = %d, want 127", got)
	}
	if got := parse.NewNumberParser[uint8]().Parse(" ff ", hex); got != 255 {
		t.Errorf("uint8 ff = %d, want 255", got)
	}
	if got := parse.NewNumberParser[int32]().Parse("FFFFFFFF", hex); got != -1 {
		t.Errorf("int32 FFFFFFFF = %d, want -1", got)
	}
	if _, err := parse.NewNumberParser[int8]().TryParse("1FF", hex); !errors.Is(err, parse.ErrOverflow) {
		t.Errorf("int8 1FF error = %v, want ErrOverflow", err)
	}
	if _, err := parse.NewNumberParser[int]().TryParse("0x1F", hex); !errors.Is(err, parse.ErrInvalidFormat) {
		t.Errorf("0x prefix error = %v, want ErrInvalidFormat", err)
	}
	if parse.NewNumberParser[float64]().CanParse("FF", hex) {
		t.Error("hex float accepted")
	}
}

func TestNumberParserFloat(t *testing.T) {
	p := parse.NewNumberParser[float64]()
	tests := []struct {
		name  string
		token string
		fc    culture.FormatContext
		want  float64
		ok    bool
	}{
		{"plain", "3.14", invariant, 3.14, true},
		{"grouped", "1,234.5", invariant, 1234.5, true},
		{"german", "1.234,56", german, 1234.56, true},
		{"german currency", "1.234,56 €", german, 1234.56, true},
		{"exponent", "1.5E3", invariant, 1500, true},
		{"german exponent", "1,5e3", german, 1500, true},
		{"infinity", "Infinity", invariant, math.Inf(1), true},
		{"negative infinity", "-∞", invariant, math.Inf(-1), true},
		{"comma in invariant", "3,14", invariant, 314, true},
		{"two points", "1.2.3", invariant, 0, false},
		{"german point decimal", "3.14", german, 314, true},
		{"garbage", "12abc", invariant, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.TryParse(tt.token, tt.fc)
			if (err == nil) != tt.ok {
				t.Fatalf("TryParse(%q) error = %v, want ok=%v", tt.token, err, tt.ok)
			}
			if got != tt.want {
				t.Errorf("TryParse(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}

	t.Run("nan", func(t *testing.T) {
		if got := p.Parse("NaN", invariant); !math.IsNaN(got) {
			t.Errorf("Parse(NaN) = %v", got)
		}
	})
}

func TestNewNumberParserPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewNumberParser[string] did not panic")
		}
	}()
	parse.NewNumberParser[string]()
}

func TestDecimalParser(t *testing.T) {
	p := parse.NewDecimalParser()
	if p.Styles() != parse.DefaultDecimalStyles {
		t.Errorf("Styles() = %v", p.Styles())
	}

	tests := []struct {
		name  string
		token string
		fc    culture.FormatContext
		want  string
		ok    bool
	}{
		{"plain", "1234.50", invariant, "1234.5", true},
		{"grouped", "1,234.50", invariant, "1234.5", true},
		{"trailing sign", "10-", invariant, "-10", true},
		{"german currency", "1.234,50 €", german, "1234.5", true},
		{"dollar", "$99.99", american, "99.99", true},
		{"exact", "0.1", invariant, "0.1", true},
		{"exponent rejected", "1e3", invariant, "0", false},
		{"parentheses rejected", "(5)", invariant, "0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.TryParse(tt.token, tt.fc)
			if (err == nil) != tt.ok {
				t.Fatalf("TryParse(%q) error = %v, want ok=%v", tt.token, err, tt.ok)
			}
			if diff := cmp.Diff(decimal.RequireFromString(tt.want), got); diff != "" {
				t.Errorf("TryParse(%q) mismatch (-want +got):\n%s", tt.token, diff)
			}
		})
	}

	t.Run("own styles win over context", func(t *testing.T) {
		fc := german.WithNumberStyles(culture.NumberStylesNone)
		if !p.CanParse("1.234,50", fc) {
			t.Error("CanParse = false, want true")
		}
	})

	t.Run("currency styles", func(t *testing.T) {
		cp := parse.NewDecimalParserWithStyles(culture.NumberStylesCurrency)
		got := cp.Parse("($1,234.50)", american)
		if !got.Equal(decimal.RequireFromString("-1234.50")) {
			t.Errorf("Parse = %s, want -1234.50", got)
		}
	})
}

func TestDateTimeParser(t *testing.T) {
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	strict := parse.NewDateTimeParser(culture.DateTimeStylesNone)
	if got := strict.Parse("15.01.2024 10:30", german); !got.Equal(want) {
		t.Errorf("Parse(german) = %v, want %v", got, want)
	}
	if got := strict.Parse("2024-01-15T10:30:00Z", german); !got.Equal(want) {
		t.Errorf("Parse(iso) = %v, want %v", got, want)
	}
	if strict.CanParse("15.01.2024  10:30", german) {
		t.Error("inner white accepted without AllowInnerWhite")
	}
	if strict.CanParse("15.01.2024", american) {
		t.Error("german date accepted for en-US")
	}
	if !strict.Parse("garbage", invariant).IsZero() {
		t.Error("Parse(garbage) is not the zero time")
	}

	lenient := parse.NewDateTimeParser(culture.AllowInnerWhite)
	if lenient.Styles() != culture.AllowInnerWhite {
		t.Errorf("Styles() = %v", lenient.Styles())
	}
	if got := lenient.Parse("15.01.2024   10:30", german); !got.Equal(want) {
		t.Errorf("Parse(inner white) = %v, want %v", got, want)
	}
}

func TestBoolParser(t *testing.T) {
	var p parse.BoolParser
	tests := []struct {
		token string
		want  bool
		ok    bool
	}{
		{"true", true, true},
		{"TRUE", true, true},
		{" False ", false, true},
		{"yes", false, false},
		{"1", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		got, err := p.TryParse(tt.token, invariant)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("TryParse(%q) = %v, %v; want %v, ok=%v", tt.token, got, err, tt.want, tt.ok)
		}
	}
}

func TestCharParser(t *testing.T) {
	var p parse.CharParser
	if got := p.Parse("x", invariant); got != 'x' {
		t.Errorf("Parse(x) = %q", got)
	}
	if got := p.Parse("€", invariant); got != '€' {
		t.Errorf("Parse(€) = %q", got)
	}
	if got := p.Parse("\uFFFD", invariant); got != '\uFFFD' {
		t.Errorf("Parse(U+FFFD) = %q", got)
	}
	for _, token := range []string{"xy", "", " ", "\xff"} {
		if p.CanParse(token, invariant) {
			t.Errorf("CanParse(%q) = true", token)
		}
	}
}

func TestGUIDParser(t *testing.T) {
	var p parse.GUIDParser
	want := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	forms := []string{
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"6BA7B810-9DAD-11D1-80B4-00C04FD430C8",
		"{6ba7b810-9dad-11d1-80b4-00c04fd430c8}",
		"urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"6ba7b8109dad11d180b400c04fd430c8",
		" 6ba7b810-9dad-11d1-80b4-00c04fd430c8 ",
	}
	for _, token := range forms {
		got, err := p.TryParse(token, invariant)
		if err != nil || got != want {
			t.Errorf("TryParse(%q) = %v, %v", token, got, err)
		}
	}
	if _, err := p.TryParse("not-a-guid", invariant); !errors.Is(err, parse.ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}
}

func TestParserFuncRecoversPanics(t *testing.T) {
	p := parse.ParserFunc[int](func(string, culture.FormatContext) (int, error) {
		panic("boom")
	})
	if p.CanParse("1", invariant) {
		t.Error("CanParse = true after panic")
	}
	if got := p.Parse("1", invariant); got != 0 {
		t.Errorf("Parse = %d, want 0", got)
	}
	if _, err := p.TryParse("1", invariant); !errors.Is(err, parse.ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}
}
