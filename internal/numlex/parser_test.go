package numlex

import (
	"errors"
	"testing"

	"github.com/shapestone/shape-csvvalue/pkg/culture"
)

func TestParse(t *testing.T) {
	de := culture.MustLookup("de-DE")
	us := culture.MustLookup("en-US")
	fr := culture.MustLookup("fr-FR")

	tests := []struct {
		name    string
		input   string
		c       *culture.Culture
		styles  culture.NumberStyles
		want    string
		wantErr bool
	}{
		{"plain", "42", nil, culture.NumberStylesInteger, "42", false},
		{"leading zeros", "007", nil, culture.NumberStylesInteger, "7", false},
		{"signed", "-42", nil, culture.NumberStylesInteger, "-42", false},
		{"padded", "  42  ", nil, culture.NumberStylesInteger, "42", false},
		{"leading white not allowed", " 42", nil, culture.NumberStylesNone, "", true},
		{"trailing white not allowed", "42 ", nil, culture.AllowLeadingWhite, "", true},
		{"decimal", "3.14", nil, culture.NumberStylesFloat, "3.14", false},
		{"decimal not allowed", "3.14", nil, culture.NumberStylesInteger, "", true},
		{"leading point", ".5", nil, culture.NumberStylesFloat, "0.5", false},
		{"trailing point", "5.", nil, culture.NumberStylesFloat, "5", false},
		{"exponent", "1.5e3", nil, culture.NumberStylesFloat, "1.5e3", false},
		{"negative exponent", "2E-02", nil, culture.NumberStylesFloat, "2e-2", false},
		{"exponent not allowed", "1e3", nil, culture.NumberStylesNumber, "", true},
		{"exponent without digits", "1e", nil, culture.NumberStylesFloat, "", true},
		{"exponent too large", "1e99999", nil, culture.NumberStylesFloat, "", true},
		{"thousands", "1,234,567.89", us, culture.NumberStylesNumber, "1234567.89", false},
		{"thousands not allowed", "1,234", us, culture.NumberStylesFloat, "", true},
		{"german", "1.234,56", de, culture.NumberStylesNumber, "1234.56", false},
		{"german invariant", "1.234,56", nil, culture.NumberStylesNumber, "", true},
		{"german currency suffix", "1.234,56€", de, culture.NumberStylesCurrency, "1234.56", false},
		{"german currency spaced", "1.234,56 €", de, culture.NumberStylesCurrency, "1234.56", false},
		{"currency prefix", "$1,234.50", us, culture.NumberStylesCurrency, "1234.50", false},
		{"currency not allowed", "$5", us, culture.NumberStylesNumber, "", true},
		{"double currency", "$5$", us, culture.NumberStylesCurrency, "", true},
		{"generic currency", "¤5", nil, culture.NumberStylesCurrency, "5", false},
		{"parentheses", "($1,234.50)", us, culture.NumberStylesCurrency, "-1234.50", false},
		{"unbalanced parentheses", "(5", us, culture.NumberStylesCurrency, "", true},
		{"sign in parentheses", "(-5)", us, culture.NumberStylesCurrency, "", true},
		{"trailing sign", "123-", nil, culture.NumberStylesNumber, "-123", false},
		{"trailing sign not allowed", "123-", nil, culture.NumberStylesFloat, "", true},
		{"double sign", "-5-", nil, culture.NumberStylesNumber, "", true},
		{"french groups", "1 234,5", fr, culture.NumberStylesNumber, "1234.5", false},
		{"french plain space", "1 234 567", fr, culture.NumberStylesNumber, "1234567", false},
		{"letters", "abc", nil, culture.NumberStylesAny, "", true},
		{"trailing garbage", "12abc", nil, culture.NumberStylesAny, "", true},
		{"sign only", "-", nil, culture.NumberStylesAny, "", true},
		{"point only", ".", nil, culture.NumberStylesAny, "", true},
		{"empty", "", nil, culture.NumberStylesAny, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.c, tt.styles)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrSyntax) {
					t.Errorf("Parse(%q) error = %v, want ErrSyntax", tt.input, err)
				}
				return
			}
			if lit := got.Literal(); lit != tt.want {
				t.Errorf("Parse(%q).Literal() = %q, want %q", tt.input, lit, tt.want)
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	de := culture.MustLookup("de-DE")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse("1.234.567,89 €", de, culture.NumberStylesCurrency); err != nil {
			b.Fatal(err)
		}
	}
}
