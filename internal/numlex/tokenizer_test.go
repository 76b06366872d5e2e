package numlex

import (
	"testing"

	"github.com/shapestone/shape-csvvalue/pkg/culture"
)

type tokenExpect struct {
	kind  string
	value string
}

func TestNewTokenizer(t *testing.T) {
	de := culture.MustLookup("de-DE")
	fr := culture.MustLookup("fr-FR")
	ch := culture.MustLookup("de-CH")

	tests := []struct {
		name     string
		input    string
		c        *culture.Culture
		expected []tokenExpect
	}{
		{
			name:  "invariant decimal",
			input: "-1,234.5e3",
			c:     culture.Invariant,
			expected: []tokenExpect{
				{TokenMinus, "-"}, {TokenDigits, "1"}, {TokenGroup, ","}, {TokenDigits, "234"},
				{TokenDecimal, "."}, {TokenDigits, "5"}, {TokenExponent, "e"}, {TokenDigits, "3"},
			},
		},
		{
			name:  "german currency",
			input: "1.234,56 €",
			c:     de,
			expected: []tokenExpect{
				{TokenDigits, "1"}, {TokenGroup, "."}, {TokenDigits, "234"}, {TokenDecimal, ","},
				{TokenDigits, "56"}, {TokenWhite, " "}, {TokenCurrency, "€"},
			},
		},
		{
			name:  "french space groups",
			input: "1 234,5",
			c:     fr,
			expected: []tokenExpect{
				{TokenDigits, "1"}, {TokenWhite, " "}, {TokenDigits, "234"}, {TokenDecimal, ","}, {TokenDigits, "5"},
			},
		},
		{
			name:  "multi rune currency",
			input: "(CHF 12)",
			c:     ch,
			expected: []tokenExpect{
				{TokenLParen, "("}, {TokenCurrency, "CHF"}, {TokenWhite, " "}, {TokenDigits, "12"}, {TokenRParen, ")"},
			},
		},
		{
			name:  "other runes",
			input: "1x",
			c:     culture.Invariant,
			expected: []tokenExpect{
				{TokenDigits, "1"}, {TokenOther, "x"},
			},
		},
		{
			name:  "unicode minus",
			input: "−7",
			c:     culture.Invariant,
			expected: []tokenExpect{
				{TokenMinus, "−"}, {TokenDigits, "7"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer(tt.c)
			tok.Initialize(tt.input)

			for i, exp := range tt.expected {
				token, ok := tok.NextToken()
				if !ok {
					t.Fatalf("token %d: expected token, got none (expected %s: %q)", i, exp.kind, exp.value)
				}
				if token.Kind() != exp.kind {
					t.Errorf("token %d: expected kind %s, got %s (value: %q)", i, exp.kind, token.Kind(), token.ValueString())
				}
				if token.ValueString() != exp.value {
					t.Errorf("token %d: expected value %q, got %q (kind: %s)", i, exp.value, token.ValueString(), token.Kind())
				}
			}

			token, ok := tok.NextToken()
			if ok {
				t.Errorf("expected no more tokens, got %s: %q", token.Kind(), token.ValueString())
			}
		})
	}
}
