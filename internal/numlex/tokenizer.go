package numlex

import (
	"unicode"

	"github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-csvvalue/pkg/culture"
)

const genericCurrency = "¤"

// NewTokenizer creates a tokenizer for numbers written in culture c.
//
// Matchers are tried in order:
//  1. Whitespace runs
//  2. Digit runs
//  3. Currency symbols (culture symbol, then ¤)
//  4. Decimal separator, then group separator unless the culture groups with spaces
//  5. Signs, parentheses, exponent marker
//  6. Any other single rune
func NewTokenizer(c *culture.Culture) tokenizer.Tokenizer {
	matchers := []tokenizer.Matcher{
		WhiteMatcher(),
		DigitsMatcher(),
	}

	if sym := c.CurrencySymbol(); sym != "" && sym != genericCurrency {
		matchers = append(matchers, tokenizer.StringMatcherFunc(TokenCurrency, sym))
	}
	matchers = append(matchers,
		tokenizer.StringMatcherFunc(TokenCurrency, genericCurrency),
		tokenizer.StringMatcherFunc(TokenDecimal, c.DecimalSeparator()),
	)
	if !c.HasSpaceGroupSeparator() {
		matchers = append(matchers, tokenizer.StringMatcherFunc(TokenGroup, c.GroupSeparator()))
	}

	matchers = append(matchers,
		tokenizer.StringMatcherFunc(TokenPlus, "+"),
		tokenizer.StringMatcherFunc(TokenMinus, "-"),
		tokenizer.StringMatcherFunc(TokenMinus, "−"),
		tokenizer.StringMatcherFunc(TokenLParen, "("),
		tokenizer.StringMatcherFunc(TokenRParen, ")"),
		tokenizer.StringMatcherFunc(TokenExponent, "e"),
		tokenizer.StringMatcherFunc(TokenExponent, "E"),
		OtherMatcher(),
	)

	return tokenizer.NewTokenizerWithoutWhitespace(matchers...)
}

// DigitsMatcher matches a run of ASCII digits.
func DigitsMatcher() tokenizer.Matcher {
	return runMatcher(TokenDigits, func(r rune) bool { return r >= '0' && r <= '9' })
}

// WhiteMatcher matches a run of whitespace, including the no-break spaces
// used as group separators.
func WhiteMatcher() tokenizer.Matcher {
	return runMatcher(TokenWhite, unicode.IsSpace)
}

func runMatcher(kind string, accept func(rune) bool) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || !accept(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(kind, value)
	}
}

// OtherMatcher consumes any single rune. It must be the last matcher so that
// every input tokenizes completely; the parser rejects Other tokens.
func OtherMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenOther, []rune{r})
	}
}
