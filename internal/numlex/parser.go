package numlex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-csvvalue/pkg/culture"
)

// ErrSyntax is wrapped by every error returned from Parse.
var ErrSyntax = errors.New("invalid number")

// maxExponentDigits bounds the exponent so conversions never build huge values.
const maxExponentDigits = 4

// Number is a parsed numeric token in canonical form.
type Number struct {
	Negative bool
	// Integer holds the integer digits without separators or leading zeros ("0" when empty).
	Integer string
	// Fraction holds the digits after the decimal separator, unmodified.
	Fraction string
	Exponent int
}

// Literal renders n in the invariant form accepted by strconv and
// decimal.NewFromString, e.g. "-1234.56e3".
func (n Number) Literal() string {
	var b strings.Builder
	if n.Negative {
		b.WriteByte('-')
	}
	b.WriteString(n.Integer)
	if n.Fraction != "" {
		b.WriteByte('.')
		b.WriteString(n.Fraction)
	}
	if n.Exponent != 0 {
		b.WriteByte('e')
		b.WriteString(strconv.Itoa(n.Exponent))
	}
	return b.String()
}

// Parse reads input as a number written in culture c, accepting only the
// elements permitted by styles. AllowHexSpecifier is not handled here.
func Parse(input string, c *culture.Culture, styles culture.NumberStyles) (Number, error) {
	p := newParser(input, c, styles)
	return p.parse()
}

// parser implements LL(1) recursive descent over the numeric tokens.
//
// Grammar:
//
//	Number   = [ White ] { Prefix } Body { Suffix } [ White ] ;
//	Prefix   = Sign | Currency [ White ] | "(" ;
//	Body     = Integer [ Decimal [ Digits ] ] [ Exponent ] | Decimal Digits [ Exponent ] ;
//	Integer  = Digits { Group Digits } ;
//	Exponent = ( "e" | "E" ) [ Sign ] Digits ;
//	Suffix   = [ White ] Currency | Sign | ")" ;
type parser struct {
	tokens  []*shapetokenizer.Token
	pos     int
	culture *culture.Culture
	styles  culture.NumberStyles

	number       Number
	signSeen     bool
	currencySeen bool
	parenOpen    bool
	parenClosed  bool
}

func newParser(input string, c *culture.Culture, styles culture.NumberStyles) *parser {
	tok := NewTokenizer(c)
	tok.InitializeFromStream(shapetokenizer.NewStream(input))

	tokens := make([]*shapetokenizer.Token, 0, 8)
	for {
		t, ok := tok.NextToken()
		if !ok {
			break
		}
		tokens = append(tokens, t)
	}
	return &parser{tokens: tokens, culture: c, styles: styles}
}

func (p *parser) parse() (Number, error) {
	if len(p.tokens) == 0 {
		return Number{}, fmt.Errorf("%w: empty input", ErrSyntax)
	}

	if p.is(TokenWhite) {
		if !p.styles.Has(culture.AllowLeadingWhite) {
			return Number{}, p.unexpected()
		}
		p.advance()
	}

	if err := p.parsePrefix(); err != nil {
		return Number{}, err
	}
	if err := p.parseBody(); err != nil {
		return Number{}, err
	}
	if err := p.parseSuffix(); err != nil {
		return Number{}, err
	}

	if p.is(TokenWhite) {
		if !p.styles.Has(culture.AllowTrailingWhite) {
			return Number{}, p.unexpected()
		}
		p.advance()
	}
	if p.peek() != nil {
		return Number{}, p.unexpected()
	}

	if p.parenOpen {
		if !p.parenClosed {
			return Number{}, fmt.Errorf("%w: unbalanced parenthesis", ErrSyntax)
		}
		if p.signSeen {
			return Number{}, fmt.Errorf("%w: sign inside parentheses", ErrSyntax)
		}
		p.number.Negative = true
	}
	return p.number, nil
}

// parsePrefix parses the sign, currency and opening parenthesis that may
// precede the digits, each at most once and in any order.
func (p *parser) parsePrefix() error {
	for {
		t := p.peek()
		if t == nil {
			return nil
		}
		switch t.Kind() {
		case TokenPlus, TokenMinus:
			if !p.styles.Has(culture.AllowLeadingSign) || p.signSeen {
				return p.unexpected()
			}
			p.signSeen = true
			p.number.Negative = t.Kind() == TokenMinus
			p.advance()
		case TokenCurrency:
			if !p.styles.Has(culture.AllowCurrencySymbol) || p.currencySeen {
				return p.unexpected()
			}
			p.currencySeen = true
			p.advance()
			if p.is(TokenWhite) {
				p.advance()
			}
		case TokenLParen:
			if !p.styles.Has(culture.AllowParentheses) || p.parenOpen {
				return p.unexpected()
			}
			p.parenOpen = true
			p.advance()
		default:
			return nil
		}
	}
}

// parseBody parses the integer part, the fraction and the exponent.
func (p *parser) parseBody() error {
	var intDigits strings.Builder
	for p.is(TokenDigits) {
		intDigits.WriteString(p.peek().ValueString())
		p.advance()
		if p.isGroupSeparator() && p.kindAt(p.pos+1) == TokenDigits {
			p.advance()
		}
	}

	sawDigits := intDigits.Len() > 0
	if p.is(TokenDecimal) {
		if !p.styles.Has(culture.AllowDecimalPoint) {
			return p.unexpected()
		}
		p.advance()
		if p.is(TokenDigits) {
			p.number.Fraction = p.peek().ValueString()
			sawDigits = true
			p.advance()
		}
	}
	if !sawDigits {
		if p.peek() == nil {
			return fmt.Errorf("%w: no digits", ErrSyntax)
		}
		return p.unexpected()
	}
	p.number.Integer = strings.TrimLeft(intDigits.String(), "0")
	if p.number.Integer == "" {
		p.number.Integer = "0"
	}

	if p.is(TokenExponent) {
		if !p.styles.Has(culture.AllowExponent) {
			return p.unexpected()
		}
		return p.parseExponent()
	}
	return nil
}

// isGroupSeparator reports whether the current token separates digit groups.
// Cultures that group with spaces accept any whitespace run here.
func (p *parser) isGroupSeparator() bool {
	if !p.styles.Has(culture.AllowThousands) {
		return false
	}
	if p.is(TokenGroup) {
		return true
	}
	return p.is(TokenWhite) && p.culture.HasSpaceGroupSeparator()
}

func (p *parser) parseExponent() error {
	p.advance()
	negative := false
	if p.is(TokenPlus) || p.is(TokenMinus) {
		negative = p.is(TokenMinus)
		p.advance()
	}
	if !p.is(TokenDigits) {
		return fmt.Errorf("%w: exponent without digits at %s", ErrSyntax, p.positionStr())
	}
	digits := strings.TrimLeft(p.peek().ValueString(), "0")
	if len(digits) > maxExponentDigits {
		return fmt.Errorf("%w: exponent out of range at %s", ErrSyntax, p.positionStr())
	}
	exp := 0
	if digits != "" {
		exp, _ = strconv.Atoi(digits)
	}
	if negative {
		exp = -exp
	}
	p.number.Exponent = exp
	p.advance()
	return nil
}

// parseSuffix parses the currency, trailing sign and closing parenthesis
// that may follow the digits.
func (p *parser) parseSuffix() error {
	for {
		t := p.peek()
		if t == nil {
			return nil
		}
		switch t.Kind() {
		case TokenWhite:
			// "1.234,56 €": whitespace only belongs to the suffix before a currency symbol.
			if p.kindAt(p.pos+1) != TokenCurrency {
				return nil
			}
			p.advance()
		case TokenCurrency:
			if !p.styles.Has(culture.AllowCurrencySymbol) || p.currencySeen {
				return p.unexpected()
			}
			p.currencySeen = true
			p.advance()
		case TokenPlus, TokenMinus:
			if !p.styles.Has(culture.AllowTrailingSign) || p.signSeen {
				return p.unexpected()
			}
			p.signSeen = true
			p.number.Negative = t.Kind() == TokenMinus
			p.advance()
		case TokenRParen:
			if !p.parenOpen || p.parenClosed {
				return p.unexpected()
			}
			p.parenClosed = true
			p.advance()
		default:
			return p.unexpected()
		}
	}
}

// Helper methods

func (p *parser) peek() *shapetokenizer.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *parser) is(kind string) bool {
	t := p.peek()
	return t != nil && t.Kind() == kind
}

func (p *parser) kindAt(i int) string {
	if i >= len(p.tokens) {
		return ""
	}
	return p.tokens[i].Kind()
}

func (p *parser) unexpected() error {
	t := p.peek()
	if t == nil {
		return fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}
	return fmt.Errorf("%w: unexpected %s %q at %s", ErrSyntax, t.Kind(), t.ValueString(), p.positionStr())
}

func (p *parser) position() ast.Position {
	if t := p.peek(); t != nil {
		return ast.NewPosition(t.Offset(), t.Row(), t.Column())
	}
	return ast.ZeroPosition()
}

func (p *parser) positionStr() string {
	return p.position().String()
}
