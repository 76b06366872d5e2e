// Package numlex lexes and parses culture-formatted numeric tokens using
// Shape's tokenizer framework.
package numlex

// Token kinds emitted by the numeric tokenizer. They are the terminals of the
// number grammar in parser.go.
const (
	TokenDigits   = "Digits"   // run of ASCII digits
	TokenWhite    = "White"    // run of Unicode whitespace
	TokenDecimal  = "Decimal"  // culture decimal separator
	TokenGroup    = "Group"    // culture group separator (non-space cultures only)
	TokenCurrency = "Currency" // culture currency symbol or the generic sign ¤
	TokenPlus     = "Plus"     // +
	TokenMinus    = "Minus"    // - or U+2212
	TokenLParen   = "LParen"   // (
	TokenRParen   = "RParen"   // )
	TokenExponent = "Exponent" // e or E

	// TokenOther is a single rune that no other matcher accepts.
	TokenOther = "Other"
)
