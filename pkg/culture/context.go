package culture

// FormatContext bundles the culture and the number/date style flags that
// parameterize a parse attempt. It is an immutable value; the With methods
// return modified copies.
type FormatContext struct {
	culture      *Culture
	numberStyles NumberStyles
	dateStyles   DateTimeStyles
}

// NewContext creates a FormatContext. A nil culture means Invariant.
func NewContext(c *Culture, ns NumberStyles, ds DateTimeStyles) FormatContext {
	return FormatContext{culture: c, numberStyles: ns, dateStyles: ds}
}

// DefaultContext returns the invariant context with DefaultNumberStyles and
// DateTimeStylesNone.
func DefaultContext() FormatContext {
	return NewContext(Invariant, DefaultNumberStyles, DateTimeStylesNone)
}

// ContextFor returns DefaultContext with the culture replaced by c.
func ContextFor(c *Culture) FormatContext {
	return DefaultContext().WithCulture(c)
}

// Culture returns the culture; never nil.
func (fc FormatContext) Culture() *Culture {
	return fc.culture.culture()
}

// NumberStyles returns the number style flags.
func (fc FormatContext) NumberStyles() NumberStyles { return fc.numberStyles }

// DateStyles returns the date/time style flags.
func (fc FormatContext) DateStyles() DateTimeStyles { return fc.dateStyles }

// WithCulture returns a copy of fc using culture c.
func (fc FormatContext) WithCulture(c *Culture) FormatContext {
	fc.culture = c
	return fc
}

// WithNumberStyles returns a copy of fc using ns.
func (fc FormatContext) WithNumberStyles(ns NumberStyles) FormatContext {
	fc.numberStyles = ns
	return fc
}

// WithDateStyles returns a copy of fc using ds.
func (fc FormatContext) WithDateStyles(ds DateTimeStyles) FormatContext {
	fc.dateStyles = ds
	return fc
}

// Validate checks the style combination.
func (fc FormatContext) Validate() error {
	if fc.numberStyles.Has(AllowHexSpecifier) {
		allowed := NumberStylesHexNumber
		if fc.numberStyles&^allowed != 0 {
			return &OptionsError{Field: "NumberStyles", Message: "hex_specifier may only be combined with leading_white and trailing_white"}
		}
	}
	if fc.dateStyles.Has(AssumeLocal) && fc.dateStyles.Has(AssumeUniversal) {
		return &OptionsError{Field: "DateStyles", Message: "assume_local and assume_universal are mutually exclusive"}
	}
	return nil
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "culture: invalid " + e.Field + ": " + e.Message
}
