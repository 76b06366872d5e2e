package parse

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// DefaultNullValues is a commonly used sentinel list. It is not applied
// unless passed to WithNullValues or NewNullPolicy.
var DefaultNullValues = []string{"NULL", "nil", "N/A", "NA", "-"}

// IsBlank reports whether token is empty or whitespace only.
func IsBlank(token string) bool {
	return strings.TrimSpace(token) == ""
}

// NullPolicy decides whether a token represents "no value": blank tokens
// always do, and so does any token equal to one of the sentinels under
// Unicode case folding. Sentinels are compared against the raw token.
type NullPolicy struct {
	values []string
	folded map[string]struct{}
}

// NewNullPolicy creates a NullPolicy with the given sentinels. Duplicates
// are removed.
func NewNullPolicy(sentinels ...string) NullPolicy {
	values := lo.Uniq(sentinels)
	folded := make(map[string]struct{}, len(values))
	for _, v := range values {
		folded[fold(v)] = struct{}{}
	}
	return NullPolicy{values: values, folded: folded}
}

// IsNull reports whether token is blank or matches a sentinel.
func (p NullPolicy) IsNull(token string) bool {
	if IsBlank(token) {
		return true
	}
	if len(p.folded) == 0 {
		return false
	}
	_, ok := p.folded[fold(token)]
	return ok
}

// Values returns the configured sentinels.
func (p NullPolicy) Values() []string {
	return append([]string(nil), p.values...)
}

// fold applies Unicode case folding. A Caser is stateful, so each call
// gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
