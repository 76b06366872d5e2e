package csvvalue

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/shapestone/shape-csvvalue/pkg/culture"
)

// ExportVisitor renders cells for export: floating-point and decimal values
// with two fixed decimals, dates as yyyy-MM-dd, everything else with its
// culture formatting. Absent values render as "".
type ExportVisitor struct {
	culture     *culture.Culture
	useOriginal bool
}

// NewExportVisitor creates an ExportVisitor for culture c. With useOriginal
// it exports the original values instead of the current ones.
func NewExportVisitor(c *culture.Culture, useOriginal bool) ExportVisitor {
	return ExportVisitor{culture: c, useOriginal: useOriginal}
}

// Visit implements Visitor.
func (e ExportVisitor) Visit(c Cell) string {
	v := c.Current()
	if e.useOriginal {
		v = c.Original()
	}
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return culture.FormatTime(x, "yyyy-MM-dd", e.culture)
	case decimal.Decimal:
		return culture.FormatDecimal(x, "F2", e.culture)
	}
	if k := reflect.TypeOf(v).Kind(); k == reflect.Float32 || k == reflect.Float64 {
		return culture.FormatValue(v, "F2", e.culture)
	}
	return culture.FormatValue(v, "", e.culture)
}

// StringVisitor renders the current value of a cell with a culture and an
// optional format string.
type StringVisitor struct {
	culture *culture.Culture
	format  string
}

// NewStringVisitor creates a StringVisitor.
func NewStringVisitor(c *culture.Culture, format string) StringVisitor {
	return StringVisitor{culture: c, format: format}
}

// Visit implements Visitor.
func (s StringVisitor) Visit(c Cell) string {
	return culture.FormatValue(c.Current(), s.format, s.culture)
}

// StatisticsVisitor counts visited, modified and null cells.
// It is not safe for concurrent use.
type StatisticsVisitor struct {
	total    int
	modified int
	nulls    int
}

// NewStatisticsVisitor creates a StatisticsVisitor with zero counts.
func NewStatisticsVisitor() *StatisticsVisitor {
	return &StatisticsVisitor{}
}

// Visit implements VoidVisitor.
func (s *StatisticsVisitor) Visit(c Cell) {
	s.total++
	if c.IsModified() {
		s.modified++
	}
	if c.Current() == nil {
		s.nulls++
	}
}

// Total returns the number of cells visited.
func (s *StatisticsVisitor) Total() int { return s.total }

// Modified returns the number of modified cells visited.
func (s *StatisticsVisitor) Modified() int { return s.modified }

// Nulls returns the number of cells visited without a current value.
func (s *StatisticsVisitor) Nulls() int { return s.nulls }

// Reset sets all counts to zero.
func (s *StatisticsVisitor) Reset() {
	s.total, s.modified, s.nulls = 0, 0, 0
}

// ValidationVisitor checks the current value of a cell with a predicate.
// The predicate receives nil for absent values.
type ValidationVisitor struct {
	validate func(any) bool
}

// NewValidationVisitor creates a ValidationVisitor. It panics if validate is nil.
func NewValidationVisitor(validate func(any) bool) ValidationVisitor {
	if validate == nil {
		panic("csvvalue: NewValidationVisitor: nil validator")
	}
	return ValidationVisitor{validate: validate}
}

// Visit implements Visitor.
func (v ValidationVisitor) Visit(c Cell) bool {
	return v.validate(c.Current())
}

// ValidateAll checks every cell and collects the failures.
func (v ValidationVisitor) ValidateAll(cells []Cell) *ValidationResult {
	result := &ValidationResult{Valid: true}
	for i, c := range cells {
		if v.Visit(c) {
			continue
		}
		token, _ := c.OriginalToken()
		result.AddError(ValidationError{
			Index:    i,
			TypeName: c.TypeName(),
			Token:    token,
			Message:  "validation failed",
		})
	}
	return result
}

// ValidationError describes a cell that failed validation.
type ValidationError struct {
	// Index is the position of the cell in the validated slice.
	Index int
	// TypeName is the value type of the cell.
	TypeName string
	// Token is the original token of the cell.
	Token string
	// Message describes the failure.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("cell %d (%s): %s (token: %q)", e.Index, e.TypeName, e.Message, e.Token)
}

// ValidationResult collects the cells that failed validation.
type ValidationResult struct {
	// Valid is true while no cell has failed.
	Valid bool
	// Errors lists the failed cells in visiting order.
	Errors []ValidationError
}

// AddError records a failed cell and marks the result invalid.
func (r *ValidationResult) AddError(err ValidationError) {
	r.Errors = append(r.Errors, err)
	r.Valid = false
}

// Indices returns the positions of the cells that failed.
func (r *ValidationResult) Indices() []int {
	return lo.Map(r.Errors, func(err ValidationError, _ int) int { return err.Index })
}

// Error describes the first failed cell, or returns "" when every cell passed.
func (r *ValidationResult) Error() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Error()
}

// AllErrors describes every failed cell, one per line.
func (r *ValidationResult) AllErrors() string {
	return strings.Join(lo.Map(r.Errors, func(err ValidationError, _ int) string {
		return err.Error()
	}), "\n")
}
