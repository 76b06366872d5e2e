package culture

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDateTime is returned by ParseDateTime when no layout matches.
var ErrInvalidDateTime = errors.New("invalid date/time")

// isoLayouts are accepted for every culture, ahead of the culture layouts.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// DateTimeLayouts returns the Go layouts tried for c, in order: the ISO 8601
// forms, each culture date layout, and each date layout followed by each
// time layout.
func (c *Culture) DateTimeLayouts() []string {
	cc := c.culture()
	layouts := make([]string, 0, len(isoLayouts)+len(cc.dateLayouts)*(1+len(cc.timeLayouts)))
	layouts = append(layouts, isoLayouts...)
	layouts = append(layouts, cc.dateLayouts...)
	for _, d := range cc.dateLayouts {
		for _, t := range cc.timeLayouts {
			layouts = append(layouts, d+" "+t)
		}
	}
	return layouts
}

// ParseDateTime reads token as a date/time under culture c.
//
// Leading and trailing whitespace is always ignored. AllowInnerWhite collapses
// whitespace runs inside the token. Values without a zone are placed in UTC,
// or in time.Local when AssumeLocal is set. AdjustToUniversal converts the
// result to UTC.
func ParseDateTime(token string, c *Culture, styles DateTimeStyles) (time.Time, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return time.Time{}, ErrInvalidDateTime
	}
	if styles.Has(AllowInnerWhite) {
		s = strings.Join(strings.Fields(s), " ")
	} else if strings.Contains(s, "  ") || strings.ContainsAny(s, "\t\r\n") {
		// time.Parse matches a layout space against any run of spaces.
		return time.Time{}, ErrInvalidDateTime
	}

	loc := time.UTC
	if styles.Has(AssumeLocal) {
		loc = time.Local
	}

	for _, layout := range c.DateTimeLayouts() {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		if styles.Has(AdjustToUniversal) {
			t = t.UTC()
		}
		return t, nil
	}
	return time.Time{}, ErrInvalidDateTime
}
