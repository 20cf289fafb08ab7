package dateutil

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Calendar resolves calendar fields and localized names for a fixed location
// and locale. The zero configuration is UTC and American English, so results
// never depend on the process environment.
type Calendar struct {
	loc    *time.Location
	locale language.Tag
	names  monday.Locale
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithLocation sets the location in which calendar fields are read and set.
// A nil location means UTC.
func WithLocation(loc *time.Location) Option {
	return func(c *Calendar) {
		if loc == nil {
			loc = time.UTC
		}
		c.loc = loc
	}
}

// WithLocale sets the locale used for month and weekday names.
func WithLocale(tag language.Tag) Option {
	return func(c *Calendar) {
		c.locale = tag
	}
}

// New returns a Calendar configured by opts.
func New(opts ...Option) *Calendar {
	c := &Calendar{
		loc:    time.UTC,
		locale: language.AmericanEnglish,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.names = nameLocale(c.locale)
	return c
}

// Location returns the calendar's location.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Locale returns the calendar's locale.
func (c *Calendar) Locale() language.Tag {
	return c.locale
}

// Parse reads text according to pattern in the calendar's location. An empty
// pattern accepts any common date notation. Fields missing from the pattern
// take their zero value (year 0, January 1, midnight).
//
// Errors are of type *ParseError.
func (c *Calendar) Parse(text, pattern string) (time.Time, error) {
	if pattern == "" {
		t, err := dateparse.ParseIn(text, c.loc)
		if err != nil {
			return time.Time{}, &ParseError{Text: text, Err: err}
		}
		return t, nil
	}

	p, err := compileCached(pattern)
	if err != nil {
		return time.Time{}, &ParseError{Text: text, Pattern: pattern, Err: err}
	}
	t, err := p.parse(text, c.loc, c.names)
	if err != nil {
		return time.Time{}, &ParseError{Text: text, Pattern: pattern, Err: err}
	}
	return t, nil
}

// ParseOr is Parse that returns def instead of an error.
func (c *Calendar) ParseOr(text, pattern string, def time.Time) time.Time {
	t, err := c.Parse(text, pattern)
	if err != nil {
		return def
	}
	return t
}

// Format renders t in the calendar's location and locale.
func (c *Calendar) Format(t time.Time, pattern string) (string, error) {
	return c.format(t, pattern, c.names)
}

// FormatLocale is Format with a locale that overrides the calendar's one.
func (c *Calendar) FormatLocale(t time.Time, pattern string, tag language.Tag) (string, error) {
	return c.format(t, pattern, nameLocale(tag))
}

func (c *Calendar) format(t time.Time, pattern string, names monday.Locale) (string, error) {
	p, err := compileCached(pattern)
	if err != nil {
		return "", fmt.Errorf("failed to format date: %w", err)
	}
	return p.format(t.In(c.loc), names), nil
}

// EndDate returns start moved by days calendar days. Negative days move
// backwards. Wall clock time is kept across daylight saving changes.
func (c *Calendar) EndDate(start time.Time, days int) time.Time {
	return start.In(c.loc).AddDate(0, 0, days)
}
