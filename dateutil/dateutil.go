// Package dateutil parses, formats and does arithmetic on dates through a
// Calendar that fixes the location and locale used to read calendar fields.
//
// The package-level functions use Default, a UTC calendar with American
// English names.
package dateutil

import "time"

// Default is the calendar behind the package-level functions.
var Default = New()

// Parse calls Default.Parse.
func Parse(text, pattern string) (time.Time, error) {
	return Default.Parse(text, pattern)
}

// ParseOr calls Default.ParseOr.
func ParseOr(text, pattern string, def time.Time) time.Time {
	return Default.ParseOr(text, pattern, def)
}

// Format calls Default.Format.
func Format(t time.Time, pattern string) (string, error) {
	return Default.Format(t, pattern)
}

// Modify calls Default.Modify.
func Modify(t time.Time, field Field, value int) time.Time {
	return Default.Modify(t, field, value)
}

// EndDate calls Default.EndDate.
func EndDate(start time.Time, days int) time.Time {
	return Default.EndDate(start, days)
}

// Interval calls Default.Interval.
func Interval(start, end time.Time, unit string) int {
	return Default.Interval(start, end, unit)
}

// DaysBetween calls Default.DaysBetween.
func DaysBetween(start, end time.Time) int {
	return Default.DaysBetween(start, end)
}
