package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// Field selects one calendar field of a date.
type Field int

const (
	Year       Field = iota + 1
	Month            // 1 to 12
	Day              // day of month
	DayOfYear        // 1 to 366
	Hour             // 0 to 23
	Minute           // 0 to 59
	Second           // 0 to 59
	Nanosecond       // 0 to 999999999
)

var fieldNames = map[Field]string{
	Year:       "year",
	Month:      "month",
	Day:        "day",
	DayOfYear:  "day-of-year",
	Hour:       "hour",
	Minute:     "minute",
	Second:     "second",
	Nanosecond: "nanosecond",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField returns the field with the given name, ignoring case.
func ParseField(name string) (Field, error) {
	name = strings.ToLower(name)
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown date field %q", name)
}

// Modify returns t with field set to value, read in the calendar's location.
// Out-of-range values roll over into the neighbouring fields, so setting
// Day to 31 in April yields May 1. An unknown field leaves t unchanged.
func (c *Calendar) Modify(t time.Time, field Field, value int) time.Time {
	t = t.In(c.loc)
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	nsec := t.Nanosecond()

	switch field {
	case Year:
		year = value
	case Month:
		month = time.Month(value)
	case Day:
		day = value
	case DayOfYear:
		month, day = time.January, value
	case Hour:
		hour = value
	case Minute:
		minute = value
	case Second:
		sec = value
	case Nanosecond:
		nsec = value
	default:
		return t
	}

	return time.Date(year, month, day, hour, minute, sec, nsec, c.loc)
}
