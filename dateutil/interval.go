package dateutil

import "time"

// Unit is the granularity of an interval.
type Unit int

const (
	UnitNone Unit = iota
	Years
	Months
	Days
)

// ParseUnit maps "Y"/"y", "M"/"m" and "D"/"d" to their unit. Anything else
// is UnitNone.
func ParseUnit(s string) Unit {
	switch s {
	case "Y", "y":
		return Years
	case "M", "m":
		return Months
	case "D", "d":
		return Days
	}
	return UnitNone
}

func (u Unit) String() string {
	switch u {
	case Years:
		return "Y"
	case Months:
		return "M"
	case Days:
		return "D"
	}
	return ""
}

// Interval returns IntervalIn(start, end, ParseUnit(unit)).
func (c *Calendar) Interval(start, end time.Time, unit string) int {
	return c.IntervalIn(start, end, ParseUnit(unit))
}

// IntervalIn returns the signed number of units from start to end, counted on
// calendar fields in the calendar's location:
//
//   - Years: difference of years, less one when end's month is before
//     start's month. Day of month is not considered.
//   - Months: 12 per year of difference plus the difference of months. Day of
//     month is not considered.
//   - Days: 365 per year of difference plus the difference of days of the
//     year, then less one for every leap year from start's year up to but
//     excluding end's year.
//
// The leap year step subtracts where the extra day would have to be added, so
// day counts over leap years come out short: 2020-01-01 to 2021-01-01 gives
// 364. When end is before start the leap year step does nothing. Use
// DaysBetween for the exact count. UnitNone yields 0.
func (c *Calendar) IntervalIn(start, end time.Time, unit Unit) int {
	start, end = start.In(c.loc), end.In(c.loc)
	sYear, eYear := start.Year(), end.Year()

	switch unit {
	case Years:
		interval := eYear - sYear
		if end.Month() < start.Month() {
			interval--
		}
		return interval

	case Months:
		return 12*(eYear-sYear) + int(end.Month()-start.Month())

	case Days:
		interval := 365*(eYear-sYear) + end.YearDay() - start.YearDay()
		for y := sYear; y < eYear; y++ {
			if IsLeapYear(y) {
				interval--
			}
		}
		return interval
	}

	return 0
}

// DaysBetween returns the exact signed number of calendar days from start's
// date to end's date in the calendar's location. Time of day is ignored.
func (c *Calendar) DaysBetween(start, end time.Time) int {
	const secondsPerDay = 24 * 60 * 60
	return int((civilDay(end.In(c.loc)) - civilDay(start.In(c.loc))) / secondsPerDay)
}

// civilDay returns the Unix time of midnight UTC on t's calendar date.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
}

// IsLeapYear reports whether year has 366 days in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}
