package domain

import "time"

// ISODateLayout is the wire format for calendar dates. Dates are naive: no
// timezone handling anywhere in the system.
const ISODateLayout = "2006-01-02"

// WeekdayIndex returns d's weekday with Monday = 0 .. Sunday = 6.
func WeekdayIndex(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// WeekBounds returns the Monday and Sunday (inclusive) of the ISO week
// containing d.
func WeekBounds(d time.Time) (start, end time.Time) {
	start = d.AddDate(0, 0, -WeekdayIndex(d))
	end = start.AddDate(0, 0, 6)
	return start, end
}

// WeekdayName returns the localized label for d's weekday.
func WeekdayName(d time.Time) string {
	return WeekdayNames[WeekdayIndex(d)]
}

// ParseISODate parses a YYYY-MM-DD string.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODateLayout, s)
}

// FormatISODate renders d as YYYY-MM-DD.
func FormatISODate(d time.Time) string {
	return d.Format(ISODateLayout)
}
