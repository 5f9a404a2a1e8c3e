package utils

import "time"

// Day stamps are plain YYYY-MM-DD strings throughout: they compare
// lexically, and month grouping is a prefix match.
const DayFormat = "2006-01-02"

// Today returns the current day stamp.
func Today() string {
	return time.Now().Format(DayFormat)
}

// DaysAgo returns the day stamp n days before today.
func DaysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(DayFormat)
}

// ParseDay parses a day stamp; the zero time signals an unparsable value.
func ParseDay(s string) time.Time {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
