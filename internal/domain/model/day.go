package model

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar date without a time component, used by the
// working-set date filter.
type Day struct {
	Year  int
	Month time.Month
	Dom   int
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(value string) (Day, error) {
	t, err := time.Parse(dayLayout, value)
	if err != nil {
		return Day{}, fmt.Errorf("parse day: %w", err)
	}
	return DayOf(t), nil
}

// DayOf truncates a timestamp to its local calendar date.
func DayOf(t time.Time) Day {
	year, month, dom := t.Date()
	return Day{Year: year, Month: month, Dom: dom}
}

// Matches reports whether the timestamp falls on this calendar date.
// The comparison ignores time-of-day and never shifts the timestamp
// across a timezone boundary.
func (d Day) Matches(t time.Time) bool {
	return DayOf(t) == d
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Dom)
}
