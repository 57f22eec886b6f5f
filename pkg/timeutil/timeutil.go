// Package timeutil provides calendar-date and clock utilities for student records.
// Handles date-only values, "today" in a configured location and age arithmetic.
// No external dependencies - uses only standard library.
package timeutil

import (
	"encoding/json"
	"fmt"
	"time"
)

// FormatDate is the standard date format (YYYY-MM-DD).
const FormatDate = "2006-01-02"

// Clock returns the current instant. Tests substitute FixedClock.
type Clock func() time.Time

// SystemClock is the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// Date is a calendar date without time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a Date, normalizing overflowing values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar date in loc. A nil loc means UTC.
func Today(clock Clock, loc *time.Location) Date {
	if clock == nil {
		clock = SystemClock
	}
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(clock().In(loc))
}

// ParseDate parses a date string (YYYY-MM-DD).
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(FormatDate, value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// IsValid reports whether d names an existing calendar day.
func (d Date) IsValid() bool {
	return NewDate(d.Year, d.Month, d.Day) == d
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// YearsBetween returns the number of whole years elapsed from 'from' to 'to'.
// A year counts only once (month, day) of 'to' reaches that of 'from';
// a 29 February birthday therefore completes on 1 March in common years.
func YearsBetween(from, to Date) int {
	years := to.Year - from.Year
	if to.Month < from.Month || (to.Month == from.Month && to.Day < from.Day) {
		years--
	}
	return years
}

// Age returns the age in whole years on the current date.
func Age(dob Date, clock Clock, loc *time.Location) int {
	return YearsBetween(dob, Today(clock, loc))
}
