package core

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the wire format for calendar days. Transactions store a day
// with no time component, so comparisons are string-exact after parsing.
const dateLayout = "2006-01-02"

// Date is a calendar day without a time-of-day component.
// It marshals to and from "YYYY-MM-DD" JSON strings.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month and day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// String returns the "YYYY-MM-DD" representation.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// SameDay reports whether two dates fall on the same calendar day.
func (d Date) SameDay(other Date) bool {
	return d.String() == other.String()
}

// InMonth reports whether the date falls in the given year and month (1-12).
func (d Date) InMonth(year, month int) bool {
	return d.Year() == year && int(d.Month()) == month
}

// DaysUntil returns the number of whole days from now until the date,
// rounded up. Negative when the date is in the past.
func (d Date) DaysUntil(now time.Time) int {
	diff := d.Time.Sub(now)
	days := int(diff.Hours() / 24)
	if diff > 0 && diff != time.Duration(days)*24*time.Hour {
		days++
	}
	return days
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string. Empty strings and null decode
// to the zero date so optional fields round-trip.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
