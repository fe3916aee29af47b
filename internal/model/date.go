package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateOnly is a calendar date with no time-of-day and no timezone.
// All date bucketing (allocation dates, ledger occurred_on, monthly
// aggregation) goes through this type so that a "day" can never shift
// across a timezone boundary.
type DateOnly struct {
	year  int
	month time.Month
	day   int
}

// NewDate builds a DateOnly from its components.
func NewDate(year int, month time.Month, day int) DateOnly {
	// normalize through time.Time so 2024-02-30 becomes 2024-03-01
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return DateOnly{year: t.Year(), month: t.Month(), day: t.Day()}
}

// ParseDate parses a yyyy-mm-dd string.
func ParseDate(s string) (DateOnly, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOnly{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

// DateOf truncates a time.Time to its calendar date in the time's own
// location.
func DateOf(t time.Time) DateOnly {
	return DateOnly{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Today returns the current calendar date in local time.
func Today() DateOnly {
	return DateOf(time.Now())
}

func (d DateOnly) Year() int         { return d.year }
func (d DateOnly) Month() time.Month { return d.month }
func (d DateOnly) Day() int          { return d.day }

// IsZero reports whether d is the zero date.
func (d DateOnly) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// Time returns the date at UTC midnight, for interop with code that
// needs a time.Time.
func (d DateOnly) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String formats as yyyy-mm-dd.
func (d DateOnly) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// AddDays returns the date n days later (or earlier for negative n).
func (d DateOnly) AddDays(n int) DateOnly {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is before other.
func (d DateOnly) Before(other DateOnly) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is after other.
func (d DateOnly) After(other DateOnly) bool {
	return d.Time().After(other.Time())
}

// Equal reports whether two dates are the same calendar day.
func (d DateOnly) Equal(other DateOnly) bool {
	return d == other
}

// DaysUntil returns the number of days from d to other; negative when
// other is earlier.
func (d DateOnly) DaysUntil(other DateOnly) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// InRange reports whether d falls within [start, end] inclusive.
func (d DateOnly) InRange(start, end DateOnly) bool {
	return !d.Before(start) && !d.After(end)
}

// DaysInMonth returns the number of days of the given month.
func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ── JSON ──

// MarshalJSON encodes as "yyyy-mm-dd".
func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes from "yyyy-mm-dd".
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = DateOnly{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ── GORM / database ──

// Scan reads a Postgres DATE column.
func (d *DateOnly) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = DateOnly{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("DateOnly.Scan: unsupported type %T", src)
	}
}

// Value writes as yyyy-mm-dd text, which Postgres accepts for DATE.
func (d DateOnly) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}
