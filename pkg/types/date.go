package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DateFormat wire format for calendar dates
const DateFormat = "2006-01-02"

var ErrInvalidDate = errors.New("types: invalid date format, expected YYYY-MM-DD")

// Date is a calendar date with no time-of-day component.
// All conflict arithmetic in the engine operates on Date values, so a
// checkout at 09:00 and a check-in at 15:00 of the same day compare equal.
// Stored internally as midnight UTC.
type Date struct {
	t time.Time
}

// NewDate builds a Date from a time.Time, discarding the time-of-day
// and location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NewDate(t), nil
}

// Time returns the date as midnight UTC
func (d Date) Time() time.Time {
	return d.t
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return d.t.Format(DateFormat)
}

// IsZero reports whether the date is the zero value
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before reports whether d is strictly before other
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d is strictly after other
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports whether d and other are the same calendar date
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// AddDays returns the date shifted by the given number of days
func (d Date) AddDays(days int) Date {
	return Date{t: d.t.AddDate(0, 0, days)}
}

// DaysUntil returns the number of whole days from d to other
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// Value implements driver.Valuer so a Date can be bound as a DATE column
func (d Date) Value() (driver.Value, error) {
	return d.t, nil
}

// Scan implements sql.Scanner for DATE columns
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
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
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into Date", src)
	}
}
