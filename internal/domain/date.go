package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates (ISO 8601, date only).
const DateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
// It serializes to JSON as "YYYY-MM-DD" and maps to a SQL DATE column.
type Date struct {
	t time.Time
}

// NewDate creates a Date from year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// String implements fmt.Stringer.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.t.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts only "YYYY-MM-DD".
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDate, string(data))
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so the date can be bound to DATE columns.
func (d Date) Value() (driver.Value, error) {
	return d.t, nil
}

// Scan implements sql.Scanner for reading DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
