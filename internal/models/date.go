package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const dateFormat = "2006-01-02"

// Date is a wrapper around gorm.io/datatypes.Date that exchanges calendar
// dates as ISO-8601 day strings on the wire while storing a date column.
type Date struct {
	datatypes.Date
}

// NewDate builds a Date truncated to its calendar day in UTC.
func NewDate(t time.Time) Date {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Date{Date: datatypes.Date(day)}
}

// Time returns the underlying time value.
func (d Date) Time() time.Time {
	return time.Time(d.Date)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Time().IsZero()
}

// String formats the date as an ISO-8601 day string.
func (d Date) String() string {
	return d.Time().Format(dateFormat)
}

// Value promotes the embedded Date's Value method
func (d Date) Value() (driver.Value, error) {
	return d.Date.Value()
}

// Scan promotes the embedded Date's Scan method
func (d *Date) Scan(value interface{}) error {
	return d.Date.Scan(value)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both plain day strings ("1990-05-15") and full RFC 3339 timestamps are
// accepted; the time-of-day portion is discarded.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("Date: expected a JSON string, got %s", s)
	}
	s = s[1 : len(s)-1]

	for _, layout := range []string{dateFormat, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NewDate(t)
			return nil
		}
	}
	return fmt.Errorf("Date: invalid date string %q, expected YYYY-MM-DD", s)
}

// GormDBDataType forces a real date column on every supported driver.
// SQLite keeps the "date" decltype so its drivers scan the column back as a time value.
func (Date) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "date"
}
