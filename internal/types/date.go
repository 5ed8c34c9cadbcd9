package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// DateLayout is the wire and storage format for calendar days.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time component. It marshals as "yyyy-MM-dd"
// and is stored in a SQL DATE column, so workouts bucket by exact day equality
// regardless of timezone or driver.
type Date struct {
	t time.Time
}

// NewDate builds a Date from a time.Time, dropping the time component.
func NewDate(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "yyyy-MM-dd" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("Date: invalid calendar day %q: %w", s, err)
	}
	return NewDate(t), nil
}

// Time returns the day as a UTC midnight time.Time.
func (d Date) Time() time.Time {
	return d.t
}

// String returns the "yyyy-MM-dd" form.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("Date: expected string, got %s", string(data))
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements the driver.Valuer interface.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements the sql.Scanner interface. Drivers hand back DATE columns
// as time.Time (mysql with parseTime), []byte, or string depending on the
// dialect and settings.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
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
	}
	return fmt.Errorf("Date: cannot scan %T", value)
}

// GormDataType implements the schema.GormDataTypeInterface.
func (Date) GormDataType() string {
	return "date"
}

// GormDBDataType picks the column type for each supported driver.
func (Date) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "sqlserver", "mssql":
		return "DATE"
	}
	return "date"
}
