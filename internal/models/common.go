// internal/models/common.go
package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Base model with common fields
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

// Enums
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageMarathi Language = "mr"
)

type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

type StockTransactionType string

const (
	StockTransactionIn  StockTransactionType = "in"
	StockTransactionOut StockTransactionType = "out"
)

type UdhariStatus string

const (
	UdhariStatusPaid   UdhariStatus = "paid"
	UdhariStatusUnpaid UdhariStatus = "unpaid"
)

type TicketTag string

const (
	TicketTagBug        TicketTag = "bug"
	TicketTagSuggestion TicketTag = "suggestion"
	TicketTagPayment    TicketTag = "payment"
)

type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "open"
	TicketStatusResolved TicketStatus = "resolved"
)

const (
	dateFormat = "2006-01-02"
	timeFormat = "15:04:05"
)

// Date is a calendar date without a time-of-day component. It marshals as
// "2006-01-02" on the wire and stores as a DATE column.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateFormat)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateFormat) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return fmt.Errorf("date has wrong format, use %s", dateFormat)
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Format(dateFormat), nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = Date{v}
		return nil
	case string:
		if len(v) > len(dateFormat) {
			v = v[:len(dateFormat)]
		}
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (Date) GormDataType() string {
	return "date"
}

// TimeOfDay is a wall-clock time without a date. It marshals as "15:04:05"
// and stores as a TIME column.
type TimeOfDay struct {
	time.Time
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{t}, nil
}

func (t TimeOfDay) String() string {
	return t.Format(timeFormat)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(timeFormat) + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid time %s", s)
	}
	parsed, err := ParseTimeOfDay(s[1 : len(s)-1])
	if err != nil {
		return fmt.Errorf("time has wrong format, use %s", timeFormat)
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.Format(timeFormat), nil
}

func (t *TimeOfDay) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*t = TimeOfDay{v}
		return nil
	case string:
		if len(v) > len(timeFormat) {
			v = v[:len(timeFormat)]
		}
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", value)
	}
}

func (TimeOfDay) GormDataType() string {
	return "time"
}
