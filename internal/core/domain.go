package core

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Uncategorized is the sentinel label for records without a usable category.
const Uncategorized = "Uncategorized"

type (
	// Date is a calendar day with no time component. The zero value marks a
	// date that was missing or failed to parse.
	Date struct {
		time.Time
	}

	// Expense is a single tracked expense. ID is assigned by the store on
	// insert and never changes afterwards.
	Expense struct {
		ID       int64
		Amount   Money
		Category string
		Note     string
		Date     Date
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidDate   = errors.New("invalid date")
	ErrNoteTooLong   = errors.New("note too long")
)

// NewDate creates a Date from year, month, day in the local calendar.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)}
}

// DateOf truncates an instant to its local calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses a YYYY-MM-DD string. Out-of-range days (2024-02-30) are
// rejected, not normalized.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// String formats the date in wire form, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (e Expense) Validate() error {
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if len(e.Note) > 500 {
		return ErrNoteTooLong
	}
	return e.Date.Validate()
}

// IsValidationError reports whether err is one of the input-validation
// sentinels. Callers use it to tell a rejected form apart from a store failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrEmptyCategory) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrNoteTooLong)
}
