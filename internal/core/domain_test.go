package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-01-05", true},
		{" 2024-12-31 ", true},
		{"2024-02-29", true}, // leap day
		{"2023-02-29", false},
		{"2024-02-30", false},
		{"2024-13-01", false},
		{"05/01/2024", false},
		{"not-a-date", false},
		{"", false},
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q expected ok, got %v", tc.in, err)
			}
			if d.IsZero() {
				t.Fatalf("%q parsed to zero date", tc.in)
			}
		} else {
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("%q expected ErrInvalidDate, got %v", tc.in, err)
			}
		}
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(2024, 1, 5).String(); got != "2024-01-05" {
		t.Fatalf("expected 2024-01-05, got %q", got)
	}
	if got := (Date{}).String(); got != "" {
		t.Fatalf("zero date should format empty, got %q", got)
	}
}

func TestDateOf(t *testing.T) {
	ref := time.Date(2024, 1, 17, 15, 42, 9, 0, time.Local)
	d := DateOf(ref)
	if d.String() != "2024-01-17" {
		t.Fatalf("expected 2024-01-17, got %q", d.String())
	}
	if h, m, s := d.Clock(); h != 0 || m != 0 || s != 0 {
		t.Fatalf("expected midnight, got %02d:%02d:%02d", h, m, s)
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Amount:   Money{Cents: 1000},
		Category: "Food",
		Note:     "groceries",
		Date:     NewDate(2024, 1, 5),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		e    Expense
		want error
	}{
		{"zero amount", Expense{Amount: Money{}, Category: "Food", Date: NewDate(2024, 1, 5)}, ErrInvalidAmount},
		{"negative amount", Expense{Amount: Money{Cents: -500}, Category: "Food", Date: NewDate(2024, 1, 5)}, ErrInvalidAmount},
		{"blank category", Expense{Amount: Money{Cents: 100}, Category: "   ", Date: NewDate(2024, 1, 5)}, ErrEmptyCategory},
		{"zero date", Expense{Amount: Money{Cents: 100}, Category: "Food"}, ErrInvalidDate},
	}
	for _, tc := range cases {
		if err := tc.e.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestIsValidationError(t *testing.T) {
	for _, err := range []error{ErrInvalidAmount, ErrEmptyCategory, ErrInvalidDate, ErrNoteTooLong} {
		if !IsValidationError(err) {
			t.Fatalf("%v should be a validation error", err)
		}
	}
	if IsValidationError(errors.New("disk full")) {
		t.Fatal("arbitrary error should not be a validation error")
	}
	if IsValidationError(nil) {
		t.Fatal("nil should not be a validation error")
	}
}
