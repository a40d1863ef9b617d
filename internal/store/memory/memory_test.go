package memory

import (
	"context"
	"errors"
	"testing"

	"tally/internal/core"
)

func mk(t *testing.T, cents int64, cat, date string) core.Expense {
	t.Helper()
	d, err := core.ParseDate(date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	return core.Expense{Amount: core.Money{Cents: cents}, Category: cat, Date: d}
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	id1, err := s.Insert(ctx, mk(t, 100, "Food", "2024-01-05"))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	id2, err := s.Insert(ctx, mk(t, 200, "Food", "2024-01-06"))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id1 != 1 || id2 != 2 {
		t.Fatalf("expected ids 1, 2; got %d, %d", id1, id2)
	}
}

func TestInsertRejectsInvalid(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.Insert(ctx, mk(t, -500, "Food", "2024-01-05")); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := s.Insert(ctx, mk(t, 100, "   ", "2024-01-05")); !errors.Is(err, core.ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("rejected inserts must not be stored, have %d records", s.Len())
	}
}

func TestSelectAllOrdering(t *testing.T) {
	s := New()
	ctx := context.Background()

	// Inserted out of order; two records share a date.
	s.Insert(ctx, mk(t, 100, "Food", "2024-01-05"))    // id 1
	s.Insert(ctx, mk(t, 200, "Transit", "2024-01-20")) // id 2
	s.Insert(ctx, mk(t, 300, "Food", "2024-01-20"))    // id 3
	s.Insert(ctx, mk(t, 400, "Fun", "2024-01-01"))     // id 4

	got, err := s.SelectAll(ctx)
	if err != nil {
		t.Fatalf("select all: %v", err)
	}

	// Date desc, id desc tie-break.
	want := []int64{3, 2, 1, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, got[i].ID)
		}
	}
}

func TestUpdateReplacesAllFields(t *testing.T) {
	s := New()
	ctx := context.Background()

	id, _ := s.Insert(ctx, mk(t, 100, "Food", "2024-01-05"))

	edited := mk(t, 999, "Transit", "2024-02-10")
	edited.ID = id
	edited.Note = "bus pass"
	if err := s.Update(ctx, edited); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, _ := s.SelectAll(ctx)
	if len(all) != 1 {
		t.Fatalf("expected 1 record, got %d", len(all))
	}
	got := all[0]
	if got.Amount.Cents != 999 || got.Category != "Transit" || got.Note != "bus pass" || got.Date.String() != "2024-02-10" {
		t.Fatalf("unexpected record after update: %+v", got)
	}
}

func TestUpdateRejectsInvalid(t *testing.T) {
	s := New()
	ctx := context.Background()

	id, _ := s.Insert(ctx, mk(t, 100, "Food", "2024-01-05"))

	bad := mk(t, 100, "Food", "2024-01-05")
	bad.ID = id
	bad.Amount = core.Money{Cents: 0}
	if err := s.Update(ctx, bad); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	all, _ := s.SelectAll(ctx)
	if all[0].Amount.Cents != 100 {
		t.Fatalf("rejected update must leave stored fields unchanged, got %+v", all[0])
	}
}

func TestDeleteNonexistentIsNoop(t *testing.T) {
	s := New()
	ctx := context.Background()

	s.Insert(ctx, mk(t, 100, "Food", "2024-01-05"))

	if err := s.Delete(ctx, 42); err != nil {
		t.Fatalf("deleting a nonexistent id must be a no-op, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 record after no-op delete, got %d", s.Len())
	}
}

func TestDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	id, _ := s.Insert(ctx, mk(t, 100, "Food", "2024-01-05"))
	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d records", s.Len())
	}
}
