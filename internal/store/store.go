// Package store defines the persistence port the screen controller talks
// to. Backends live in the subpackages memory, sqlite, and postgres.
package store

import (
	"context"

	"tally/internal/core"
)

// Store is the persistence collaborator for expense records.
type Store interface {
	// Init creates the expenses table if it is missing.
	Init(ctx context.Context) error

	// Insert writes a new record and returns the store-assigned id.
	Insert(ctx context.Context, e core.Expense) (int64, error)

	// SelectAll returns every record ordered by date descending, ties
	// broken by id descending.
	SelectAll(ctx context.Context) ([]core.Expense, error)

	// Update replaces amount, category, note, and date of the record with
	// e.ID. Updating a nonexistent id is not an error.
	Update(ctx context.Context, e core.Expense) error

	// Delete removes the record with the given id; a nonexistent id is a
	// no-op.
	Delete(ctx context.Context, id int64) error

	Close() error
}
