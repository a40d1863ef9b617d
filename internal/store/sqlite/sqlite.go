// Package sqlite persists expenses in a local SQLite database via the pure
// Go modernc driver. Schema changes run through embedded migrations.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"tally/internal/core"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db     *sql.DB
	dbPath string
}

func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Repository{db: db, dbPath: dbPath}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Init runs pending migrations, creating the expenses table on first use.
func (r *Repository) Init(ctx context.Context) error {
	if err := RunMigrations(r.dbPath); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	slog.InfoContext(ctx, "SQLite schema ready", "path", r.dbPath)
	return nil
}

func (r *Repository) Insert(ctx context.Context, e core.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (amount_cents, category, note, date) VALUES (?, ?, ?, ?)`,
		e.Amount.Cents, e.Category, e.Note, e.Date.String())
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", id,
		"amount_cents", e.Amount.Cents,
		"category", e.Category,
		"date", e.Date.String())
	return id, nil
}

func (r *Repository) SelectAll(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, amount_cents, category, note, date
		 FROM expenses
		 ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("select expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		var (
			e       core.Expense
			dateRaw string
		)
		if err := rows.Scan(&e.ID, &e.Amount.Cents, &e.Category, &e.Note, &dateRaw); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		// A stored date that no longer parses leaves the zero Date; the
		// record still lists, windowed filters exclude it.
		if d, err := core.ParseDate(dateRaw); err == nil {
			e.Date = d
		} else {
			slog.WarnContext(ctx, "Unparseable stored date", "id", e.ID, "date", dateRaw)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return out, nil
}

func (r *Repository) Update(ctx context.Context, e core.Expense) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET amount_cents = ?, category = ?, note = ?, date = ? WHERE id = ?`,
		e.Amount.Cents, e.Category, e.Note, e.Date.String(), e.ID)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
