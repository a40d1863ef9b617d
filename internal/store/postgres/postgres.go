// Package postgres persists expenses in PostgreSQL through a pgx pool, for
// deployments that outgrow the local SQLite file.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tally/internal/core"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Repository{pool: pool}, nil
}

func (r *Repository) Close() error {
	if r.pool != nil {
		r.pool.Close()
	}
	return nil
}

func (r *Repository) Init(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS expenses (
			id BIGSERIAL PRIMARY KEY,
			amount_cents BIGINT NOT NULL CHECK (amount_cents > 0),
			category TEXT NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			date DATE NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create expenses table: %w", err)
	}
	slog.InfoContext(ctx, "Postgres schema ready")
	return nil
}

func (r *Repository) Insert(ctx context.Context, e core.Expense) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO expenses (amount_cents, category, note, date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		e.Amount.Cents, e.Category, e.Note, e.Date.Time).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", id,
		"amount_cents", e.Amount.Cents,
		"category", e.Category,
		"date", e.Date.String())
	return id, nil
}

func (r *Repository) SelectAll(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.pool.Query(ctx,
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
			e core.Expense
			d time.Time
		)
		if err := rows.Scan(&e.ID, &e.Amount.Cents, &e.Category, &e.Note, &d); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Date = core.DateOf(d)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return out, nil
}

func (r *Repository) Update(ctx context.Context, e core.Expense) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE expenses SET amount_cents = $1, category = $2, note = $3, date = $4 WHERE id = $5`,
		e.Amount.Cents, e.Category, e.Note, e.Date.Time, e.ID)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
