// Package backend selects and wires a store implementation from
// configuration.
package backend

import (
	"context"
	"fmt"

	"tally/internal/config"
	applog "tally/internal/log"
	"tally/internal/store"
	"tally/internal/store/memory"
	"tally/internal/store/postgres"
	"tally/internal/store/sqlite"
)

// Type identifies a store backend.
type Type string

const (
	Memory   Type = "memory"
	SQLite   Type = "sqlite"
	Postgres Type = "postgres"
)

func (t Type) IsValid() bool {
	switch t {
	case Memory, SQLite, Postgres:
		return true
	default:
		return false
	}
}

// Result holds the created store plus its cleanup function.
type Result struct {
	Store   store.Store
	Cleanup func() error
}

// Factory creates stores from application config.
type Factory struct {
	logger *applog.Logger
}

func NewFactory(logger *applog.Logger) *Factory {
	return &Factory{logger: logger.WithComponent(applog.ComponentBackend)}
}

// Create builds the configured store and runs its Init. The returned
// Cleanup must be called on shutdown.
func (f *Factory) Create(ctx context.Context, cfg *config.Config) (*Result, error) {
	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	var (
		st  store.Store
		err error
	)
	switch t {
	case SQLite:
		st, err = sqlite.NewRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", applog.FieldBackend, string(t), "db_path", cfg.SQLiteDBPath)
	case Postgres:
		st, err = postgres.NewRepository(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("initialize postgres store: %w", err)
		}
		f.logger.Info("Initialized Postgres backend", applog.FieldBackend, string(t))
	default:
		st = memory.New()
		f.logger.Info("Initialized memory backend", applog.FieldBackend, string(t))
	}

	if err := st.Init(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("init %s store: %w", t, err)
	}

	return &Result{Store: st, Cleanup: st.Close}, nil
}
