package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yappari/coffeebar-admin/internal/domain/repository"
)

// dbPool is the subset of pgxpool.Pool the storage uses; narrow enough
// for pgxmock to stand in during tests.
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Storage persists the Completed-Locally set in PostgreSQL. It is a
// best-effort duplicate-submission guard, not a mirror of the order
// store's own records.
type Storage struct {
	pool   dbPool
	logger *slog.Logger
}

type completedRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Completed returns the completed-order repository.
func (s *Storage) Completed() repository.CompletedOrderRepository {
	return &completedRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS completed_orders (
            order_id BIGINT PRIMARY KEY,
            status TEXT NOT NULL,
            recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_completed_orders_recorded ON completed_orders(recorded_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func (r *completedRepository) Load(ctx context.Context) ([]int64, error) {
	const query = `SELECT order_id FROM completed_orders ORDER BY order_id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *completedRepository) Add(ctx context.Context, status string, orderIDs ...int64) error {
	const query = `INSERT INTO completed_orders (order_id, status) VALUES ($1, $2)
                   ON CONFLICT (order_id) DO NOTHING`
	for _, id := range orderIDs {
		if _, err := r.storage.pool.Exec(ctx, query, id, status); err != nil {
			return err
		}
	}
	return nil
}
