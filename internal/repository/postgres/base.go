package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/adventureworks/enterprise-api/pkg/metrics"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db      *sqlx.DB
	metrics *metrics.Metrics
}

// NewBaseRepository creates a new base repository. The metrics handle may be
// nil in tests.
func NewBaseRepository(db *sqlx.DB, m *metrics.Metrics) BaseRepository {
	return BaseRepository{db: db, metrics: m}
}

// DB returns the database instance
func (r *BaseRepository) DB() *sqlx.DB {
	return r.db
}

// GetContext runs a single-row query and records operation metrics.
func (r *BaseRepository) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := r.db.GetContext(ctx, dest, query, args...)
	r.observe("get", start, err)
	return err
}

// SelectContext runs a multi-row query and records operation metrics.
func (r *BaseRepository) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := r.db.SelectContext(ctx, dest, query, args...)
	r.observe("select", start, err)
	return err
}

// ExecContext runs a mutating statement and records operation metrics.
func (r *BaseRepository) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := r.db.ExecContext(ctx, query, args...)
	r.observe("exec", start, err)
	return res, err
}

func (r *BaseRepository) observe(operation string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.metrics.DatabaseOperations.WithLabelValues(operation, status).Inc()
	r.metrics.DatabaseLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// WithTx executes a function within a transaction. The transaction commits
// only when fn returns nil; any error or panic rolls back every statement.
func (r *BaseRepository) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		r.countTx("rollback")
		return err
	}

	if err := tx.Commit(); err != nil {
		r.countTx("rollback")
		return err
	}
	r.countTx("commit")
	return nil
}

func (r *BaseRepository) countTx(outcome string) {
	if r.metrics != nil {
		r.metrics.TransactionsTotal.WithLabelValues(outcome).Inc()
	}
}
