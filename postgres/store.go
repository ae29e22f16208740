// Package postgres stores ledger exports in PostgreSQL. Every run is kept
// as a separate batch identified by its run id.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"
	"kastelo.dev/ledger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var monthlyColumns = []string{
	"run_id", "position", "customer_id", "month_year",
	"min_balance", "max_balance", "ending_balance",
}

var dailyColumns = []string{
	"run_id", "position", "customer_id", "day", "balance",
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects to the database at dsn and brings its schema up to date.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := Migrate(dsn); err != nil {
		db.Close()
		return nil, err
	}
	return NewStore(db), nil
}

// Migrate applies the embedded schema migrations to the database at dsn.
// It uses its own connection, which is closed on return.
func Migrate(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		db.Close()
		return fmt.Errorf("create postgres driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		driver.Close()
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		driver.Close()
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveMonthlyRows writes the rows of one run in a single transaction.
func (s *Store) SaveMonthlyRows(ctx context.Context, runID string, rows []ledger.MonthlyRow) error {
	return s.copyIn(ctx, "monthly_summaries", monthlyColumns, len(rows), func(i int) []any {
		r := rows[i]
		return []any{runID, i, r.CustomerID, r.MonthYear, r.Min, r.Max, r.Ending}
	})
}

// SaveDailyRows writes the daily balances of one run in a single
// transaction.
func (s *Store) SaveDailyRows(ctx context.Context, runID string, rows []ledger.DailyRow) error {
	return s.copyIn(ctx, "daily_balances", dailyColumns, len(rows), func(i int) []any {
		r := rows[i]
		return []any{runID, i, r.CustomerID, r.Date, r.Balance}
	})
}

func (s *Store) copyIn(ctx context.Context, table string, cols []string, n int, values func(int) []any) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, cols...))
	if err != nil {
		return fmt.Errorf("prepare copy into %s: %w", table, err)
	}
	for i := 0; i < n; i++ {
		if _, err = stmt.ExecContext(ctx, values(i)...); err != nil {
			stmt.Close()
			return fmt.Errorf("copy row %d into %s: %w", i, table, err)
		}
	}
	if _, err = stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("flush copy into %s: %w", table, err)
	}
	if err = stmt.Close(); err != nil {
		return err
	}
	return tx.Commit()
}

// MonthlyRows returns the rows saved for runID in their export order.
func (s *Store) MonthlyRows(ctx context.Context, runID string) ([]ledger.MonthlyRow, error) {
	const query = `SELECT customer_id, month_year, min_balance, max_balance, ending_balance
	FROM monthly_summaries WHERE run_id = $1 ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []ledger.MonthlyRow
	for rows.Next() {
		var r ledger.MonthlyRow
		if err := rows.Scan(&r.CustomerID, &r.MonthYear, &r.Min, &r.Max, &r.Ending); err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}

// DailyRows returns the daily balances saved for runID in their export
// order.
func (s *Store) DailyRows(ctx context.Context, runID string) ([]ledger.DailyRow, error) {
	const query = `SELECT customer_id, day, balance
	FROM daily_balances WHERE run_id = $1 ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []ledger.DailyRow
	for rows.Next() {
		var r ledger.DailyRow
		if err := rows.Scan(&r.CustomerID, &r.Date, &r.Balance); err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}
