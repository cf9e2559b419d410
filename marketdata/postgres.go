package marketdata

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/meenmo/xirr/xirr"
)

// PostgresSource loads payments from a Postgres query. The query must
// return exactly two columns: a DATE (or TIMESTAMP) and a NUMERIC
// amount, one row per cash flow.
type PostgresSource struct {
	db    *sql.DB
	query string
}

// OpenPostgresSource connects with the given DSN and verifies the
// connection. The caller owns Close.
func OpenPostgresSource(dsn, query string) (*PostgresSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PostgresSource{db: db, query: query}, nil
}

func (s *PostgresSource) Payments() ([]xirr.Payment, error) {
	rows, err := s.db.Query(s.query)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []xirr.Payment
	for rows.Next() {
		var date time.Time
		var amount decimal.Decimal
		if err := rows.Scan(&date, &amount); err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, xirr.NewPayment(date, amount.InexactFloat64()))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}
	return payments, nil
}

func (s *PostgresSource) Close() error {
	return s.db.Close()
}
