package contractdb

import (
	"context"
	"database/sql"
	"fmt"

	"customer-service-chatbot/internal/chat/repository"
	pkgLog "customer-service-chatbot/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a contract database repository around an open database
// handle. The handle is used strictly read-only: every statement reaching
// Query has already passed the safety validator.
func New(db *sql.DB, l pkgLog.Logger) repository.ContractQuerier {
	return &implRepository{db: db, l: l}
}

// Query executes a validated SELECT and returns all rows.
func (r *implRepository) Query(ctx context.Context, sqlText string) ([]repository.Row, error) {
	rows, err := r.db.QueryContext(ctx, sqlText)
	if err != nil {
		r.l.Errorf(ctx, "contractdb: query failed: %v", err)
		return nil, fmt.Errorf("contract query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var out []repository.Row
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(repository.Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	return out, nil
}

// Health pings the database.
func (r *implRepository) Health(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("contract db unreachable: %w", err)
	}
	return nil
}
