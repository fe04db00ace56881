package inspect

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Cursor is the external collaborator spec.md §6 describes: something
// that can execute SQL text against an opened database and yield rows as
// key-value mappings keyed by column name. The core never opens a
// connection itself - a Cursor is always handed in already open, and the
// caller owns its lifetime for the duration of Inspect.
type Cursor interface {
	Query(ctx context.Context, sqlText string) ([]map[string]any, error)
}

// SQLCursor adapts a *sql.DB to
// Cursor using database/sql's generic column scanning, the same pattern
// pgschema's own connection helpers use with the pgx/v5 stdlib driver
// registered under the "pgx" name.
type SQLCursor struct {
	DB *sql.DB
}

// Open dials dsn using the pgx stdlib driver. Closing the returned cursor
// is the caller's responsibility (spec.md §5: "the cursor is owned by the
// caller and must outlive the inspection call").
func Open(dsn string) (*SQLCursor, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("inspect: opening cursor: %w", err)
	}
	return &SQLCursor{DB: db}, nil
}

func (c *SQLCursor) Close() error {
	return c.DB.Close()
}

// Query executes sqlText and decodes every row into a map keyed by column
// name. Any driver error propagates unchanged (spec.md §4.2): partial
// results are never returned on error.
func (c *SQLCursor) Query(ctx context.Context, sqlText string) ([]map[string]any, error) {
	rows, err := c.DB.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	for rows.Next() {
		values := make([]any, len(cols))
		pointers := make([]any, len(cols))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		record := make(map[string]any, len(cols))
		for i, col := range cols {
			record[col] = values[i]
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
