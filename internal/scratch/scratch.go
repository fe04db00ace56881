// Package scratch implements the scratch-database provider spec.md §6
// describes: a throwaway PostgreSQL instance the CLI applies a target's
// raw DDL to, so it can be inspected the same way as a real source
// database and diffed by internal/planner. It is grounded on the
// teacher's own integration-test harness, which provisions disposable
// postgres containers the same way for exact-match testing.
package scratch

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DB is a provisioned scratch database: a running container plus a DSN
// for connecting to it. Applying DDL and tearing the container down are
// both the caller's responsibility via the exported methods.
type DB struct {
	container *postgres.PostgresContainer
	dsn       string
}

// Provision starts a disposable PostgreSQL container and returns a DB
// handle pointed at it. image selects the server image, e.g.
// "postgres:17"; an empty string defaults to "postgres:17".
func Provision(ctx context.Context, image string) (*DB, error) {
	if image == "" {
		image = "postgres:17"
	}

	container, err := postgres.Run(ctx,
		image,
		postgres.WithDatabase("pgdelta_scratch"),
		postgres.WithUsername("pgdelta"),
		postgres.WithPassword("pgdelta"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2)),
	)
	if err != nil {
		return nil, fmt.Errorf("scratch: starting container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("scratch: reading connection string: %w", err)
	}

	return &DB{container: container, dsn: dsn}, nil
}

// DSN returns the connection string for the scratch database.
func (d *DB) DSN() string { return d.dsn }

// Apply runs ddl against the scratch database using lib/pq, a lighter
// driver than the pgx stack internal/inspect uses for the inspection
// cursor - applying DDL is a one-shot operation with no need for pgx's
// richer type mapping. ddl is expected to already be statement-separated
// (see internal/sqlsplit); it is executed in a single batch via Exec,
// which lib/pq's simple-query protocol runs as a multi-statement command.
func (d *DB) Apply(ctx context.Context, ddl string) error {
	db, err := sql.Open("postgres", d.dsn)
	if err != nil {
		return fmt.Errorf("scratch: opening apply connection: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("scratch: applying ddl: %w", err)
	}
	return nil
}

// Close terminates the scratch container. Callers should always defer
// Close immediately after a successful Provision.
func (d *DB) Close(ctx context.Context) error {
	if d.container == nil {
		return nil
	}
	return d.container.Terminate(ctx)
}
