// Package cmd implements the command-line entry point: a single command
// that reads a target schema's DDL from standard input, compares it
// against a live source database, and writes the migration script to
// standard output. The CLI itself is peripheral - it wires the engine's
// pieces together but contributes no diffing logic of its own.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pgschema/pgdelta/internal/inspect"
	"github.com/pgschema/pgdelta/internal/logger"
	"github.com/pgschema/pgdelta/internal/planner"
	"github.com/pgschema/pgdelta/internal/scratch"
	"github.com/pgschema/pgdelta/internal/sqlsplit"
	"github.com/pgschema/pgdelta/internal/version"
	"github.com/spf13/cobra"
)

var (
	debug       bool
	schemaFlags []string
	image       string
)

var RootCmd = &cobra.Command{
	Use:   "pgdelta <dsn>",
	Short: "Compute a dependency-ordered migration script between two PostgreSQL schemas",
	Long: `pgdelta inspects a live source database and a target schema (read as DDL
from standard input), and writes the SQL migration script that transforms the
source into the target to standard output.`,
	Args:    cobra.ExactArgs(1),
	Version: fmt.Sprintf("%s (%s) %s", version.String(), version.GitCommit, version.Platform()),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
	RunE: runDiff,
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	RootCmd.Flags().StringSliceVarP(&schemaFlags, "schemas", "s", nil, "Glob patterns of schemas to include (default: all)")
	RootCmd.Flags().StringVar(&image, "image", "postgres:17", "Postgres image used for the scratch database the target DDL is applied to")
}

func setupLogger() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger.SetGlobal(slog.New(handler), debug)
}

func runDiff(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dsn := args[0]

	targetDDL, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading target DDL from stdin: %w", err)
	}

	sourceCursor, err := inspect.Open(dsn)
	if err != nil {
		return fmt.Errorf("opening source database: %w", err)
	}
	defer sourceCursor.Close()

	insp := inspect.New()

	sourceVersion, err := serverVersion(ctx, sourceCursor)
	if err != nil {
		return fmt.Errorf("reading source server version: %w", err)
	}

	source, err := insp.Inspect(ctx, sourceCursor, schemaFlags, sourceVersion)
	if err != nil {
		return fmt.Errorf("inspecting source database: %w", err)
	}

	scratchDB, err := scratch.Provision(ctx, image)
	if err != nil {
		return fmt.Errorf("provisioning scratch database: %w", err)
	}
	defer scratchDB.Close(ctx)

	stmts, err := sqlsplit.Split(string(targetDDL))
	if err != nil {
		return fmt.Errorf("splitting target DDL: %w", err)
	}
	if err := scratchDB.Apply(ctx, strings.Join(stmts, ";\n")); err != nil {
		return fmt.Errorf("applying target DDL to scratch database: %w", err)
	}

	scratchCursor, err := inspect.Open(scratchDB.DSN())
	if err != nil {
		return fmt.Errorf("opening scratch database: %w", err)
	}
	defer scratchCursor.Close()

	target, err := insp.Inspect(ctx, scratchCursor, schemaFlags, sourceVersion)
	if err != nil {
		return fmt.Errorf("inspecting scratch database: %w", err)
	}

	script := planner.Plan(source, target)
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(script, "\n\n"))
	return nil
}

// serverVersion captures the source server's version as the opaque
// metadata internal/graph.Inspection carries alongside its objects
// (spec.md §4.2). It is never interpreted by the engine itself.
func serverVersion(ctx context.Context, cursor *inspect.SQLCursor) (string, error) {
	rows, err := cursor.Query(ctx, "SHOW server_version")
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	v, _ := rows[0]["server_version"].(string)
	if v == "" {
		for _, val := range rows[0] {
			if s, ok := val.(string); ok {
				return s, nil
			}
		}
	}
	return v, nil
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
