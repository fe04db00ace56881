// Package sqlsplit turns a pasted DDL batch into individual statements
// (cmd rejoins them and internal/scratch applies them as one batch), and
// normalizes the view/function definitions internal/inspect stores so
// that two semantically identical definitions compare equal regardless
// of whitespace or quoting the author happened to type.
package sqlsplit

import (
	"fmt"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v6"
)

// Split breaks ddl into individual statements using pg_query_go's own
// parser rather than a naive semicolon split, so semicolons inside
// string literals, dollar-quoted function bodies, or comments are never
// mistaken for statement terminators.
func Split(ddl string) ([]string, error) {
	stmts, err := pg_query.SplitWithParser(ddl, true)
	if err != nil {
		return nil, fmt.Errorf("sqlsplit: splitting statements: %w", err)
	}
	out := make([]string, 0, len(stmts))
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// Normalize parses and re-deparses a single statement, canonicalizing
// whitespace, identifier quoting, and clause ordering the way
// PostgreSQL's own pg_get_viewdef/pg_get_functiondef do. Statements the
// parser rejects are returned unchanged - normalization is a best-effort
// convenience, not a validation step.
func Normalize(stmt string) string {
	result, err := pg_query.Parse(stmt)
	if err != nil {
		return stmt
	}
	deparsed, err := pg_query.Deparse(result)
	if err != nil {
		return stmt
	}
	return deparsed
}
