package handler

import (
	"fmt"
	"strings"

	"github.com/pgschema/pgdelta/internal/catalog"
	"github.com/pgschema/pgdelta/internal/sqlfmt"
)

func init() {
	registerDiff(catalog.Table, diffTable)
	registerCreate(catalog.Table, createTable)
	registerDrop(catalog.Table, dropTable)
}

// diffTable emits exactly one "ALTER TABLE <identity> <alterations...>"
// concatenating, in order, the constraint diff and the column diff. An
// empty combined alteration list emits nothing (spec.md §4.4).
func diffTable(ctx *Context, source, target catalog.Object) []string {
	s := source.(*catalog.TableObject)
	t := target.(*catalog.TableObject)

	var alterations []string
	alterations = append(alterations, diffConstraints(s, t)...)
	alterations = append(alterations, diffColumns(s, t)...)
	if len(alterations) == 0 {
		return nil
	}
	return []string{fmt.Sprintf("ALTER TABLE %s %s", t.Identity(), strings.Join(alterations, ", "))}
}

func diffColumns(source, target *catalog.TableObject) []string {
	var rv []string

	sourceByName := make(map[string]*catalog.Column, len(source.Columns))
	for _, c := range source.Columns {
		sourceByName[c.Name] = c
	}
	targetByName := make(map[string]*catalog.Column, len(target.Columns))
	for _, c := range target.Columns {
		targetByName[c.Name] = c
	}

	// Columns present in both: per-attribute rules, in this order.
	for _, sc := range source.Columns {
		tc, ok := targetByName[sc.Name]
		if !ok {
			continue
		}
		name := sqlfmt.QuoteIdentifier(sc.Name)
		if sc.Type != tc.Type {
			rv = append(rv, fmt.Sprintf("ALTER COLUMN %s TYPE %s", name, tc.Type))
		}
		if !sameDefault(sc.Default, tc.Default) {
			if tc.Default == nil {
				rv = append(rv, fmt.Sprintf("ALTER COLUMN %s DROP DEFAULT", name))
			} else {
				rv = append(rv, fmt.Sprintf("ALTER COLUMN %s SET DEFAULT %s", name, *tc.Default))
			}
		}
		if sc.NotNull != tc.NotNull {
			if tc.NotNull {
				rv = append(rv, fmt.Sprintf("ALTER COLUMN %s SET NOT NULL", name))
			} else {
				rv = append(rv, fmt.Sprintf("ALTER COLUMN %s DROP NOT NULL", name))
			}
		}
	}

	// Columns only in source: drop, in source order.
	for _, sc := range source.Columns {
		if _, ok := targetByName[sc.Name]; !ok {
			rv = append(rv, fmt.Sprintf("DROP COLUMN %s", sqlfmt.QuoteIdentifier(sc.Name)))
		}
	}

	// Columns only in target: add, in target order.
	for _, tc := range target.Columns {
		if _, ok := sourceByName[tc.Name]; !ok {
			rv = append(rv, "ADD COLUMN "+renderColumn(tc))
		}
	}

	return rv
}

func diffConstraints(source, target *catalog.TableObject) []string {
	var rv []string

	sourceByName := make(map[string]*catalog.Constraint, len(source.Constraints))
	for _, c := range source.Constraints {
		sourceByName[c.Name] = c
	}
	targetByName := make(map[string]*catalog.Constraint, len(target.Constraints))
	for _, c := range target.Constraints {
		targetByName[c.Name] = c
	}

	for _, sc := range source.Constraints {
		if _, ok := targetByName[sc.Name]; !ok {
			rv = append(rv, "DROP CONSTRAINT "+sc.Name)
		}
	}
	for _, tc := range target.Constraints {
		if _, ok := sourceByName[tc.Name]; !ok {
			rv = append(rv, fmt.Sprintf("ADD %s %s", tc.Name, tc.Definition))
		}
	}
	for _, sc := range source.Constraints {
		tc, ok := targetByName[sc.Name]
		if !ok || tc.Definition == sc.Definition {
			continue
		}
		rv = append(rv, "DROP CONSTRAINT "+sc.Name)
		rv = append(rv, fmt.Sprintf("ADD %s %s", tc.Name, tc.Definition))
	}

	return rv
}

func sameDefault(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// renderColumn renders "name type [DEFAULT ...] [NOT NULL]".
func renderColumn(c *catalog.Column) string {
	parts := []string{sqlfmt.QuoteIdentifier(c.Name), c.Type}
	if c.Default != nil {
		parts = append(parts, "DEFAULT", *c.Default)
	}
	if c.NotNull {
		parts = append(parts, "NOT NULL")
	}
	return strings.Join(parts, " ")
}

func createTable(ctx *Context, obj catalog.Object) []string {
	t := obj.(*catalog.TableObject)

	var lines []string
	for _, c := range t.Columns {
		lines = append(lines, "  "+renderColumn(c))
	}
	for _, c := range t.Constraints {
		lines = append(lines, fmt.Sprintf("  CONSTRAINT %s %s", c.Name, c.Definition))
	}

	return []string{fmt.Sprintf("CREATE TABLE %s (\n%s\n)", t.Identity(), strings.Join(lines, ",\n"))}
}

func dropTable(ctx *Context, obj catalog.Object) []string {
	return []string{"DROP TABLE " + obj.Identity()}
}
