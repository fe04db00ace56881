package handler

import (
	"fmt"
	"strings"

	"github.com/pgschema/pgdelta/internal/catalog"
)

func init() {
	registerDiff(catalog.Sequence, diffSequence)
	registerCreate(catalog.Sequence, createSequence)
	registerDrop(catalog.Sequence, dropSequence)
}

// diffSequence is intentionally a no-op: increment/ownership changes are
// not modeled as ALTER SEQUENCE (spec.md §4.4, §9 Open Questions). Add a
// handler here only when a concrete need for it shows up.
func diffSequence(ctx *Context, source, target catalog.Object) []string {
	return nil
}

func createSequence(ctx *Context, obj catalog.Object) []string {
	s := obj.(*catalog.SequenceObject)

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE SEQUENCE %s", s.Identity())
	if s.DataType != "" {
		fmt.Fprintf(&b, " AS %s", s.DataType)
	}
	if s.Increment != 0 {
		fmt.Fprintf(&b, " INCREMENT BY %d", s.Increment)
	}
	if s.MinValue != nil {
		fmt.Fprintf(&b, " MINVALUE %d", *s.MinValue)
	}
	if s.MaxValue != nil {
		fmt.Fprintf(&b, " MAXVALUE %d", *s.MaxValue)
	}
	if s.StartValue != 0 {
		fmt.Fprintf(&b, " START WITH %d", s.StartValue)
	}
	if s.Cycle {
		b.WriteString(" CYCLE")
	}
	if s.OwnedByTable != "" && s.OwnedByColumn != "" {
		fmt.Fprintf(&b, " OWNED BY %s.%s", s.OwnedByTable, s.OwnedByColumn)
	}
	return []string{b.String()}
}

func dropSequence(ctx *Context, obj catalog.Object) []string {
	return []string{"DROP SEQUENCE " + obj.Identity()}
}
