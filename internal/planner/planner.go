// Package planner implements the change planner (C5): given two
// Inspections it computes the ordered, deduplicated (op, identity)
// change set and renders it into SQL statements via internal/handler.
package planner

import (
	"github.com/pgschema/pgdelta/internal/catalog"
	"github.com/pgschema/pgdelta/internal/graph"
	"github.com/pgschema/pgdelta/internal/handler"
	"github.com/pgschema/pgdelta/internal/logger"
	"github.com/pgschema/pgdelta/internal/sqlfmt"
)

type opKind string

const (
	opCreate opKind = "create"
	opDrop   opKind = "drop"
	opAlter  opKind = "alter"
)

type change struct {
	op opKind
	id string
}

// Plan computes the ordered list of SQL statements that transforms source
// into target. Both Inspections are borrowed for the duration of the call
// and are never mutated (spec.md §5).
func Plan(source, target *graph.Inspection) []string {
	changes := classify(source, target)
	changes = dedupe(changes)

	ctx := &handler.Context{
		Source:        source,
		Target:        target,
		ServerVersion: target.ServerVersion,
	}

	stmts := render(ctx, source, target, changes)
	logger.Get().Debug("plan computed", "statements", len(stmts))
	return stmts
}

// classify implements spec.md §4.5 step 1: walk target topologically,
// emitting create for new identities and, for identities present in both,
// a drop/alter/create triple that brackets the alteration with cascading
// view rebuilds. Then walk source in reverse topological order emitting
// drops for identities absent from target.
func classify(source, target *graph.Inspection) []change {
	var changes []change

	for _, obj := range target.IterateForward() {
		id := obj.Identity()
		if !source.Contains(id) {
			changes = append(changes, change{opCreate, id})
			continue
		}

		for _, d := range reverseObjects(source.Descendants(id)) {
			if d.Kind() == catalog.View {
				changes = append(changes, change{opDrop, d.Identity()})
			}
		}

		changes = append(changes, change{opAlter, id})

		for _, d := range target.Descendants(id) {
			if d.Kind() == catalog.View {
				changes = append(changes, change{opCreate, d.Identity()})
			}
		}
	}

	for _, obj := range source.IterateReverse() {
		id := obj.Identity()
		if !target.Contains(id) {
			changes = append(changes, change{opDrop, id})
		}
	}

	return changes
}

// dedupe implements spec.md §4.5 step 2: a view that depends on several
// altered objects appears once per prerequisite. Keep only the first drop
// occurrence (drop before the earliest alter that requires it) and only
// the last create occurrence (recreate after the final alter that touched
// a prerequisite); alters are never deduplicated.
func dedupe(changes []change) []change {
	firstDrop := make(map[string]int, len(changes))
	lastCreate := make(map[string]int, len(changes))
	for idx, c := range changes {
		switch c.op {
		case opDrop:
			if _, ok := firstDrop[c.id]; !ok {
				firstDrop[c.id] = idx
			}
		case opCreate:
			lastCreate[c.id] = idx
		}
	}

	result := make([]change, 0, len(changes))
	for idx, c := range changes {
		switch c.op {
		case opDrop:
			if firstDrop[c.id] == idx {
				result = append(result, c)
			}
		case opCreate:
			if lastCreate[c.id] == idx {
				result = append(result, c)
			}
		default:
			result = append(result, c)
		}
	}
	return result
}

// render implements spec.md §4.5 step 3: dispatch each surviving change
// to the appropriate handler and format every fragment it returns.
func render(ctx *handler.Context, source, target *graph.Inspection, changes []change) []string {
	var stmts []string
	for _, c := range changes {
		switch c.op {
		case opAlter:
			s, sok := source.Get(c.id)
			t, tok := target.Get(c.id)
			if !sok || !tok {
				continue
			}
			for _, frag := range handler.Diff(ctx, s, t) {
				appendFormatted(&stmts, frag)
			}
		case opDrop:
			obj, ok := source.Get(c.id)
			if !ok {
				continue
			}
			for _, frag := range handler.Drop(ctx, obj) {
				appendFormatted(&stmts, frag)
			}
		case opCreate:
			obj, ok := target.Get(c.id)
			if !ok {
				continue
			}
			for _, frag := range handler.Create(ctx, obj) {
				appendFormatted(&stmts, frag)
			}
		}
	}
	return stmts
}

func appendFormatted(stmts *[]string, fragment string) {
	s := sqlfmt.Statement(fragment)
	if s == "" {
		return
	}
	*stmts = append(*stmts, s)
}

func reverseObjects(in []catalog.Object) []catalog.Object {
	out := make([]catalog.Object, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
