// Package handler is the per-kind registry (C4): three process-wide
// tables mapping catalog.Type to a diff, create, or drop function. Each
// handler returns its SQL fragment strings as a fully built slice (they
// are not produced lazily); formatting them into statements is the change
// planner's job (internal/planner), not the handler's.
//
// Registration happens once, in each kind file's init(), and the
// registries are treated as immutable after package initialization -
// there is no runtime mutation API.
package handler

import "github.com/pgschema/pgdelta/internal/catalog"

// Context is the opaque bag every handler receives. It carries both
// Inspections so a handler can, if it needs to, look at more than the two
// objects it was handed directly (table.go's constraint rendering does
// not need this, but it is part of the contract spec.md §4.4 describes).
type Context struct {
	Source        Inspection
	Target        Inspection
	ServerVersion string
}

// Inspection is the minimal read surface handlers need from a
// graph.Inspection, declared here to avoid a dependency cycle between
// internal/handler and internal/graph (graph already depends on catalog,
// and planner depends on both graph and handler).
type Inspection interface {
	Contains(id string) bool
	Get(id string) (catalog.Object, bool)
	Descendants(id string) []catalog.Object
}

type (
	DiffFunc   func(ctx *Context, source, target catalog.Object) []string
	CreateFunc func(ctx *Context, obj catalog.Object) []string
	DropFunc   func(ctx *Context, obj catalog.Object) []string
)

var (
	diffRegistry   = map[catalog.Type]DiffFunc{}
	createRegistry = map[catalog.Type]CreateFunc{}
	dropRegistry   = map[catalog.Type]DropFunc{}
)

func registerDiff(t catalog.Type, f DiffFunc)     { diffRegistry[t] = f }
func registerCreate(t catalog.Type, f CreateFunc) { createRegistry[t] = f }
func registerDrop(t catalog.Type, f DropFunc)      { dropRegistry[t] = f }

// Diff dispatches to the registered diff handler for source/target's
// shared kind. Precondition: source and target share the same Kind() and
// Identity(). If no handler is registered for the kind, the result is
// empty - not an error (spec.md §7).
func Diff(ctx *Context, source, target catalog.Object) []string {
	f, ok := diffRegistry[source.Kind()]
	if !ok {
		return nil
	}
	return f(ctx, source, target)
}

// Create dispatches to the registered create handler for obj's kind.
func Create(ctx *Context, obj catalog.Object) []string {
	f, ok := createRegistry[obj.Kind()]
	if !ok {
		return nil
	}
	return f(ctx, obj)
}

// Drop dispatches to the registered drop handler for obj's kind.
func Drop(ctx *Context, obj catalog.Object) []string {
	f, ok := dropRegistry[obj.Kind()]
	if !ok {
		return nil
	}
	return f(ctx, obj)
}
