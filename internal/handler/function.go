package handler

import "github.com/pgschema/pgdelta/internal/catalog"

func init() {
	registerDiff(catalog.Function, diffFunction)
	registerCreate(catalog.Function, createFunction)
	registerDrop(catalog.Function, dropFunction)
}

// diffFunction emits the target's full definition verbatim when it
// differs from source. Callers are expected to author (or the inspector
// to normalize) that definition with CREATE OR REPLACE already present -
// this is a producer-side contract, not engine logic (spec.md §9).
func diffFunction(ctx *Context, source, target catalog.Object) []string {
	s := source.(*catalog.FunctionObject)
	t := target.(*catalog.FunctionObject)
	if s.Definition == t.Definition {
		return nil
	}
	return []string{t.Definition}
}

func createFunction(ctx *Context, obj catalog.Object) []string {
	return []string{obj.(*catalog.FunctionObject).Definition}
}

// dropFunction relies on identity already including the argument
// signature (e.g. "public.f(integer)"), so DROP FUNCTION never needs a
// separately-tracked signature.
func dropFunction(ctx *Context, obj catalog.Object) []string {
	return []string{"DROP FUNCTION " + obj.Identity()}
}
