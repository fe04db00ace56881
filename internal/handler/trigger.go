package handler

import "github.com/pgschema/pgdelta/internal/catalog"

func init() {
	registerDiff(catalog.Trigger, diffTrigger)
	registerCreate(catalog.Trigger, createTrigger)
	registerDrop(catalog.Trigger, dropTrigger)
}

// diffTrigger drops then recreates on any definition change: triggers
// have no REPLACE syntax (spec.md §4.4).
func diffTrigger(ctx *Context, source, target catalog.Object) []string {
	s := source.(*catalog.TriggerObject)
	t := target.(*catalog.TriggerObject)
	if s.Definition == t.Definition {
		return nil
	}
	return []string{dropTrigger(ctx, s)[0], createTrigger(ctx, t)[0]}
}

func createTrigger(ctx *Context, obj catalog.Object) []string {
	return []string{obj.(*catalog.TriggerObject).Definition}
}

// dropTrigger uses the canonical "DROP TRIGGER <name> ON <table>" form.
// original_source/pgdiff renders this two different ways across its own
// history; spec.md §9 resolves the ambiguity in favor of this one.
func dropTrigger(ctx *Context, obj catalog.Object) []string {
	t := obj.(*catalog.TriggerObject)
	return []string{"DROP TRIGGER " + t.ObjectName() + " ON " + t.TableName}
}
