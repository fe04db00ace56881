package handler

import "github.com/pgschema/pgdelta/internal/catalog"

func init() {
	registerDiff(catalog.View, diffView)
	registerCreate(catalog.View, createView)
	registerDrop(catalog.View, dropView)
}

// diffView emits a drop-then-recreate pair when the view's normalized
// definition changed; views have no in-place ALTER path in this engine.
func diffView(ctx *Context, source, target catalog.Object) []string {
	s := source.(*catalog.ViewObject)
	t := target.(*catalog.ViewObject)
	if s.Definition == t.Definition {
		return nil
	}
	return []string{dropView(ctx, s)[0], createView(ctx, t)[0]}
}

func createView(ctx *Context, obj catalog.Object) []string {
	v := obj.(*catalog.ViewObject)
	return []string{"CREATE VIEW " + v.Identity() + " AS\n" + v.Definition}
}

func dropView(ctx *Context, obj catalog.Object) []string {
	return []string{"DROP VIEW " + obj.Identity()}
}
