package handler

import "github.com/pgschema/pgdelta/internal/catalog"

func init() {
	registerDiff(catalog.Index, diffIndex)
	registerCreate(catalog.Index, createIndex)
	registerDrop(catalog.Index, dropIndex)
}

// diffIndex is a no-op: indices are only ever recreated when their
// definition text would differ at creation time, never ALTERed in place
// (spec.md §4.4).
func diffIndex(ctx *Context, source, target catalog.Object) []string {
	return nil
}

// createIndex suppresses unique/primary-key-backing indices: the
// constraint that owns them recreates the backing index implicitly via
// the table's constraint block (internal/handler/table.go), so emitting
// a separate CREATE INDEX here would either conflict or duplicate it.
func createIndex(ctx *Context, obj catalog.Object) []string {
	i := obj.(*catalog.IndexObject)
	if i.IsUnique || i.IsPK {
		return nil
	}
	return []string{i.Definition}
}

func dropIndex(ctx *Context, obj catalog.Object) []string {
	return []string{"DROP INDEX " + obj.Identity()}
}
