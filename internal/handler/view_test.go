package handler

import (
	"testing"

	"github.com/pgschema/pgdelta/internal/catalog"
)

func TestDiffView_DefinitionChanged(t *testing.T) {
	source := catalog.NewView("public.v", "public", "v", "SELECT a FROM t")
	target := catalog.NewView("public.v", "public", "v", "SELECT a, b FROM t")

	got := diffView(&Context{}, source, target)
	want := []string{"DROP VIEW public.v", "CREATE VIEW public.v AS\nSELECT a, b FROM t"}
	if !equalStmts(got, want) {
		t.Errorf("diffView() = %v; want %v", got, want)
	}
}

func TestDiffView_Unchanged(t *testing.T) {
	v := catalog.NewView("public.v", "public", "v", "SELECT a FROM t")
	if got := diffView(&Context{}, v, v); got != nil {
		t.Errorf("diffView() = %v; want nil", got)
	}
}
