package handler

import (
	"testing"

	"github.com/pgschema/pgdelta/internal/catalog"
)

func TestDropTrigger_CanonicalForm(t *testing.T) {
	tr := catalog.NewTrigger("public.t.tr", "public", "tr", "public.t", "CREATE TRIGGER tr ...")
	got := dropTrigger(&Context{}, tr)
	want := []string{"DROP TRIGGER tr ON public.t"}
	if !equalStmts(got, want) {
		t.Errorf("dropTrigger() = %v; want %v", got, want)
	}
}

func TestDiffTrigger_DefinitionChanged_DropsAndRecreates(t *testing.T) {
	source := catalog.NewTrigger("public.t.tr", "public", "tr", "public.t", "CREATE TRIGGER tr BEFORE INSERT ON t ...")
	target := catalog.NewTrigger("public.t.tr", "public", "tr", "public.t", "CREATE TRIGGER tr AFTER INSERT ON t ...")

	got := diffTrigger(&Context{}, source, target)
	want := []string{"DROP TRIGGER tr ON public.t", target.Definition}
	if !equalStmts(got, want) {
		t.Errorf("diffTrigger() = %v; want %v", got, want)
	}
}
