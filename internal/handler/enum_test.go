package handler

import (
	"testing"

	"github.com/pgschema/pgdelta/internal/catalog"
)

func TestDiffEnum_SingleElementAdded(t *testing.T) {
	source := catalog.NewEnum("public.mood", "public", "mood", []string{"ok"})
	target := catalog.NewEnum("public.mood", "public", "mood", []string{"ok", "great"})

	got := diffEnum(&Context{}, source, target)
	want := []string{"ALTER TYPE public.mood ADD VALUE 'great'"}
	if !equalStmts(got, want) {
		t.Errorf("diffEnum() = %v; want %v", got, want)
	}
}

func TestDiffEnum_ElementRemoved_FullRecreate(t *testing.T) {
	source := catalog.NewEnum("public.mood", "public", "mood", []string{"ok", "bad"})
	target := catalog.NewEnum("public.mood", "public", "mood", []string{"ok"})

	got := diffEnum(&Context{}, source, target)
	if len(got) != 2 {
		t.Fatalf("diffEnum() = %v; want drop+create pair", got)
	}
	if got[0] != "DROP TYPE public.mood" {
		t.Errorf("got[0] = %q; want DROP TYPE public.mood", got[0])
	}
}

func TestDiffEnum_Unchanged(t *testing.T) {
	e := catalog.NewEnum("public.mood", "public", "mood", []string{"ok"})
	if got := diffEnum(&Context{}, e, e); got != nil {
		t.Errorf("diffEnum() = %v; want nil", got)
	}
}
