package planner

import (
	"reflect"
	"testing"

	"github.com/pgschema/pgdelta/internal/catalog"
	"github.com/pgschema/pgdelta/internal/graph"
)

func mustInspection(t *testing.T, objects []catalog.Object, edges []graph.Edge) *graph.Inspection {
	t.Helper()
	m := make(map[string]catalog.Object, len(objects))
	for _, o := range objects {
		m[o.Identity()] = o
	}
	insp, err := graph.NewInspection(m, edges, "17.0")
	if err != nil {
		t.Fatalf("NewInspection() error = %v", err)
	}
	return insp
}

func TestPlan_SelfDiff_IsEmpty(t *testing.T) {
	tbl := catalog.NewTable("public.t", "public", "t",
		[]*catalog.Column{{Name: "a", Type: "int"}}, nil)
	insp := mustInspection(t, []catalog.Object{tbl}, nil)

	got := Plan(insp, insp)
	if len(got) != 0 {
		t.Errorf("Plan(x, x) = %v; want empty", got)
	}
}

func TestPlan_IsDeterministic(t *testing.T) {
	tbl := catalog.NewTable("public.t", "public", "t",
		[]*catalog.Column{{Name: "a", Type: "int"}}, nil)
	other := catalog.NewTable("public.t", "public", "t",
		[]*catalog.Column{{Name: "a", Type: "bigint"}}, nil)

	source := mustInspection(t, []catalog.Object{tbl}, nil)
	target := mustInspection(t, []catalog.Object{other}, nil)

	first := Plan(source, target)
	second := Plan(source, target)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Plan() not deterministic: %v != %v", first, second)
	}
}

func TestPlan_ViewCascade(t *testing.T) {
	sourceTable := catalog.NewTable("public.t", "public", "t",
		[]*catalog.Column{{Name: "a", Type: "int"}}, nil)
	view := catalog.NewView("public.v", "public", "v", "SELECT a FROM t")

	source := mustInspection(t,
		[]catalog.Object{sourceTable, view},
		[]graph.Edge{{Prerequisite: "public.t", Dependent: "public.v"}},
	)

	targetTable := catalog.NewTable("public.t", "public", "t",
		[]*catalog.Column{{Name: "a", Type: "bigint"}}, nil)
	target := mustInspection(t,
		[]catalog.Object{targetTable, view},
		[]graph.Edge{{Prerequisite: "public.t", Dependent: "public.v"}},
	)

	got := Plan(source, target)
	want := []string{
		"DROP VIEW public.v;",
		"ALTER TABLE public.t ALTER COLUMN a TYPE bigint;",
		"CREATE VIEW public.v AS\nSELECT a FROM t;",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Plan() = %v; want %v", got, want)
	}
}

func TestPlan_DroppedObject(t *testing.T) {
	tbl := catalog.NewTable("public.t", "public", "t", nil, nil)
	source := mustInspection(t, []catalog.Object{tbl}, nil)
	target := mustInspection(t, nil, nil)

	got := Plan(source, target)
	want := []string{"DROP TABLE public.t;"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Plan() = %v; want %v", got, want)
	}
}

func TestPlan_CreatedObject(t *testing.T) {
	source := mustInspection(t, nil, nil)
	tbl := catalog.NewTable("public.t", "public", "t",
		[]*catalog.Column{{Name: "a", Type: "int", NotNull: true}}, nil)
	target := mustInspection(t, []catalog.Object{tbl}, nil)

	got := Plan(source, target)
	if len(got) != 1 {
		t.Fatalf("Plan() = %v; want exactly 1 statement", got)
	}
}

func TestDedupe_FirstDropLastCreateWin(t *testing.T) {
	changes := []change{
		{opDrop, "v"},
		{opAlter, "a"},
		{opCreate, "v"},
		{opDrop, "v"},
		{opAlter, "b"},
		{opCreate, "v"},
	}

	got := dedupe(changes)
	want := []change{
		{opDrop, "v"},
		{opAlter, "a"},
		{opAlter, "b"},
		{opCreate, "v"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dedupe() = %v; want %v", got, want)
	}
}
