package catalog

import "testing"

func TestTableObject_Lookup(t *testing.T) {
	tbl := NewTable("public.users", "public", "users",
		[]*Column{{Name: "id", Type: "integer", NotNull: true}},
		[]*Constraint{{Name: "users_pkey", Definition: "PRIMARY KEY (id)"}},
	)

	if tbl.Kind() != Table {
		t.Errorf("Kind() = %v; want %v", tbl.Kind(), Table)
	}
	if tbl.Identity() != "public.users" {
		t.Errorf("Identity() = %q; want %q", tbl.Identity(), "public.users")
	}
	if tbl.Column("id") == nil {
		t.Error("Column(\"id\") = nil; want non-nil")
	}
	if tbl.Column("missing") != nil {
		t.Error("Column(\"missing\") = non-nil; want nil")
	}
	if tbl.Constraint("users_pkey") == nil {
		t.Error("Constraint(\"users_pkey\") = nil; want non-nil")
	}
}

func TestKinds_AreDistinct(t *testing.T) {
	kinds := []Type{Table, View, Index, Sequence, Enum, Function, Trigger}
	seen := map[Type]bool{}
	for _, k := range kinds {
		if seen[k] {
			t.Errorf("duplicate kind value: %v", k)
		}
		seen[k] = true
	}
}
