package handler

import (
	"testing"

	"github.com/pgschema/pgdelta/internal/catalog"
)

func TestCreateSequence_RendersOptionalClauses(t *testing.T) {
	min := int64(1)
	max := int64(1000)
	seq := catalog.NewSequence("public.t_id_seq", "public", "t_id_seq", "bigint", 1, 1, &min, &max, true, "t", "id")

	got := createSequence(&Context{}, seq)
	want := []string{"CREATE SEQUENCE public.t_id_seq AS bigint INCREMENT BY 1 MINVALUE 1 MAXVALUE 1000 START WITH 1 CYCLE OWNED BY t.id"}
	if !equalStmts(got, want) {
		t.Errorf("createSequence() = %v; want %v", got, want)
	}
}

func TestDiffSequence_AlwaysNoOp(t *testing.T) {
	a := catalog.NewSequence("public.s", "public", "s", "integer", 1, 1, nil, nil, false, "", "")
	b := catalog.NewSequence("public.s", "public", "s", "integer", 1, 5, nil, nil, true, "", "")
	if got := diffSequence(&Context{}, a, b); got != nil {
		t.Errorf("diffSequence() = %v; want nil", got)
	}
}
