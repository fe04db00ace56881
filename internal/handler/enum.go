package handler

import (
	"fmt"
	"strings"

	"github.com/pgschema/pgdelta/internal/catalog"
)

func init() {
	registerDiff(catalog.Enum, diffEnum)
	registerCreate(catalog.Enum, createEnum)
	registerDrop(catalog.Enum, dropEnum)
}

// diffEnum compares element sets. Any removed element forces a full
// drop+recreate since PostgreSQL cannot remove an enum label in place;
// otherwise each added element becomes its own ALTER TYPE ... ADD VALUE,
// which preserves the type's identity and its dependents (spec.md §4.4).
func diffEnum(ctx *Context, source, target catalog.Object) []string {
	s := source.(*catalog.EnumObject)
	t := target.(*catalog.EnumObject)

	sourceSet := make(map[string]struct{}, len(s.Elements))
	for _, e := range s.Elements {
		sourceSet[e] = struct{}{}
	}
	targetSet := make(map[string]struct{}, len(t.Elements))
	for _, e := range t.Elements {
		targetSet[e] = struct{}{}
	}

	for _, e := range s.Elements {
		if _, ok := targetSet[e]; !ok {
			return []string{dropEnum(ctx, s)[0], createEnum(ctx, t)[0]}
		}
	}

	var rv []string
	for _, e := range t.Elements {
		if _, ok := sourceSet[e]; !ok {
			rv = append(rv, fmt.Sprintf("ALTER TYPE %s ADD VALUE '%s'", t.Identity(), e))
		}
	}
	return rv
}

func createEnum(ctx *Context, obj catalog.Object) []string {
	e := obj.(*catalog.EnumObject)
	quoted := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		quoted[i] = "'" + el + "'"
	}
	return []string{fmt.Sprintf("CREATE TYPE %s AS ENUM (%s)", e.Identity(), strings.Join(quoted, ", "))}
}

func dropEnum(ctx *Context, obj catalog.Object) []string {
	return []string{"DROP TYPE " + obj.Identity()}
}
