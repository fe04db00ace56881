// Package inspect implements the catalog inspector (C2): it issues one
// query per object kind plus one dependency query through a Cursor,
// tags every record with its kind, filters by schema, and assembles the
// results into a graph.Inspection.
package inspect

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pgschema/pgdelta/internal/catalog"
	"github.com/pgschema/pgdelta/internal/graph"
	"github.com/pgschema/pgdelta/internal/logger"
	"github.com/pgschema/pgdelta/internal/schemamatch"
	"github.com/pgschema/pgdelta/internal/sqlsplit"
)

// Inspector issues the catalog queries and assembles their rows into a
// graph.Inspection. It holds no database handle itself - the Cursor it is
// given per call owns the connection (spec.md §5).
type Inspector struct {
	Queries QueryTexts
}

// New returns an Inspector using the default catalog query texts.
func New() *Inspector {
	return &Inspector{Queries: DefaultQueries()}
}

// Inspect issues one query per object kind and one dependency query
// against cursor, keeps only the records whose schema matches one of
// patterns (no patterns means keep everything), and assembles the result
// into a graph.Inspection. The cursor's reported server_version is not
// available through Cursor's minimal interface, so callers that need it
// populate serverVersion themselves; Inspect accepts it as a parameter
// rather than querying for it, keeping Cursor a single-purpose seam.
func (ins *Inspector) Inspect(ctx context.Context, cursor Cursor, patterns []string, serverVersion string) (*graph.Inspection, error) {
	objects := map[string]catalog.Object{}

	if err := ins.loadTables(ctx, cursor, patterns, objects); err != nil {
		return nil, err
	}
	if err := ins.loadViews(ctx, cursor, patterns, objects); err != nil {
		return nil, err
	}
	if err := ins.loadIndexes(ctx, cursor, patterns, objects); err != nil {
		return nil, err
	}
	if err := ins.loadSequences(ctx, cursor, patterns, objects); err != nil {
		return nil, err
	}
	if err := ins.loadEnums(ctx, cursor, patterns, objects); err != nil {
		return nil, err
	}
	if err := ins.loadFunctions(ctx, cursor, patterns, objects); err != nil {
		return nil, err
	}
	if err := ins.loadTriggers(ctx, cursor, patterns, objects); err != nil {
		return nil, err
	}

	edges, err := ins.loadDependencies(ctx, cursor, objects)
	if err != nil {
		return nil, err
	}

	logger.Get().Debug("inspected catalog", "objects", len(objects), "edges", len(edges))

	return graph.NewInspection(objects, edges, serverVersion)
}

func (ins *Inspector) loadTables(ctx context.Context, cursor Cursor, patterns []string, objects map[string]catalog.Object) error {
	rows, err := cursor.Query(ctx, ins.Queries.Table)
	if err != nil {
		return fmt.Errorf("inspect: querying tables: %w", err)
	}
	for _, row := range rows {
		schema := asString(row["schema"])
		if !schemamatch.Match(schema, patterns) {
			continue
		}

		var rawCols []struct {
			Name    string  `json:"name"`
			Type    string  `json:"type"`
			Default *string `json:"default"`
			NotNull bool    `json:"not_null"`
		}
		if err := unmarshalJSONField(row["columns_json"], &rawCols); err != nil {
			return fmt.Errorf("inspect: decoding columns for %s: %w", asString(row["identity"]), err)
		}
		columns := make([]*catalog.Column, len(rawCols))
		for i, c := range rawCols {
			columns[i] = &catalog.Column{Name: c.Name, Type: c.Type, Default: c.Default, NotNull: c.NotNull}
		}

		var rawCons []struct {
			Name       string `json:"name"`
			Definition string `json:"definition"`
		}
		if err := unmarshalJSONField(row["constraints_json"], &rawCons); err != nil {
			return fmt.Errorf("inspect: decoding constraints for %s: %w", asString(row["identity"]), err)
		}
		constraints := make([]*catalog.Constraint, len(rawCons))
		for i, c := range rawCons {
			constraints[i] = &catalog.Constraint{Name: c.Name, Definition: c.Definition}
		}

		obj := catalog.NewTable(asString(row["identity"]), schema, asString(row["name"]), columns, constraints)
		objects[obj.Identity()] = obj
	}
	return nil
}

func (ins *Inspector) loadViews(ctx context.Context, cursor Cursor, patterns []string, objects map[string]catalog.Object) error {
	rows, err := cursor.Query(ctx, ins.Queries.View)
	if err != nil {
		return fmt.Errorf("inspect: querying views: %w", err)
	}
	for _, row := range rows {
		schema := asString(row["schema"])
		if !schemamatch.Match(schema, patterns) {
			continue
		}
		definition := sqlsplit.Normalize(asString(row["definition"]))
		obj := catalog.NewView(asString(row["identity"]), schema, asString(row["name"]), definition)
		objects[obj.Identity()] = obj
	}
	return nil
}

func (ins *Inspector) loadIndexes(ctx context.Context, cursor Cursor, patterns []string, objects map[string]catalog.Object) error {
	rows, err := cursor.Query(ctx, ins.Queries.Index)
	if err != nil {
		return fmt.Errorf("inspect: querying indexes: %w", err)
	}
	for _, row := range rows {
		schema := asString(row["schema"])
		if !schemamatch.Match(schema, patterns) {
			continue
		}
		obj := catalog.NewIndex(
			asString(row["identity"]), schema, asString(row["name"]),
			asString(row["definition"]), asBool(row["is_unique"]), asBool(row["is_pk"]),
		)
		objects[obj.Identity()] = obj
	}
	return nil
}

func (ins *Inspector) loadSequences(ctx context.Context, cursor Cursor, patterns []string, objects map[string]catalog.Object) error {
	rows, err := cursor.Query(ctx, ins.Queries.Sequence)
	if err != nil {
		return fmt.Errorf("inspect: querying sequences: %w", err)
	}
	for _, row := range rows {
		schema := asString(row["schema"])
		if !schemamatch.Match(schema, patterns) {
			continue
		}
		obj := catalog.NewSequence(
			asString(row["identity"]), schema, asString(row["name"]),
			asString(row["data_type"]), asInt64(row["start_value"]), asInt64(row["increment"]),
			asInt64Ptr(row["min_value"]), asInt64Ptr(row["max_value"]), asBool(row["cycle"]),
			asString(row["owned_by_table"]), asString(row["owned_by_column"]),
		)
		objects[obj.Identity()] = obj
	}
	return nil
}

func (ins *Inspector) loadEnums(ctx context.Context, cursor Cursor, patterns []string, objects map[string]catalog.Object) error {
	rows, err := cursor.Query(ctx, ins.Queries.Enum)
	if err != nil {
		return fmt.Errorf("inspect: querying enums: %w", err)
	}
	for _, row := range rows {
		schema := asString(row["schema"])
		if !schemamatch.Match(schema, patterns) {
			continue
		}
		var elements []string
		if err := unmarshalJSONField(row["elements_json"], &elements); err != nil {
			return fmt.Errorf("inspect: decoding elements for %s: %w", asString(row["identity"]), err)
		}
		obj := catalog.NewEnum(asString(row["identity"]), schema, asString(row["name"]), elements)
		objects[obj.Identity()] = obj
	}
	return nil
}

func (ins *Inspector) loadFunctions(ctx context.Context, cursor Cursor, patterns []string, objects map[string]catalog.Object) error {
	rows, err := cursor.Query(ctx, ins.Queries.Function)
	if err != nil {
		return fmt.Errorf("inspect: querying functions: %w", err)
	}
	for _, row := range rows {
		schema := asString(row["schema"])
		if !schemamatch.Match(schema, patterns) {
			continue
		}
		definition := sqlsplit.Normalize(asString(row["definition"]))
		obj := catalog.NewFunction(asString(row["identity"]), schema, asString(row["name"]), definition)
		objects[obj.Identity()] = obj
	}
	return nil
}

func (ins *Inspector) loadTriggers(ctx context.Context, cursor Cursor, patterns []string, objects map[string]catalog.Object) error {
	rows, err := cursor.Query(ctx, ins.Queries.Trigger)
	if err != nil {
		return fmt.Errorf("inspect: querying triggers: %w", err)
	}
	for _, row := range rows {
		schema := asString(row["schema"])
		if !schemamatch.Match(schema, patterns) {
			continue
		}
		obj := catalog.NewTrigger(
			asString(row["identity"]), schema, asString(row["name"]),
			asString(row["table_name"]), asString(row["definition"]),
		)
		objects[obj.Identity()] = obj
	}
	return nil
}

// loadDependencies queries the dependency edges and keeps only the ones
// whose endpoints both survived schema filtering - an edge into a
// filtered-out object would dangle, and graph.NewInspection already drops
// edges referencing unknown nodes, but filtering here avoids a wasted
// query-result walk for large catalogs.
func (ins *Inspector) loadDependencies(ctx context.Context, cursor Cursor, objects map[string]catalog.Object) ([]graph.Edge, error) {
	rows, err := cursor.Query(ctx, ins.Queries.Dependency)
	if err != nil {
		return nil, fmt.Errorf("inspect: querying dependencies: %w", err)
	}
	edges := make([]graph.Edge, 0, len(rows))
	for _, row := range rows {
		dependent := asString(row["identity"])
		prerequisite := asString(row["dependency_identity"])
		if dependent == "" || prerequisite == "" || dependent == prerequisite {
			continue
		}
		if _, ok := objects[dependent]; !ok {
			continue
		}
		if _, ok := objects[prerequisite]; !ok {
			continue
		}
		edges = append(edges, graph.Edge{Prerequisite: prerequisite, Dependent: dependent})
	}
	return edges, nil
}

func unmarshalJSONField(v any, target any) error {
	switch b := v.(type) {
	case nil:
		return nil
	case []byte:
		if len(b) == 0 {
			return nil
		}
		return json.Unmarshal(b, target)
	case string:
		if b == "" {
			return nil
		}
		return json.Unmarshal([]byte(b), target)
	default:
		return fmt.Errorf("unexpected json field type %T", v)
	}
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int32:
		return int64(t)
	case int:
		return int64(t)
	case float64:
		return int64(t)
	default:
		return 0
	}
}

func asInt64Ptr(v any) *int64 {
	if v == nil {
		return nil
	}
	n := asInt64(v)
	return &n
}
