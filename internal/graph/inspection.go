package graph

import (
	"fmt"

	"github.com/pgschema/pgdelta/internal/catalog"
)

// Edge is an ordered dependency pair as the inspector reports it: the
// dependent cannot exist before the prerequisite identified by
// Prerequisite.
type Edge struct {
	Prerequisite string
	Dependent    string
}

// Inspection is the closed world of one database at one point in time: a
// mapping identity -> object plus the dependency DAG over those
// identities. An Inspection owns its object map and graph exclusively;
// nothing is shared across Inspections.
type Inspection struct {
	objects map[string]catalog.Object
	g       *Graph

	// ServerVersion is the opaque server-version metadata C2 captures
	// for downstream kind handlers. Handlers may read it but must not
	// require it (spec.md §4.2).
	ServerVersion string
}

// NewInspection builds an Inspection from a flat object set and a raw edge
// list. Edges whose endpoints are not both present in objects are silently
// discarded (spec.md §3) since they arise from system objects the model
// does not cover. The resulting graph is verified acyclic; a cycle is a
// fatal error (spec.md §7).
func NewInspection(objects map[string]catalog.Object, edges []Edge, serverVersion string) (*Inspection, error) {
	g := New()
	for id := range objects {
		g.AddNode(id)
	}
	for _, e := range edges {
		if !g.Contains(e.Prerequisite) || !g.Contains(e.Dependent) {
			continue
		}
		g.AddEdge(e.Prerequisite, e.Dependent)
	}
	if err := g.VerifyAcyclic(); err != nil {
		return nil, fmt.Errorf("building inspection: %w", err)
	}

	cp := make(map[string]catalog.Object, len(objects))
	for k, v := range objects {
		cp[k] = v
	}

	return &Inspection{objects: cp, g: g, ServerVersion: serverVersion}, nil
}

// Contains reports whether id is present in this Inspection.
func (i *Inspection) Contains(id string) bool {
	_, ok := i.objects[id]
	return ok
}

// Get retrieves the object registered under id.
func (i *Inspection) Get(id string) (catalog.Object, bool) {
	obj, ok := i.objects[id]
	return obj, ok
}

// Len returns the number of objects in the Inspection.
func (i *Inspection) Len() int { return len(i.objects) }

func (i *Inspection) resolve(ids []string) []catalog.Object {
	out := make([]catalog.Object, 0, len(ids))
	for _, id := range ids {
		if obj, ok := i.objects[id]; ok {
			out = append(out, obj)
		}
	}
	return out
}

// IterateForward yields objects in topological order (prerequisites
// before dependents).
func (i *Inspection) IterateForward() []catalog.Object {
	return i.resolve(i.g.IterateForward())
}

// IterateReverse yields objects in reverse topological order.
func (i *Inspection) IterateReverse() []catalog.Object {
	return i.resolve(i.g.IterateReverse())
}

// Ancestors yields every strict prerequisite of id, closer prerequisites
// last.
func (i *Inspection) Ancestors(id string) []catalog.Object {
	return i.resolve(i.g.Ancestors(id))
}

// Descendants yields every strict dependent of id, immediate dependents
// first.
func (i *Inspection) Descendants(id string) []catalog.Object {
	return i.resolve(i.g.Descendants(id))
}
