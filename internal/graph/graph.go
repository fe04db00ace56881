// Package graph implements the object-dependency DAG (C3): a generic graph
// of identity strings plus the Inspection type that pairs the graph with
// the objects it describes.
//
// Edges run prerequisite -> dependent: the dependent cannot exist before
// the prerequisite, so creates traverse prerequisites first and drops
// traverse dependents first.
package graph

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrCycle is returned when the dependency graph built from an Inspection's
// edges is not acyclic. PostgreSQL's own dependency system rules this out
// in practice; the engine does not attempt cycle recovery.
var ErrCycle = fmt.Errorf("graph: dependency cycle detected")

// Graph is a directed acyclic graph over opaque identity strings.
type Graph struct {
	nodes   map[string]struct{}
	forward map[string][]string // prerequisite -> dependents
	reverse map[string][]string // dependent -> prerequisites

	mu    sync.RWMutex
	order []string // memoized topological order, ascending-identity tie-break
	sf    singleflight.Group
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes:   make(map[string]struct{}),
		forward: make(map[string][]string),
		reverse: make(map[string][]string),
	}
}

// AddNode registers an identity with no edges. Adding the same node twice
// is a no-op.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.invalidate()
}

// Contains reports whether id has been registered via AddNode.
func (g *Graph) Contains(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// AddEdge records that dependent cannot exist before prerequisite. An edge
// whose endpoints are not both registered nodes, or that points from a
// node to itself, is silently ignored.
func (g *Graph) AddEdge(prerequisite, dependent string) {
	if !g.Contains(prerequisite) || !g.Contains(dependent) {
		return
	}
	if prerequisite == dependent {
		return
	}
	g.forward[prerequisite] = append(g.forward[prerequisite], dependent)
	g.reverse[dependent] = append(g.reverse[dependent], prerequisite)
	g.invalidate()
}

func (g *Graph) invalidate() {
	g.mu.Lock()
	g.order = nil
	g.mu.Unlock()
}

// topologicalOrder computes (and memoizes) a deterministic topological
// order over every node: prerequisites before dependents, ties broken by
// ascending identity string (spec.md §5, "Determinism").
//
// Computation is gated behind a singleflight group so that concurrent
// first-time callers (Ancestors/Descendants/iteration can all trigger it)
// share one Kahn's-algorithm pass instead of racing to recompute it —
// spec.md §4.3 allows lazy precomputation "on first use" but says nothing
// about single-threaded access, so this is defensive rather than required.
func (g *Graph) topologicalOrder() ([]string, error) {
	g.mu.RLock()
	if g.order != nil {
		defer g.mu.RUnlock()
		return g.order, nil
	}
	g.mu.RUnlock()

	v, err, _ := g.sf.Do("order", func() (interface{}, error) {
		return g.computeTopologicalOrder()
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func (g *Graph) computeTopologicalOrder() ([]string, error) {
	g.mu.RLock()
	if g.order != nil {
		defer g.mu.RUnlock()
		return g.order, nil
	}
	g.mu.RUnlock()

	inDegree := make(map[string]int, len(g.nodes))
	for id := range g.nodes {
		inDegree[id] = len(g.reverse[id])
	}

	var ready []string
	for id, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	result := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		// pop smallest
		id := ready[0]
		ready = ready[1:]
		result = append(result, id)

		next := append([]string(nil), g.forward[id]...)
		sort.Strings(next)
		for _, d := range next {
			inDegree[d]--
			if inDegree[d] == 0 {
				ready = insertSorted(ready, d)
			}
		}
	}

	if len(result) != len(g.nodes) {
		return nil, ErrCycle
	}

	g.mu.Lock()
	g.order = result
	g.mu.Unlock()
	return result, nil
}

func insertSorted(sorted []string, v string) []string {
	i := sort.SearchStrings(sorted, v)
	sorted = append(sorted, "")
	copy(sorted[i+1:], sorted[i:])
	sorted[i] = v
	return sorted
}

// VerifyAcyclic forces computation of the topological order, surfacing
// ErrCycle if the graph is not a DAG. Implementations should call this
// once after construction (spec.md §9).
func (g *Graph) VerifyAcyclic() error {
	_, err := g.topologicalOrder()
	return err
}

// IterateForward yields every node in topological order (prerequisites
// before dependents). The caller must have already verified acyclicity;
// a cycle here returns nil silently since VerifyAcyclic is the documented
// place errors surface.
func (g *Graph) IterateForward() []string {
	order, err := g.topologicalOrder()
	if err != nil {
		return nil
	}
	return order
}

// IterateReverse yields every node in reverse topological order.
func (g *Graph) IterateReverse() []string {
	order := g.IterateForward()
	return reverseOf(order)
}

// Ancestors yields every strict prerequisite of id, ordered so closer
// prerequisites come last: this falls out of filtering the global forward
// topological order down to the ancestor set, since that order already
// places id's immediate prerequisite directly before id.
func (g *Graph) Ancestors(id string) []string {
	set := g.reachable(id, g.reverse)
	return g.filterForward(set)
}

// Descendants yields every strict dependent of id, ordered topologically
// so immediate dependents come first: again, filtering the global forward
// order to the descendant set gives exactly this, since topological order
// already places immediate dependents ahead of further descendants.
func (g *Graph) Descendants(id string) []string {
	set := g.reachable(id, g.forward)
	return g.filterForward(set)
}

func (g *Graph) filterForward(set map[string]struct{}) []string {
	var out []string
	for _, id := range g.IterateForward() {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// reachable does a BFS over adj starting at id (exclusive of id itself)
// and returns the visited set.
func (g *Graph) reachable(id string, adj map[string][]string) map[string]struct{} {
	visited := make(map[string]struct{})
	queue := append([]string(nil), adj[id]...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, ok := visited[cur]; ok {
			continue
		}
		visited[cur] = struct{}{}
		queue = append(queue, adj[cur]...)
	}
	return visited
}

func reverseOf(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
