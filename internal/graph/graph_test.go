package graph

import (
	"reflect"
	"testing"
)

func buildLinear(t *testing.T) *Graph {
	t.Helper()
	g := New()
	for _, n := range []string{"a", "b", "c"} {
		g.AddNode(n)
	}
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	return g
}

func TestTopologicalOrder_Linear(t *testing.T) {
	g := buildLinear(t)
	if err := g.VerifyAcyclic(); err != nil {
		t.Fatalf("VerifyAcyclic() = %v; want nil", err)
	}
	got := g.IterateForward()
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IterateForward() = %v; want %v", got, want)
	}
}

func TestTopologicalOrder_TieBreaksAscending(t *testing.T) {
	g := New()
	for _, n := range []string{"z", "y", "x"} {
		g.AddNode(n)
	}
	got := g.IterateForward()
	want := []string{"x", "y", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IterateForward() = %v; want %v (independent nodes sort ascending)", got, want)
	}
}

func TestVerifyAcyclic_DetectsCycle(t *testing.T) {
	g := New()
	g.AddNode("a")
	g.AddNode("b")
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	if err := g.VerifyAcyclic(); err == nil {
		t.Error("VerifyAcyclic() = nil; want ErrCycle")
	}
}

func TestIterateReverse_IsExactReverse(t *testing.T) {
	g := buildLinear(t)
	forward := g.IterateForward()
	reverse := g.IterateReverse()
	for i, id := range forward {
		if reverse[len(reverse)-1-i] != id {
			t.Fatalf("IterateReverse() = %v; want exact reverse of %v", reverse, forward)
		}
	}
}

func TestAncestorsAndDescendants(t *testing.T) {
	g := buildLinear(t)

	ancestorsOfC := g.Ancestors("c")
	if !reflect.DeepEqual(ancestorsOfC, []string{"a", "b"}) {
		t.Errorf("Ancestors(c) = %v; want [a b]", ancestorsOfC)
	}

	descendantsOfA := g.Descendants("a")
	if !reflect.DeepEqual(descendantsOfA, []string{"b", "c"}) {
		t.Errorf("Descendants(a) = %v; want [b c]", descendantsOfA)
	}

	if got := g.Ancestors("a"); len(got) != 0 {
		t.Errorf("Ancestors(a) = %v; want empty", got)
	}
	if got := g.Descendants("c"); len(got) != 0 {
		t.Errorf("Descendants(c) = %v; want empty", got)
	}
}

func TestAddEdge_InvalidatesCache(t *testing.T) {
	g := New()
	g.AddNode("a")
	g.AddNode("b")
	_ = g.IterateForward()

	g.AddEdge("b", "a")
	got := g.IterateForward()
	want := []string{"b", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IterateForward() after AddEdge = %v; want %v", got, want)
	}
}
