package graph

import (
	"reflect"
	"testing"
)

func TestAddEdge_Deduplicates(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")

	if got := g.Edges("a"); len(got) != 1 {
		t.Errorf("edges = %v, want single edge", got)
	}
	if !g.HasNode("b") {
		t.Error("edge target should be registered as a node")
	}
}

func TestCycles_None(t *testing.T) {
	g := New()
	g.AddEdge("card", "button")
	g.AddEdge("card", "badge")
	g.AddEdge("dialog", "button")

	if cycles := g.Cycles(); len(cycles) != 0 {
		t.Errorf("cycles = %v, want none", cycles)
	}
}

func TestCycles_SelfLoop(t *testing.T) {
	g := New()
	g.AddEdge("button", "button")

	cycles := g.Cycles()
	if len(cycles) != 1 {
		t.Fatalf("cycles = %v, want one", cycles)
	}
	if !reflect.DeepEqual(cycles[0], []string{"button", "button"}) {
		t.Errorf("cycle = %v", cycles[0])
	}
}

func TestCycles_Simple(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")

	cycles := g.Cycles()
	if len(cycles) != 1 {
		t.Fatalf("cycles = %v, want one", cycles)
	}
	cycle := cycles[0]
	if len(cycle) != 4 || cycle[0] != cycle[len(cycle)-1] {
		t.Errorf("cycle = %v, want closed walk of length 4", cycle)
	}
}

func TestCycles_DiamondIsNotACycle(t *testing.T) {
	// Two paths converging on the same dependency must not be
	// reported as a cycle. Only back edges to the active path count.
	g := New()
	g.AddEdge("page", "card")
	g.AddEdge("page", "dialog")
	g.AddEdge("card", "button")
	g.AddEdge("dialog", "button")

	if cycles := g.Cycles(); len(cycles) != 0 {
		t.Errorf("cycles = %v, diamond should be acyclic", cycles)
	}
}

func TestCycles_MultipleDisjoint(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")
	g.AddEdge("x", "y")
	g.AddEdge("y", "x")
	g.AddEdge("ok", "a")

	if cycles := g.Cycles(); len(cycles) != 2 {
		t.Errorf("got %d cycles, want 2: %v", len(cycles), cycles)
	}
}

func TestTopoSort(t *testing.T) {
	g := New()
	g.AddEdge("card", "button")
	g.AddEdge("dialog", "card")
	g.AddNode("badge")

	order, ok := g.TopoSort()
	if !ok {
		t.Fatal("TopoSort reported a cycle in an acyclic graph")
	}
	pos := make(map[string]int, len(order))
	for i, name := range order {
		pos[name] = i
	}
	if pos["button"] > pos["card"] || pos["card"] > pos["dialog"] {
		t.Errorf("order = %v, dependencies must come first", order)
	}
	if _, present := pos["badge"]; !present {
		t.Error("isolated node missing from order")
	}
}

func TestTopoSort_Cyclic(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	if _, ok := g.TopoSort(); ok {
		t.Error("TopoSort should fail on a cyclic graph")
	}
}
