// Package graph provides the directed dependency graph used to order
// and cycle-check component registry dependencies.
package graph

import "sort"

// Graph is a directed graph over string node names. The zero value is
// not usable; call New.
type Graph struct {
	nodes map[string]struct{}
	edges map[string][]string
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		edges: make(map[string][]string),
	}
}

// AddNode registers a node. Adding the same node twice is a no-op.
func (g *Graph) AddNode(name string) {
	g.nodes[name] = struct{}{}
}

// AddEdge records a dependency from one node to another. Both
// endpoints are registered implicitly. Duplicate edges collapse.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	for _, existing := range g.edges[from] {
		if existing == to {
			return
		}
	}
	g.edges[from] = append(g.edges[from], to)
}

// HasNode reports whether name was registered.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Nodes returns all node names in sorted order.
func (g *Graph) Nodes() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Edges returns the direct dependencies of a node in sorted order.
func (g *Graph) Edges(from string) []string {
	out := make([]string, len(g.edges[from]))
	copy(out, g.edges[from])
	sort.Strings(out)
	return out
}

// Cycles finds every dependency cycle in the graph. Each cycle is
// returned as the node sequence along the cycle, starting and ending
// at the same node. Only edges back to a node still on the active
// DFS path count as cycles; revisiting a finished node does not.
func (g *Graph) Cycles() [][]string {
	const (
		white = 0 // unvisited
		gray  = 1 // on the current DFS path
		black = 2 // fully explored
	)

	state := make(map[string]int, len(g.nodes))
	var path []string
	var cycles [][]string

	var visit func(node string)
	visit = func(node string) {
		state[node] = gray
		path = append(path, node)

		for _, next := range g.Edges(node) {
			switch state[next] {
			case white:
				visit(next)
			case gray:
				// Found a back edge. Slice the cycle out of the path.
				start := 0
				for i, n := range path {
					if n == next {
						start = i
						break
					}
				}
				cycle := make([]string, 0, len(path)-start+1)
				cycle = append(cycle, path[start:]...)
				cycle = append(cycle, next)
				cycles = append(cycles, cycle)
			}
		}

		path = path[:len(path)-1]
		state[node] = black
	}

	for _, node := range g.Nodes() {
		if state[node] == white {
			visit(node)
		}
	}
	return cycles
}

// TopoSort returns the nodes in dependency order, dependencies before
// dependents. The second result is false when the graph has a cycle.
func (g *Graph) TopoSort() ([]string, bool) {
	indegree := make(map[string]int, len(g.nodes))
	for name := range g.nodes {
		indegree[name] = 0
	}
	for _, targets := range g.edges {
		for _, to := range targets {
			indegree[to]++
		}
	}

	var queue []string
	for _, name := range g.Nodes() {
		if indegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	var order []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)
		for _, to := range g.Edges(node) {
			indegree[to]--
			if indegree[to] == 0 {
				queue = append(queue, to)
			}
		}
	}

	if len(order) != len(g.nodes) {
		return nil, false
	}

	// Edges point dependent -> dependency, so reverse for install order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, true
}
