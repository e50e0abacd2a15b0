package services

import "fmt"

// Graph models derived fields as nodes over a shared state S. Inputs are
// plain names; derived nodes carry the upstream names they depend on and
// an evaluator that reads and writes S. After Finalize, a write to any set
// of inputs re-evaluates exactly the downstream closure, in topological
// order, so results depend only on final input values and recomputation is
// idempotent.
type Graph[S any] struct {
	nodes map[string]*graphNode[S]
	order []string // insertion order, used as the deterministic tie-break

	topo       []string            // derived nodes in evaluation order
	downstream map[string][]string // direct dependents per node
	finalized  bool
}

type graphNode[S any] struct {
	deps []string
	eval func(*S) // nil for inputs
}

// NewGraph returns an empty graph.
func NewGraph[S any]() *Graph[S] {
	return &Graph[S]{nodes: make(map[string]*graphNode[S])}
}

// Input declares raw input fields. Inputs have no evaluator; they exist so
// derived nodes can name them as dependencies.
func (g *Graph[S]) Input(names ...string) {
	for _, name := range names {
		g.add(name, nil, nil)
	}
}

// Derive declares a computed field with its upstream dependencies.
func (g *Graph[S]) Derive(name string, eval func(*S), deps ...string) {
	g.add(name, eval, deps)
}

func (g *Graph[S]) add(name string, eval func(*S), deps []string) {
	if _, dup := g.nodes[name]; dup {
		panic(fmt.Sprintf("graph: duplicate node %q", name))
	}
	g.nodes[name] = &graphNode[S]{deps: deps, eval: eval}
	g.order = append(g.order, name)
	g.finalized = false
}

// Finalize validates that every dependency exists and that the graph is
// acyclic, then fixes the topological evaluation order. It must be called
// before Recompute or RecomputeAll.
func (g *Graph[S]) Finalize() error {
	g.downstream = make(map[string][]string)
	for _, name := range g.order {
		for _, dep := range g.nodes[name].deps {
			if _, ok := g.nodes[dep]; !ok {
				return fmt.Errorf("graph: node %q depends on unknown node %q", name, dep)
			}
			g.downstream[dep] = append(g.downstream[dep], name)
		}
	}

	// Kahn's algorithm; ready nodes are drained in insertion order so the
	// evaluation order is deterministic.
	indegree := make(map[string]int, len(g.nodes))
	for _, name := range g.order {
		indegree[name] = len(g.nodes[name].deps)
	}

	g.topo = g.topo[:0]
	visited := 0
	done := make(map[string]bool, len(g.nodes))
	for visited < len(g.order) {
		progressed := false
		for _, name := range g.order {
			if done[name] || indegree[name] != 0 {
				continue
			}
			done[name] = true
			visited++
			progressed = true
			if g.nodes[name].eval != nil {
				g.topo = append(g.topo, name)
			}
			for _, dep := range g.downstream[name] {
				indegree[dep]--
			}
		}
		if !progressed {
			return fmt.Errorf("graph: dependency cycle among %d remaining nodes", len(g.order)-visited)
		}
	}

	g.finalized = true
	return nil
}

// MustFinalize is Finalize for statically wired graphs, where a failure is
// a programming error.
func (g *Graph[S]) MustFinalize() {
	if err := g.Finalize(); err != nil {
		panic(err)
	}
}

// RecomputeAll evaluates every derived node in dependency order.
func (g *Graph[S]) RecomputeAll(s *S) {
	g.ensureFinalized()
	for _, name := range g.topo {
		g.nodes[name].eval(s)
	}
}

// Recompute re-evaluates every derived node transitively reachable from
// the changed fields, in dependency order. Unknown names are ignored so
// callers can report optional fields unconditionally.
func (g *Graph[S]) Recompute(s *S, changed ...string) {
	g.ensureFinalized()

	dirty := make(map[string]bool)
	queue := make([]string, 0, len(changed))
	for _, name := range changed {
		if _, ok := g.nodes[name]; ok {
			queue = append(queue, name)
		}
	}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		for _, dep := range g.downstream[name] {
			if !dirty[dep] {
				dirty[dep] = true
				queue = append(queue, dep)
			}
		}
	}

	for _, name := range g.topo {
		if dirty[name] {
			g.nodes[name].eval(s)
		}
	}
}

func (g *Graph[S]) ensureFinalized() {
	if !g.finalized {
		panic("graph: Recompute before Finalize")
	}
}
