// Package depgraph maintains the directed import graph between tracked files.
package depgraph

import (
	"sync"

	"go.trai.ch/strata/internal/core/domain"
)

// Graph records "dependent imports dependency" edges as they are discovered
// during module resolution. Edges are kept as symmetric duals: every forward
// edge has a matching reverse edge, so the graph is queryable from either
// end. Import cycles are legal.
//
// Edges are retained until the cache is cleaned; an importer that stops
// importing a file keeps its stale edge. That can over-invalidate but never
// under-invalidates.
type Graph struct {
	mu sync.RWMutex
	// dependencies[A] = files A imports (forward edges).
	dependencies map[domain.InternedString]map[domain.InternedString]struct{}
	// dependents[B] = files that import B (reverse edges).
	dependents map[domain.InternedString]map[domain.InternedString]struct{}
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		dependencies: make(map[domain.InternedString]map[domain.InternedString]struct{}),
		dependents:   make(map[domain.InternedString]map[domain.InternedString]struct{}),
	}
}

// SetDependency records that dependent imports dependency. Paths are
// normalized before insertion and duplicate edges are silently absorbed.
func (g *Graph) SetDependency(dependency, dependent string) {
	dep := domain.NewInternedString(domain.NormalizePath(dependency))
	by := domain.NewInternedString(domain.NormalizePath(dependent))

	g.mu.Lock()
	defer g.mu.Unlock()

	fwd, ok := g.dependencies[by]
	if !ok {
		fwd = make(map[domain.InternedString]struct{})
		g.dependencies[by] = fwd
	}
	fwd[dep] = struct{}{}

	rev, ok := g.dependents[dep]
	if !ok {
		rev = make(map[domain.InternedString]struct{})
		g.dependents[dep] = rev
	}
	rev[by] = struct{}{}
}

// Dependents returns the direct importers of path.
func (g *Graph) Dependents(path string) []string {
	key := domain.NewInternedString(domain.NormalizePath(path))

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.dependents[key]))
	for p := range g.dependents[key] {
		out = append(out, p.String())
	}
	return out
}

// Dependencies returns the direct imports of path.
func (g *Graph) Dependencies(path string) []string {
	key := domain.NewInternedString(domain.NormalizePath(path))

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.dependencies[key]))
	for p := range g.dependencies[key] {
		out = append(out, p.String())
	}
	return out
}

// AllDependents returns every file reachable from path over reverse edges,
// excluding path itself unless it participates in an import cycle. A visited
// set guards against infinite traversal on cycles.
func (g *Graph) AllDependents(path string) []string {
	start := domain.NewInternedString(domain.NormalizePath(path))

	g.mu.RLock()
	defer g.mu.RUnlock()

	visited := make(map[domain.InternedString]struct{})
	var out []string

	stack := []domain.InternedString{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for importer := range g.dependents[current] {
			if _, seen := visited[importer]; seen {
				continue
			}
			visited[importer] = struct{}{}
			out = append(out, importer.String())
			stack = append(stack, importer)
		}
	}
	return out
}

// Edges returns every recorded edge, for persistence.
func (g *Graph) Edges() []domain.Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var edges []domain.Edge
	for by, deps := range g.dependencies {
		for dep := range deps {
			edges = append(edges, domain.Edge{
				Dependency: dep.String(),
				Dependent:  by.String(),
			})
		}
	}
	return edges
}

// Restore re-adds previously persisted edges.
func (g *Graph) Restore(edges []domain.Edge) {
	for _, e := range edges {
		g.SetDependency(e.Dependency, e.Dependent)
	}
}

// Reset discards all edges.
func (g *Graph) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dependencies = make(map[domain.InternedString]map[domain.InternedString]struct{})
	g.dependents = make(map[domain.InternedString]map[domain.InternedString]struct{})
}

// EdgeCount returns the number of recorded edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, deps := range g.dependencies {
		n += len(deps)
	}
	return n
}
