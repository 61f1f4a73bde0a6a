package depgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/engine/depgraph"
)

func TestGraph_SetDependency_Idempotent(t *testing.T) {
	t.Parallel()

	g := depgraph.New()
	g.SetDependency("/src/b.ts", "/src/a.ts")
	g.SetDependency("/src/b.ts", "/src/a.ts")

	assert.Equal(t, []string{"/src/a.ts"}, g.Dependents("/src/b.ts"))
	assert.Equal(t, []string{"/src/a.ts"}, g.AllDependents("/src/b.ts"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_SymmetricEdges(t *testing.T) {
	t.Parallel()

	g := depgraph.New()
	g.SetDependency("/src/b.ts", "/src/a.ts")

	assert.Equal(t, []string{"/src/b.ts"}, g.Dependencies("/src/a.ts"))
	assert.Equal(t, []string{"/src/a.ts"}, g.Dependents("/src/b.ts"))
}

func TestGraph_PathNormalization(t *testing.T) {
	t.Parallel()

	g := depgraph.New()
	g.SetDependency("/src/./lib/../b.ts", "/src/a.ts")

	assert.Equal(t, []string{"/src/a.ts"}, g.Dependents("/src/b.ts"))
}

func TestGraph_AllDependents_Transitive(t *testing.T) {
	t.Parallel()

	// a imports b, b imports c
	g := depgraph.New()
	g.SetDependency("/src/b.ts", "/src/a.ts")
	g.SetDependency("/src/c.ts", "/src/b.ts")

	got := g.AllDependents("/src/c.ts")
	assert.ElementsMatch(t, []string{"/src/a.ts", "/src/b.ts"}, got)
}

func TestGraph_AllDependents_Cycle(t *testing.T) {
	t.Parallel()

	// a imports b, b imports a
	g := depgraph.New()
	g.SetDependency("/src/b.ts", "/src/a.ts")
	g.SetDependency("/src/a.ts", "/src/b.ts")

	got := g.AllDependents("/src/a.ts")
	assert.ElementsMatch(t, []string{"/src/a.ts", "/src/b.ts"}, got)
}

func TestGraph_AllDependents_Unknown(t *testing.T) {
	t.Parallel()

	g := depgraph.New()
	assert.Empty(t, g.AllDependents("/src/unknown.ts"))
}

func TestGraph_EdgesRoundTrip(t *testing.T) {
	t.Parallel()

	g := depgraph.New()
	g.SetDependency("/src/b.ts", "/src/a.ts")
	g.SetDependency("/src/c.ts", "/src/b.ts")

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.ElementsMatch(t, []domain.Edge{
		{Dependency: "/src/b.ts", Dependent: "/src/a.ts"},
		{Dependency: "/src/c.ts", Dependent: "/src/b.ts"},
	}, edges)

	restored := depgraph.New()
	restored.Restore(edges)
	assert.ElementsMatch(t, []string{"/src/a.ts", "/src/b.ts"}, restored.AllDependents("/src/c.ts"))
}

func TestGraph_Reset(t *testing.T) {
	t.Parallel()

	g := depgraph.New()
	g.SetDependency("/src/b.ts", "/src/a.ts")
	g.Reset()

	assert.Empty(t, g.Dependents("/src/b.ts"))
	assert.Zero(t, g.EdgeCount())
}
