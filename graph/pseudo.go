package graph

import (
	"fmt"

	"github.com/kindgraph/kindgraph/core"
)

// Pseudograph is a Multigraph that also permits self-loops.
//
// Degree semantics are asymmetric on purpose: Degree counts unique neighbors
// (a looped vertex neighbors itself once), while TotalDegree applies the
// classical convention where every self-loop contributes two.
type Pseudograph struct {
	Multigraph
}

// NewPseudo constructs an empty Pseudograph.
func NewPseudo(opts ...Option) (*Pseudograph, error) {
	c := buildConfig(opts)
	if c.repSet && c.rep != core.RepMultiList {
		return nil, fmt.Errorf("%w: pseudograph requires %q", ErrBadRepresentation, core.RepMultiList)
	}
	m, err := NewMulti(WithDirected(c.directed))
	if err != nil {
		return nil, err
	}
	m.observers = c.observers

	return &Pseudograph{Multigraph: *m}, nil
}

// Kind reports core.KindPseudo.
func (g *Pseudograph) Kind() core.Kind { return core.KindPseudo }

// AddEdge connects u and v; self-loops and parallels are both legal here.
func (g *Pseudograph) AddEdge(u, v string, weight float64, opts ...AddOption) error {
	e, err := core.NewEdge(u, v, weight, g.directed, buildAddConfig(opts).attrs)
	if err != nil {
		return err
	}

	return g.addEdge(e)
}

// HasSelfLoop reports whether the vertex carries at least one self-loop.
func (g *Pseudograph) HasSelfLoop(id string) bool { return g.store().Multiplicity(id, id) > 0 }

// SelfLoopCount returns the number of self-loops on the vertex. O(1).
func (g *Pseudograph) SelfLoopCount(id string) int { return g.store().Multiplicity(id, id) }

// CountSelfLoops returns the total number of self-loops in the graph.
func (g *Pseudograph) CountSelfLoops() int {
	total := 0
	for _, id := range g.Vertices() {
		total += g.SelfLoopCount(id)
	}

	return total
}

// RemoveAllSelfLoops strips every self-loop and returns how many were removed.
// Each affected vertex emits one EdgeRemoved event for its loop bundle.
func (g *Pseudograph) RemoveAllSelfLoops() int {
	removed := 0
	for _, id := range g.Vertices() {
		n := g.SelfLoopCount(id)
		if n == 0 {
			continue
		}
		if err := g.RemoveEdge(id, id); err != nil {
			continue
		}
		removed += n
	}

	return removed
}

// TotalDegree returns the classical degree: unique non-loop neighbors plus
// two per self-loop. Compare Degree, which counts a looped vertex as its own
// neighbor exactly once.
func (g *Pseudograph) TotalDegree(id string) (int, error) {
	nb, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}
	deg := 0
	for _, n := range nb {
		if n != id {
			deg++
		}
	}

	return deg + 2*g.SelfLoopCount(id), nil
}
