// Package builder provides deterministic topology constructors for
// assembling test fixtures and demo graphs: paths, cycles, stars,
// wheels, complete graphs, and grids.
//
// Design contract:
//   - One orchestrator: Build(kind, gopts, cons...). Creates the graph,
//     then applies constructors in order.
//   - Determinism: the same kind, options, and constructor order
//     produce identical graphs.
//   - Constructors validate parameters early and return sentinel
//     errors; they never panic.
package builder

import (
	"errors"
	"fmt"

	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/graph"
)

// Sentinel errors for topology construction.
var (
	// ErrTooFewVertices indicates an n below the topology's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrNilConstructor indicates a nil Constructor passed to Build.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// Center is the fixed hub vertex ID used by Star and Wheel.
const Center = "center"

// Constructor applies one deterministic topology to a graph.
type Constructor func(g graph.Graph) error

// Build creates a graph of the given kind and applies all constructors
// in order. Any constructor error aborts immediately; no partial
// cleanup is attempted.
func Build(kind core.Kind, gopts []graph.Option, cons ...Constructor) (graph.Graph, error) {
	g, err := graph.New(kind, gopts...)
	if err != nil {
		return nil, err
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilConstructor, i)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}

	return g, nil
}

// Path builds the simple path P_n over v0..v(n-1), n ≥ 2.
func Path(n int) Constructor {
	return func(g graph.Graph) error {
		if n < 2 {
			return fmt.Errorf("%w: path needs n ≥ 2, got %d", ErrTooFewVertices, n)
		}
		if err := addRange(g, n); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := g.AddEdge(vertexID(i), vertexID(i+1), core.DefaultWeight); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds the cycle C_n over v0..v(n-1), n ≥ 3.
func Cycle(n int) Constructor {
	return func(g graph.Graph) error {
		if n < 3 {
			return fmt.Errorf("%w: cycle needs n ≥ 3, got %d", ErrTooFewVertices, n)
		}
		if err := addRange(g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := g.AddEdge(vertexID(i), vertexID((i+1)%n), core.DefaultWeight); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with hub Center and n-1 leaves, n ≥ 2.
func Star(n int) Constructor {
	return func(g graph.Graph) error {
		if n < 2 {
			return fmt.Errorf("%w: star needs n ≥ 2, got %d", ErrTooFewVertices, n)
		}
		if err := g.AddVertex(Center); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := g.AddVertex(vertexID(i)); err != nil {
				return err
			}
			if err := g.AddEdge(Center, vertexID(i), core.DefaultWeight); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds the wheel W_n: a cycle of n-1 rim vertices plus the hub
// Center joined to every rim vertex, n ≥ 4.
func Wheel(n int) Constructor {
	return func(g graph.Graph) error {
		if n < 4 {
			return fmt.Errorf("%w: wheel needs n ≥ 4, got %d", ErrTooFewVertices, n)
		}
		rim := n - 1
		if err := Cycle(rim)(g); err != nil {
			return err
		}
		if err := g.AddVertex(Center); err != nil {
			return err
		}
		for i := 0; i < rim; i++ {
			if err := g.AddEdge(Center, vertexID(i), core.DefaultWeight); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds the complete graph K_n over v0..v(n-1), n ≥ 1.
// On directed graphs both orientations of every pair are added.
func Complete(n int) Constructor {
	return func(g graph.Graph) error {
		if n < 1 {
			return fmt.Errorf("%w: complete needs n ≥ 1, got %d", ErrTooFewVertices, n)
		}
		if err := addRange(g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(vertexID(i), vertexID(j), core.DefaultWeight); err != nil {
					return err
				}
				if g.Directed() {
					if err := g.AddEdge(vertexID(j), vertexID(i), core.DefaultWeight); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood grid with IDs "r,c" in
// row-major order, rows ≥ 1 and cols ≥ 1.
func Grid(rows, cols int) Constructor {
	return func(g graph.Graph) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%w: grid needs rows ≥ 1 and cols ≥ 1, got %d×%d", ErrTooFewVertices, rows, cols)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(gridID(r, c)); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := g.AddEdge(gridID(r, c), gridID(r, c+1), core.DefaultWeight); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := g.AddEdge(gridID(r, c), gridID(r+1, c), core.DefaultWeight); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// addRange inserts vertices v0..v(n-1).
func addRange(g graph.Graph, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(vertexID(i)); err != nil {
			return err
		}
	}

	return nil
}

func vertexID(i int) string { return fmt.Sprintf("v%d", i) }

func gridID(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
