// Package dfs implements depth-first search over a graph.Graph,
// returning discovery order, depths, and parent links.
//
// Two engines are available. The iterative default runs on an explicit
// stack and pushes neighbors in reverse-sorted order, so siblings are
// discovered in ascending order. WithRecursive switches to plain
// recursion over the sorted neighbor list. Both cover the exact same
// vertex set; discovery order may differ between them when a vertex is
// reachable through several branches.
package dfs

import (
	"context"
	"fmt"

	"github.com/kindgraph/kindgraph/graph"
)

// frame pairs a candidate vertex with its discovery depth and parent.
type frame struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable DFS state.
type walker struct {
	graph   graph.Graph
	opts    Options
	ctx     context.Context
	visited map[string]bool
	res     *Result
}

// DFS performs depth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
// The input graph is never mutated.
func DFS(g graph.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	var err error
	if o.Recursive {
		err = w.recurse(startID, 0, "")
	} else {
		err = w.iterate(startID)
	}
	if err != nil {
		return nil, err
	}

	return w.res, nil
}

// iterate drives the explicit-stack engine. A vertex may sit on the
// stack several times; the first pop wins and later frames are skipped.
func (w *walker) iterate(startID string) error {
	stack := []frame{{id: startID}}
	for len(stack) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.visited[f.id] {
			continue
		}
		if err := w.discover(f); err != nil {
			return err
		}

		nextDepth := f.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		neighbors, err := w.graph.Neighbors(f.id)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %q: %w", f.id, err)
		}
		// Reverse push keeps pop order ascending.
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !w.visited[neighbors[i]] {
				stack = append(stack, frame{id: neighbors[i], depth: nextDepth, parent: f.id})
			}
		}
	}

	return nil
}

// recurse drives the recursive engine over sorted neighbors.
func (w *walker) recurse(id string, depth int, parent string) error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	if err := w.discover(frame{id: id, depth: depth, parent: parent}); err != nil {
		return err
	}
	nextDepth := depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		if err := w.recurse(nbr, nextDepth, id); err != nil {
			return err
		}
	}

	return nil
}

// discover marks the vertex visited, records it, and fires OnVisit.
func (w *walker) discover(f frame) error {
	w.visited[f.id] = true
	w.res.Order = append(w.res.Order, f.id)
	w.res.Depth[f.id] = f.depth
	if f.parent != "" {
		w.res.Parent[f.id] = f.parent
	}
	if err := w.opts.OnVisit(f.id, f.depth); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %q: %w", f.id, err)
	}

	return nil
}
