// Package mst defines configuration options and sentinel errors for
// minimum-spanning-tree computation via Kruskal and Prim.
package mst

import (
	"errors"

	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/graph"
)

// Sentinel errors for MST computation.
var (
	// ErrInvalidGraph indicates a nil or directed graph. Spanning trees
	// are defined on undirected graphs only.
	ErrInvalidGraph = errors.New("mst: MST requires an undirected graph")

	// ErrEmptyRoot indicates that no start vertex was specified for Prim.
	ErrEmptyRoot = errors.New("mst: empty root vertex")

	// ErrDisconnected indicates that no spanning tree covering all
	// vertices exists.
	ErrDisconnected = errors.New("mst: graph is disconnected")
)

// MethodKruskal selects Kruskal's algorithm (sort all edges, union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root via min-heap).
const MethodPrim = "prim"

// Options selects which MST algorithm Compute runs, and for Prim,
// which starting vertex to grow from.
type Options struct {
	// Method is MethodKruskal or MethodPrim.
	Method string

	// Root is the starting vertex for Prim. Ignored by Kruskal.
	Root string
}

// Option configures Options.
type Option func(*Options)

// WithMethod sets the algorithm to run.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the starting vertex for Prim.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// DefaultOptions returns Options set to Kruskal with no root.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute dispatches to Kruskal or Prim based on the options and
// normalizes both results to an edge list with its total weight.
// For Prim with an empty root, the smallest vertex ID is used.
func Compute(g graph.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		root := o.Root
		if root == "" && g != nil && g.VertexCount() > 0 {
			root = g.Vertices()[0]
		}
		tree, total, err := Prim(g, root)
		if err != nil {
			return nil, 0, err
		}

		return tree.Edges(), total, nil
	default:
		return nil, 0, ErrInvalidGraph
	}
}
