package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/graph"
)

// Document is the TOML representation of a graph. Example:
//
//	kind = "simple"
//	directed = true
//	representation = "adjacency_matrix"
//
//	[[vertices]]
//	id = "A"
//
//	[[edges]]
//	source = "A"
//	target = "B"
//	weight = 2.5
//
// Hypergraph documents use [[hyperedges]] blocks with a vertices array
// instead of [[edges]].
type Document struct {
	Kind           string         `toml:"kind"`
	Directed       bool           `toml:"directed"`
	Representation string         `toml:"representation"`
	Vertices       []VertexDoc    `toml:"vertices"`
	Edges          []EdgeDoc      `toml:"edges"`
	Hyperedges     []HyperedgeDoc `toml:"hyperedges"`
}

// VertexDoc declares one vertex.
type VertexDoc struct {
	ID string `toml:"id"`
}

// EdgeDoc declares one binary edge. A nil Weight means core.DefaultWeight.
type EdgeDoc struct {
	Source string   `toml:"source"`
	Target string   `toml:"target"`
	Weight *float64 `toml:"weight"`
}

// HyperedgeDoc declares one hyperedge over a vertex set.
type HyperedgeDoc struct {
	Vertices []string `toml:"vertices"`
	Weight   *float64 `toml:"weight"`
}

// LoadDocument reads and decodes a graph document from path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: read graph document: %w", err)
	}
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cli: decode graph document: %w", err)
	}

	return &doc, nil
}

// Build constructs the declared graph through the public construction
// and mutation surface.
func (d *Document) Build() (graph.Graph, error) {
	kind, err := core.ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}
	opts := []graph.Option{graph.WithDirected(d.Directed)}
	if d.Representation != "" {
		rep, err := core.ParseRepKind(d.Representation)
		if err != nil {
			return nil, err
		}
		opts = append(opts, graph.WithRepresentation(rep))
	}
	g, err := graph.New(kind, opts...)
	if err != nil {
		return nil, err
	}

	for _, v := range d.Vertices {
		if err := g.AddVertex(v.ID); err != nil {
			return nil, fmt.Errorf("cli: vertex %q: %w", v.ID, err)
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e.Source, e.Target, weightOf(e.Weight)); err != nil {
			return nil, fmt.Errorf("cli: edge %s-%s: %w", e.Source, e.Target, err)
		}
	}
	if len(d.Hyperedges) > 0 {
		hg, ok := g.(*graph.Hypergraph)
		if !ok {
			return nil, fmt.Errorf("cli: hyperedges require kind=%q, got %q", core.KindHyper, d.Kind)
		}
		for _, h := range d.Hyperedges {
			if _, err := hg.AddHyperedge(h.Vertices, weightOf(h.Weight), nil); err != nil {
				return nil, fmt.Errorf("cli: hyperedge %v: %w", h.Vertices, err)
			}
		}
	}

	return g, nil
}

func weightOf(w *float64) float64 {
	if w == nil {
		return core.DefaultWeight
	}

	return *w
}
