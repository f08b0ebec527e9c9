// Package convert upgrades and downgrades graphs between kinds.
//
// Upgrades (ToMultigraph, ToPseudograph) are lossless replays. The downgrade
// ToSimple must decide what happens to structures a simple graph cannot hold:
// parallel edges collapse to one edge under a MergeStrategy, and self-loops
// are dropped (or reported, with WithFailOnLoops).
//
// Conversions never mutate their source; the old instance stays fully valid.
package convert

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/graph"
)

// Sentinel errors for kind conversion.
var (
	// ErrNilGraph is returned when the source graph is nil.
	ErrNilGraph = errors.New("convert: graph is nil")

	// ErrUnsupportedKind is returned when the source kind cannot convert
	// to the requested target.
	ErrUnsupportedKind = errors.New("convert: unsupported source kind")

	// ErrUnknownStrategy is returned for an unrecognized merge strategy name.
	ErrUnknownStrategy = errors.New("convert: unknown merge strategy")

	// ErrLoopsPresent is returned by ToSimple under WithFailOnLoops when the
	// source contains self-loops that a simple graph cannot represent.
	ErrLoopsPresent = errors.New("convert: source contains self-loops")
)

// MergeStrategy decides the weight of the single edge that replaces a bundle
// of parallel edges.
type MergeStrategy string

const (
	// MergeMin keeps the smallest parallel weight.
	MergeMin MergeStrategy = "min"

	// MergeMax keeps the largest parallel weight.
	MergeMax MergeStrategy = "max"

	// MergeSum adds the parallel weights together.
	MergeSum MergeStrategy = "sum"

	// MergeAvg takes the arithmetic mean of the parallel weights.
	MergeAvg MergeStrategy = "avg"
)

// ParseMergeStrategy maps a strategy name to its MergeStrategy.
func ParseMergeStrategy(s string) (MergeStrategy, error) {
	switch MergeStrategy(s) {
	case MergeMin, MergeMax, MergeSum, MergeAvg:
		return MergeStrategy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Options configures ToSimple.
type Options struct {
	// FailOnLoops turns silent self-loop dropping into ErrLoopsPresent.
	FailOnLoops bool
}

// Option configures conversion behavior.
type Option func(*Options)

// WithFailOnLoops makes ToSimple return ErrLoopsPresent instead of silently
// dropping self-loops from a pseudograph source.
func WithFailOnLoops() Option {
	return func(o *Options) { o.FailOnLoops = true }
}

// ToSimple collapses a multigraph or pseudograph into a simple graph.
// Parallel bundles merge into a single edge whose weight is decided by
// strategy; self-loops are dropped by default. A simple source is copied
// unchanged (the strategy is irrelevant then).
func ToSimple(src graph.Graph, strategy MergeStrategy, opts ...Option) (*graph.SimpleGraph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}
	if _, err := ParseMergeStrategy(string(strategy)); err != nil {
		return nil, err
	}
	switch src.Kind() {
	case core.KindSimple, core.KindMulti, core.KindPseudo:
	default:
		return nil, fmt.Errorf("%w: %q cannot collapse to simple", ErrUnsupportedKind, src.Kind())
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	out, err := graph.NewSimple(graph.WithDirected(src.Directed()))
	if err != nil {
		return nil, err
	}
	if err := replayVertices(src, out); err != nil {
		return nil, err
	}

	// The merged edge keeps the attrs of the first parallel in snapshot order.
	bundles := make(map[core.EdgeKey][]float64)
	attrs := make(map[core.EdgeKey]core.Attrs)
	for _, e := range src.Edges() {
		if e.SelfLoop() {
			if o.FailOnLoops {
				return nil, fmt.Errorf("%w: loop at %q", ErrLoopsPresent, e.Source)
			}
			continue
		}
		if _, seen := bundles[e.Key()]; !seen {
			attrs[e.Key()] = e.Attrs
		}
		bundles[e.Key()] = append(bundles[e.Key()], e.Weight)
	}

	keys := make([]core.EdgeKey, 0, len(bundles))
	for key := range bundles {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].U != keys[j].U {
			return keys[i].U < keys[j].U
		}

		return keys[i].V < keys[j].V
	})
	for _, key := range keys {
		if err := out.AddEdge(key.U, key.V, merge(strategy, bundles[key]), graph.WithAttrs(attrs[key])); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ToMultigraph replays a simple graph (or copies a multigraph) losslessly.
func ToMultigraph(src graph.Graph) (*graph.Multigraph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}
	switch src.Kind() {
	case core.KindSimple, core.KindMulti:
	default:
		return nil, fmt.Errorf("%w: %q cannot upgrade to multi", ErrUnsupportedKind, src.Kind())
	}
	out, err := graph.NewMulti(graph.WithDirected(src.Directed()))
	if err != nil {
		return nil, err
	}
	if err := replay(src, out); err != nil {
		return nil, err
	}

	return out, nil
}

// ToPseudograph replays a simple, multi, or pseudo graph losslessly.
// Every binary kind fits: a pseudograph accepts everything they hold.
func ToPseudograph(src graph.Graph) (*graph.Pseudograph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}
	switch src.Kind() {
	case core.KindSimple, core.KindMulti, core.KindPseudo:
	default:
		return nil, fmt.Errorf("%w: %q cannot upgrade to pseudo", ErrUnsupportedKind, src.Kind())
	}
	out, err := graph.NewPseudo(graph.WithDirected(src.Directed()))
	if err != nil {
		return nil, err
	}
	if err := replay(src, out); err != nil {
		return nil, err
	}

	return out, nil
}

// replay copies vertices then edges from src into dst, attribute maps included.
func replay(src, dst graph.Graph) error {
	if err := replayVertices(src, dst); err != nil {
		return err
	}
	for _, e := range src.Edges() {
		if err := dst.AddEdge(e.Source, e.Target, e.Weight, graph.WithAttrs(e.Attrs)); err != nil {
			return err
		}
	}

	return nil
}

// replayVertices copies every vertex from src into dst, attribute maps included.
func replayVertices(src, dst graph.Graph) error {
	for _, id := range src.Vertices() {
		v, err := src.Vertex(id)
		if err != nil {
			return err
		}
		if err := dst.AddVertex(id, graph.WithAttrs(v.Attrs)); err != nil {
			return err
		}
	}

	return nil
}

// merge folds a non-empty weight bundle under the strategy.
func merge(strategy MergeStrategy, weights []float64) float64 {
	out := weights[0]
	switch strategy {
	case MergeMin:
		for _, w := range weights[1:] {
			if w < out {
				out = w
			}
		}
	case MergeMax:
		for _, w := range weights[1:] {
			if w > out {
				out = w
			}
		}
	case MergeSum:
		for _, w := range weights[1:] {
			out += w
		}
	case MergeAvg:
		for _, w := range weights[1:] {
			out += w
		}
		out /= float64(len(weights))
	}

	return out
}
