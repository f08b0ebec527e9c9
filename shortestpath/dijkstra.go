// Package shortestpath implements the weighted shortest-path algorithms:
// Dijkstra (single source, non-negative weights), BellmanFord (single
// source, negative weights tolerated, negative-cycle aware), and
// FloydWarshall (all pairs).
//
// Dijkstra processes vertices in order of increasing tentative distance
// using a min-heap with the lazy decrease-key pattern: improvements push
// duplicate heap entries, and stale entries are skipped when popped.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) for the distance map and the heap under lazy
//     decrease-key.
package shortestpath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/kindgraph/kindgraph/graph"
)

// Dijkstra computes shortest distances from source to every reachable
// vertex of g. Unreachable vertices map to math.Inf(1).
//
// The non-negative weight precondition is enforced lazily: the run fails
// with ErrNegativeWeight at the first relaxation that sees a negative
// edge, so no upfront edge scan is paid.
//
// The predecessor map is nil unless WithReturnPath or WithTarget was
// passed. With a target, the search stops as soon as the target's
// distance is finalized. The input graph is never mutated.
func Dijkstra(g graph.Graph, source string, opts ...Option) (map[string]float64, map[string]string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrSourceNotFound
	}
	if o.Target != "" && !g.HasVertex(o.Target) {
		return nil, nil, ErrTargetNotFound
	}

	r := newRunner(g, source, o)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       graph.Graph
	opts    Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// newRunner initializes distances to +Inf, seeds the source at 0, and
// pushes it onto the heap.
func newRunner(g graph.Graph, source string, o Options) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		opts:    o,
		dist:    make(map[string]float64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if o.ReturnPath || o.Target != "" {
		r.prev = make(map[string]string, len(vertices))
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source})

	return r
}

// process pops the closest unvisited vertex and relaxes its edges until
// the heap drains or the target is finalized.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		if r.opts.Target != "" && item.id == r.opts.Target {
			return nil
		}
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of u.
func (r *runner) relax(u string) error {
	edges, err := r.g.EdgesFrom(u)
	if err != nil {
		return fmt.Errorf("shortestpath: edges from %q: %w", u, err)
	}
	for _, e := range edges {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, e.Source, e.Target, e.Weight)
		}
		v := e.Target
		newDist := r.dist[u] + e.Weight
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem pairs a vertex with its tentative distance inside the heap.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Stale
// duplicates are tolerated and skipped against the visited set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
