// Package shortestpath defines shared error definitions and options
// for the weighted shortest-path algorithms.
package shortestpath

import "errors"

// Sentinel errors shared by Dijkstra, BellmanFord, and FloydWarshall.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("shortestpath: graph is nil")

	// ErrSourceNotFound indicates the source vertex ID is absent.
	ErrSourceNotFound = errors.New("shortestpath: source vertex not found")

	// ErrTargetNotFound indicates the WithTarget vertex ID is absent.
	ErrTargetNotFound = errors.New("shortestpath: target vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was relaxed.
	// Dijkstra checks lazily, at the first relaxation that sees one, so
	// runs that never touch a negative edge succeed.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight encountered")
)

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Options configures a Dijkstra run.
type Options struct {
	// Target, if non-empty, stops the search once this vertex is
	// finalized and enables the predecessor map.
	Target string

	// ReturnPath requests the predecessor map even without a target.
	ReturnPath bool
}

// DefaultOptions returns Options with no target and no predecessor map.
func DefaultOptions() Options { return Options{} }

// WithTarget stops the search once target is finalized. Implies the
// predecessor map, so the caller can reconstruct the path.
func WithTarget(target string) Option {
	return func(o *Options) { o.Target = target }
}

// WithReturnPath requests the predecessor map for all vertices.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// ReconstructPath rebuilds the source → target path from a predecessor
// map produced by Dijkstra. Returns nil when target was not reached.
func ReconstructPath(prev map[string]string, source, target string) []string {
	if source == target {
		return []string{source}
	}
	if _, ok := prev[target]; !ok {
		return nil
	}
	path := []string{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
