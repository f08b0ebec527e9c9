package graph

// EventOp identifies which mutation produced an Event.
type EventOp int

const (
	// VertexAdded fires when a vertex is inserted for the first time.
	// Re-adding an existing vertex is a no-op and emits nothing.
	VertexAdded EventOp = iota

	// VertexRemoved fires once per removed vertex. Edges dropped by the
	// cascade do not emit their own EdgeRemoved events.
	VertexRemoved

	// EdgeAdded fires when an edge is inserted.
	EdgeAdded

	// EdgeRemoved fires when an edge (or a whole parallel bundle) is removed.
	EdgeRemoved

	// HyperedgeAdded fires when a hyperedge is inserted.
	HyperedgeAdded

	// HyperedgeRemoved fires when a hyperedge is removed.
	HyperedgeRemoved

	// RepresentationChanged fires after an in-place storage conversion.
	RepresentationChanged
)

// String returns the operation name.
func (op EventOp) String() string {
	switch op {
	case VertexAdded:
		return "vertex_added"
	case VertexRemoved:
		return "vertex_removed"
	case EdgeAdded:
		return "edge_added"
	case EdgeRemoved:
		return "edge_removed"
	case HyperedgeAdded:
		return "hyperedge_added"
	case HyperedgeRemoved:
		return "hyperedge_removed"
	case RepresentationChanged:
		return "representation_changed"
	default:
		return "unknown"
	}
}

// Event describes one successful mutation.
// Source/Target are set for vertex and edge operations (Target empty for
// vertex ops); Hyperedge carries the hyperedge ID for hyperedge operations.
type Event struct {
	Op        EventOp
	Source    string
	Target    string
	Hyperedge string
}

// Observer receives mutation events. Observers run synchronously on the
// mutating goroutine and must not mutate the graph re-entrantly.
type Observer func(Event)

// observable is the embeddable observer registry shared by all kinds.
type observable struct {
	observers []Observer
}

func (o *observable) notify(ev Event) {
	for _, fn := range o.observers {
		fn(ev)
	}
}
