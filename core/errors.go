package core

import "errors"

// Sentinel errors for entity validation and storage operations.
var (
	// ErrEmptyVertexID indicates an empty or whitespace-only vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates an edge between the pair already exists in a
	// store that forbids parallel edges.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrBadWeight indicates a negative or NaN weight.
	ErrBadWeight = errors.New("core: weight must be non-negative and finite")

	// ErrBadArity indicates a hyperedge over fewer than two distinct vertices.
	ErrBadArity = errors.New("core: hyperedge arity too small")

	// ErrHyperedgeNotFound indicates an operation referenced a non-existent hyperedge.
	ErrHyperedgeNotFound = errors.New("core: hyperedge not found")

	// ErrUnknownKind indicates an unrecognized graph kind name.
	ErrUnknownKind = errors.New("core: unknown graph kind")

	// ErrUnknownRepresentation indicates an unrecognized representation name.
	ErrUnknownRepresentation = errors.New("core: unknown representation")
)
