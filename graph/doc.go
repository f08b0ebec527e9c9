// Package graph implements the four graph kinds on top of the storage
// representations: SimpleGraph, Multigraph, Pseudograph, and Hypergraph.
//
// Each kind enforces its structural constraints at the mutation boundary:
//
//	SimpleGraph – no self-loops, no parallel edges
//	Multigraph  – parallel edges allowed, no self-loops
//	Pseudograph – parallel edges and self-loops allowed
//	Hypergraph  – hyperedges over arbitrary vertex sets, always undirected
//
// Construct graphs either through the kind-specific constructors (NewSimple,
// NewMulti, NewPseudo, NewHyper) or the name-driven factory New. All kinds
// satisfy the Graph interface that the algorithm packages consume.
//
// Mutations can be observed by registering callbacks at construction with
// WithObserver; each successful mutation emits exactly one Event.
//
// SimpleGraph additionally supports in-place representation conversion via
// ConvertRepresentation, replaying the graph into a different store without
// invalidating the instance.
package graph
