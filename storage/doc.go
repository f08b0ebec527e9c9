// Package storage provides the concrete representation strategies behind the
// graph kinds: set-based adjacency list, multi adjacency list, dense adjacency
// matrix, flat edge list, and hypergraph incidence.
//
// The four binary-edge stores implement core.Representation and are
// interchangeable at runtime via graph.ConvertRepresentation. The incidence
// store speaks hyperedges and has its own surface.
//
// Shared guarantees:
//
//   - Validate-then-mutate: a failed operation leaves the store untouched.
//   - Deterministic snapshots: Vertices sorted by ID, Edges in a stable order,
//     Neighbors sorted; always fresh slices, never aliases.
//   - O(1) vertex and edge counts.
//
// Performance profiles differ by store and are documented per type; pick the
// store that matches the workload and convert later if it changes.
package storage
