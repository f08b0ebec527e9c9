// Package kindgraph is an in-memory toolkit for building, converting, and
// analyzing graphs across four graph kinds — simple, multi, pseudo, and hyper —
// over interchangeable storage representations.
//
// 🚀 What is kindgraph?
//
//	A modular graph-theory engine that brings together:
//		• Core primitives: vertices, weighted edges, hyperedges, attribute maps
//		• Storage strategies: adjacency list (set & multi), adjacency matrix,
//		  edge list, and hypergraph incidence — swappable at runtime
//		• Graph kinds: SimpleGraph, Multigraph, Pseudograph, Hypergraph,
//		  each enforcing its own structural constraints
//		• Converters: representation conversion in place, kind conversion with
//		  min/max/sum/avg merge strategies for parallel edges
//		• Traversals: BFS, DFS, connected components, unweighted shortest path
//		• Shortest paths: Dijkstra, Bellman–Ford, Floyd–Warshall
//		• Minimum spanning trees: Kruskal, Prim
//
// ✨ Why choose kindgraph?
//
//   - Constraint-aware – each graph kind rejects exactly the structures it
//     forbids (self-loops, parallel edges) with typed sentinel errors
//   - Deterministic – vertex and neighbor iteration is always sorted, so
//     algorithm output is reproducible run to run
//   - Extensible – mutation observers (VertexAdded, EdgeRemoved…) for
//     custom bookkeeping
//
// Under the hood, everything is organized into focused packages:
//
//	core/         — Vertex, Edge, Hyperedge types, errors & the storage contract
//	storage/      — adjacency list, multi list, matrix, edge list, incidence
//	graph/        — the four graph kinds, factory, observers, conversion
//	convert/      — graph-kind converters with merge strategies
//	bfs/, dfs/    — traversal algorithms & connectivity helpers
//	shortestpath/ — Dijkstra, Bellman–Ford, Floyd–Warshall
//	mst/          — Kruskal, Prim
//	builder/      — deterministic topology constructors (paths, wheels, grids…)
//	cmd/kindgraph — CLI front end over TOML graph documents
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
//
// Dive into the package docs for full examples and the feature matrix.
//
//	go get github.com/kindgraph/kindgraph
package kindgraph
