// Package graph implements weighted graph storage over a fixed node set.
//
// A graph is created with a node count N that never changes afterwards.
// Nodes are addressed by index in [0, N) and carry a weight; arcs are
// ordered (from, to) pairs with their own weight. Both weights share the
// same numeric type, constrained by [Weight].
//
// # Backends
//
// Two storage backends implement the same operation set behind [Graph]:
//
//   - adjacency list ([New]): per-node arc slices. O(degree) lookups,
//     memory proportional to the arc count. The right choice for sparse
//     graphs.
//   - adjacency matrix ([NewDense]): a row-major N×N weight table with a
//     presence bit per cell. O(1) lookups, O(N) neighbor scans, O(N²)
//     memory regardless of arc count. The right choice for dense graphs.
//
// The backend is fixed at construction; every operation after that is
// backend-agnostic and produces identical results on either backend.
//
// # Directedness
//
// For a directed graph, (from, to) and (to, from) are independent arcs.
// For an undirected graph every insert and update writes both directions
// with the same weight, primary direction first. A self-loop (from == to)
// is stored as a single entry, so Neighbors yields it once.
//
// # Index bounds
//
// Node indices are never validated. Passing an index outside [0, N) is a
// caller bug and will panic on the underlying slice access. This is a
// deliberate restriction: the library trades bounds checking for
// simplicity, exactly like direct slice indexing.
//
// # Concurrency
//
// A Graph is not safe for concurrent use. The undirected mirror write is
// two separate backend writes, so unsynchronized concurrent writers can
// observe (and create) half-written pairs. Wrap the whole Graph in a
// mutex if shared across goroutines.
package graph
