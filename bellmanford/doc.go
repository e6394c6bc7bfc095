// Package bellmanford implements the Bellman–Ford single-source relaxation on
// dense cost matrices and surfaces the negative-weight cycles it finds.
//
// Overview:
//
//   - The input is an n×n matrix.Matrix where cost[u][v] is the weight of the
//     directed edge u→v. Every off-diagonal cell is an edge; the graph is complete.
//   - Distances start at +Inf except the source (0). Exactly n-1 relaxation
//     rounds are run, each scanning edges in fixed (u, v) row-major order.
//   - One extra scan follows. Any edge that can still be relaxed proves a
//     negative cycle; the cycle is rebuilt from the predecessor chain.
//
// When to use:
//
//   - Currency arbitrage: feed matrix.NegLog(rates) so that a product of rates
//     above one becomes a cost sum below zero.
//   - Any small dense graph where negative weights are legal and the question
//     is "does a negative loop exist, and where".
//
// Cycle reconstruction:
//
//	For a qualifying edge (u, v) the working list starts as [v, u]. The walk
//	follows prev[] backwards from u, appending each predecessor, and stops the
//	moment the next predecessor already sits in the list. That node is appended
//	once more, the list is cut at its first occurrence (dropping any tail that
//	leads into the loop) and reversed so it reads in edge direction.
//
// Multiplicity:
//
//   - By default one cycle is reported per qualifying edge, so the same loop
//     can appear more than once. WithDeduplicate() canonicalizes each cycle by
//     rotation and keeps only the first occurrence.
//
// Self edges:
//
//   - Diagonal cells are never treated as edges. A currency converted into
//     itself is not a conversion, and one-node "cycles" are never reported.
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix:        nil cost matrix.
//   - ErrNonSquare:        cost matrix is not n×n.
//   - ErrSourceOutOfRange: Source(i) outside [0, n).
//   - ErrNonFiniteCost:    NaN or ±Inf anywhere in the cost matrix.
//
// Complexity:
//
//   - Time:  O(n³) (n-1 rounds × n² edges), plus O(n) per reconstructed cycle.
//   - Space: O(n) for distance and predecessor vectors.
//
// Thread safety:
//
//   - Detect keeps all state local to the call. Concurrent calls are safe as
//     long as the cost matrix itself is not mutated concurrently.
package bellmanford
