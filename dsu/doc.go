// Package dsu implements an index-based disjoint-set (union-find) forest.
//
// A DisjointSet over n elements starts as n singleton sets {0}, {1}, …, {n-1}.
// Union merges two sets by rank; Find walks parent pointers up to the root.
//
// Policy:
//
//   - Find performs NO path compression: it is a read-only ancestor walk.
//     Tree height stays bounded by union-by-rank (⌊log₂ n⌋), so the walk is
//     O(log n) per call.
//   - Union-by-rank tie-break: lower rank goes under higher rank; on equal
//     ranks the second root goes under the first and the first root's rank
//     grows by one.
//   - Out-of-range indices are reported as ErrIndexOutOfRange; state is
//     never touched on error.
//
// A DisjointSet is owned by a single computation and is not safe for
// concurrent use.
package dsu
