// Package bfs provides breadth-first traversal and connected components over
// a core.Graph.
//
// Edges are undirected and weights are ignored: depth counts hops. BFS
// explores from one start vertex with optional hooks, depth limiting,
// neighbor filtering and cancellation; Components partitions every vertex
// into its connected component.
//
// Neighbor order follows edge insertion order, so traversals are deterministic.
//
// Complexity: BFS is O(V·E) on the edge-list core (Neighbors is O(E));
// Components builds an adjacency list once and runs in O(V + E).
package bfs
