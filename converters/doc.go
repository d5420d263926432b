// Package converters provides adapters between core.Graph / mst.Result and
// gonum/graph (gonum.org/v1/gonum/graph), plus Graphviz DOT export built on
// gonum's graph/encoding/dot.
//
// Mapping:
//
//   - Vertex index i  → gonum node ID int64(i), DOT label = vertex name.
//   - Edge weight w   → gonum weight float64(w), DOT label = w.
//   - Self-loops      → dropped by ToGonum (gonum simple graphs reject them),
//     kept by InputDOT (multigraph).
//   - Parallel edges  → ToGonum keeps the lightest; InputDOT keeps all.
//
// DOT output uses numeric node IDs with a label attribute and a global
// `node [shape=circle]`, so a rendered picture shows names while the file
// stays valid for any vertex naming.
package converters
