package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spantree/core"
)

// ErrDecode wraps malformed input documents.
var ErrDecode = errors.New("input: malformed document")

// EdgeDoc is one weighted, undirected route between two named vertices.
type EdgeDoc struct {
	From   string `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Weight int64  `yaml:"weight" json:"weight"`
}

// Document is the serialisable form of an input graph.
type Document struct {
	Vertices []string  `yaml:"vertices" json:"vertices"`
	Edges    []EdgeDoc `yaml:"edges" json:"edges"`
}

// Decode reads one YAML or JSON document from r. An empty stream yields an
// empty Document.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}

		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &doc, nil
}

// LoadFile decodes the document stored at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read %s: %w", path, err)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Graph validates the document and builds a core graph from it.
// Every edge endpoint must be listed in Vertices; duplicates are rejected.
func (d *Document) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	specs := make([]core.EdgeSpec, len(d.Edges))
	for i, e := range d.Edges {
		specs[i] = core.EdgeSpec{From: e.From, To: e.To, Weight: e.Weight}
	}
	g, err := core.FromEdgeList(d.Vertices, specs, opts...)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	return g, nil
}

// FromGraph is the inverse of Graph: vertices in index order, edges in insertion order.
func FromGraph(g *core.Graph) *Document {
	edges := g.Edges()
	doc := &Document{Vertices: g.Vertices(), Edges: make([]EdgeDoc, len(edges))}
	for i, e := range edges {
		doc.Edges[i] = EdgeDoc{From: e.From, To: e.To, Weight: e.Weight}
	}

	return doc
}

// Encode writes d to w as YAML.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}

	return enc.Close()
}
