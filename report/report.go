// Package report holds the consumers of an mst.Result: plain text in the
// classic "A -- B : 1" layout, an aligned table, JSON and YAML.
//
// Every consumer implements Reporter and reads the Result and nothing else.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/spantree/mst"
)

// ErrUnknownFormat indicates New was asked for an unsupported output format.
var ErrUnknownFormat = errors.New("report: unknown format")

// ErrNilResult indicates a Reporter received a nil result.
var ErrNilResult = errors.New("report: result is nil")

// Output formats accepted by New.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists every format New understands, in help-text order.
var Formats = []string{FormatText, FormatTable, FormatJSON, FormatYAML}

// Reporter consumes a finished spanning-forest result.
type Reporter interface {
	Report(res *mst.Result) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(res *mst.Result) error

// Report calls f(res).
func (f ReporterFunc) Report(res *mst.Result) error { return f(res) }

// New returns the Reporter for format writing to w.
func New(format string, w io.Writer) (Reporter, error) {
	switch format {
	case FormatText, "":
		return &TextReporter{W: w}, nil
	case FormatTable:
		return &TableReporter{W: w}, nil
	case FormatJSON:
		return &JSONReporter{W: w, Indent: "  "}, nil
	case FormatYAML:
		return &YAMLReporter{W: w}, nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// Multi fans a result out to every reporter in order, stopping at the first error.
func Multi(reporters ...Reporter) Reporter {
	return ReporterFunc(func(res *mst.Result) error {
		for _, r := range reporters {
			if err := r.Report(res); err != nil {
				return err
			}
		}

		return nil
	})
}

// EdgeView is the serialised form of one selected edge.
type EdgeView struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight int64  `json:"weight" yaml:"weight"`
}

// ResultView is the serialised form of a result.
type ResultView struct {
	Vertices   []string   `json:"vertices" yaml:"vertices"`
	Edges      []EdgeView `json:"edges" yaml:"edges"`
	Total      int64      `json:"total" yaml:"total"`
	Components int        `json:"components" yaml:"components"`
}

// View converts res into its serialised form.
func View(res *mst.Result) ResultView {
	v := ResultView{
		Vertices:   append([]string{}, res.Vertices...),
		Edges:      make([]EdgeView, 0, len(res.Edges)),
		Total:      res.Total,
		Components: res.Components,
	}
	for _, e := range res.Edges {
		v.Edges = append(v.Edges, EdgeView{From: e.From, To: e.To, Weight: e.Weight})
	}

	return v
}
