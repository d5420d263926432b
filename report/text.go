package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/spantree/mst"
)

// TextReporter prints the selected path one edge per line followed by the total:
//
//	Minimum Spanning Tree Path:
//	A -- B : 1
//	B -- C : 2
//	Total distance of the minimum spanning tree: 3
type TextReporter struct {
	W io.Writer
}

// Report implements Reporter.
func (r *TextReporter) Report(res *mst.Result) error {
	if res == nil {
		return ErrNilResult
	}
	if _, err := fmt.Fprintln(r.W, "Minimum Spanning Tree Path:"); err != nil {
		return err
	}
	for _, e := range res.Edges {
		if _, err := fmt.Fprintf(r.W, "%s -- %s : %d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.W, "Total distance of the minimum spanning tree: %d\n", res.Total)

	return err
}
