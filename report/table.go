package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/spantree/mst"
)

// TableReporter renders the selected edges as an aligned table with a total footer.
// Weights are printed with thousands separators.
type TableReporter struct {
	W io.Writer
}

// Report implements Reporter.
func (r *TableReporter) Report(res *mst.Result) error {
	if res == nil {
		return ErrNilResult
	}

	table := tablewriter.NewWriter(r.W)
	table.SetHeader([]string{"#", "From", "To", "Weight"})
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})
	for i, e := range res.Edges {
		table.Append([]string{strconv.Itoa(i + 1), e.From, e.To, humanize.Comma(e.Weight)})
	}
	table.SetFooter([]string{"", "", "Total", humanize.Comma(res.Total)})
	table.Render()

	if res.Forest() {
		_, err := fmt.Fprintf(r.W, "graph is disconnected: %d trees\n", res.Components)
		return err
	}

	return nil
}
