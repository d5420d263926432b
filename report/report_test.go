package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/mst"
	"github.com/katalvlaran/spantree/report"
)

func triangle(t *testing.T) *mst.Result {
	t.Helper()
	g, err := core.FromEdgeList(
		[]string{"A", "B", "C"},
		[]core.EdgeSpec{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "C", Weight: 2},
			{From: "A", To: "C", Weight: 3},
		},
	)
	require.NoError(t, err)
	res, err := mst.Kruskal(g)
	require.NoError(t, err)

	return res
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&report.TextReporter{W: &buf}).Report(triangle(t)))

	want := "Minimum Spanning Tree Path:\n" +
		"A -- B : 1\n" +
		"B -- C : 2\n" +
		"Total distance of the minimum spanning tree: 3\n"
	assert.Equal(t, want, buf.String())
}

func TestTextReporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&report.TextReporter{W: &buf}).Report(&mst.Result{}))
	assert.Equal(t, "Minimum Spanning Tree Path:\nTotal distance of the minimum spanning tree: 0\n", buf.String())
}

func TestTableReporter(t *testing.T) {
	res := &mst.Result{
		Vertices:   []string{"A", "B", "C", "D"},
		Edges:      []core.Edge{{From: "A", To: "B", Weight: 1500}, {From: "C", To: "D", Weight: 2}},
		Total:      1502,
		Components: 2,
	}

	var buf bytes.Buffer
	require.NoError(t, (&report.TableReporter{W: &buf}).Report(res))

	out := buf.String()
	assert.Contains(t, out, "From")
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "1,502")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "graph is disconnected: 2 trees")
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&report.JSONReporter{W: &buf}).Report(triangle(t)))

	var got report.ResultView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, int64(3), got.Total)
	assert.Equal(t, []report.EdgeView{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 2}}, got.Edges)
	assert.Equal(t, 1, got.Components)
}

func TestYAMLReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&report.YAMLReporter{W: &buf}).Report(triangle(t)))

	var got report.ResultView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"A", "B", "C"}, got.Vertices)
	assert.Len(t, got.Edges, 2)
	assert.Equal(t, int64(3), got.Total)
}

func TestNew(t *testing.T) {
	for _, f := range report.Formats {
		r, err := report.New(f, &bytes.Buffer{})
		require.NoError(t, err, f)
		assert.NotNil(t, r)
	}

	_, err := report.New("xml", &bytes.Buffer{})
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestNilResult(t *testing.T) {
	for _, f := range report.Formats {
		r, err := report.New(f, &bytes.Buffer{})
		require.NoError(t, err)
		assert.ErrorIs(t, r.Report(nil), report.ErrNilResult, f)
	}
}

func TestMulti(t *testing.T) {
	var calls []string
	boom := errors.New("boom")

	r := report.Multi(
		report.ReporterFunc(func(*mst.Result) error { calls = append(calls, "first"); return nil }),
		report.ReporterFunc(func(*mst.Result) error { calls = append(calls, "second"); return boom }),
		report.ReporterFunc(func(*mst.Result) error { calls = append(calls, "third"); return nil }),
	)

	assert.ErrorIs(t, r.Report(&mst.Result{}), boom)
	assert.Equal(t, []string{"first", "second"}, calls)
}
