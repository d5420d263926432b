package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/core"
)

// pairs lists edges as "From-To" in insertion order.
func pairs(g *core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.From+"-"+e.To)
	}

	return out
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantV     int
		wantPairs []string
	}{
		{"Path(4)", builder.Path(4), 4, []string{"0-1", "1-2", "2-3"}},
		{"Cycle(3)", builder.Cycle(3), 3, []string{"0-1", "1-2", "2-0"}},
		{"Star(3)", builder.Star(3), 3, []string{"Center-0", "Center-1"}},
		{"Complete(3)", builder.Complete(3), 3, []string{"0-1", "0-2", "1-2"}},
		{"Complete(1)", builder.Complete(1), 1, nil},
		{"RandomSparse(3,1)", builder.RandomSparse(3, 1), 3, []string{"0-1", "0-2", "1-2"}},
		{"RandomSparse(4,0)", builder.RandomSparse(4, 0), 4, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantPairs, pairs(g))
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, .5), builder.ErrTooFewVertices},
		{"RandomSparse(3,-.1)", builder.RandomSparse(3, -.1), builder.ErrInvalidProbability},
		{"RandomSparse(3,1.1)", builder.RandomSparse(3, 1.1), builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(3, .5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "BuildGraph: ")
		})
	}
}

func TestBuildGraph_ComposesSharedVertices(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []string{"0-1", "1-2", "0-1", "1-2", "2-0"}, pairs(g))
}

func TestBuildGraph_CoreModeViolation(t *testing.T) {
	_, err := builder.BuildGraph([]core.GraphOption{core.WithoutMultiEdges()}, nil, builder.Path(3), builder.Path(3))
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	assert.Contains(t, err.Error(), "Path: AddEdge(0, 1")
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(-5, 20)},
			builder.RandomSparse(30, 0.2))
		require.NoError(t, err)

		return g
	}
	a, b := build(7), build(7)
	assert.Equal(t, a.Edges(), b.Edges())
	assert.NotEqual(t, a.Edges(), build(8).Edges())
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(-5))
		assert.LessOrEqual(t, e.Weight, int64(20))
	}
}

func TestOptions_IDSchemesAndWeights(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(-3)},
		builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	for _, e := range g.Edges() {
		assert.Equal(t, int64(-3), e.Weight)
	}

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Star(2))
	require.NoError(t, err)
	assert.Equal(t, []string{builder.CenterVertexID, "v0"}, g.Vertices())
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
}
