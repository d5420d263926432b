package render_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/render"
)

// fakeRenderer records calls and writes its input verbatim.
type fakeRenderer struct {
	calls []string
	err   error
}

func (f *fakeRenderer) Ext() string { return "txt" }

func (f *fakeRenderer) Render(_ context.Context, dot []byte, outPath string) error {
	f.calls = append(f.calls, outPath)
	if f.err != nil {
		return f.err
	}

	return os.WriteFile(outPath, dot, 0o644)
}

func TestArtifacts_DOTOnly(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	paths, err := render.Artifacts{Dir: dir}.Write(context.Background(), "input_graph", []byte("graph {}"))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "input_graph.dot")}, paths)

	b, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "graph {}", string(b))
}

func TestArtifacts_WithRenderer(t *testing.T) {
	dir := t.TempDir()
	fr := &fakeRenderer{}
	paths, err := render.Artifacts{Dir: dir, Renderer: fr}.Write(context.Background(), "mst", []byte("graph X {}"))
	require.NoError(t, err)

	want := []string{filepath.Join(dir, "mst.dot"), filepath.Join(dir, "mst.txt")}
	assert.Equal(t, want, paths)
	assert.Equal(t, want[1:], fr.calls)
	assert.FileExists(t, want[1])
}

func TestArtifacts_RendererErrorKeepsDOT(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("boom")
	paths, err := render.Artifacts{Dir: dir, Renderer: &fakeRenderer{err: boom}}.Write(context.Background(), "mst", []byte("graph {}"))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{filepath.Join(dir, "mst.dot")}, paths)
	assert.FileExists(t, paths[0])
}

func TestArtifacts_InvalidName(t *testing.T) {
	for _, name := range []string{"", "a/b", `a\b`} {
		_, err := render.Artifacts{Dir: t.TempDir()}.Write(context.Background(), name, nil)
		assert.ErrorIs(t, err, render.ErrEmptyName, "name %q", name)
	}
}

func TestNewGraphviz_Defaults(t *testing.T) {
	g := render.NewGraphviz("", "")
	assert.Equal(t, render.DefaultBinary, g.Binary)
	assert.Equal(t, "png", g.Ext())

	g = render.NewGraphviz("/opt/dot", "svg")
	assert.Equal(t, "/opt/dot", g.Binary)
	assert.Equal(t, "svg", g.Ext())
}

func TestGraphviz_MissingBinary(t *testing.T) {
	g := render.NewGraphviz(filepath.Join(t.TempDir(), "no-such-dot"), "png")
	err := g.Render(context.Background(), []byte("graph {}"), filepath.Join(t.TempDir(), "out.png"))
	assert.ErrorIs(t, err, render.ErrRenderFailed)
}
