package input_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/input"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoader_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	writeFile(t, path, "vertices: [A]\n")

	l, err := input.NewLoader(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, l.Document().Vertices)

	var seen []*input.Document
	l.OnChange(func(d *input.Document) { seen = append(seen, d) })
	var errs []error
	l.OnError(func(err error) { errs = append(errs, err) })

	writeFile(t, path, "vertices: [A, B]\n")
	doc, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, doc.Vertices)
	require.Len(t, seen, 1)
	assert.Same(t, doc, l.Document())

	writeFile(t, path, "vertices: [\n")
	_, err = l.Reload()
	assert.ErrorIs(t, err, input.ErrDecode)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"A", "B"}, l.Document().Vertices, "previous document stays current")
}

func TestLoader_CallbacksMayRegisterCallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	writeFile(t, path, "vertices: [A]\n")
	l, err := input.NewLoader(path)
	require.NoError(t, err)

	calls := 0
	l.OnChange(func(*input.Document) {
		calls++
		l.OnChange(func(*input.Document) { calls += 10 })
	})
	l.OnError(func(error) { l.OnError(func(error) {}) })

	_, err = l.Reload()
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "callbacks added during dispatch run from the next reload")
	_, err = l.Reload()
	require.NoError(t, err)
	assert.Equal(t, 12, calls)

	writeFile(t, path, "vertices: [\n")
	_, err = l.Reload()
	assert.ErrorIs(t, err, input.ErrDecode)
}

func TestNewLoader_Missing(t *testing.T) {
	_, err := input.NewLoader(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoader_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	writeFile(t, path, "vertices: [A]\n")

	l, err := input.NewLoader(path)
	require.NoError(t, err)

	changed := make(chan *input.Document, 16)
	l.OnChange(func(d *input.Document) { changed <- d })

	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	writeFile(t, path, "vertices: [A, B, C]\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case d := <-changed:
			if len(d.Vertices) == 3 {
				assert.Equal(t, []string{"A", "B", "C"}, l.Document().Vertices)
				stop()
				stop() // idempotent
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
