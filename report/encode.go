package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spantree/mst"
)

// JSONReporter writes View(res) as one JSON document.
type JSONReporter struct {
	W io.Writer

	// Indent, when non-empty, pretty-prints with this indent.
	Indent string
}

// Report implements Reporter.
func (r *JSONReporter) Report(res *mst.Result) error {
	if res == nil {
		return ErrNilResult
	}
	enc := json.NewEncoder(r.W)
	if r.Indent != "" {
		enc.SetIndent("", r.Indent)
	}

	return enc.Encode(View(res))
}

// YAMLReporter writes View(res) as one YAML document.
type YAMLReporter struct {
	W io.Writer
}

// Report implements Reporter.
func (r *YAMLReporter) Report(res *mst.Result) error {
	if res == nil {
		return ErrNilResult
	}
	enc := yaml.NewEncoder(r.W)
	enc.SetIndent(2)
	if err := enc.Encode(View(res)); err != nil {
		return err
	}

	return enc.Close()
}
