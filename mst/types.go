// Package mst defines configuration options, hooks and sentinel errors for MST computation.
package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// ErrNilGraph indicates that a nil *core.Graph was supplied.
var ErrNilGraph = errors.New("mst: graph is nil")

// ErrBuilderDone indicates Consider was called after Finish.
var ErrBuilderDone = errors.New("mst: builder already finished")

// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodPrim selects Prim's algorithm (min-heap growth, one tree per component).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and the per-edge hooks.
// Use DefaultOptions() to get a default setup (Kruskal, no-op hooks).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// OnAccept is called for each edge added to the result, in acceptance order.
	OnAccept func(e core.Edge)

	// OnReject is called for each edge Kruskal skips because it would close a cycle.
	// Prim does not report rejections.
	OnReject func(e core.Edge)
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithOnAccept registers a callback run for every accepted edge. nil is ignored.
func WithOnAccept(fn func(e core.Edge)) Option {
	return func(opts *MSTOptions) {
		if fn != nil {
			opts.OnAccept = fn
		}
	}
}

// WithOnReject registers a callback run for every rejected edge. nil is ignored.
func WithOnReject(fn func(e core.Edge)) Option {
	return func(opts *MSTOptions) {
		if fn != nil {
			opts.OnReject = fn
		}
	}
}

// DefaultOptions returns MSTOptions for Kruskal with no-op hooks.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:   MethodKruskal,
		OnAccept: func(core.Edge) {},
		OnReject: func(core.Edge) {},
	}
}

func resolveOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm named by opts.Method.
//
//	– MethodKruskal (or ""): Kruskal(graph, ...)
//	– MethodPrim:            Prim(graph, ...)
//	– otherwise:             ErrUnknownMethod
func Compute(graph *core.Graph, opts ...Option) (*Result, error) {
	o := resolveOptions(opts)
	if err := ValidateMethod(o.Method); err != nil {
		return nil, err
	}
	if o.Method == MethodPrim {
		return Prim(graph, opts...)
	}

	return Kruskal(graph, opts...)
}

// ValidateMethod reports ErrUnknownMethod unless m names a supported
// algorithm; "" selects Kruskal.
func ValidateMethod(m string) error {
	switch m {
	case MethodKruskal, MethodPrim, "":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMethod, m)
	}
}
