package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/converters"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/internal/config"
	"github.com/katalvlaran/spantree/internal/metrics"
	"github.com/katalvlaran/spantree/mst"
	"github.com/katalvlaran/spantree/render"
	"github.com/katalvlaran/spantree/report"
)

// Artefact base names.
const (
	inputArtifact  = "input_graph"
	resultArtifact = "minimum_spanning_tree"
)

// pipeline runs one graph through the algorithm, the reporter and the artefact writer.
type pipeline struct {
	cfg       *config.Config
	lg        *zap.Logger
	out       io.Writer
	method    string
	artifacts *render.Artifacts // nil disables DOT output
	metrics   *metrics.Metrics
}

func newPipeline(cfg *config.Config, lg *zap.Logger, out io.Writer, method string, writeDOT bool) *pipeline {
	p := &pipeline{cfg: cfg, lg: lg, out: out, method: method, metrics: metrics.New()}
	if writeDOT {
		a := &render.Artifacts{Dir: cfg.DotDir}
		if cfg.Render {
			a.Renderer = render.NewGraphviz(cfg.GraphvizBinary, cfg.ImageFormat)
		}
		p.artifacts = a
	}

	return p
}

// run computes and reports the spanning forest of g under a fresh run id.
func (p *pipeline) run(ctx context.Context, g *core.Graph) (*mst.Result, error) {
	lg := p.lg.With(zap.String("run-id", uuid.NewString()))
	lg.Info("input graph",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.String("method", p.method),
	)

	comps, err := bfs.Components(g)
	if err != nil {
		return nil, err
	}
	if len(comps) > 1 {
		lg.Warn("input graph is disconnected, computing a spanning forest",
			zap.Int("components", len(comps)),
			zap.Strings("roots", roots(comps)),
		)
	}

	if p.artifacts != nil {
		dot, err := converters.InputDOT(g)
		if err != nil {
			return nil, err
		}
		p.writeArtifact(ctx, lg, inputArtifact, dot, "Input graph visualization generated")
	}

	opts := append(p.metrics.Hooks(), mst.WithMethod(p.method))
	start := time.Now()
	res, err := mst.Compute(g, opts...)
	p.metrics.Observe(p.method, res, err, time.Since(start))
	if err != nil {
		lg.Warn("spanning forest failed", zap.Error(err))
		return nil, err
	}

	rep, err := report.New(p.cfg.Format, p.out)
	if err != nil {
		return nil, err
	}
	if err := rep.Report(res); err != nil {
		return nil, err
	}

	if p.artifacts != nil {
		dot, err := converters.ResultDOT(res)
		if err != nil {
			return nil, err
		}
		p.writeArtifact(ctx, lg, resultArtifact, dot, "Graph visualization generated")
	}

	lg.Info("spanning forest",
		zap.Int64("total", res.Total),
		zap.Int("edges", res.Len()),
		zap.Int("components", res.Components),
		zap.Int("considered", res.Considered),
		zap.Int("rejected", res.Rejected),
		zap.Duration("took", time.Since(start)),
	)

	return res, nil
}

// writeArtifact stores dot and, for text output, announces a rendered image.
// Renderer failures are logged; the DOT file is kept.
func (p *pipeline) writeArtifact(ctx context.Context, lg *zap.Logger, name string, dot []byte, announce string) {
	paths, err := p.artifacts.Write(ctx, name, dot)
	for _, path := range paths {
		lg.Info("artifact written", zap.String("path", path))
	}
	if err != nil {
		lg.Warn("artifact incomplete", zap.String("name", name), zap.Error(err))
		return
	}
	if len(paths) > 1 && p.cfg.Format == report.FormatText {
		fmt.Fprintf(p.out, "%s: %s\n", announce, paths[len(paths)-1])
	}
}

// roots lists the first vertex of every component.
func roots(comps [][]string) []string {
	out := make([]string, len(comps))
	for i, c := range comps {
		out[i] = c[0]
	}

	return out
}
