package main

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/spantree/input"
)

type solveFlags struct {
	outputFlags
	watch       bool
	metricsAddr string
}

func newSolveCommand(gf *globalFlags) *cobra.Command {
	sf := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve <graph.yaml>",
		Short: "Computes the minimum spanning forest of a graph document",
		Long: `Reads a YAML or JSON graph document, prints its minimum spanning forest
and writes input_graph.dot and minimum_spanning_tree.dot.

With --watch the document is recomputed every time it changes, and
--metrics-addr serves prometheus metrics while watching.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lg, err := gf.load(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = lg.Sync() }()
			if err := sf.apply(cmd, cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("metrics-addr") {
				cfg.MetricsAddr = sf.metricsAddr
			}

			p := newPipeline(cfg, lg, cmd.OutOrStdout(), sf.method, !sf.noDot)
			if !sf.watch {
				doc, err := input.LoadFile(args[0])
				if err != nil {
					return err
				}
				g, err := doc.Graph()
				if err != nil {
					return err
				}
				_, err = p.run(cmd.Context(), g)
				return err
			}

			return watch(cmd.Context(), p, args[0])
		},
	}
	sf.register(cmd)
	cmd.Flags().BoolVar(&sf.watch, "watch", false, "recompute whenever the document changes")
	cmd.Flags().StringVar(&sf.metricsAddr, "metrics-addr", "", "serve /metrics on this address while watching")

	return cmd
}

// watch recomputes on every successful reload until ctx is cancelled.
// Invalid edits are logged and the previous result stands.
func watch(ctx context.Context, p *pipeline, path string) error {
	loader, err := input.NewLoader(path)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	solve := func(doc *input.Document) {
		mu.Lock()
		defer mu.Unlock()
		g, err := doc.Graph()
		if err != nil {
			p.lg.Warn("invalid graph document", zap.String("path", path), zap.Error(err))
			return
		}
		if _, err := p.run(ctx, g); err != nil {
			p.lg.Warn("run failed", zap.String("path", path), zap.Error(err))
		}
	}
	loader.OnChange(solve)
	loader.OnError(func(err error) {
		p.lg.Warn("reload failed", zap.String("path", path), zap.Error(err))
	})

	if p.cfg.MetricsAddr != "" {
		srv := serveMetrics(p)
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
	}

	stop, err := loader.Watch()
	if err != nil {
		return err
	}
	defer stop()
	solve(loader.Document())
	p.lg.Info("watching for changes", zap.String("path", loader.Path()))

	<-ctx.Done()
	p.lg.Info("watch stopped", zap.String("path", loader.Path()))

	return nil
}

func serveMetrics(p *pipeline) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", p.metrics.Handler())
	srv := &http.Server{Addr: p.cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			p.lg.Warn("metrics server stopped", zap.String("addr", srv.Addr), zap.Error(err))
		}
	}()
	p.lg.Info("serving metrics", zap.String("addr", srv.Addr))

	return srv
}
