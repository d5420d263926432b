package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/spantree/internal/config"
	"github.com/katalvlaran/spantree/internal/logutil"
	"github.com/katalvlaran/spantree/mst"
	"github.com/katalvlaran/spantree/report"
)

const (
	cliName        = "spantree"
	cliDescription = "Minimum spanning forests of weighted undirected graphs."
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	format     string
}

func newRootCommand() *cobra.Command {
	gf := &globalFlags{}
	cmd := &cobra.Command{
		Use:           cliName,
		Short:         cliDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&gf.configPath, "config", "", "path to a YAML defaults file")
	cmd.PersistentFlags().StringVar(&gf.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&gf.format, "write-out", "w", "",
		"output format ("+strings.Join(report.Formats, ", ")+")")
	_ = cmd.RegisterFlagCompletionFunc("write-out", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return report.Formats, cobra.ShellCompDirectiveDefault
	})

	cmd.AddCommand(
		newSolveCommand(gf),
		newInteractiveCommand(gf),
		newGenerateCommand(),
		newVersionCommand(),
	)

	return cmd
}

// load resolves the config file and the persistent flag overrides.
func (gf *globalFlags) load(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(gf.configPath)
	if err != nil {
		return nil, nil, err
	}
	if gf.logLevel != "" {
		cfg.LogLevel = gf.logLevel
	}
	if gf.format != "" {
		cfg.Format = gf.format
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	lg, err := logutil.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	lg.Debug("configuration resolved",
		zap.String("command", cmd.Name()),
		zap.String("config", gf.configPath),
		zap.String("format", cfg.Format),
		zap.String("dot-dir", cfg.DotDir),
		zap.Bool("render", cfg.Render),
	)

	return cfg, lg, nil
}

// outputFlags are the artefact and algorithm flags of solve and interactive.
type outputFlags struct {
	method      string
	dotDir      string
	noDot       bool
	render      bool
	graphviz    string
	imageFormat string
}

func (of *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&of.method, "method", "kruskal", "algorithm (kruskal, prim)")
	cmd.Flags().StringVar(&of.dotDir, "dot-dir", "", "directory for input_graph.dot and minimum_spanning_tree.dot")
	cmd.Flags().BoolVar(&of.noDot, "no-dot", false, "skip writing DOT artefacts")
	cmd.Flags().BoolVar(&of.render, "render", false, "render DOT artefacts with Graphviz")
	cmd.Flags().StringVar(&of.graphviz, "graphviz", "", "Graphviz binary")
	cmd.Flags().StringVar(&of.imageFormat, "image-format", "", "Graphviz output format (png, svg, ...)")
}

// apply validates --method and copies explicitly set flags over cfg.
func (of *outputFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if err := mst.ValidateMethod(of.method); err != nil {
		return err
	}
	if cmd.Flags().Changed("dot-dir") {
		cfg.DotDir = of.dotDir
	}
	if cmd.Flags().Changed("render") {
		cfg.Render = of.render
	}
	if cmd.Flags().Changed("graphviz") {
		cfg.GraphvizBinary = of.graphviz
	}
	if cmd.Flags().Changed("image-format") {
		cfg.ImageFormat = of.imageFormat
	}

	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of " + cliName,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cliName, version)
		},
	}
}

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"
