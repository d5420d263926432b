package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spantree/input"
)

func newInteractiveCommand(gf *globalFlags) *cobra.Command {
	of := &outputFlags{}
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Asks for places and routes on the console, then solves the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, lg, err := gf.load(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = lg.Sync() }()
			if err := of.apply(cmd, cfg); err != nil {
				return err
			}

			doc, err := input.Prompt(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			g, err := doc.Graph()
			if err != nil {
				return err
			}
			_, err = newPipeline(cfg, lg, cmd.OutOrStdout(), of.method, !of.noDot).run(cmd.Context(), g)

			return err
		},
	}
	of.register(cmd)

	return cmd
}
