package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relaxviz/bellmanford"
	"github.com/katalvlaran/relaxviz/render"
)

func newOrderCmd(a *app) *cobra.Command {
	var flags struct {
		seed   int64
		source string
	}
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Print the edge order a run from --source examines every round",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.generate(flags.seed)
			if err != nil {
				return err
			}
			src := flags.source
			if src == "" {
				src = g.DefaultSource()
			}
			order, err := bellmanford.TraversalOrder(g.Graph, src)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seed: %d\nSource: %s\n", g.Seed, src)
			fmt.Fprint(out, render.EdgeList(order))
			return nil
		},
	}
	f := cmd.Flags()
	f.Int64Var(&flags.seed, "seed", -1, "Generation seed (negative draws a fresh one)")
	f.StringVar(&flags.source, "source", "", "Source vertex (default: first ring vertex)")
	return cmd
}
