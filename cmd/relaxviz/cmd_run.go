package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relaxviz/bellmanford"
	"github.com/katalvlaran/relaxviz/internal/logging"
	"github.com/katalvlaran/relaxviz/render"
	"github.com/katalvlaran/relaxviz/session"
)

func newRunCmd(a *app) *cobra.Command {
	var flags struct {
		seed     int64
		source   string
		delay    time.Duration
		tables   bool
		markdown bool
	}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a graph and animate Bellman-Ford on it as text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			delay := a.cfg().Engine.StepDelay
			if cmd.Flags().Changed("delay") {
				delay = flags.delay
			}
			if delay < 0 {
				return fmt.Errorf("--delay must be non-negative, got %v", delay)
			}

			txt := render.NewText(cmd.OutOrStdout())
			txt.Tables = flags.tables
			if flags.markdown {
				txt.Mode = render.Markdown
			}

			sess, err := session.New(a.cfg().Generator,
				session.WithLogger(logging.New("session")),
				session.WithGraphObserver(txt))
			if err != nil {
				return err
			}
			var seed *int64
			if flags.seed >= 0 {
				seed = &flags.seed
			}
			if _, err := sess.Generate(cmd.Context(), seed); err != nil {
				return err
			}
			_, order, err := sess.Order(flags.source)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", render.EdgeList(order))

			if _, err := sess.Run(cmd.Context(), flags.source, txt, bellmanford.FixedDelay(delay)); err != nil {
				return err
			}
			return txt.Err()
		},
	}
	f := cmd.Flags()
	f.Int64Var(&flags.seed, "seed", -1, "Generation seed (negative draws a fresh one)")
	f.StringVar(&flags.source, "source", "", "Source vertex (default: first ring vertex)")
	f.DurationVar(&flags.delay, "delay", 0, "Pause before each edge (default: engine.step_delay from config)")
	f.BoolVar(&flags.tables, "tables", false, "Print the distance table after every update")
	f.BoolVar(&flags.markdown, "markdown", false, "Render tables as Markdown")
	return cmd
}
