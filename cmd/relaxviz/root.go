package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relaxviz/generator"
	"github.com/katalvlaran/relaxviz/internal/config"
	"github.com/katalvlaran/relaxviz/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries state resolved once by the root command's pre-run.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	loader *config.Loader
}

func (a *app) cfg() *config.Config { return a.loader.Config() }

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "relaxviz",
		Short: "Step-by-step Bellman-Ford on random graphs with negative edges",
		Long: `relaxviz generates small strongly connected directed graphs with a few
negative edges and walks Bellman-Ford through them one edge at a time,
reporting early exits and negative cycles.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: a.setup,
	}
	root.Version = version

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "Path to YAML config (defaults when empty)")
	f.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	f.StringVar(&a.logFormat, "log-format", "", "Log format: text or json (overrides config)")

	root.AddCommand(
		newGenerateCmd(a),
		newOrderCmd(a),
		newRunCmd(a),
		newVerifyCmd(a),
		newServeCmd(a),
	)
	return root
}

// setup loads the config and initializes logging; flags override the file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	loader, err := config.NewLoader(a.configPath, nil)
	if err != nil {
		return err
	}
	a.loader = loader

	cfg := loader.Config()
	level, format := cfg.Log.Level, cfg.Log.Format
	if a.logLevel != "" {
		level = a.logLevel
	}
	if a.logFormat != "" {
		format = a.logFormat
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	if !logging.ValidFormat(format) {
		return fmt.Errorf("log format %q: want text or json", format)
	}
	logging.Init(lvl, format, cmd.ErrOrStderr())
	slog.Debug("config loaded", "path", a.configPath)
	return nil
}

// generate produces one graph from the configured params; seed < 0 draws a
// fresh seed.
func (a *app) generate(seed int64) (*generator.Graph, error) {
	opts := []generator.Option{generator.WithLogger(logging.New("generator"))}
	if seed >= 0 {
		opts = append(opts, generator.WithSeed(seed))
	}
	return generator.Generate(a.cfg().Generator, opts...)
}
