package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"motioncraft/api/internal/app"
	"motioncraft/api/internal/config"
)

type options struct {
	jsonOut bool
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "motioncraft",
		Short: "MotionCraft competitor analyzer",
		Long: `Scores competitor marketing copy and screenshots with an LLM.

Text goes straight to the language model; screenshots are OCR'd by
Yandex Vision first. Credentials come from the environment or .env.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print the raw analysis as JSON")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log remote calls to stderr")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newTextCmd(opts), newImageCmd(opts), newServeCmd())
	return root
}

// load собирает приложение; в CLI логи идут в stderr и по умолчанию только предупреждения.
func (o *options) load(stderr io.Writer, service string) (*app.App, error) {
	cfg := config.Load()
	cfg.LogFormat = "console"
	if !o.verbose {
		cfg.LogLevel = "warn"
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return app.New(cfg, service, stderr)
}
