package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/summary"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	verbose bool
	format  string
	logger  *zap.Logger
}

func newRootCommand() *cobra.Command {
	g := &globalOptions{logger: zap.NewNop()}
	cmd := &cobra.Command{
		Use:          "lvbayes",
		Short:        "Bayesian conjugate updates, HPD intervals and Gibbs sampling",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if g.format != formatText && g.format != formatJSON {
				return fmt.Errorf("unknown --format %q (want %s or %s)", g.format, formatText, formatJSON)
			}
			l, err := newLogger(g.verbose)
			if err != nil {
				return err
			}
			g.logger = l

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = g.logger.Sync()
		},
	}
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "debug logging in human-readable form")
	cmd.PersistentFlags().StringVar(&g.format, "format", formatText, "output format: text or json")

	cmd.AddCommand(
		newConjugateCommand(g),
		newGibbsCommand(g),
		newHPDCommand(g),
		newCurveCommand(g),
	)

	return cmd
}

// newLogger builds a development logger at debug level when verbose is set and
// a production logger at warn level otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}

func (g *globalOptions) writeTable(w io.Writer, tb *summary.Table) error {
	if g.format == formatJSON {
		return tb.WriteJSON(w)
	}

	return tb.WriteText(w)
}
