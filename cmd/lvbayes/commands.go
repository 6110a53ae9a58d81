package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/config"
	"github.com/katalvlaran/lvbayes/density"
	"github.com/katalvlaran/lvbayes/hpd"
)

func addRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "run configuration (.toml, .yaml, .yml)")
	cmd.Flags().StringVar(&f.dataPath, "data", "", "CSV file overriding data.path")
}

func newConjugateCommand(g *globalOptions) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "conjugate",
		Short: "Closed-form posterior summary for a conjugate model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRun(f, config.MethodConjugate)
			if err != nil {
				return err
			}
			obs, err := loadObservations(cfg)
			if err != nil {
				return err
			}
			g.logger.Debug("conjugate run", zap.String("model", cfg.Model), zap.Int("n", len(obs.y)))
			tb, err := runConjugate(cfg, obs, g.logger)
			if err != nil {
				return err
			}

			return g.writeTable(cmd.OutOrStdout(), tb)
		},
	}
	addRunFlags(cmd, &f)

	return cmd
}

func newGibbsCommand(g *globalOptions) *cobra.Command {
	var (
		f        runFlags
		chainOut string
	)
	cmd := &cobra.Command{
		Use:   "gibbs",
		Short: "Gibbs sampling with MCMC diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRun(f, config.MethodGibbs)
			if err != nil {
				return err
			}
			obs, err := loadObservations(cfg)
			if err != nil {
				return err
			}
			tb, err := runGibbs(cmd.Context(), cfg, obs, g.logger, chainOut)
			if err != nil {
				return err
			}

			return g.writeTable(cmd.OutOrStdout(), tb)
		},
	}
	addRunFlags(cmd, &f)
	cmd.Flags().StringVar(&chainOut, "chain-out", "", "write the pooled post-burn-in draws to this CSV file")

	return cmd
}

func newHPDCommand(g *globalOptions) *cobra.Command {
	var (
		family string
		params []float64
		prob   float64
	)
	cmd := &cobra.Command{
		Use:   "hpd",
		Short: "HPD and equal-tailed intervals of a univariate density",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDensity(family, params)
			if err != nil {
				return err
			}
			et, err := d.EqualTailed(prob)
			if err != nil {
				return err
			}
			iv, fellBack, err := hpd.SolveOrEqualTailed(d, prob, hpd.WithLogger(g.logger))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s%v\n", d.Family(), params)
			fmt.Fprintln(out, et)
			if fellBack {
				fmt.Fprintf(out, "%s (solver did not converge)\n", iv)
				return nil
			}
			fmt.Fprintln(out, iv)

			return nil
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "beta, gamma, inverse-gamma, student-t or normal")
	cmd.Flags().Float64SliceVar(&params, "params", nil, "family parameters: beta a,b | gamma shape,rate | inverse-gamma shape,scale | student-t nu,loc,scale | normal mean,sd")
	cmd.Flags().Float64Var(&prob, "prob", 0.95, "interval probability")
	_ = cmd.MarkFlagRequired("family")
	_ = cmd.MarkFlagRequired("params")

	return cmd
}

func newDensity(family string, p []float64) (*density.Density, error) {
	want := map[string]int{
		density.Beta.String():         2,
		density.Gamma.String():        2,
		density.InverseGamma.String(): 2,
		density.StudentT.String():     3,
		density.Normal.String():       2,
	}
	n, ok := want[family]
	if !ok {
		return nil, bayeserr.Invalidf("unknown family %q", family)
	}
	if len(p) != n {
		return nil, bayeserr.Invalidf("%s takes %d parameters, got %d", family, n, len(p))
	}
	switch family {
	case density.Beta.String():
		return density.NewBeta(p[0], p[1])
	case density.Gamma.String():
		return density.NewGamma(p[0], p[1])
	case density.InverseGamma.String():
		return density.NewInverseGamma(p[0], p[1])
	case density.StudentT.String():
		return density.NewStudentT(p[0], p[1], p[2])
	default:
		return density.NewNormal(p[0], p[1])
	}
}
