package main

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/dataset"
	"github.com/katalvlaran/lvbayes/diagnostics"
)

type curveFlags struct {
	family string
	params []float64
	tail   float64
	draws  string
	param  string
	points int
}

// newCurveCommand prints x,density pairs for plotting: the PDF of a named family
// over its central quantile range, or a kernel density estimate of one column of
// a draws file written by "gibbs --chain-out".
func newCurveCommand(g *globalOptions) *cobra.Command {
	var f curveFlags
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Density curve of a family or of sampled draws, as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, ys, err := curvePoints(f)
			if err != nil {
				return err
			}
			g.logger.Debug("density curve", zap.Int("points", len(xs)), zap.String("draws", f.draws))

			return writeCurve(cmd.OutOrStdout(), xs, ys)
		},
	}
	cmd.Flags().StringVar(&f.family, "family", "", "density family (see hpd --help)")
	cmd.Flags().Float64SliceVar(&f.params, "params", nil, "family parameters")
	cmd.Flags().Float64Var(&f.tail, "tail", 0.001, "probability left out of each end of the family curve")
	cmd.Flags().StringVar(&f.draws, "draws", "", "CSV of draws to smooth with a Gaussian kernel")
	cmd.Flags().StringVar(&f.param, "param", "", "column of --draws to smooth")
	cmd.Flags().IntVar(&f.points, "points", 200, "number of grid points")
	cmd.MarkFlagsMutuallyExclusive("family", "draws")
	cmd.MarkFlagsOneRequired("family", "draws")

	return cmd
}

func curvePoints(f curveFlags) ([]float64, []float64, error) {
	if f.draws == "" {
		d, err := newDensity(f.family, f.params)
		if err != nil {
			return nil, nil, err
		}

		return d.QuantileGrid(f.tail, f.points)
	}
	if f.param == "" {
		return nil, nil, bayeserr.Invalidf("--param is required with --draws")
	}
	frame, err := dataset.Load(f.draws)
	if err != nil {
		return nil, nil, err
	}
	x, err := frame.Column(f.param)
	if err != nil {
		return nil, nil, err
	}

	return diagnostics.KDE(x, f.points)
}

func writeCurve(w io.Writer, xs, ys []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "density"}); err != nil {
		return err
	}
	for i := range xs {
		rec := []string{strconv.FormatFloat(xs[i], 'g', -1, 64), strconv.FormatFloat(ys[i], 'g', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
