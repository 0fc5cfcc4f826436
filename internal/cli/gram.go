package cli

import (
	"fmt"
	"time"

	"github.com/KelvyHsu/bake/internal/config"
	"github.com/KelvyHsu/bake/kern"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

type gramResult struct {
	Kernel string        `json:"kernel"`
	Theta  []float64     `json:"theta,omitempty"`
	Gram   [][]jsonFloat `json:"gram,omitempty"`
	Diag   []jsonFloat   `json:"diag,omitempty"`
}

func (a *app) newGramCmd() *cobra.Command {
	var (
		kf      kernelFlags
		density bool
	)
	cmd := &cobra.Command{
		Use:   "gram POINTS [POINTS]",
		Short: "Compute the Gram matrix between two point sets",
		Long: "Compute the Gram matrix between two point sets. With a single point set\n" +
			"only the diagonal of its self-Gram matrix is printed.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, theta, err := a.resolve(&kf)
			if err != nil {
				return err
			}
			xp, err := a.load(args[0])
			if err != nil {
				return err
			}
			q := kern.Absent
			if len(args) == 2 {
				xq, err := a.load(args[1])
				if err != nil {
					return err
				}
				q = kern.With(xq)
			}
			if density && !q.Present() {
				return ErrDensityNeedsPoints
			}
			if err := a.check(xp, q, theta); err != nil {
				return err
			}

			start := time.Now()
			var out mat.Matrix
			if density {
				if k.Name() != kern.Gaussian.Name() {
					return fmt.Errorf("--density needs the gaussian kernel, got %q", k.Name())
				}
				out = kern.GaussianDensity(xp, q.Points(), theta)
			} else {
				out = k.Eval(xp, q, theta)
			}
			r, c := out.Dims()
			a.logger.Debug("kernel evaluated",
				zap.Stringer("kernel", k),
				zap.Bool("diagonal", !q.Present()),
				zap.Int("rows", r),
				zap.Int("cols", c),
				zap.Duration("elapsed", time.Since(start)),
			)

			w := cmd.OutOrStdout()
			if a.cfg.Output.Format == config.FormatJSON {
				res := gramResult{Kernel: k.Name()}
				if q.Present() {
					res.Theta = theta
					res.Gram = jsonRows(out)
				} else {
					res.Diag = jsonVec(mat.Col(nil, 0, out))
				}
				return writeJSON(w, res)
			}
			if !q.Present() {
				out = out.T()
			}
			a.writeMatrix(w, out)
			return nil
		},
	}
	kf.register(cmd)
	cmd.Flags().BoolVar(&density, "density", false, "divide the Gaussian Gram matrix by its normalising constant")
	return cmd
}
