package cli

import (
	"fmt"

	"github.com/KelvyHsu/bake/internal/config"
	"github.com/KelvyHsu/bake/internal/pointset"
	"github.com/KelvyHsu/bake/kern"
	"github.com/spf13/cobra"
)

func (a *app) newNormCmd() *cobra.Command {
	var (
		theta string
		dims  int
	)
	cmd := &cobra.Command{
		Use:   "norm",
		Short: "Print the normalising constant of the Gaussian kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := a.cfg.Theta
			if theta != "" {
				var err error
				if t, err = pointset.ParseFloats(theta); err != nil {
					return fmt.Errorf("theta: %w", err)
				}
			}
			m := a.cfg.Dims
			if cmd.Flags().Changed("dims") {
				m = dims
			}
			if m < 0 {
				return fmt.Errorf("%w: got %d", ErrNegativeDims, m)
			}
			if !a.noCheck && len(t) != 1 && m != 1 && len(t) != m {
				return fmt.Errorf("%w: got %d, want 1 or %d", kern.ErrThetaLength, len(t), m)
			}

			c := kern.GaussianNorm(t, m)
			w := cmd.OutOrStdout()
			if a.cfg.Output.Format == config.FormatJSON {
				return writeJSON(w, map[string]any{
					"theta": t,
					"dims":  m,
					"norm":  jsonFloat(c),
				})
			}
			fmt.Fprintln(w, a.formatFloat(c))
			return nil
		},
	}
	cmd.Flags().StringVarP(&theta, "theta", "t", "", "comma separated length-scales")
	cmd.Flags().IntVarP(&dims, "dims", "m", kern.DefaultDims, "input dimensionality")
	return cmd
}
