package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/KelvyHsu/bake/internal/config"
	"github.com/KelvyHsu/bake/internal/pointset"
	"github.com/KelvyHsu/bake/kern"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the Gram matrix obtained for one length-scale candidate.
type Summary struct {
	Theta []float64
	Mean  float64
	Min   float64
	Max   float64
}

type summaryJSON struct {
	Theta []float64 `json:"theta"`
	Mean  jsonFloat `json:"mean"`
	Min   jsonFloat `json:"min"`
	Max   jsonFloat `json:"max"`
}

// ParseCandidates splits a ';' separated list of length-scale vectors,
// e.g. "0.5;1,2;3".
func ParseCandidates(s string) ([][]float64, error) {
	var out [][]float64
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		theta, err := pointset.ParseFloats(part)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", len(out)+1, err)
		}
		out = append(out, theta)
	}
	if len(out) == 0 {
		return nil, pointset.ErrEmpty
	}
	return out, nil
}

// Sweep evaluates k between xp and xq once per candidate, running at most
// workers evaluations at a time (no limit when workers <= 0). Results keep
// the order of candidates.
func Sweep(ctx context.Context, k kern.Kernel, xp, xq mat.Matrix, candidates [][]float64, workers int) ([]Summary, error) {
	out := make([]Summary, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, theta := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gram := k.Gram(xp, xq, theta)
			data := gram.RawMatrix().Data
			if gram.IsEmpty() {
				out[i] = Summary{Theta: theta}
				return nil
			}
			out[i] = Summary{
				Theta: theta,
				Mean:  stat.Mean(data, nil),
				Min:   floats.Min(data),
				Max:   floats.Max(data),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *app) newSweepCmd() *cobra.Command {
	var (
		kernel  string
		thetas  string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "sweep POINTS POINTS",
		Short: "Summarise Gram matrices over several length-scale candidates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Kernel
			if kernel != "" {
				name = kernel
			}
			k, err := kern.Lookup(name)
			if err != nil {
				return err
			}
			candidates, err := ParseCandidates(thetas)
			if err != nil {
				return fmt.Errorf("thetas: %w", err)
			}
			xp, err := a.load(args[0])
			if err != nil {
				return err
			}
			xq, err := a.load(args[1])
			if err != nil {
				return err
			}
			for _, theta := range candidates {
				if err := a.check(xp, kern.With(xq), theta); err != nil {
					return err
				}
			}
			n := a.cfg.Sweep.Workers
			if cmd.Flags().Changed("workers") {
				n = workers
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			summaries, err := Sweep(ctx, k, xp, xq, candidates, n)
			if err != nil {
				return err
			}
			a.logger.Debug("sweep finished",
				zap.Stringer("kernel", k),
				zap.Int("candidates", len(candidates)),
				zap.Int("workers", n),
			)

			w := cmd.OutOrStdout()
			if a.cfg.Output.Format == config.FormatJSON {
				res := make([]summaryJSON, len(summaries))
				for i, s := range summaries {
					res[i] = summaryJSON{
						Theta: s.Theta,
						Mean:  jsonFloat(s.Mean),
						Min:   jsonFloat(s.Min),
						Max:   jsonFloat(s.Max),
					}
				}
				return writeJSON(w, res)
			}
			table := newTable(w, []string{"THETA", "MEAN", "MIN", "MAX"})
			for _, s := range summaries {
				table.Append([]string{
					formatTheta(s.Theta),
					a.formatFloat(s.Mean),
					a.formatFloat(s.Min),
					a.formatFloat(s.Max),
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVarP(&kernel, "kernel", "k", "", "kernel family (see 'bake kernels')")
	cmd.Flags().StringVar(&thetas, "thetas", "", "';' separated length-scale candidates, e.g. \"0.5;1,2\"")
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "candidates evaluated concurrently")
	_ = cmd.MarkFlagRequired("thetas")
	return cmd
}

func formatTheta(theta []float64) string {
	parts := make([]string, len(theta))
	for i, t := range theta {
		parts[i] = fmt.Sprint(t)
	}
	return strings.Join(parts, ",")
}
