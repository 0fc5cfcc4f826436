package cli

import (
	"fmt"
	"strconv"

	"github.com/KelvyHsu/bake/internal/config"
	"github.com/KelvyHsu/bake/kern"
	"github.com/spf13/cobra"
)

type distEntry struct {
	I    int         `json:"i"`
	J    int         `json:"j"`
	Diff []jsonFloat `json:"diff"`
}

func (a *app) newDistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dist POINTS POINTS",
		Short: "Print every difference vector between two point sets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x1, err := a.load(args[0])
			if err != nil {
				return err
			}
			x2, err := a.load(args[1])
			if err != nil {
				return err
			}
			_, c1 := x1.Dims()
			_, c2 := x2.Dims()
			if !a.noCheck && c1 != c2 {
				return fmt.Errorf("%w: %d and %d", kern.ErrDimensionMismatch, c1, c2)
			}

			d := kern.Dist(x1, x2)
			rows, cols, depth := d.Dims()
			w := cmd.OutOrStdout()
			if a.cfg.Output.Format == config.FormatJSON {
				entries := make([]distEntry, 0, rows*cols)
				for i := 0; i < rows; i++ {
					for j := 0; j < cols; j++ {
						entries = append(entries, distEntry{I: i, J: j, Diff: jsonVec(d.Vec(i, j).RawVector().Data)})
					}
				}
				return writeJSON(w, entries)
			}

			header := []string{"I", "J"}
			for k := 0; k < depth; k++ {
				header = append(header, "D"+strconv.Itoa(k))
			}
			table := newTable(w, header)
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					row := []string{strconv.Itoa(i), strconv.Itoa(j)}
					for k := 0; k < depth; k++ {
						row = append(row, a.formatFloat(d.At(i, j, k)))
					}
					table.Append(row)
				}
			}
			table.Render()
			return nil
		},
	}
}
