package cli

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/mat"
)

func (a *app) formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', a.cfg.Output.Precision, 64)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	if header != nil {
		table.SetHeader(header)
	}
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("  ")
	return table
}

// writeMatrix prints m as a table of fixed precision numbers.
func (a *app) writeMatrix(w io.Writer, m mat.Matrix) {
	r, c := m.Dims()
	data := make([][]string, r)
	for i := range data {
		data[i] = make([]string, c)
		for j := range data[i] {
			data[i][j] = a.formatFloat(m.At(i, j))
		}
	}
	table := newTable(w, nil)
	table.AppendBulk(data)
	table.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// jsonFloat carries non-finite values through encoding/json, which rejects
// them, as the strings "NaN", "+Inf" and "-Inf".
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

func jsonRows(m mat.Matrix) [][]jsonFloat {
	r, c := m.Dims()
	out := make([][]jsonFloat, r)
	for i := range out {
		out[i] = make([]jsonFloat, c)
		for j := range out[i] {
			out[i][j] = jsonFloat(m.At(i, j))
		}
	}
	return out
}

func jsonVec(v []float64) []jsonFloat {
	out := make([]jsonFloat, len(v))
	for i, x := range v {
		out[i] = jsonFloat(x)
	}
	return out
}
