package kern

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Metric is the distance a kernel profile is evaluated on.
type Metric int

const (
	SqEuclidean Metric = iota // Squared Euclidean distance.
	Euclidean                 // Euclidean distance.
)

func (m Metric) String() string {
	switch m {
	case SqEuclidean:
		return "sqeuclidean"
	case Euclidean:
		return "euclidean"
	}
	return "unknown"
}

// broadcast returns the common length of two broadcast-compatible axes.
func broadcast(a, b int) int {
	switch {
	case a == b:
		return a
	case a == 1:
		return b
	case b == 1:
		return a
	}
	panic(mat.ErrShape)
}

// Scale divides every coordinate of x by its length-scale. A theta of
// length 1 is shared across all columns; a single-column x is spread
// across all entries of theta.
func Scale(x mat.Matrix, theta []float64) *mat.Dense {
	r, c := x.Dims()
	if r == 0 {
		return &mat.Dense{}
	}
	w := broadcast(c, len(theta))
	out := mat.NewDense(r, w, nil)
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		for j := range row {
			xj, tj := j, j
			if c == 1 {
				xj = 0
			}
			if len(theta) == 1 {
				tj = 0
			}
			row[j] = x.At(i, xj) / theta[tj]
		}
	}
	return out
}

// Pairwise returns the matrix of distances between every row of a and
// every row of b.
func Pairwise(a, b mat.Matrix, metric Metric) *mat.Dense {
	na, ca := a.Dims()
	nb, cb := b.Dims()
	if na == 0 || nb == 0 {
		return &mat.Dense{}
	}
	if ca != cb {
		panic(mat.ErrShape)
	}
	ra, rb := rows(a), rows(b)
	out := mat.NewDense(na, nb, nil)
	diff := make([]float64, ca)
	for i, u := range ra {
		dst := out.RawRowView(i)
		for j, v := range rb {
			floats.SubTo(diff, u, v)
			d := floats.Dot(diff, diff)
			if metric == Euclidean {
				d = math.Sqrt(d)
			}
			dst[j] = d
		}
	}
	return out
}

// Tensor is a dense Rows×Cols×Depth array stored in row-major order.
type Tensor struct {
	Rows, Cols, Depth int
	Data              []float64
}

func (t *Tensor) Dims() (r, c, d int) {
	return t.Rows, t.Cols, t.Depth
}

func (t *Tensor) At(i, j, k int) float64 {
	if i < 0 || i >= t.Rows || j < 0 || j >= t.Cols || k < 0 || k >= t.Depth {
		panic(mat.ErrIndexOutOfRange)
	}
	return t.Data[(i*t.Cols+j)*t.Depth+k]
}

// Vec returns the difference vector at (i, j). The vector shares storage
// with t.
func (t *Tensor) Vec(i, j int) *mat.VecDense {
	if i < 0 || i >= t.Rows || j < 0 || j >= t.Cols {
		panic(mat.ErrIndexOutOfRange)
	}
	off := (i*t.Cols + j) * t.Depth
	return mat.NewVecDense(t.Depth, t.Data[off:off+t.Depth])
}

// Dist returns every difference vector between the rows of x1 and x2:
// D[i,j,:] = x1[i,:] - x2[j,:].
func Dist(x1, x2 mat.Matrix) *Tensor {
	n1, c1 := x1.Dims()
	n2, c2 := x2.Dims()
	if c1 != c2 {
		panic(mat.ErrShape)
	}
	t := &Tensor{
		Rows:  n1,
		Cols:  n2,
		Depth: c1,
		Data:  make([]float64, n1*n2*c1),
	}
	r1, r2 := rows(x1), rows(x2)
	for i, u := range r1 {
		for j, v := range r2 {
			off := (i*n2 + j) * c1
			floats.SubTo(t.Data[off:off+c1], u, v)
		}
	}
	return t
}

// rows returns the rows of m as slices. Rows of a *mat.Dense are views
// and must not be written to.
func rows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	if d, ok := m.(*mat.Dense); ok {
		for i := range out {
			out[i] = d.RawRowView(i)
		}
		return out
	}
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}
