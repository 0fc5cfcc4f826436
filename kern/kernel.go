// Package kern defines the positive-definite kernels used to build Gram
// matrices between point sets, and the helpers they share.
package kern

import (
	"github.com/KelvyHsu/bake/utils"
	"gonum.org/v1/gonum/mat"
)

// Func is the contract shared by every kernel family. It returns the
// n_p×n_q Gram matrix (*mat.Dense) when q carries a point set, and the
// length-n_p diagonal of the self-Gram matrix (*mat.VecDense) when q is
// Absent.
type Func func(xp mat.Matrix, q Operand, theta []float64) mat.Matrix

// Operand is the optional second point set of a kernel evaluation.
type Operand struct {
	x       mat.Matrix
	present bool
}

// Absent asks a kernel for the diagonal of the self-Gram matrix only.
var Absent Operand

// With asks a kernel for the full Gram matrix against xq.
func With(xq mat.Matrix) Operand {
	return Operand{x: xq, present: true}
}

func (o Operand) Present() bool {
	return o.present
}

// Points returns the second point set, nil when o is Absent.
func (o Operand) Points() mat.Matrix {
	return o.x
}

// Kernel is a stationary kernel k(x, y) = f(d(x/theta, y/theta)), where d
// is the distance named by its Metric and f its radial profile.
type Kernel struct {
	name    string
	metric  Metric
	profile func(r float64) float64
}

// NewKernel builds a kernel family from a radial profile. The profile
// must satisfy profile(0) == 1, so that the diagonal shortcut holds.
func NewKernel(name string, metric Metric, profile func(r float64) float64) Kernel {
	return Kernel{
		name:    name,
		metric:  metric,
		profile: profile,
	}
}

func (k Kernel) Name() string {
	return k.name
}

func (k Kernel) String() string {
	return k.name
}

func (k Kernel) Metric() Metric {
	return k.metric
}

// Eval dispatches on q: full Gram matrix or diagonal only.
func (k Kernel) Eval(xp mat.Matrix, q Operand, theta []float64) mat.Matrix {
	if !q.present {
		return k.Diag(xp)
	}
	return k.Gram(xp, q.x, theta)
}

// Func returns Eval as a plain function value.
func (k Kernel) Func() Func {
	return k.Eval
}

// Diag returns a vector of ones with one entry per row of xp. Neither the
// coordinates of xp nor any length-scale are consulted.
func (k Kernel) Diag(xp mat.Matrix) *mat.VecDense {
	n, _ := xp.Dims()
	return utils.Ones(n)
}

// Gram returns the matrix of k(xp[i], xq[j]; theta). Both point sets are
// divided by theta before the distance is taken; a theta of length 1 is
// shared by every dimension.
func (k Kernel) Gram(xp, xq mat.Matrix, theta []float64) *mat.Dense {
	r := Pairwise(Scale(xp, theta), Scale(xq, theta), k.metric)
	if r.IsEmpty() {
		return r
	}
	r.Apply(func(_, _ int, v float64) float64 {
		return k.profile(v)
	}, r)
	return r
}
