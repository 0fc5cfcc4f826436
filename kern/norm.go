package kern

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultDims is the dimensionality assumed for an isotropic theta when
// the caller has nothing better to pass.
const DefaultDims = 1

var sqrt2Pi = math.Sqrt(2 * math.Pi)

// GaussianNorm returns prod_i sqrt(2π) theta_i, the constant that turns
// the Gaussian kernel into a normalised density. theta is broadcast
// against m dimensions: a single length-scale is repeated m times, and a
// theta of length m (or any length when m is 1) is used as is. A negative
// m panics with mat.ErrShape.
func GaussianNorm(theta []float64, m int) float64 {
	if m < 0 {
		panic(mat.ErrShape)
	}
	n := broadcast(len(theta), m)
	c := make([]float64, n)
	for i := range c {
		t := theta[0]
		if len(theta) > 1 {
			t = theta[i]
		}
		c[i] = sqrt2Pi * t
	}
	return floats.Prod(c)
}

// GaussianDensity returns the Gaussian Gram matrix divided by its
// normalising constant, so that each row is a normalised Gaussian density
// centred on a point of xq and evaluated at the points of xp.
func GaussianDensity(xp, xq mat.Matrix, theta []float64) *mat.Dense {
	g := Gaussian.Gram(xp, xq, theta)
	if g.IsEmpty() {
		return g
	}
	_, m := xp.Dims()
	g.Scale(1/GaussianNorm(theta, m), g)
	return g
}
