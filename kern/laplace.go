package kern

import (
	"math"
)

var _ Func = Laplace.Eval

// Laplace is the exponential kernel exp(-r) on the Euclidean distance of
// the scaled points. It coincides with the Matérn kernel of order 1/2.
var Laplace = NewKernel("laplace", Euclidean, laplace)

func laplace(r float64) float64 {
	return math.Exp(-r)
}
