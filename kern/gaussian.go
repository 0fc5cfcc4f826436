package kern

import (
	"math"
)

var _ Func = Gaussian.Eval

// Gaussian is the squared exponential kernel exp(-r²/2). Its profile is
// evaluated directly on the squared distance, no square root is taken.
var Gaussian = NewKernel("gaussian", SqEuclidean, gaussian)

func gaussian(r2 float64) float64 {
	return math.Exp(-0.5 * r2)
}
