package kern

import (
	"math"
)

var _ Func = Matern32.Eval

// Matern32 is the Matérn 3/2 kernel (1 + r) exp(-r) on the Euclidean
// distance of the scaled points.
var Matern32 = NewKernel("matern3on2", Euclidean, matern32)

func matern32(r float64) float64 {
	return (1 + r) * math.Exp(-r)
}
