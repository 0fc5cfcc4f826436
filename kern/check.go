package kern

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Check reports whether a kernel evaluation on these arguments is well
// formed. The kernels never call it; it exists for callers that want to
// reject bad input at their boundary instead of getting a shape panic or
// non-finite entries back.
func Check(xp mat.Matrix, q Operand, theta []float64) error {
	if !q.Present() {
		return nil
	}
	_, m := xp.Dims()
	if q.Points() != nil {
		if _, mq := q.Points().Dims(); mq != m {
			return fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, m, mq)
		}
	}
	if len(theta) == 0 {
		return ErrEmptyTheta
	}
	if len(theta) != 1 && len(theta) != m {
		return fmt.Errorf("%w: got %d, want 1 or %d", ErrThetaLength, len(theta), m)
	}
	for i, t := range theta {
		if !(t > 0) {
			return fmt.Errorf("%w: theta[%d] = %v", ErrNonPositiveScale, i, t)
		}
	}
	return nil
}
