package kern

import (
	"errors"
)

var (
	ErrUnknownKernel     = errors.New("unknown kernel")
	ErrDuplicateKernel   = errors.New("kernel already registered")
	ErrEmptyTheta        = errors.New("theta is empty")
	ErrThetaLength       = errors.New("theta length does not match dimensionality")
	ErrDimensionMismatch = errors.New("point sets have different dimensionality")
	ErrNonPositiveScale  = errors.New("length-scale is not strictly positive")
)
