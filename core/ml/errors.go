package ml

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrShapeMismatch           = errors.New("shape mismatch")
	ErrDegenerateWeightedError = errors.New("degenerate weighted error")
	ErrInvalidWeightSum        = errors.New("invalid instance weight sum")
	ErrInvalidWeights          = errors.New("invalid instance weights")
	ErrInvalidConfig           = errors.New("invalid boost config")
	ErrNotFitted               = errors.New("learner is not fitted")
)

// checkFitArgs validates the shared preconditions of every weighted Fit.
func checkFitArgs(rows, n, nw int, weights []float64) error {
	if rows != n || n != nw {
		return errors.Wrapf(ErrShapeMismatch, "X has %d rows, y %d, weights %d", rows, n, nw)
	}
	if n == 0 {
		return errors.Wrap(ErrShapeMismatch, "no samples")
	}
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return errors.Wrapf(ErrInvalidWeights, "weight[%d] = %v", i, w)
		}
	}
	return nil
}
