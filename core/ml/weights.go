package ml

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// UniformDistribution returns n weights of 1/n.
func UniformDistribution(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0 / float64(n)
	}
	return w
}

// WeightedError predicts X with a fitted learner and sums the weights of the
// misclassified samples. miss[i] reports whether sample i was misclassified.
func WeightedError(l WeakLearner, X mat.Matrix, y []Label, weights []float64) (float64, []bool, error) {
	if len(y) != len(weights) {
		return 0, nil, errors.Wrapf(ErrShapeMismatch, "%d labels but %d weights", len(y), len(weights))
	}
	pred, err := l.Predict(X)
	if err != nil {
		return 0, nil, err
	}
	if len(pred) != len(y) {
		return 0, nil, errors.Wrapf(ErrShapeMismatch, "%d predictions for %d labels", len(pred), len(y))
	}

	miss := make([]bool, len(y))
	var e float64
	missed := 0
	for i := range y {
		if pred[i] != y[i] {
			miss[i] = true
			missed++
			e += weights[i]
		}
	}
	// all or nothing missed is exactly 1 or 0, whatever the float sum says
	switch missed {
	case 0:
		return 0, miss, nil
	case len(y):
		return 1, miss, nil
	}
	return math.Min(e, 1), miss, nil
}

// ClampError moves e into [eps, 1-eps]; eps <= 0 leaves e untouched.
func ClampError(e, eps float64) float64 {
	if eps <= 0 {
		return e
	}
	return math.Max(eps, math.Min(1-eps, e))
}

// ModelWeight is learningRate * 1/2 * ln((1-e)/e). A weighted error of
// exactly 0 or 1 has no finite weight and fails the round.
func ModelWeight(e, learningRate float64) (float64, error) {
	if math.IsNaN(e) || e <= 0 || e >= 1 {
		return 0, errors.Wrapf(ErrDegenerateWeightedError, "weighted error %v", e)
	}
	return learningRate * 0.5 * math.Log((1-e)/e), nil
}

// UpdateDistribution scales misclassified samples by exp(w), the others by
// exp(-w), and renormalizes. old is left untouched.
func UpdateDistribution(old []float64, miss []bool, w float64) ([]float64, error) {
	if len(old) != len(miss) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d weights but %d outcomes", len(old), len(miss))
	}
	up, down := math.Exp(w), math.Exp(-w)

	next := make([]float64, len(old))
	for i := range old {
		if miss[i] {
			next[i] = old[i] * up
		} else {
			next[i] = old[i] * down
		}
	}

	z := floats.Sum(next)
	if z <= 0 || math.IsNaN(z) || math.IsInf(z, 0) {
		return nil, errors.Wrapf(ErrInvalidWeightSum, "sum %v", z)
	}
	floats.Scale(1/z, next)
	return next, nil
}
