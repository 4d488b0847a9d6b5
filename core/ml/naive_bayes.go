package ml

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// varSmoothing is the share of the largest feature variance added to every
// per-class variance.
const varSmoothing = 1e-9

// GaussianNB is a weighted Gaussian naive Bayes classifier over -1/+1 labels.
type GaussianNB struct {
	classes  []Label
	logPrior []float64
	theta    [][]float64 // per class feature means
	sigma    [][]float64 // per class feature variances
}

func (nb *GaussianNB) Variant() Variant { return NaiveBayes }

func (nb *GaussianNB) Fit(X mat.Matrix, y []Label, weights []float64) error {
	rows, cols := X.Dims()
	if err := checkFitArgs(rows, len(y), len(weights), weights); err != nil {
		return err
	}

	epsilon := 0.0
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, X)
		epsilon = math.Max(epsilon, stat.PopVariance(col, nil))
	}
	epsilon *= varSmoothing
	if epsilon == 0 {
		// all features constant, keep variances strictly positive
		epsilon = varSmoothing
	}

	nb.classes, nb.logPrior, nb.theta, nb.sigma = nil, nil, nil, nil
	var counts []float64
	for _, c := range []Label{Negative, Positive} {
		var idx []int
		for i := range y {
			if y[i] == c {
				idx = append(idx, i)
			}
		}
		cw := make([]float64, len(idx))
		for k, i := range idx {
			cw[k] = weights[i]
		}
		count := floats.Sum(cw)
		if count <= 0 {
			continue
		}

		theta := make([]float64, cols)
		sigma := make([]float64, cols)
		xs := make([]float64, len(idx))
		for j := 0; j < cols; j++ {
			for k, i := range idx {
				xs[k] = X.At(i, j)
			}
			theta[j], sigma[j] = stat.PopMeanVariance(xs, cw)
			sigma[j] += epsilon
		}
		nb.classes = append(nb.classes, c)
		nb.theta = append(nb.theta, theta)
		nb.sigma = append(nb.sigma, sigma)
		counts = append(counts, count)
	}
	if len(nb.classes) == 0 {
		return errors.Wrap(ErrInvalidWeightSum, "naive bayes: no class carries weight")
	}

	total := floats.Sum(counts)
	nb.logPrior = make([]float64, len(counts))
	for k, c := range counts {
		nb.logPrior[k] = math.Log(c / total)
	}
	return nil
}

// jointLogLikelihood of row x under class k.
func (nb *GaussianNB) jointLogLikelihood(k int, x []float64) float64 {
	jll := nb.logPrior[k]
	for j, v := range x {
		s := nb.sigma[k][j]
		d := v - nb.theta[k][j]
		jll -= 0.5*math.Log(2*math.Pi*s) + 0.5*d*d/s
	}
	return jll
}

func (nb *GaussianNB) Predict(X mat.Matrix) ([]Label, error) {
	if len(nb.classes) == 0 {
		return nil, ErrNotFitted
	}
	rows, cols := X.Dims()
	if cols != len(nb.theta[0]) {
		return nil, errors.Wrapf(ErrShapeMismatch, "naive bayes fitted on %d features, got %d", len(nb.theta[0]), cols)
	}

	out := make([]Label, rows)
	x := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(x, i, X)
		best, bestJLL := 0, math.Inf(-1)
		for k := range nb.classes {
			// strict comparison keeps Negative on ties
			if jll := nb.jointLogLikelihood(k, x); jll > bestJLL {
				best, bestJLL = k, jll
			}
		}
		out[i] = nb.classes[best]
	}
	return out, nil
}
