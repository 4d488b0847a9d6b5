package ml

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// featureThreshold is the smallest gap between two values that can be split.
const featureThreshold = 1e-7

// Stump is a depth-one decision tree grown with the weighted Gini criterion.
type Stump struct {
	Feature     int
	Threshold   float64
	Left, Right Label
	Split       bool

	features int
}

func (s *Stump) Variant() Variant { return DecisionStump }

// classWeights holds the summed weight of negative and positive samples.
type classWeights struct{ neg, pos float64 }

func (cw *classWeights) add(y Label, w float64) {
	if y == Positive {
		cw.pos += w
	} else {
		cw.neg += w
	}
}

func (cw classWeights) total() float64 { return cw.neg + cw.pos }

// gini is the child's impurity scaled by its weight.
func (cw classWeights) gini() float64 {
	t := cw.total()
	if t <= 0 {
		return 0
	}
	pn, pp := cw.neg/t, cw.pos/t
	return t * (1 - pn*pn - pp*pp)
}

func (cw classWeights) majority() Label {
	if cw.pos > cw.neg {
		return Positive
	}
	return Negative
}

func (s *Stump) Fit(X mat.Matrix, y []Label, weights []float64) error {
	rows, cols := X.Dims()
	if err := checkFitArgs(rows, len(y), len(weights), weights); err != nil {
		return err
	}
	s.features = cols

	var all classWeights
	for i := range y {
		all.add(y[i], weights[i])
	}
	if all.total() <= 0 {
		return errors.Wrap(ErrInvalidWeightSum, "stump: samples carry no weight")
	}
	s.Split, s.Left, s.Right = false, all.majority(), all.majority()
	if all.gini() <= 0 {
		return nil
	}

	best := all.gini()
	order := make([]int, rows)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, X)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool { return col[order[a]] < col[order[b]] })

		var left classWeights
		for k := 0; k < rows-1; k++ {
			i, next := order[k], order[k+1]
			left.add(y[i], weights[i])
			if col[next] <= col[i]+featureThreshold {
				continue
			}
			right := classWeights{neg: all.neg - left.neg, pos: all.pos - left.pos}
			impurity := left.gini() + right.gini()
			if !s.Split || impurity < best {
				best = impurity
				s.Split = true
				s.Feature = j
				s.Threshold = col[i]/2 + col[next]/2
				if s.Threshold == col[next] {
					s.Threshold = col[i]
				}
				s.Left, s.Right = left.majority(), right.majority()
			}
		}
	}
	return nil
}

func (s *Stump) Predict(X mat.Matrix) ([]Label, error) {
	if s.features == 0 {
		return nil, ErrNotFitted
	}
	rows, cols := X.Dims()
	if cols != s.features {
		return nil, errors.Wrapf(ErrShapeMismatch, "stump fitted on %d features, got %d", s.features, cols)
	}
	out := make([]Label, rows)
	for i := range out {
		if !s.Split || X.At(i, s.Feature) <= s.Threshold {
			out[i] = s.Left
		} else {
			out[i] = s.Right
		}
	}
	return out, nil
}
