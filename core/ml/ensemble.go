package ml

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

type Member struct {
	Learner WeakLearner
	Weight  float64
}

// Ensemble keeps its members in training order.
type Ensemble struct {
	members []Member
}

func (e *Ensemble) add(l WeakLearner, w float64) {
	e.members = append(e.members, Member{Learner: l, Weight: w})
}

func (e *Ensemble) Len() int { return len(e.members) }

func (e *Ensemble) Members() []Member {
	return append([]Member(nil), e.members...)
}

func (e *Ensemble) Weights() []float64 {
	ws := make([]float64, len(e.members))
	for i, m := range e.members {
		ws[i] = m.Weight
	}
	return ws
}

func (e *Ensemble) Predict(X mat.Matrix) ([]Label, error) {
	return e.PredictPrefix(len(e.members), X)
}

// PredictPrefix votes with the first k members. Rows whose weighted sum is
// not positive, including every row of an empty prefix, are Negative.
func (e *Ensemble) PredictPrefix(k int, X mat.Matrix) ([]Label, error) {
	if k < 0 || k > len(e.members) {
		return nil, errors.Wrapf(ErrShapeMismatch, "prefix %d of ensemble with %d members", k, len(e.members))
	}
	rows, _ := X.Dims()
	score := make([]float64, rows)
	for _, m := range e.members[:k] {
		pred, err := m.Learner.Predict(X)
		if err != nil {
			return nil, err
		}
		for i, p := range pred {
			score[i] += m.Weight * float64(p)
		}
	}
	return Sign(score), nil
}

func Sign(score []float64) []Label {
	out := make([]Label, len(score))
	for i, s := range score {
		if s > 0 {
			out[i] = Positive
		} else {
			out[i] = Negative
		}
	}
	return out
}
