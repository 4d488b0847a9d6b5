package ml

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"
)

type Variant int

const (
	NaiveBayes Variant = iota
	DecisionStump
)

var Variant_Name = map[Variant]string{
	NaiveBayes:    "NB",
	DecisionStump: "DT",
}

func (v Variant) String() string {
	if name, ok := Variant_Name[v]; ok {
		return name
	}
	return "unknown"
}

// WeakLearner is fitted once with instance weights and then only queried.
type WeakLearner interface {
	Variant() Variant
	Fit(X mat.Matrix, y []Label, weights []float64) error
	Predict(X mat.Matrix) ([]Label, error)
}

// NewWeakLearner returns an unfitted learner of the given variant.
func NewWeakLearner(v Variant) WeakLearner {
	switch v {
	case DecisionStump:
		return &Stump{}
	default:
		return &GaussianNB{}
	}
}

// VariantChooser picks the learner variant of the next round.
type VariantChooser func() Variant

// NewRandomChooser flips a fair coin per round. seed 0 seeds from the clock.
func NewRandomChooser(seed int64) VariantChooser {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	return func() Variant {
		if rnd.Intn(2) == 1 {
			return NaiveBayes
		}
		return DecisionStump
	}
}

// SequenceChooser replays vs cyclically.
func SequenceChooser(vs ...Variant) VariantChooser {
	if len(vs) == 0 {
		vs = []Variant{NaiveBayes}
	}
	i := 0
	return func() Variant {
		v := vs[i%len(vs)]
		i++
		return v
	}
}
