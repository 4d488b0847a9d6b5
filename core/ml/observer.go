package ml

// RoundReport describes the ensemble right after round Round was appended.
type RoundReport struct {
	Round         int
	Variant       Variant
	WeightedError float64
	ModelWeight   float64
	Members       int
	Predictions   []Label // vote of the first Members members
	Accuracy      float64 // on the training data
}

type FinalReport struct {
	Variants       []Variant
	MemberAccuracy []float64 // standalone accuracy of each member
	Predictions    []Label
	Accuracy       float64
}

// RoundObserver receives diagnostics. It must not influence training.
type RoundObserver interface {
	OnRound(r *RoundReport)
	OnFinal(r *FinalReport)
}

type nopObserver struct{}

func (nopObserver) OnRound(*RoundReport) {}
func (nopObserver) OnFinal(*FinalReport) {}

// Observers fans reports out in order.
type Observers []RoundObserver

func (obs Observers) OnRound(r *RoundReport) {
	for _, o := range obs {
		o.OnRound(r)
	}
}

func (obs Observers) OnFinal(r *FinalReport) {
	for _, o := range obs {
		o.OnFinal(r)
	}
}
