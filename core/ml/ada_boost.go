package ml

import (
	"fmt"

	"adaboost/common"

	"github.com/pkg/errors"
)

const (
	DefaultEnsembleSize = 10
	DefaultLearningRate = 0.1
)

type BoostConfig struct {
	EnsembleSize int
	LearningRate float64
	// ErrorClamp > 0 clamps the weighted error into [ErrorClamp, 1-ErrorClamp]
	// instead of failing on a perfect or perfectly wrong learner.
	ErrorClamp float64
}

func DefaultBoostConfig() BoostConfig {
	return BoostConfig{EnsembleSize: DefaultEnsembleSize, LearningRate: DefaultLearningRate}
}

func (c BoostConfig) Validate() error {
	if c.EnsembleSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "ensemble size %d", c.EnsembleSize)
	}
	if !(c.LearningRate > 0) {
		return errors.Wrapf(ErrInvalidConfig, "learning rate %v", c.LearningRate)
	}
	if c.ErrorClamp < 0 || c.ErrorClamp >= 0.5 {
		return errors.Wrapf(ErrInvalidConfig, "error clamp %v", c.ErrorClamp)
	}
	return nil
}

type BoostState int

const (
	Initializing BoostState = iota
	RoundInProgress
	Finalized
	Failed
)

var BoostState_Name = map[BoostState]string{
	Initializing:    "Initializing",
	RoundInProgress: "RoundInProgress",
	Finalized:       "Finalized",
	Failed:          "Failed",
}

func (s BoostState) String() string { return BoostState_Name[s] }

type Option func(*Booster)

func WithLogger(l common.Logger) Option {
	return func(b *Booster) { b.log = l }
}

func WithObserver(o RoundObserver) Option {
	return func(b *Booster) { b.observer = o }
}

// WithLearnerFactory replaces NewWeakLearner.
func WithLearnerFactory(f func(Variant) WeakLearner) Option {
	return func(b *Booster) { b.newLearner = f }
}

// Booster runs the boosting rounds. A Booster is single use.
type Booster struct {
	conf       BoostConfig
	choose     VariantChooser
	newLearner func(Variant) WeakLearner
	log        common.Logger
	observer   RoundObserver

	state    BoostState
	round    int
	alphas   []float64 // instance weight distribution
	ensemble *Ensemble
}

func NewBooster(conf BoostConfig, choose VariantChooser, opts ...Option) (*Booster, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if choose == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "nil variant chooser")
	}
	b := &Booster{conf: conf, choose: choose, newLearner: NewWeakLearner, observer: nopObserver{}}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = common.GetLogger(common.MODULE_BOOST)
	}
	return b, nil
}

func (b *Booster) State() BoostState { return b.state }

func (b *Booster) Round() int { return b.round }

// Distribution returns a copy of the current instance weights.
func (b *Booster) Distribution() []float64 {
	return append([]float64(nil), b.alphas...)
}

// Boosting trains exactly conf.EnsembleSize members on ds. Any error is fatal
// for the run and leaves the booster in the Failed state.
func (b *Booster) Boosting(ds *DataSet) (*Ensemble, error) {
	if b.state != Initializing || b.ensemble != nil {
		return nil, errors.Errorf("booster already ran, state %s", b.state)
	}
	if err := ds.Validate(); err != nil {
		b.state = Failed
		return nil, err
	}

	b.alphas = UniformDistribution(ds.Samples())
	b.ensemble = &Ensemble{}
	b.log.Infof("boosting %d rounds over %d samples, learning rate %v",
		b.conf.EnsembleSize, ds.Samples(), b.conf.LearningRate)

	for b.round = 0; b.round < b.conf.EnsembleSize; b.round++ {
		b.state = RoundInProgress
		if err := b.boostRound(ds); err != nil {
			b.state = Failed
			b.log.Errorf("round %d failed: %s", b.round, err)
			return nil, errors.WithMessage(err, fmt.Sprintf("round %d", b.round))
		}
	}

	final, err := b.finalReport(ds)
	if err != nil {
		b.state = Failed
		return nil, err
	}
	b.state = Finalized
	b.observer.OnFinal(final)
	return b.ensemble, nil
}

func (b *Booster) boostRound(ds *DataSet) error {
	variant := b.choose()
	learner := b.newLearner(variant)
	if err := learner.Fit(ds.X, ds.Y, b.alphas); err != nil {
		return errors.WithMessage(err, "fit "+variant.String())
	}

	e, miss, err := WeightedError(learner, ds.X, ds.Y, b.alphas)
	if err != nil {
		return err
	}
	w, err := ModelWeight(ClampError(e, b.conf.ErrorClamp), b.conf.LearningRate)
	if err != nil {
		return err
	}
	alphas, err := UpdateDistribution(b.alphas, miss, w)
	if err != nil {
		return err
	}

	b.alphas = alphas
	b.ensemble.add(learner, w)

	pred, err := b.ensemble.Predict(ds.X)
	if err != nil {
		return err
	}
	acc, err := Accuracy(ds.Y, pred)
	if err != nil {
		return err
	}
	b.log.Debugf("round: %d, variant: %s, e: %.5f, w: %.5f, accuracy: %.5f", b.round, variant, e, w, acc)

	b.observer.OnRound(&RoundReport{
		Round:         b.round,
		Variant:       variant,
		WeightedError: e,
		ModelWeight:   w,
		Members:       b.ensemble.Len(),
		Predictions:   pred,
		Accuracy:      acc,
	})
	return nil
}

func (b *Booster) finalReport(ds *DataSet) (*FinalReport, error) {
	report := &FinalReport{}
	for _, m := range b.ensemble.members {
		pred, err := m.Learner.Predict(ds.X)
		if err != nil {
			return nil, err
		}
		acc, err := Accuracy(ds.Y, pred)
		if err != nil {
			return nil, err
		}
		report.Variants = append(report.Variants, m.Learner.Variant())
		report.MemberAccuracy = append(report.MemberAccuracy, acc)
	}

	pred, err := b.ensemble.Predict(ds.X)
	if err != nil {
		return nil, err
	}
	report.Predictions = pred
	report.Accuracy, err = Accuracy(ds.Y, pred)
	return report, err
}
