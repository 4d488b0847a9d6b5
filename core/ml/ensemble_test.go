package ml

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// constLearner predicts the same fixed labels for any X with matching rows.
type constLearner []Label

func (c constLearner) Variant() Variant                         { return NaiveBayes }
func (c constLearner) Fit(mat.Matrix, []Label, []float64) error { return nil }
func (c constLearner) Predict(X mat.Matrix) ([]Label, error)    { return append([]Label(nil), c...), nil }

func TestEnsemblePredict(t *testing.T) {
	X := mat.NewDense(3, 1, nil)
	e := &Ensemble{}
	e.add(constLearner{Positive, Positive, Negative}, 0.3)
	e.add(constLearner{Negative, Positive, Positive}, 0.2)
	e.add(constLearner{Negative, Negative, Positive}, 0.4)

	pred, err := e.Predict(X)
	require.NoError(t, err)
	// 0.3-0.2-0.4, 0.3+0.2-0.4, -0.3+0.2+0.4
	assert.Equal(t, []Label{Negative, Positive, Positive}, pred)

	again, err := e.Predict(X)
	require.NoError(t, err)
	assert.Equal(t, pred, again)

	pred, err = e.PredictPrefix(2, X)
	require.NoError(t, err)
	assert.Equal(t, []Label{Positive, Positive, Negative}, pred)

	pred, err = e.PredictPrefix(0, X)
	require.NoError(t, err)
	assert.Equal(t, []Label{Negative, Negative, Negative}, pred)

	_, err = e.PredictPrefix(4, X)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	assert.Equal(t, []float64{0.3, 0.2, 0.4}, e.Weights())
	assert.Equal(t, 3, e.Len())
}

func TestEnsembleNegativeAndZeroWeights(t *testing.T) {
	X := mat.NewDense(2, 1, nil)
	e := &Ensemble{}
	e.add(constLearner{Positive, Negative}, -0.5)

	pred, err := e.Predict(X)
	require.NoError(t, err)
	assert.Equal(t, []Label{Negative, Positive}, pred)

	// a zero weight member adds nothing; a zero sum is a tie and votes Negative
	z := &Ensemble{}
	z.add(constLearner{Positive, Positive}, 0)
	pred, err = z.Predict(X)
	require.NoError(t, err)
	assert.Equal(t, []Label{Negative, Negative}, pred)
}

func TestAccuracy(t *testing.T) {
	acc, err := Accuracy([]Label{1, -1, 1, 1}, []Label{1, 1, 1, -1})
	require.NoError(t, err)
	assert.Equal(t, 0.5, acc)

	_, err = Accuracy([]Label{1}, nil)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestDataSetValidate(t *testing.T) {
	_, err := NewDataSet(nil, nil)
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	_, err = NewDataSet([][]float64{{1, 2}, {3}}, []Label{1, -1})
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	_, err = NewDataSet([][]float64{{1}, {2}}, []Label{1, 0})
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	ds, err := NewDataSet([][]float64{{1}, {2}}, []Label{1, -1})
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Samples())
}
