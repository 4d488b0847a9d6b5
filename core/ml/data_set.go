package ml

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

type Label int

const (
	Positive Label = 1
	Negative Label = -1
)

func (l Label) String() string {
	if l == Positive {
		return "+1"
	}
	return "-1"
}

// DataSet is the numeric view handed to the booster: X is n x m, Y has n labels.
type DataSet struct {
	X        *mat.Dense
	Y        []Label
	Features []string
}

func NewDataSet(rows [][]float64, y []Label) (*DataSet, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "empty data set")
	}
	m := len(rows[0])
	data := make([]float64, 0, len(rows)*m)
	for i, r := range rows {
		if len(r) != m {
			return nil, errors.Wrapf(ErrShapeMismatch, "row %d has %d features, want %d", i, len(r), m)
		}
		data = append(data, r...)
	}
	ds := &DataSet{X: mat.NewDense(len(rows), m, data), Y: y}
	return ds, ds.Validate()
}

func (ds *DataSet) Samples() int {
	r, _ := ds.X.Dims()
	return r
}

func (ds *DataSet) Validate() error {
	if ds == nil || ds.X == nil {
		return errors.Wrap(ErrShapeMismatch, "nil feature matrix")
	}
	r, c := ds.X.Dims()
	if r == 0 || c == 0 {
		return errors.Wrapf(ErrShapeMismatch, "empty feature matrix %dx%d", r, c)
	}
	if r != len(ds.Y) {
		return errors.Wrapf(ErrShapeMismatch, "%d rows but %d labels", r, len(ds.Y))
	}
	if ds.Features != nil && len(ds.Features) != c {
		return errors.Wrapf(ErrShapeMismatch, "%d columns but %d feature names", c, len(ds.Features))
	}
	for i, y := range ds.Y {
		if y != Positive && y != Negative {
			return errors.Wrapf(ErrShapeMismatch, "label %d of sample %d is not -1/+1", y, i)
		}
	}
	return nil
}
