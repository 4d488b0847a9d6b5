// Package dataprep turns a CSV table into the numeric data set the booster
// trains on: string columns are one-hot encoded and the label column is
// mapped onto -1/+1.
package dataprep

import (
	"io"
	"os"
	"sort"

	"adaboost/common"
	"adaboost/core/ml"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrInvalidLabel = errors.New("invalid label column")
	ErrMissingValue = errors.New("missing value")
	ErrNoFeatures   = errors.New("no feature columns")
)

const DefaultLabelColumn = "Drug"

type LoadOptions struct {
	LabelColumn string
	Delimiter   rune
}

func DefaultLoadOptions() LoadOptions {
	return LoadOptions{LabelColumn: DefaultLabelColumn, Delimiter: ','}
}

// matrix exposes a numeric data frame as a gonum matrix.
type matrix struct {
	dataframe.DataFrame
}

func (m matrix) At(i, j int) float64 { return m.Elem(i, j).Float() }

func (m matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

func LoadFile(path string, opts LoadOptions) (*ml.DataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open data file %s", path)
	}
	defer f.Close()
	return LoadCSV(f, opts)
}

func LoadCSV(r io.Reader, opts LoadOptions) (*ml.DataSet, error) {
	log := common.GetLogger(common.MODULE_DATAPREP)
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	df := dataframe.ReadCSV(r, dataframe.HasHeader(true), dataframe.WithDelimiter(opts.Delimiter))
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "read csv")
	}
	for _, name := range df.Names() {
		if df.Col(name).HasNaN() {
			return nil, errors.Wrapf(ErrMissingValue, "column %s", name)
		}
	}

	if !hasColumn(df, opts.LabelColumn) {
		return nil, errors.Wrapf(ErrInvalidLabel, "no column %q", opts.LabelColumn)
	}
	y, err := EncodeLabels(df.Col(opts.LabelColumn))
	if err != nil {
		return nil, err
	}

	features, err := EncodeFeatures(df.Drop(opts.LabelColumn))
	if err != nil {
		return nil, err
	}

	ds := &ml.DataSet{
		X:        mat.DenseCopyOf(matrix{features}),
		Y:        y,
		Features: features.Names(),
	}
	log.Infof("loaded %d samples, %d features after encoding", features.Nrow(), features.Ncol())
	return ds, ds.Validate()
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// EncodeLabels maps a two-class column onto -1/+1. Numeric columns must hold
// 0/1 and are mapped as label*2-1, bool columns map true to +1, and a string
// column with two distinct values maps the smaller one to -1.
func EncodeLabels(s series.Series) ([]ml.Label, error) {
	y := make([]ml.Label, s.Len())
	switch s.Type() {
	case series.Int, series.Float, series.Bool:
		for i, v := range s.Float() {
			if v != 0 && v != 1 {
				return nil, errors.Wrapf(ErrInvalidLabel, "%s[%d] = %v, want 0 or 1", s.Name, i, v)
			}
			y[i] = ml.Label(int(v)*2 - 1)
		}
	default:
		records := s.Records()
		classes := distinct(records)
		if len(classes) != 2 {
			return nil, errors.Wrapf(ErrInvalidLabel, "%s has %d classes %v, want 2", s.Name, len(classes), classes)
		}
		for i, v := range records {
			if v == classes[1] {
				y[i] = ml.Positive
			} else {
				y[i] = ml.Negative
			}
		}
	}
	return y, nil
}

// EncodeFeatures keeps numeric and bool columns and appends one 0/1 column
// named <col>_<value> per category of every string column.
func EncodeFeatures(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	var numeric, dummies []series.Series
	for _, name := range df.Names() {
		col := df.Col(name)
		switch col.Type() {
		case series.Int, series.Float:
			numeric = append(numeric, col)
		case series.Bool:
			numeric = append(numeric, series.New(col.Float(), series.Float, name))
		default:
			dummies = append(dummies, oneHot(col)...)
		}
	}

	cols := append(numeric, dummies...)
	if len(cols) == 0 {
		return dataframe.DataFrame{}, ErrNoFeatures
	}
	out := dataframe.New(cols...)
	if out.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(out.Err, "encode features")
	}
	return out, nil
}

func oneHot(s series.Series) []series.Series {
	records := s.Records()
	var out []series.Series
	for _, category := range distinct(records) {
		flags := make([]int, len(records))
		for i, v := range records {
			if v == category {
				flags[i] = 1
			}
		}
		out = append(out, series.New(flags, series.Int, s.Name+"_"+category))
	}
	return out
}

func distinct(values []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
