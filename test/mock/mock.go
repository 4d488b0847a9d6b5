package mock

import (
	"fmt"
	"sync"

	"adaboost/core/ml"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MockLog keeps every formatted line so tests can inspect the output.
type MockLog struct {
	Name  string
	mutex sync.Mutex
	lines []string
	debug []bool
}

func (l *MockLog) record(line string) { l.add(line, false) }

func (l *MockLog) add(line string, debug bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.lines = append(l.lines, line)
	l.debug = append(l.debug, debug)
}

func (l *MockLog) Lines() []string {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return append([]string(nil), l.lines...)
}

// InfoLines drops the lines logged at debug level.
func (l *MockLog) InfoLines() []string {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	var lines []string
	for i, line := range l.lines {
		if !l.debug[i] {
			lines = append(lines, line)
		}
	}
	return lines
}

func (l *MockLog) Debug(args ...interface{}) { l.add(fmt.Sprint(args...), true) }

func (l *MockLog) Debugf(format string, args ...interface{}) {
	l.add(fmt.Sprintf(format, args...), true)
}

func (l *MockLog) Info(args ...interface{}) { l.record(fmt.Sprint(args...)) }

func (l *MockLog) Infof(format string, args ...interface{}) { l.record(fmt.Sprintf(format, args...)) }

func (l *MockLog) Warn(args ...interface{}) { l.record(fmt.Sprint(args...)) }

func (l *MockLog) Warnf(format string, args ...interface{}) { l.record(fmt.Sprintf(format, args...)) }

func (l *MockLog) Error(args ...interface{}) { l.record(fmt.Sprint(args...)) }

func (l *MockLog) Errorf(format string, args ...interface{}) { l.record(fmt.Sprintf(format, args...)) }

func GetMockLogger(name string) *MockLog {
	return &MockLog{Name: name}
}

// ScriptedLearner ignores its training data and predicts Labels row by row.
type ScriptedLearner struct {
	Kind    ml.Variant
	Labels  []ml.Label
	FitErr  error
	Fitted  bool
	Weights []float64 // weights seen by Fit
}

func (s *ScriptedLearner) Variant() ml.Variant { return s.Kind }

func (s *ScriptedLearner) Fit(X mat.Matrix, y []ml.Label, weights []float64) error {
	if s.FitErr != nil {
		return s.FitErr
	}
	s.Fitted = true
	s.Weights = append([]float64(nil), weights...)
	return nil
}

func (s *ScriptedLearner) Predict(X mat.Matrix) ([]ml.Label, error) {
	rows, _ := X.Dims()
	if rows != len(s.Labels) {
		return nil, errors.Wrapf(ml.ErrShapeMismatch, "scripted %d labels for %d rows", len(s.Labels), rows)
	}
	return append([]ml.Label(nil), s.Labels...), nil
}

// Observer records every report it receives.
type Observer struct {
	Rounds []*ml.RoundReport
	Final  *ml.FinalReport
}

func (o *Observer) OnRound(r *ml.RoundReport) { o.Rounds = append(o.Rounds, r) }

func (o *Observer) OnFinal(r *ml.FinalReport) { o.Final = r }
