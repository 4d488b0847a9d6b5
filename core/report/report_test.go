package report

import (
	"os"
	"path/filepath"
	"testing"

	"adaboost/common"
	"adaboost/core/ml"
	"adaboost/core/msgbus"
	"adaboost/test/mock"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishRun(p *Publisher) {
	p.OnRound(&ml.RoundReport{Round: 0, Variant: ml.NaiveBayes, Members: 1, Accuracy: 0.75})
	p.OnRound(&ml.RoundReport{Round: 1, Variant: ml.DecisionStump, Members: 2, Accuracy: 0.8})
	p.OnFinal(&ml.FinalReport{
		Variants:       []ml.Variant{ml.NaiveBayes, ml.DecisionStump},
		MemberAccuracy: []float64{0.75, 0.7},
		Accuracy:       0.8,
	})
}

func TestLogSubscriber(t *testing.T) {
	logger := mock.GetMockLogger("report")
	bus := msgbus.NewMessageBus(mock.GetMockLogger("bus"))
	bus.Register(common.LocalBoostMsg, NewLogSubscriber(logger, false))

	publishRun(NewPublisher(bus, "test"))
	assert.Equal(t, []string{
		"NB",
		"Ensemble with 1 models, accuracy: 0.75",
		"DT",
		"Ensemble with 2 models, accuracy: 0.8",
		"Model 0, accuracy: 0.75",
		"Model 1, accuracy: 0.7",
		"Final ensemble accuracy: 0.8",
	}, logger.Lines())

	NewPublisher(bus, "test").PublishFailure(errors.New("degenerate"))
	lines := logger.Lines()
	assert.Equal(t, "[test] boosting failed: degenerate", lines[len(lines)-1])
}

func TestLogSubscriberShowPredicts(t *testing.T) {
	logger := mock.GetMockLogger("report")
	bus := msgbus.NewMessageBus(mock.GetMockLogger("bus"))
	bus.Register(common.LocalBoostMsg, NewLogSubscriber(logger, true))

	NewPublisher(bus, "test").OnRound(&ml.RoundReport{
		Variant:     ml.DecisionStump,
		Members:     1,
		Predictions: []ml.Label{ml.Positive, ml.Negative},
		Accuracy:    0.5,
	})
	assert.Equal(t, []string{
		"DT",
		"[+1 -1]",
		"Ensemble with 1 models, accuracy: 0.5",
	}, logger.InfoLines())
}

func TestLogSubscriberDataLoaded(t *testing.T) {
	logger := mock.GetMockLogger("report")
	bus := msgbus.NewMessageBus(mock.GetMockLogger("bus"))
	sub := NewLogSubscriber(logger, false)
	bus.Register(common.LocalBoostMsg, sub)
	bus.Register(common.LocalDataMsg, sub)

	ds, err := ml.NewDataSet([][]float64{{1, 2}, {3, 4}, {5, 6}}, []ml.Label{ml.Positive, ml.Negative, ml.Positive})
	require.NoError(t, err)
	ds.Features = []string{"Age", "Na_to_K"}
	NewPublisher(bus, "test").PublishLoaded(ds)
	assert.Equal(t, []string{"[test] loaded 3 samples with 2 features"}, logger.InfoLines())
}

func TestLogSubscriberRejectsPayload(t *testing.T) {
	s := NewLogSubscriber(mock.GetMockLogger("report"), true)
	err := s.HandleMsgFromMsgBus(&msgbus.BusMessage{MsgType: common.LocalBoostMsg_Round, Msg: "round"})
	assert.Error(t, err)
	err = s.HandleMsgFromMsgBus(&msgbus.BusMessage{MsgType: common.LocalDataMsg_Loaded})
	assert.Error(t, err)
}

func TestCurvePlotter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")
	c := NewCurvePlotter(path, mock.GetMockLogger("report"))
	bus := msgbus.NewMessageBus(mock.GetMockLogger("bus"))
	bus.Register(common.LocalBoostMsg, c)

	publishRun(NewPublisher(bus, "test"))
	pts := c.Points()
	require.Len(t, pts, 2)
	assert.Equal(t, 2.0, pts[1].X)
	assert.Equal(t, 0.8, pts[1].Y)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Error(t, NewCurvePlotter(path, mock.GetMockLogger("report")).Save())
}
