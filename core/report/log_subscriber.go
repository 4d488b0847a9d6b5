package report

import (
	"adaboost/common"
	"adaboost/core/ml"
	"adaboost/core/msgbus"

	"github.com/pkg/errors"
)

// LogSubscriber prints the training diagnostics: the chosen learner and the
// ensemble accuracy per round, then every member's own accuracy.
type LogSubscriber struct {
	log          common.Logger
	showPredicts bool
}

func NewLogSubscriber(log common.Logger, showPredicts bool) *LogSubscriber {
	if log == nil {
		log = common.GetLogger(common.MODULE_REPORT)
	}
	return &LogSubscriber{log: log, showPredicts: showPredicts}
}

func (s *LogSubscriber) HandleMsgFromMsgBus(msg *msgbus.BusMessage) error {
	switch msg.MsgType {
	case common.LocalBoostMsg_Round:
		r, ok := msg.Msg.(*ml.RoundReport)
		if !ok {
			return errors.Errorf("invalid round report %T", msg.Msg)
		}
		s.log.Info(r.Variant)
		if s.showPredicts {
			s.log.Infof("%v", r.Predictions)
		}
		s.log.Infof("Ensemble with %d models, accuracy: %v", r.Members, r.Accuracy)
	case common.LocalBoostMsg_Final:
		r, ok := msg.Msg.(*ml.FinalReport)
		if !ok {
			return errors.Errorf("invalid final report %T", msg.Msg)
		}
		for i, acc := range r.MemberAccuracy {
			s.log.Infof("Model %d, accuracy: %v", i, acc)
		}
		s.log.Infof("Final ensemble accuracy: %v", r.Accuracy)
	case common.LocalDataMsg_Loaded:
		ds, ok := msg.Msg.(*ml.DataSet)
		if !ok {
			return errors.Errorf("invalid data set %T", msg.Msg)
		}
		s.log.Infof("[%s] loaded %d samples with %d features", msg.RunID, ds.Samples(), len(ds.Features))
	case common.LocalBoostMsg_Failure:
		s.log.Errorf("[%s] boosting failed: %v", msg.RunID, msg.Msg)
	default:
		return errors.Errorf("unknown msg type %s", msg.MsgType)
	}
	return nil
}
