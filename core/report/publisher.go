package report

import (
	"adaboost/common"
	"adaboost/core/ml"
	"adaboost/core/msgbus"
)

// Publisher forwards booster diagnostics onto the message bus.
type Publisher struct {
	bus   msgbus.MessageBus
	runID string
}

func NewPublisher(bus msgbus.MessageBus, runID string) *Publisher {
	return &Publisher{bus: bus, runID: runID}
}

func (p *Publisher) OnRound(r *ml.RoundReport) {
	p.bus.Publish(p.runID, common.LocalBoostMsg_Round, r)
}

func (p *Publisher) OnFinal(r *ml.FinalReport) {
	p.bus.Publish(p.runID, common.LocalBoostMsg_Final, r)
}

// PublishFailure reports a run aborted by err.
func (p *Publisher) PublishFailure(err error) {
	p.bus.Publish(p.runID, common.LocalBoostMsg_Failure, err)
}

// PublishLoaded announces the data set a run trains on.
func (p *Publisher) PublishLoaded(ds *ml.DataSet) {
	p.bus.Publish(p.runID, common.LocalDataMsg_Loaded, ds)
}
