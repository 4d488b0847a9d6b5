package node

import (
	"fmt"
	"time"

	"adaboost/common"
	"adaboost/core/config"
	"adaboost/core/dataprep"
	"adaboost/core/ml"
	"adaboost/core/msgbus"
	"adaboost/core/report"

	"github.com/pkg/errors"
)

// BoostNode wires one training run: config, logging, data, booster and the
// diagnostic sinks behind the message bus.
type BoostNode struct {
	conf      *config.LocalConfig
	log       common.Logger
	msgBus    msgbus.MessageBus
	publisher *report.Publisher
	booster   *ml.Booster
	data      *ml.DataSet
	runID     string

	Ensemble *ml.Ensemble
}

func (n *BoostNode) Init(c *config.LocalConfig) error {
	n.conf = c

	logConfig, err := c.LogConfig()
	if err != nil {
		return fmt.Errorf("get log config err: %s", err)
	}
	common.SetLogConfig(logConfig)
	n.log = common.GetLogger(common.MODULE_NODE)
	n.runID = fmt.Sprintf("run-%d", time.Now().Unix())

	//the bus must exist before any sink registers on it
	n.msgBus = msgbus.NewMessageBus(nil)
	logSub := report.NewLogSubscriber(nil, c.Report.ShowPredicts)
	n.msgBus.Register(common.LocalBoostMsg, logSub)
	n.msgBus.Register(common.LocalDataMsg, logSub)
	if c.Report.Plot != "" {
		n.msgBus.Register(common.LocalBoostMsg, report.NewCurvePlotter(c.Report.Plot, nil))
	}
	n.publisher = report.NewPublisher(n.msgBus, n.runID)

	opts, err := c.LoadOptions()
	if err != nil {
		return fmt.Errorf("get load options err: %s", err)
	}
	n.data, err = dataprep.LoadFile(c.Data.Path, opts)
	if err != nil {
		return errors.WithMessage(err, "load data")
	}
	n.publisher.PublishLoaded(n.data)

	choose, err := c.VariantChooser()
	if err != nil {
		return errors.WithMessage(err, "variant chooser")
	}
	n.booster, err = ml.NewBooster(c.BoostConfig(), choose,
		ml.WithObserver(n.publisher), ml.WithLogger(common.GetLogger(common.MODULE_BOOST)))
	if err != nil {
		return errors.WithMessage(err, "new booster")
	}
	return nil
}

// Start trains the ensemble and evaluates it on the training data.
func (n *BoostNode) Start() error {
	defer common.SyncLoggers()
	if n.booster == nil {
		return errors.New("node is not initialized")
	}

	n.log.Infof("[%s] training on %s", n.runID, n.conf.Data.Path)
	ens, err := n.booster.Boosting(n.data)
	if err != nil {
		n.publisher.PublishFailure(err)
		return err
	}
	n.Ensemble = ens
	return nil
}
