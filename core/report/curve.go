package report

import (
	"image/color"

	"adaboost/common"
	"adaboost/core/ml"
	"adaboost/core/msgbus"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// CurvePlotter collects the cumulative ensemble accuracy of every round and
// saves it as a line plot once the run is final. The image format follows the
// file extension of Path.
type CurvePlotter struct {
	Path   string
	Width  vg.Length
	Height vg.Length

	log    common.Logger
	points plotter.XYs
	// standalone accuracy of each member, filled by the final report
	members plotter.XYs
}

func NewCurvePlotter(path string, log common.Logger) *CurvePlotter {
	if log == nil {
		log = common.GetLogger(common.MODULE_REPORT)
	}
	return &CurvePlotter{Path: path, Width: 6 * vg.Inch, Height: 4 * vg.Inch, log: log}
}

// Points returns the (members, accuracy) pairs collected so far.
func (c *CurvePlotter) Points() plotter.XYs {
	return append(plotter.XYs(nil), c.points...)
}

func (c *CurvePlotter) HandleMsgFromMsgBus(msg *msgbus.BusMessage) error {
	switch r := msg.Msg.(type) {
	case *ml.RoundReport:
		c.points = append(c.points, plotter.XY{X: float64(r.Members), Y: r.Accuracy})
	case *ml.FinalReport:
		c.members = c.members[:0]
		for i, acc := range r.MemberAccuracy {
			c.members = append(c.members, plotter.XY{X: float64(i + 1), Y: acc})
		}
		if err := c.Save(); err != nil {
			return err
		}
		c.log.Infof("saved accuracy curve to %s", c.Path)
	}
	return nil
}

func (c *CurvePlotter) Save() error {
	if len(c.points) == 0 {
		return errors.New("no rounds to plot")
	}
	p := plot.New()
	p.Title.Text = "AdaBoost training accuracy"
	p.X.Label.Text = "Models in ensemble"
	p.Y.Label.Text = "Accuracy"
	p.Y.Min, p.Y.Max = 0, 1

	l, err := plotter.NewLine(c.points)
	if err != nil {
		return errors.Wrap(err, "ensemble line")
	}
	l.Color = color.RGBA{R: 255, A: 255}
	l.LineStyle.Width = vg.Points(2)
	p.Add(l)
	p.Legend.Add("ensemble", l)

	if len(c.members) > 0 {
		s, err := plotter.NewScatter(c.members)
		if err != nil {
			return errors.Wrap(err, "member scatter")
		}
		s.Color = color.RGBA{B: 255, A: 255, R: 50, G: 50}
		s.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add("member", s)
	}

	if err := p.Save(c.Width, c.Height, c.Path); err != nil {
		return errors.Wrapf(err, "save plot %s", c.Path)
	}
	return nil
}
