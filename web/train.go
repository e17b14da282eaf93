package web

import (
	"bytes"
	"fmt"
	"html/template"
	"image/color"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jnb666/perceptron/nnet"
	"github.com/jnb666/perceptron/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	emaRounds = 10
	// pixels per inch when sizing svg plots
	plotDPI = 96
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

var (
	insideColor  = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	outsideColor = color.RGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}
	wrongColor   = color.RGBA{R: 0xf4, G: 0x43, B: 0x36, A: 0xff}
	squareColor  = color.Black
)

type TrainPage struct {
	*Templates
	net *Network
}

// Row in the training stats table
type StatsRow struct {
	nnet.Stats
	Smoothed float64
}

// Base data for handler functions to perform network training and display the stats
func NewTrainPage(t *Templates, net *Network) *TrainPage {
	p := &TrainPage{net: net}
	p.Templates = t.Select("/train")
	for _, name := range []string{"start", "stop", "reset", "newdata"} {
		p.AddOption(Link{Name: name, Url: "/train/" + name})
	}
	return p
}

// Handler function for the train template
func (p *TrainPage) Base() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd := mux.Vars(r)["cmd"]
		switch cmd {
		case "start":
			p.net.Lock()
			p.net.Train()
			p.net.Unlock()
		case "stop":
			p.net.Stop()
		case "reset":
			p.net.Reset()
			p.Flash(w, r, "network weights reset")
		case "newdata":
			p.net.NewData()
			p.Flash(w, r, "generated %d new points", p.net.Conf.Points)
		default:
			p.net.Lock()
			defer p.net.Unlock()
			p.Heading = p.net.heading()
			p.Toplevel = true
			p.Exec(w, r, "train", p)
			return
		}
		http.Redirect(w, r, "/train/", http.StatusFound)
	}
}

// Handler function for the stats frame
func (p *TrainPage) Stats() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.net.Lock()
		defer p.net.Unlock()
		p.Toplevel = false
		p.Exec(w, r, "stats", p)
	}
}

// Handler function for websocket connection
func (p *TrainPage) Websocket() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("websocket upgrade:", err)
			return
		}
		p.net.Lock()
		if p.net.conn != nil {
			p.net.conn.Close()
		}
		p.net.conn = conn
		p.net.Unlock()
	}
}

func (p *TrainPage) Nodes() []nnet.Node {
	return p.net.Nodes[:]
}

func (p *TrainPage) Round() int { return p.net.Round }

func (p *TrainPage) Running() bool { return p.net.running }

func (p *TrainPage) Headers() []string {
	return nnet.StatsHeaders
}

// Accuracy on the full training set with the current weights
func (p *TrainPage) Accuracy() nnet.Stats {
	s := nnet.Stats{Round: p.net.Round}
	s.Correct, s.Accuracy = p.net.Accuracy(p.net.Data.Points)
	s.Errors = p.net.Data.Len() - s.Correct
	return s
}

// Most recent n rounds with exponential moving average of the accuracy, latest first.
func (p *TrainPage) LatestStats(n int) []StatsRow {
	all := p.net.test.Stats
	rows := make([]StatsRow, len(all))
	var avg stats.EMA
	for i, s := range all {
		avg = stats.EMA(avg.Add(s.Accuracy, emaRounds))
		rows[i] = StatsRow{Stats: s, Smoothed: float64(avg)}
	}
	res := []StatsRow{}
	for i := len(rows) - 1; i >= 0 && i >= len(rows)-n; i-- {
		res = append(res, rows[i])
	}
	return res
}

func (p *TrainPage) RunTime() string {
	last := p.net.test.Last()
	if last.Round == 0 {
		return ""
	}
	return fmt.Sprintf("run time: %s", last.Elapsed.Round(time.Millisecond))
}

func (p *TrainPage) History() []HistoryData {
	return p.net.History
}

func (p *TrainPage) HistorySummary() *HistorySummary {
	return summariseHistory(p.net.History)
}

// SVG plot of the training points, the target square and the learned edges
func (p *TrainPage) BoundaryPlot(width, height int) template.HTML {
	return writePlot(boundaryPlot(p.net.Network, p.net.Data, p.net.TestPoints()), width, height)
}

// SVG plot of accuracy and smoothed accuracy against round
func (p *TrainPage) AccuracyPlot(width, height int) template.HTML {
	plt := newPlot()
	plt.X.Label.Text = "round"
	var acc, avg plotter.XYs
	var ema stats.EMA
	for _, s := range p.net.test.Stats {
		ema = stats.EMA(ema.Add(s.Accuracy*100, emaRounds))
		acc = append(acc, plotter.XY{X: float64(s.Round), Y: s.Accuracy * 100})
		avg = append(avg, plotter.XY{X: float64(s.Round), Y: float64(ema)})
	}
	xmax := float64(len(acc))
	if xmax < 1 {
		xmax = 1
	}
	for i, pts := range []plotter.XYs{acc, avg} {
		if len(pts) == 0 {
			continue
		}
		line := newLinePlot(pts, i, 0, xmax, 0, 100)
		plt.Add(line)
		plt.Legend.Add([]string{"accuracy % ", "average % "}[i], line)
	}
	return writePlot(plt, width, height)
}

func boundaryPlot(net *nnet.Network, data *nnet.Dataset, points []TestPoint) *plot.Plot {
	plt := newPlot()
	var inside, outside plotter.XYs
	for _, pt := range data.Points {
		xy := plotter.XY{X: pt.X, Y: pt.Y}
		if pt.Class == 1 {
			inside = append(inside, xy)
		} else {
			outside = append(outside, xy)
		}
	}
	addScatter(plt, "inside", inside, insideColor, draw.CircleGlyph{}, 2)
	addScatter(plt, "outside", outside, outsideColor, draw.CircleGlyph{}, 2)

	var square plotter.XYs
	for _, pt := range data.Bounds().Outline() {
		square = append(square, plotter.XY{X: pt.X, Y: pt.Y})
	}
	if l, err := plotter.NewLine(square); err == nil {
		l.Width = vg.Points(2)
		l.Color = squareColor
		l.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		plt.Add(l)
		plt.Legend.Add("target", l)
	}
	if net.Round > 0 {
		for i, node := range net.Nodes {
			line := edgeLine(node)
			if line == nil {
				continue
			}
			if l, err := plotter.NewLine(line); err == nil {
				l.Width = vg.Points(1.5)
				l.Color = plotutil.Color(i + 2)
				plt.Add(l)
				plt.Legend.Add(node.Role.String(), l)
			}
		}
	}
	var right, wrong plotter.XYs
	for _, pt := range points {
		xy := plotter.XY{X: pt.X, Y: pt.Y}
		if pt.Correct() {
			right = append(right, xy)
		} else {
			wrong = append(wrong, xy)
		}
	}
	addScatter(plt, "test", right, squareColor, draw.PyramidGlyph{}, 5)
	addScatter(plt, "test (wrong)", wrong, wrongColor, draw.PyramidGlyph{}, 5)

	plt.X.Min, plt.X.Max = -1, 1
	plt.Y.Min, plt.Y.Max = -1, 1
	return plt
}

func addScatter(plt *plot.Plot, name string, pts plotter.XYs, col color.Color, shape draw.GlyphDrawer, radius float64) {
	if len(pts) == 0 {
		return
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		log.Println("plot error:", err)
		return
	}
	s.GlyphStyle.Color = col
	s.GlyphStyle.Shape = shape
	s.GlyphStyle.Radius = vg.Points(radius)
	plt.Add(s)
	plt.Legend.Add(name, s)
}

// Decision line where WeightX*x + WeightY*y + Bias = 0 across the plot area.
// Uses a vertical line if WeightY is zero, returns nil if both weights are zero.
func edgeLine(n nnet.Node) plotter.XYs {
	switch {
	case n.WeightY != 0:
		pts := make(plotter.XYs, 0, 21)
		for i := 0; i <= 20; i++ {
			x := -1 + float64(i)*0.1
			pts = append(pts, plotter.XY{X: x, Y: -(n.WeightX*x + n.Bias) / n.WeightY})
		}
		return pts
	case n.WeightX != 0:
		x := -n.Bias / n.WeightX
		return plotter.XYs{{X: x, Y: -1}, {X: x, Y: 1}}
	default:
		return nil
	}
}

func newPlot() *plot.Plot {
	p := plot.New()
	p.X.Padding, p.Y.Padding = 0, 0
	p.X.Tick.Label.Font.Size = vg.Points(10)
	p.Y.Tick.Label.Font.Size = vg.Points(10)
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(12)
	p.Add(plotter.NewGrid())
	return p
}

func writePlot(p *plot.Plot, w, h int) template.HTML {
	var buf bytes.Buffer
	writer, err := p.WriterTo(vg.Inch*vg.Length(w)/plotDPI, vg.Inch*vg.Length(h)/plotDPI, "svg")
	if err != nil {
		log.Println("error writing plot:", err)
		return ""
	}
	if _, err = writer.WriteTo(&buf); err != nil {
		log.Println("error writing plot:", err)
		return ""
	}
	return template.HTML(buf.String())
}

func newLinePlot(pts plotter.XYs, ix int, xmin, xmax, ymin, ymax float64) linePlot {
	l, err := plotter.NewLine(pts)
	if err != nil {
		log.Println("plot error:", err)
	}
	l.Width = 2
	l.Color = plotutil.Color(ix)
	return linePlot{Line: l, xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax}
}

// modified plotter.Line with a fixed scale
type linePlot struct {
	*plotter.Line
	xmin, xmax, ymin, ymax float64
}

func (l linePlot) DataRange() (xmin, xmax, ymin, ymax float64) {
	return l.xmin, l.xmax, l.ymin, l.ymax
}
