// generateFloorPlan.go
package main

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// maxTickLabels bounds the labelled ticks per axis; the rest stay as minor marks.
const maxTickLabels = 10

// renderFloorPlan writes a top-down PNG of one figure. Time is dropped, so
// path segments become arrows on the x/y plane.
func renderFloorPlan(w io.Writer, fig Figure, style Style) error {
	p, err := newFloorPlan(fig, style)
	if err != nil {
		return fmt.Errorf("build floor plan for %s: %w", fig.Title, err)
	}
	size := vg.Length(style.PlanInches) * vg.Inch
	wt, err := p.WriterTo(size, size, "png")
	if err != nil {
		return fmt.Errorf("create canvas for %s: %w", fig.Title, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write floor plan for %s: %w", fig.Title, err)
	}
	return nil
}

func newFloorPlan(fig Figure, style Style) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (stage %d)", fig.Title, fig.Stage.Value)
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	overlay, err := newArrows(fig.Overlay, 1, false)
	if err != nil {
		return nil, err
	}
	paths, err := newArrows(fig.Segments, style.SegmentWidth, true)
	if err != nil {
		return nil, err
	}
	p.Add(overlay, paths)

	for _, group := range [][]Marker{fig.Elevators, fig.Bins, fig.Robots} {
		if len(group) == 0 {
			continue
		}
		plotters, err := markerPlotters(group)
		if err != nil {
			return nil, err
		}
		p.Add(plotters...)
	}

	p.X.Min, p.X.Max = planLimits(p.X.Min, p.X.Max, fig.Ranges.XTicks)
	p.Y.Min, p.Y.Max = planLimits(p.Y.Min, p.Y.Max, fig.Ranges.YTicks)
	p.X.Tick.Marker = constantTicks(fig.Ranges.XTicks)
	p.Y.Tick.Marker = constantTicks(fig.Ranges.YTicks)
	return p, nil
}

// planLimits widens the data range to cover the shared ticks, starting at 0.
func planLimits(lo, hi float64, ticks []float64) (float64, float64) {
	lo = math.Min(lo, 0)
	hi = math.Max(hi, lastTick(ticks))
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi <= lo {
		return 0, 1
	}
	return lo, hi
}

// tickStep is the label stride that keeps n unit ticks under maxTickLabels.
func tickStep(n int) int {
	if n <= maxTickLabels {
		return 1
	}
	return (n + maxTickLabels - 1) / maxTickLabels
}

func constantTicks(values []float64) plot.ConstantTicks {
	step := tickStep(len(values))
	ticks := make(plot.ConstantTicks, 0, len(values))
	for i, v := range values {
		label := ""
		if i%step == 0 {
			label = formatNumber(v)
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: label})
	}
	return ticks
}

// markerPlotters draws one marker group as glyphs plus their id labels.
func markerPlotters(markers []Marker) ([]plot.Plotter, error) {
	ms := markers[0].Style
	c, err := parseColor(ms.Color)
	if err != nil {
		return nil, err
	}

	xys := make(plotter.XYs, len(markers))
	labels := make([]string, len(markers))
	for i, m := range markers {
		xys[i] = plotter.XY{X: m.Pos.X, Y: m.Pos.Y}
		labels[i] = m.Label
	}

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle = draw.GlyphStyle{
		Color:  c,
		Radius: vg.Points(ms.Size) / 2,
		Shape:  glyphShape(ms.Symbol),
	}

	lb, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	if !ms.CenterLabel {
		lb.Offset = vg.Point{X: sc.GlyphStyle.Radius, Y: sc.GlyphStyle.Radius}
		return []plot.Plotter{sc, lb}, nil
	}
	for i := range lb.TextStyle {
		lb.TextStyle[i].XAlign = draw.XCenter
		lb.TextStyle[i].YAlign = draw.YCenter
	}
	return []plot.Plotter{sc, lb}, nil
}

func glyphShape(symbol string) draw.GlyphDrawer {
	switch symbol {
	case "triangle":
		return draw.TriangleGlyph{}
	case "rect", "square":
		return draw.BoxGlyph{}
	default:
		return draw.CircleGlyph{}
	}
}

// --- Arrows ---

// arrows is a plot.Plotter drawing directed segments on the x/y plane.
type arrows struct {
	segs   []Segment
	colors []color.Color
	width  vg.Length
	heads  bool
}

func newArrows(segs []Segment, width float64, heads bool) (*arrows, error) {
	a := &arrows{segs: segs, width: vg.Length(width), heads: heads}
	for _, s := range segs {
		c, err := parseColor(s.Color)
		if err != nil {
			return nil, err
		}
		a.colors = append(a.colors, c)
	}
	return a, nil
}

func (a *arrows) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	headLen := 4 * a.width
	for i, s := range a.segs {
		from := vg.Point{X: trX(s.From.X), Y: trY(s.From.Y)}
		to := vg.Point{X: trX(s.To.X), Y: trY(s.To.Y)}
		sty := draw.LineStyle{Color: a.colors[i], Width: a.width}
		c.StrokeLines(sty, c.ClipLinesXY([]vg.Point{from, to})...)

		if !a.heads || !c.Contains(to) {
			continue
		}
		dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
		n := math.Hypot(dx, dy)
		if n == 0 {
			continue
		}
		ux, uy := vg.Length(dx/n), vg.Length(dy/n)
		base := vg.Point{X: to.X - ux*headLen, Y: to.Y - uy*headLen}
		half := headLen / 2
		c.FillPolygon(a.colors[i], []vg.Point{
			to,
			{X: base.X - uy*half, Y: base.Y + ux*half},
			{X: base.X + uy*half, Y: base.Y - ux*half},
		})
	}
}

// DataRange implements plot.DataRanger.
func (a *arrows) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, s := range a.segs {
		for _, pt := range []Point3{s.From, s.To} {
			xmin, xmax = math.Min(xmin, pt.X), math.Max(xmax, pt.X)
			ymin, ymax = math.Min(ymin, pt.Y), math.Max(ymax, pt.Y)
		}
	}
	return xmin, xmax, ymin, ymax
}
