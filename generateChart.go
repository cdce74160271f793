// generateChart.go
package main

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// default box edge of an echarts-gl grid, and the smallest edge we allow so
// a flat axis stays visible.
const (
	boxEdge    = 100
	minBoxEdge = 5
	headSize   = 6
)

// newFloorChart converts a figure into an echarts-gl 3D chart.
func newFloorChart(fig Figure, style Style) *charts.Scatter3D {
	chart := charts.NewScatter3D()

	w, d, h := boxDimensions(fig.Ranges.Aspect)
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  fig.Title,
			Width:      style.Chart.Width,
			Height:     style.Chart.Height,
			Theme:      style.Chart.Theme,
			AssetsHost: style.Chart.AssetsHost,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fig.Title,
			Subtitle: fmt.Sprintf("stage %d  z=%s", fig.Stage.Value, formatNumber(fig.Floor.Z)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X", Type: "value", Min: 0, Max: lastTick(fig.Ranges.XTicks)}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y", Type: "value", Min: 0, Max: lastTick(fig.Ranges.YTicks)}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "T", Type: "value", Min: 0, Max: lastTick(fig.Ranges.TTicks)}),
		charts.WithGrid3DOpts(opts.Grid3D{
			Show:      opts.Bool(true),
			BoxWidth:  w,
			BoxDepth:  d,
			BoxHeight: h,
		}),
	)

	chart.AddJSFuncStrs(opts.FuncOpts(axisIntervalJS(fig.Ranges)))

	addMarkerSeries(chart, "elevators", fig.Elevators, style.Elevator)
	addMarkerSeries(chart, "bins", fig.Bins, style.Bin)
	addMarkerSeries(chart, "robots", fig.Robots, style.Robot)

	for _, path := range splitByPath(fig.Segments) {
		addSegmentSeries(chart, fmt.Sprintf("path %d", path[0].PathID), path, style.SegmentWidth, true)
	}
	for _, edge := range fig.Overlay {
		addSegmentSeries(chart, "graph", []Segment{edge}, 1, false)
	}
	return chart
}

// axisIntervalJS pins the 3D axis labels to the shared unit ticks. The
// axis3D options have no interval field, so it is set after the first setOption.
func axisIntervalJS(r AxisRanges) string {
	return fmt.Sprintf("%%MY_ECHARTS%%.setOption({xAxis3D: {interval: %d}, yAxis3D: {interval: %d}, zAxis3D: {interval: %d}});",
		tickStep(len(r.XTicks)), tickStep(len(r.YTicks)), tickStep(len(r.TTicks)))
}

// renderFloorChart writes the chart page of one figure.
func renderFloorChart(w io.Writer, fig Figure, style Style) error {
	if err := newFloorChart(fig, style).Render(w); err != nil {
		return fmt.Errorf("render chart for %s: %w", fig.Title, err)
	}
	return nil
}

// boxDimensions scales the aspect so the longest axis gets the default box
// edge. echarts-gl maps x to width, y to depth and the vertical axis to height.
func boxDimensions(aspect [3]float64) (width, depth, height float32) {
	longest := aspect[0]
	for _, a := range aspect[1:] {
		if a > longest {
			longest = a
		}
	}
	if longest <= 0 {
		return boxEdge, boxEdge, boxEdge
	}
	scale := func(a float64) float32 {
		e := float32(boxEdge * a / longest)
		if e < minBoxEdge {
			return minBoxEdge
		}
		return e
	}
	return scale(aspect[0]), scale(aspect[1]), scale(aspect[2])
}

func addMarkerSeries(chart *charts.Scatter3D, name string, markers []Marker, ms MarkerStyle) {
	if len(markers) == 0 {
		return
	}
	data := make([]opts.Chart3DData, 0, len(markers))
	for _, m := range markers {
		data = append(data, opts.Chart3DData{
			Name:  m.Label,
			Value: []interface{}{m.Pos.X, m.Pos.Y, m.Pos.Z},
		})
	}
	chart.AddSeries(name, data,
		charts.WithSeriesOpts(func(s *charts.SingleSeries) {
			s.Symbol = ms.Symbol
			s.SymbolSize = ms.Size
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: ms.Color}),
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
			Position:  ternary(ms.CenterLabel, "inside", "right"),
		}),
	)
}

// addSegmentSeries draws consecutive segments as one line3D series. With
// heads set, a small triangle marks the end of every segment to show direction.
func addSegmentSeries(chart *charts.Scatter3D, name string, segs []Segment, width float64, heads bool) {
	if len(segs) == 0 {
		return
	}
	line := make([]opts.Chart3DData, 0, len(segs)+1)
	line = append(line, opts.Chart3DData{Value: point3Value(segs[0].From)})
	for _, s := range segs {
		line = append(line, opts.Chart3DData{Value: point3Value(s.To)})
	}
	chart.AddSeries(name, line,
		charts.WithSeriesOpts(func(s *charts.SingleSeries) {
			s.Type = types.ChartLine3D
		}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: segs[0].Color, Width: float32(width)}),
	)

	if !heads {
		return
	}
	tips := make([]opts.Chart3DData, 0, len(segs))
	for _, s := range segs {
		tips = append(tips, opts.Chart3DData{Value: point3Value(s.To)})
	}
	chart.AddSeries(name, tips,
		charts.WithSeriesOpts(func(s *charts.SingleSeries) {
			s.Symbol = "triangle"
			s.SymbolSize = headSize
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: segs[0].Color}),
	)
}

// splitByPath groups consecutive segments of the same path.
func splitByPath(segs []Segment) [][]Segment {
	var out [][]Segment
	for i, s := range segs {
		if i == 0 || segs[i-1].PathID != s.PathID {
			out = append(out, nil)
		}
		out[len(out)-1] = append(out[len(out)-1], s)
	}
	return out
}

func point3Value(p Point3) []interface{} {
	return []interface{}{p.X, p.Y, p.Z}
}
