// axisRanges.go
package main

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// maxAxisTicks bounds the unit ticks of a single axis.
const maxAxisTicks = 10000

// ErrAxisTooLong is returned when an axis maximum needs more than maxAxisTicks ticks.
var ErrAxisTooLong = errors.New("axis range too large")

// ComputeAxisRanges derives the tick positions and box aspect shared by
// every floor figure. Ticks are the non-negative integers below max+1 on
// each axis; the aspect is the peak-to-peak range of x, y and t. The table
// must not be empty.
func ComputeAxisRanges(t *Table) (AxisRanges, error) {
	n := len(t.Records)
	xs := make([]float64, n)
	ys := make([]float64, n)
	ts := make([]float64, n)
	for i, rec := range t.Records {
		xs[i], ys[i], ts[i] = rec.X, rec.Y, rec.T
	}

	var r AxisRanges
	var err error
	if r.XTicks, err = unitTicks(floats.Max(xs)); err != nil {
		return AxisRanges{}, fmt.Errorf("%s: x axis: %w", t.Source, err)
	}
	if r.YTicks, err = unitTicks(floats.Max(ys)); err != nil {
		return AxisRanges{}, fmt.Errorf("%s: y axis: %w", t.Source, err)
	}
	if r.TTicks, err = unitTicks(floats.Max(ts)); err != nil {
		return AxisRanges{}, fmt.Errorf("%s: t axis: %w", t.Source, err)
	}
	r.Aspect = [3]float64{peakToPeak(xs), peakToPeak(ys), peakToPeak(ts)}
	return r, nil
}

// unitTicks returns 0, 1, 2, ... while the value stays below max+1.
func unitTicks(hi float64) ([]float64, error) {
	if math.IsInf(hi, 0) || math.IsNaN(hi) {
		return []float64{}, nil
	}
	n := math.Ceil(hi + 1)
	if n <= 0 {
		return []float64{}, nil
	}
	if n > maxAxisTicks {
		return nil, fmt.Errorf("%w: max %s needs %.0f ticks (limit %d)", ErrAxisTooLong, formatNumber(hi), n, maxAxisTicks)
	}
	ticks := make([]float64, int(n))
	for k := range ticks {
		ticks[k] = float64(k)
	}
	return ticks, nil
}

func peakToPeak(vs []float64) float64 {
	return floats.Max(vs) - floats.Min(vs)
}

// lastTick returns the largest tick, or 0 for an empty axis.
func lastTick(ticks []float64) float64 {
	if len(ticks) == 0 {
		return 0
	}
	return ticks[len(ticks)-1]
}
