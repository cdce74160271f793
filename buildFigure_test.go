package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func figuresFor(t *testing.T, records []Record, edges []Edge) []Figure {
	t.Helper()
	table := &Table{Records: records}
	stages := table.Stages()
	require.NotEmpty(t, stages)
	ranges, err := ComputeAxisRanges(table)
	require.NoError(t, err)
	return BuildFigures(stages[0], table.Floors(), ranges, edges, defaultStyle())
}

func TestBuildFigures_RobotAndPath(t *testing.T) {
	t.Parallel()
	style := defaultStyle()
	figs := figuresFor(t, []Record{
		rec(0, TypeRobot, 1, 2, 3, 0, 0),
		rec(0, TypePath, 5, 0, 0, 0, 0),
		rec(0, TypePath, 5, 1, 1, 0, 1),
	}, nil)

	require.Len(t, figs, 1)
	fig := figs[0]
	assert.Equal(t, "Floor 0", fig.Title)
	assert.Empty(t, fig.Elevators)
	assert.Empty(t, fig.Bins)

	wantRobots := []Marker{{Type: TypeRobot, ID: 1, Label: "1", Pos: Point3{X: 2, Y: 3}, Style: style.Robot}}
	if diff := cmp.Diff(wantRobots, fig.Robots); diff != "" {
		t.Errorf("robots mismatch (-want +got):\n%s", diff)
	}
	wantSegments := []Segment{{PathID: 5, From: Point3{}, To: Point3{X: 1, Y: 1, Z: 1}, Color: defaultPalette[5]}}
	if diff := cmp.Diff(wantSegments, fig.Segments); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, fig.Overlay)
}

func TestBuildFigures_OneFigurePerFloor(t *testing.T) {
	t.Parallel()
	figs := figuresFor(t, []Record{
		rec(0, TypeBin, 1, 1, 1, 0, 0),
		rec(0, TypeElevator, 2, 2, 2, 3, 0),
		rec(0, TypeRobot, 3, 3, 3, 3, 0),
	}, nil)

	require.Len(t, figs, 2)
	assert.Equal(t, []string{"Floor 0", "Floor 1"}, []string{figs[0].Title, figs[1].Title})
	assert.Equal(t, 1, figs[0].MarkerCount())
	assert.Equal(t, 2, figs[1].MarkerCount())
	assert.Empty(t, figs[0].Segments)
	assert.Empty(t, figs[1].Segments)
	assert.Equal(t, figs[0].Ranges, figs[1].Ranges, "every floor shares the axes")
}

func TestBuildFigures_Paths(t *testing.T) {
	t.Parallel()
	figs := figuresFor(t, []Record{
		rec(0, TypePath, 21, 0, 0, 0, 0),
		rec(0, TypePath, 4, 5, 5, 0, 0),
		rec(0, TypePath, 21, 1, 0, 0, 1),
		rec(0, TypePath, 21, 1, 1, 0, 2),
		rec(0, TypePath, 21, 2, 1, 0, 3),
		rec(0, TypeUnknown, 4, 9, 9, 0, 0),
	}, nil)

	require.Len(t, figs, 1)
	segs := figs[0].Segments
	require.Len(t, segs, 3, "a single-point path draws nothing, N points draw N-1 segments")
	for i, s := range segs {
		assert.Equal(t, 21, s.PathID)
		assert.Equal(t, defaultPalette[1], s.Color, "colour depends only on id mod 10")
		assert.Equal(t, float64(i), s.From.Z)
		assert.Equal(t, float64(i+1), s.To.Z)
		if i > 0 {
			assert.Equal(t, segs[i-1].To, s.From, "segments chain in source order")
		}
	}
	assert.Zero(t, figs[0].MarkerCount(), "unknown rows never become markers")
}

func TestBuildFigures_Overlay(t *testing.T) {
	t.Parallel()
	edges := []Edge{{SrcX: 0, SrcY: 0, DstX: 4, DstY: 0}}
	figs := figuresFor(t, []Record{
		rec(0, TypeRobot, 1, 0, 0, 0, 0),
		rec(0, TypeRobot, 2, 0, 0, 1, 0),
	}, edges)

	require.Len(t, figs, 2)
	for _, fig := range figs {
		require.Len(t, fig.Overlay, 1)
		assert.Equal(t, Segment{PathID: -1, From: Point3{}, To: Point3{X: 4}, Color: "#b0b0b0"}, fig.Overlay[0])
	}
}

func TestPaletteColor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, defaultPalette[3], paletteColor(defaultPalette, 13))
	assert.Equal(t, defaultPalette[9], paletteColor(defaultPalette, -1))
	assert.Equal(t, paletteColor(defaultPalette, 7), paletteColor(defaultPalette, 17))
	assert.Equal(t, "#000000", paletteColor(nil, 4))
}
