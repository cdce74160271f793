// buildFigure.go
package main

import "strconv"

// BuildFigures lays out one figure per floor for the given stage. Floors,
// ranges and overlay edges come from the whole table so every stage is drawn
// on the same axes.
func BuildFigures(stage Stage, floors []Floor, ranges AxisRanges, edges []Edge, style Style) []Figure {
	overlay := overlaySegments(edges, style.OverlayColor)

	figures := make([]Figure, 0, len(floors))
	for _, floor := range floors {
		part := Partition(stage.Records, floor)
		figures = append(figures, Figure{
			Floor:     floor,
			Title:     floor.Title(),
			Stage:     stage,
			Ranges:    ranges,
			Elevators: markers(part.Elevators, style.Elevator),
			Bins:      markers(part.Bins, style.Bin),
			Robots:    markers(part.Robots, style.Robot),
			Segments:  pathSegments(part.Paths, style.Palette),
			Overlay:   overlay,
		})
	}
	return figures
}

// markers flattens rows onto the t = 0 plane; the floor is implied by the figure.
func markers(rows []Record, style MarkerStyle) []Marker {
	out := make([]Marker, 0, len(rows))
	for _, rec := range rows {
		out = append(out, Marker{
			Type:  rec.Type,
			ID:    rec.ID,
			Label: strconv.Itoa(rec.ID),
			Pos:   Point3{X: rec.X, Y: rec.Y},
			Style: style,
		})
	}
	return out
}

// pathSegments connects consecutive points of each path in file order using
// (x, y, t). Paths with a single point produce nothing.
func pathSegments(rows []Record, palette []string) []Segment {
	var out []Segment
	for _, group := range GroupPaths(rows) {
		if len(group.Points) < 2 {
			continue
		}
		c := paletteColor(palette, group.ID)
		for i := 1; i < len(group.Points); i++ {
			from, to := group.Points[i-1], group.Points[i]
			out = append(out, Segment{
				PathID: group.ID,
				From:   Point3{X: from.X, Y: from.Y, Z: from.T},
				To:     Point3{X: to.X, Y: to.Y, Z: to.T},
				Color:  c,
			})
		}
	}
	return out
}

func overlaySegments(edges []Edge, c string) []Segment {
	out := make([]Segment, 0, len(edges))
	for _, e := range edges {
		out = append(out, Segment{
			PathID: -1,
			From:   Point3{X: e.SrcX, Y: e.SrcY},
			To:     Point3{X: e.DstX, Y: e.DstY},
			Color:  c,
		})
	}
	return out
}
