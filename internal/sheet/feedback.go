package sheet

// Point is a screen position in cells.
type Point struct {
	X, Y int
}

// Size is a screen extent in cells.
type Size struct {
	W, H int
}

// RenderFeedback describes what one render pass did with a page. The painter
// builds a fresh value after every draw and the page keeps it until the next
// one, so input handling always interprets clicks against the last frame.
type RenderFeedback struct {
	VisibleRows  int
	RowHeight    int
	RowOffset    int
	PanePos      Point
	PaneSize     Size
	RowsStart    Point
	RowsEnd      Point
	WidthInChars int
}

// Contains reports whether (x, y) lies inside the pane rectangle. The min
// edges are inclusive, the max edges exclusive.
func (fb RenderFeedback) Contains(x, y int) bool {
	x1, y1 := fb.PanePos.X, fb.PanePos.Y
	x2 := x1 + fb.PaneSize.W
	y2 := y1 + fb.PaneSize.H
	return x >= x1 && y >= y1 && x < x2 && y < y2
}

// InRowArea reports whether (x, y) lies inside the row area, both edges
// inclusive.
func (fb RenderFeedback) InRowArea(x, y int) bool {
	return x >= fb.RowsStart.X && x <= fb.RowsEnd.X &&
		y >= fb.RowsStart.Y && y <= fb.RowsEnd.Y
}
