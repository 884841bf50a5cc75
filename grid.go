package databox

import (
	"fmt"
	"image/color"
)

// gridDash is the dash length, in pixels, used for grid lines. A single
// length gives equal dashes and gaps.
const gridDash = 5.0

// Grid is a graph drawing dashed horizontal and vertical reference lines.
//
// In auto-spacing mode the lines divide the box's total data range into
// equal parts. In explicit mode they are drawn at caller-supplied data
// values.
//
// The explicit value slices are borrowed: Grid keeps the slice it is given
// without copying, so later writes by the caller to its elements are
// visible on the next draw. A slice shorter than the line count draws only
// as many lines as it has values.
type Grid struct {
	GraphStyle

	hlines, vlines int
	hvals, vvals   []float64
}

// Segment is one straight line in pixel coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// NewGrid creates a grid in auto-spacing mode with the given numbers of
// horizontal and vertical lines. Counts below 1 are raised to 1.
func NewGrid(hlines, vlines int, c color.Color, size float64) *Grid {
	return NewGridArray(hlines, vlines, nil, nil, c, size)
}

// NewGridArray creates a grid whose lines sit at the data values in hvals
// (horizontal lines, y values) and vvals (vertical lines, x values). A nil
// slice selects auto-spacing for that direction. The slices are borrowed,
// see Grid.
func NewGridArray(hlines, vlines int, hvals, vvals []float64, c color.Color, size float64) *Grid {
	g := &Grid{
		hlines: max(1, hlines),
		vlines: max(1, vlines),
		hvals:  hvals,
		vvals:  vvals,
	}
	g.GraphStyle.init(c, size)
	return g
}

// Style implements Graph.
func (g *Grid) Style() *GraphStyle {
	if g == nil {
		return nil
	}
	return &g.GraphStyle
}

func invalidGrid(op string) {
	Logger().Warn("databox: operation on nil grid", "op", op)
}

// SetHLines sets the number of horizontal lines. Values below 1 are
// raised to 1.
func (g *Grid) SetHLines(n int) {
	if g == nil {
		invalidGrid("SetHLines")
		return
	}
	g.hlines = max(1, n)
	g.notify(PropHLines)
}

// HLines returns the number of horizontal lines, or -1 for a nil grid.
func (g *Grid) HLines() int {
	if g == nil {
		invalidGrid("HLines")
		return -1
	}
	return g.hlines
}

// SetVLines sets the number of vertical lines. Values below 1 are raised
// to 1.
func (g *Grid) SetVLines(n int) {
	if g == nil {
		invalidGrid("SetVLines")
		return
	}
	g.vlines = max(1, n)
	g.notify(PropVLines)
}

// VLines returns the number of vertical lines, or -1 for a nil grid.
func (g *Grid) VLines() int {
	if g == nil {
		invalidGrid("VLines")
		return -1
	}
	return g.vlines
}

// SetHLineVals replaces the horizontal line values. The slice is stored as
// given; nil switches horizontal lines back to auto-spacing.
func (g *Grid) SetHLineVals(vals []float64) {
	if g == nil {
		invalidGrid("SetHLineVals")
		return
	}
	g.hvals = vals
	g.notify(PropHLineVals)
}

// HLineVals returns the slice passed to SetHLineVals or NewGridArray, or
// nil in auto-spacing mode or for a nil grid.
func (g *Grid) HLineVals() []float64 {
	if g == nil {
		invalidGrid("HLineVals")
		return nil
	}
	return g.hvals
}

// SetVLineVals replaces the vertical line values. The slice is stored as
// given; nil switches vertical lines back to auto-spacing.
func (g *Grid) SetVLineVals(vals []float64) {
	if g == nil {
		invalidGrid("SetVLineVals")
		return
	}
	g.vvals = vals
	g.notify(PropVLineVals)
}

// VLineVals returns the slice passed to SetVLineVals or NewGridArray, or
// nil in auto-spacing mode or for a nil grid.
func (g *Grid) VLineVals() []float64 {
	if g == nil {
		invalidGrid("VLineVals")
		return nil
	}
	return g.vvals
}

// Segments returns the pixel segments Draw emits for box, horizontal lines
// first. Lines are snapped to pixel centers and span the full surface.
func (g *Grid) Segments(box *Box) []Segment {
	if g == nil || box == nil {
		return nil
	}
	width, height := box.Size()
	left, right, top, bottom := box.TotalLimits()

	hvals := lineValues(g.hlines, g.hvals, top, bottom, "horizontal")
	vvals := lineValues(g.vlines, g.vvals, left, right, "vertical")

	segs := make([]Segment, 0, len(hvals)+len(vvals))
	for _, v := range hvals {
		y := float64(box.ValueToPixelY(v)) + 0.5
		segs = append(segs, Segment{X0: 0, Y0: y, X1: float64(width), Y1: y})
	}
	for _, v := range vvals {
		x := float64(box.ValueToPixelX(v)) + 0.5
		segs = append(segs, Segment{X0: x, Y0: 0, X1: x, Y1: float64(height)})
	}
	return segs
}

// lineValues returns the data values of n lines: the first n explicit
// values, or n points dividing [from, to] into n+1 equal steps.
func lineValues(n int, explicit []float64, from, to float64, axis string) []float64 {
	if explicit != nil {
		if len(explicit) < n {
			Logger().Warn("databox: fewer grid values than lines",
				"axis", axis, "lines", n, "values", len(explicit))
			n = len(explicit)
		}
		return explicit[:n]
	}
	step := (to - from) / float64(n+1)
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = from + float64(i+1)*step
	}
	return vals
}

// Draw implements Graph. All lines are stroked with one dashed stroke.
func (g *Grid) Draw(box *Box, cv Canvas) error {
	if g == nil || box == nil {
		Logger().Warn("databox: grid draw on invalid object", "grid", g != nil, "box", box != nil)
		return ErrInvalidGraph
	}
	ctx, release := g.createContext(cv)
	if ctx == nil {
		return fmt.Errorf("%w: nil canvas", ErrInvalidGraph)
	}
	defer release()

	segs := g.Segments(box)
	Logger().Debug("databox: grid draw",
		"hlines", g.hlines, "vlines", g.vlines,
		"explicitH", g.hvals != nil, "explicitV", g.vvals != nil,
		"segments", len(segs))

	for _, s := range segs {
		ctx.MoveTo(s.X0, s.Y0)
		ctx.LineTo(s.X1, s.Y1)
	}
	return ctx.Stroke()
}

func (g *Grid) createContext(cv Canvas) (Canvas, func()) {
	ctx, release := g.CreateContext(cv)
	if ctx != nil {
		ctx.SetDash(gridDash)
	}
	return ctx, release
}
