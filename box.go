package databox

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// Box is a plotting surface: a pixel size, a data-value range and an
// ordered collection of graphs drawn on top of each other.
//
// The total limits are the full data range; the visible limits are the
// window of it currently mapped onto the surface (equal to the total limits
// unless zoomed). Top is the value at pixel row 0 and left the value at
// pixel column 0.
//
// Box is not safe for concurrent use.
type Box struct {
	width, height int

	left, right, top, bottom             float64
	visLeft, visRight, visTop, visBottom float64
	scaleX, scaleY                       ScaleType
	factorX, factorY                     float64
	background                           color.Color
	graphs                               []Graph
}

// NewBox creates a box of the given pixel size. Non-positive dimensions are
// raised to 1. Options that would leave the box in an invalid state (such as
// non-positive limits on a logarithmic axis) are ignored with a warning and
// the defaults kept.
func NewBox(width, height int, opts ...BoxOption) *Box {
	o := defaultBoxOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Box{
		width:      max(1, width),
		height:     max(1, height),
		background: o.background,
	}

	d := defaultBoxOptions()
	b.scaleX, b.scaleY = d.scaleX, d.scaleY
	b.setLimits(d.left, d.right, d.top, d.bottom)

	if err := b.configure(o); err != nil {
		Logger().Warn("databox: ignoring limits and scale options", "err", err)
	}
	return b
}

// configure applies scales and limits together, so that a logarithmic
// scale can be combined with the positive limits it requires.
func (b *Box) configure(o boxOptions) error {
	for _, s := range []ScaleType{o.scaleX, o.scaleY} {
		if !s.valid() {
			return fmt.Errorf("%w: %s", ErrUnknownScaleType, s)
		}
	}
	if err := o.scaleX.checkLimits(o.left, o.right); err != nil {
		return fmt.Errorf("horizontal limits: %w", err)
	}
	if err := o.scaleY.checkLimits(o.top, o.bottom); err != nil {
		return fmt.Errorf("vertical limits: %w", err)
	}
	b.scaleX, b.scaleY = o.scaleX, o.scaleY
	b.setLimits(o.left, o.right, o.top, o.bottom)
	return nil
}

// Size returns the surface size in pixels.
func (b *Box) Size() (width, height int) {
	return b.width, b.height
}

// Resize changes the surface size. Both dimensions must be positive.
func (b *Box) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d (both must be > 0)", ErrInvalidSize, width, height)
	}
	b.width, b.height = width, height
	b.updateFactors()
	return nil
}

// SetTotalLimits sets the full data range and resets the visible window to
// it. Limits must be finite, non-degenerate, and positive on logarithmic axes.
func (b *Box) SetTotalLimits(left, right, top, bottom float64) error {
	if err := b.scaleX.checkLimits(left, right); err != nil {
		return fmt.Errorf("horizontal limits: %w", err)
	}
	if err := b.scaleY.checkLimits(top, bottom); err != nil {
		return fmt.Errorf("vertical limits: %w", err)
	}
	b.setLimits(left, right, top, bottom)
	return nil
}

func (b *Box) setLimits(left, right, top, bottom float64) {
	b.left, b.right, b.top, b.bottom = left, right, top, bottom
	b.ZoomHome()
}

// TotalLimits returns the full data range.
func (b *Box) TotalLimits() (left, right, top, bottom float64) {
	return b.left, b.right, b.top, b.bottom
}

// SetVisibleLimits zooms onto a window of the total range. The window must
// lie inside the total limits and keep their orientation.
func (b *Box) SetVisibleLimits(left, right, top, bottom float64) error {
	if err := b.scaleX.checkLimits(left, right); err != nil {
		return fmt.Errorf("horizontal limits: %w", err)
	}
	if err := b.scaleY.checkLimits(top, bottom); err != nil {
		return fmt.Errorf("vertical limits: %w", err)
	}
	if !inside(left, right, b.left, b.right) || !inside(top, bottom, b.top, b.bottom) {
		return fmt.Errorf("%w: visible [%g, %g, %g, %g] outside total [%g, %g, %g, %g]",
			ErrInvalidLimits, left, right, top, bottom, b.left, b.right, b.top, b.bottom)
	}
	b.visLeft, b.visRight, b.visTop, b.visBottom = left, right, top, bottom
	b.updateFactors()
	return nil
}

// inside reports whether [a, b] lies within [from, to] with the same direction.
func inside(a, b, from, to float64) bool {
	if (a < b) != (from < to) {
		return false
	}
	lo, hi := min(from, to), max(from, to)
	return min(a, b) >= lo && max(a, b) <= hi
}

// VisibleLimits returns the data window currently mapped onto the surface.
func (b *Box) VisibleLimits() (left, right, top, bottom float64) {
	return b.visLeft, b.visRight, b.visTop, b.visBottom
}

// ZoomHome resets the visible limits to the total limits.
func (b *Box) ZoomHome() {
	b.visLeft, b.visRight, b.visTop, b.visBottom = b.left, b.right, b.top, b.bottom
	b.updateFactors()
}

// SetScaleTypeX sets the horizontal scale. Switching to a logarithmic scale
// fails if the current horizontal limits are not positive.
func (b *Box) SetScaleTypeX(s ScaleType) error {
	if !s.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownScaleType, s)
	}
	if err := s.checkLimits(b.left, b.right); err != nil {
		return err
	}
	b.scaleX = s
	b.updateFactors()
	return nil
}

// SetScaleTypeY sets the vertical scale. Switching to a logarithmic scale
// fails if the current vertical limits are not positive.
func (b *Box) SetScaleTypeY(s ScaleType) error {
	if !s.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownScaleType, s)
	}
	if err := s.checkLimits(b.top, b.bottom); err != nil {
		return err
	}
	b.scaleY = s
	b.updateFactors()
	return nil
}

// ScaleTypeX returns the horizontal scale.
func (b *Box) ScaleTypeX() ScaleType { return b.scaleX }

// ScaleTypeY returns the vertical scale.
func (b *Box) ScaleTypeY() ScaleType { return b.scaleY }

func (b *Box) updateFactors() {
	b.factorX = float64(b.width) / b.scaleX.project(b.visRight, b.visLeft)
	b.factorY = float64(b.height) / b.scaleY.project(b.visBottom, b.visTop)
}

// ValueToPixelX converts a data value to a pixel column. The result is
// truncated toward zero and may lie outside the surface.
func (b *Box) ValueToPixelX(v float64) int {
	return toPixel(b.scaleX.project(v, b.visLeft) * b.factorX)
}

// ValueToPixelY converts a data value to a pixel row. The result is
// truncated toward zero and may lie outside the surface.
func (b *Box) ValueToPixelY(v float64) int {
	return toPixel(b.scaleY.project(v, b.visTop) * b.factorY)
}

// PixelToValueX converts a pixel column to a data value.
func (b *Box) PixelToValueX(p int) float64 {
	return b.scaleX.unproject(float64(p)/b.factorX, b.visLeft)
}

// PixelToValueY converts a pixel row to a data value.
func (b *Box) PixelToValueY(p int) float64 {
	return b.scaleY.unproject(float64(p)/b.factorY, b.visTop)
}

// toPixel truncates f toward zero, saturating at the int32 range so that
// values far off-screen (or NaN from a log of a non-positive value) still
// produce a usable coordinate.
func toPixel(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// AddGraph appends g to the drawing order.
func (b *Box) AddGraph(g Graph) error {
	if isNilGraph(g) {
		return ErrNilGraph
	}
	b.graphs = append(b.graphs, g)
	return nil
}

// RemoveGraph removes the first occurrence of g.
func (b *Box) RemoveGraph(g Graph) error {
	i := slices.Index(b.graphs, g)
	if i < 0 {
		return ErrGraphNotFound
	}
	b.graphs = slices.Delete(b.graphs, i, i+1)
	return nil
}

// RemoveAllGraphs empties the graph collection.
func (b *Box) RemoveAllGraphs() {
	b.graphs = nil
}

// Graphs returns a copy of the graph collection in drawing order.
func (b *Box) Graphs() []Graph {
	return slices.Clone(b.graphs)
}

func isNilGraph(g Graph) bool {
	return g == nil || g.Style() == nil
}

// Draw clears the canvas to the background color, if one was configured,
// and draws every visible graph in order. Errors from individual graphs do
// not stop the remaining graphs from drawing; they are joined and returned.
func (b *Box) Draw(cv Canvas) error {
	if cv == nil {
		return fmt.Errorf("%w: nil canvas", ErrInvalidGraph)
	}
	if b.background != nil {
		cv.Clear(b.background)
	}
	var errs []error
	for i, g := range b.graphs {
		if g.Style().Hidden() {
			continue
		}
		if err := g.Draw(b, cv); err != nil {
			Logger().Warn("databox: graph draw failed", "index", i, "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Render draws the box into a new gg software context of the box size.
func (b *Box) Render(opts ...gg.ContextOption) (*gg.Context, error) {
	dc := gg.NewContext(b.width, b.height, opts...)
	return dc, b.Draw(NewContextCanvas(dc))
}

// Record draws the box into a command recording, for vector export or
// inspection.
func (b *Box) Record() (*recording.Recording, error) {
	rec := recording.NewRecorder(b.width, b.height)
	err := b.Draw(NewRecorderCanvas(rec))
	return rec.FinishRecording(), err
}
