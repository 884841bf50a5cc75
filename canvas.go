package databox

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// Canvas is the drawing surface graphs render onto. Coordinates are in
// pixels with the origin at the top-left corner.
//
// Canvas is implemented by the adapters returned from NewContextCanvas
// (immediate-mode raster) and NewRecorderCanvas (command recording).
type Canvas interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Clear fills the whole surface with c.
	Clear(c color.Color)

	SetColor(c color.Color)
	SetLineWidth(w float64)

	// SetDash sets alternating dash and gap lengths. A single length is
	// used for both dash and gap. No arguments restores solid lines.
	SetDash(lengths ...float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)

	// Stroke paints the accumulated path and clears it.
	Stroke() error

	// Push saves the stroke style; Pop restores the last saved style.
	Push()
	Pop()
}

type contextCanvas struct {
	dc    *gg.Context
	saved []contextState
}

type contextState struct {
	brush  gg.Brush
	stroke gg.Stroke
}

// NewContextCanvas returns a Canvas drawing directly into dc.
func NewContextCanvas(dc *gg.Context) Canvas {
	return &contextCanvas{dc: dc}
}

func (c *contextCanvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

func (c *contextCanvas) Clear(col color.Color) { c.dc.ClearWithColor(gg.FromColor(col)) }

func (c *contextCanvas) SetColor(col color.Color) { c.dc.SetColor(col) }

// The width goes through SetStroke so it also reaches a stroke object
// installed by an earlier SetDash or Pop.
func (c *contextCanvas) SetLineWidth(w float64) {
	s := c.dc.GetStroke()
	s.Width = w
	c.dc.SetStroke(s)
}

func (c *contextCanvas) SetDash(lengths ...float64) { c.dc.SetDash(lengths...) }

func (c *contextCanvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }

func (c *contextCanvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }

func (c *contextCanvas) Stroke() error { return c.dc.Stroke() }

// gg.Context.Push only covers transform, clip and mask, so the stroke style
// is saved here.
func (c *contextCanvas) Push() {
	c.saved = append(c.saved, contextState{
		brush:  c.dc.StrokeBrush(),
		stroke: c.dc.GetStroke().Clone(),
	})
	c.dc.Push()
}

func (c *contextCanvas) Pop() {
	if len(c.saved) == 0 {
		return
	}
	s := c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
	c.dc.Pop()
	c.dc.SetStrokeBrush(s.brush)
	c.dc.SetStroke(s.stroke)
}

type recorderCanvas struct {
	rec *recording.Recorder
}

// NewRecorderCanvas returns a Canvas that records drawing commands into rec.
func NewRecorderCanvas(rec *recording.Recorder) Canvas {
	return &recorderCanvas{rec: rec}
}

func (c *recorderCanvas) Size() (int, int) { return c.rec.Width(), c.rec.Height() }

func (c *recorderCanvas) Clear(col color.Color) {
	w, h := c.Size()
	c.rec.Save()
	c.rec.SetFillStyle(recording.NewSolidBrush(gg.FromColor(col)))
	c.rec.FillRectangle(0, 0, float64(w), float64(h))
	c.rec.Restore()
}

func (c *recorderCanvas) SetColor(col color.Color) { c.rec.SetColor(gg.FromColor(col)) }

func (c *recorderCanvas) SetLineWidth(w float64) { c.rec.SetLineWidth(w) }

func (c *recorderCanvas) SetDash(lengths ...float64) { c.rec.SetDash(lengths...) }

func (c *recorderCanvas) MoveTo(x, y float64) { c.rec.MoveTo(x, y) }

func (c *recorderCanvas) LineTo(x, y float64) { c.rec.LineTo(x, y) }

func (c *recorderCanvas) Stroke() error {
	c.rec.Stroke()
	return nil
}

func (c *recorderCanvas) Push() { c.rec.Save() }

func (c *recorderCanvas) Pop() { c.rec.Restore() }
