package databox

import "image/color"

// BoxOption configures a Box during creation.
//
// Example:
//
//	box := databox.NewBox(800, 600,
//	    databox.WithTotalLimits(0, 100, 10, 0),
//	    databox.WithScaleTypeY(databox.ScaleLog10),
//	)
type BoxOption func(*boxOptions)

type boxOptions struct {
	left, right, top, bottom float64
	scaleX, scaleY           ScaleType
	background               color.Color
}

func defaultBoxOptions() boxOptions {
	return boxOptions{
		left:   -1,
		right:  1,
		top:    1,
		bottom: -1,
		scaleX: ScaleLinear,
		scaleY: ScaleLinear,
	}
}

// WithTotalLimits sets the initial data range of the box. Top is the value
// shown at pixel row 0, so top > bottom gives the usual upward y axis.
// Invalid limits are ignored and the defaults kept; use SetTotalLimits to
// get the validation error.
func WithTotalLimits(left, right, top, bottom float64) BoxOption {
	return func(o *boxOptions) {
		o.left, o.right, o.top, o.bottom = left, right, top, bottom
	}
}

// WithScaleTypeX sets the horizontal axis scale.
func WithScaleTypeX(s ScaleType) BoxOption {
	return func(o *boxOptions) {
		o.scaleX = s
	}
}

// WithScaleTypeY sets the vertical axis scale.
func WithScaleTypeY(s ScaleType) BoxOption {
	return func(o *boxOptions) {
		o.scaleY = s
	}
}

// WithBackground fills the surface with c before any graph is drawn.
// A nil color leaves the surface untouched.
func WithBackground(c color.Color) BoxOption {
	return func(o *boxOptions) {
		o.background = c
	}
}
