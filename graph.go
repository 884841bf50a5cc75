package databox

import (
	"fmt"
	"image/color"
	"sync"
)

// Property identifies a graph attribute in change notifications.
type Property uint8

const (
	PropColor Property = iota
	PropSize
	PropHidden
	PropHLines
	PropVLines
	PropHLineVals
	PropVLineVals
)

var propertyNames = [...]string{
	PropColor:     "color",
	PropSize:      "size",
	PropHidden:    "hidden",
	PropHLines:    "grid-hlines",
	PropVLines:    "grid-vlines",
	PropHLineVals: "grid-hline-vals",
	PropVLineVals: "grid-vline-vals",
}

// String returns the property name.
func (p Property) String() string {
	if int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return fmt.Sprintf("Property(%d)", uint8(p))
}

// Graph is anything a Box can draw.
type Graph interface {
	// Draw renders the graph onto cv using box for limits and
	// value-to-pixel conversion.
	Draw(box *Box, cv Canvas) error

	// Style returns the shared styling and notification state.
	Style() *GraphStyle
}

// GraphStyle holds the attributes common to all graphs (color, stroke
// width, visibility) and the list of change observers. Graph types embed it
// and call CreateContext before drawing.
//
// GraphStyle is meant to be used from a single goroutine; observers run
// synchronously on the goroutine that made the change.
type GraphStyle struct {
	color  color.Color
	size   float64
	hidden bool

	mu        sync.Mutex
	nextID    int
	observers []observer
}

type observer struct {
	id int
	fn func(Property)
}

// DefaultGraphColor is used when a graph is created with a nil color.
var DefaultGraphColor color.Color = color.Black

func (s *GraphStyle) init(c color.Color, size float64) {
	s.color = DefaultGraphColor
	if c != nil {
		s.color = c
	}
	s.size = max(1, size)
}

// SetColor sets the stroke color. A nil color selects DefaultGraphColor.
func (s *GraphStyle) SetColor(c color.Color) {
	if c == nil {
		c = DefaultGraphColor
	}
	s.color = c
	s.notify(PropColor)
}

// Color returns the stroke color.
func (s *GraphStyle) Color() color.Color {
	return s.color
}

// SetSize sets the stroke width in pixels. Values below 1 are raised to 1.
func (s *GraphStyle) SetSize(size float64) {
	s.size = max(1, size)
	s.notify(PropSize)
}

// Size returns the stroke width in pixels.
func (s *GraphStyle) Size() float64 {
	return s.size
}

// SetHidden hides or shows the graph. Hidden graphs are skipped by Box.Draw.
func (s *GraphStyle) SetHidden(hidden bool) {
	s.hidden = hidden
	s.notify(PropHidden)
}

// Hidden reports whether the graph is hidden.
func (s *GraphStyle) Hidden() bool {
	return s.hidden
}

// OnChange registers fn to be called after every property change.
// The returned function removes the registration.
func (s *GraphStyle) OnChange(fn func(Property)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observer{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *GraphStyle) notify(p Property) {
	s.mu.Lock()
	obs := s.observers
	s.mu.Unlock()
	for _, o := range obs {
		o.fn(p)
	}
}

// CreateContext saves the canvas state and applies the graph color and
// stroke width. Callers must call release when done drawing.
func (s *GraphStyle) CreateContext(cv Canvas) (ctx Canvas, release func()) {
	if cv == nil {
		Logger().Warn("databox: CreateContext called with nil canvas")
		return nil, func() {}
	}
	cv.Push()
	cv.SetColor(s.color)
	cv.SetLineWidth(s.size)
	return cv, cv.Pop
}
