package databox

import (
	"errors"
	"image/color"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

func TestGridLineCountClamp(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: -100, want: 1},
		{in: -1, want: 1},
		{in: 0, want: 1},
		{in: 1, want: 1},
		{in: 2, want: 2},
		{in: 1000, want: 1000},
	}

	g := NewGrid(3, 3, nil, 1)
	for _, tt := range tests {
		g.SetHLines(tt.in)
		if got := g.HLines(); got != tt.want {
			t.Errorf("SetHLines(%d); HLines() = %d, want %d", tt.in, got, tt.want)
		}
		g.SetVLines(tt.in)
		if got := g.VLines(); got != tt.want {
			t.Errorf("SetVLines(%d); VLines() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestGridLineCountDownThenUp(t *testing.T) {
	g := NewGrid(1, 1, nil, 1)
	g.SetHLines(5)
	g.SetHLines(0)
	if got := g.HLines(); got != 1 {
		t.Errorf("HLines() after SetHLines(0) = %d, want 1", got)
	}
	g.SetHLines(3)
	if got := g.HLines(); got != 3 {
		t.Errorf("HLines() after SetHLines(3) = %d, want 3", got)
	}
}

func TestNewGridClampsCounts(t *testing.T) {
	g := NewGrid(0, -4, nil, 0)
	if g.HLines() != 1 || g.VLines() != 1 {
		t.Errorf("NewGrid(0, -4) counts = (%d, %d), want (1, 1)", g.HLines(), g.VLines())
	}
	if g.Size() != 1 {
		t.Errorf("Size() = %v, want 1", g.Size())
	}
	if g.Color() != DefaultGraphColor {
		t.Errorf("Color() = %v, want DefaultGraphColor", g.Color())
	}
}

func TestNewGridHasNoExplicitValues(t *testing.T) {
	g := NewGrid(2, 2, color.White, 1)
	if g.HLineVals() != nil {
		t.Errorf("HLineVals() = %v, want nil", g.HLineVals())
	}
	if g.VLineVals() != nil {
		t.Errorf("VLineVals() = %v, want nil", g.VLineVals())
	}
}

func TestGridArrayKeepsReference(t *testing.T) {
	hvals := []float64{1, 9}
	vvals := []float64{2, 4, 6}
	g := NewGridArray(2, 3, hvals, vvals, color.Black, 1)

	if got := g.HLineVals(); len(got) != len(hvals) || &got[0] != &hvals[0] {
		t.Error("HLineVals() did not return the slice passed to NewGridArray")
	}
	if got := g.VLineVals(); len(got) != len(vvals) || &got[0] != &vvals[0] {
		t.Error("VLineVals() did not return the slice passed to NewGridArray")
	}

	other := []float64{5}
	g.SetHLineVals(other)
	if got := g.HLineVals(); &got[0] != &other[0] {
		t.Error("HLineVals() did not return the slice passed to SetHLineVals")
	}
	g.SetVLineVals(nil)
	if g.VLineVals() != nil {
		t.Error("SetVLineVals(nil) did not clear the values")
	}
}

func TestNilGridSentinels(t *testing.T) {
	buf := captureLogs(t)

	var g *Grid
	if got := g.HLines(); got != -1 {
		t.Errorf("nil HLines() = %d, want -1", got)
	}
	if got := g.VLines(); got != -1 {
		t.Errorf("nil VLines() = %d, want -1", got)
	}
	if g.HLineVals() != nil || g.VLineVals() != nil {
		t.Error("nil grid value getters should return nil")
	}
	g.SetHLines(3)
	g.SetVLines(3)
	g.SetHLineVals([]float64{1})
	g.SetVLineVals([]float64{1})
	if g.Style() != nil {
		t.Error("nil grid Style() should be nil")
	}
	if err := g.Draw(NewBox(10, 10), newFakeCanvas(10, 10)); !errors.Is(err, ErrInvalidGraph) {
		t.Errorf("nil grid Draw() = %v, want ErrInvalidGraph", err)
	}

	if n := strings.Count(buf.String(), "operation on nil grid"); n != 8 {
		t.Errorf("got %d nil grid warnings, want 8:\n%s", n, buf.String())
	}
}

func TestGridDrawNilBoxAndCanvas(t *testing.T) {
	g := NewGrid(1, 1, nil, 1)
	if err := g.Draw(nil, newFakeCanvas(10, 10)); !errors.Is(err, ErrInvalidGraph) {
		t.Errorf("Draw(nil box) = %v, want ErrInvalidGraph", err)
	}
	if err := g.Draw(NewBox(10, 10), nil); !errors.Is(err, ErrInvalidGraph) {
		t.Errorf("Draw(nil canvas) = %v, want ErrInvalidGraph", err)
	}
}

func TestGridNotifications(t *testing.T) {
	g := NewGrid(1, 1, nil, 1)

	var got []Property
	cancel := g.OnChange(func(p Property) { got = append(got, p) })

	g.SetHLines(2)
	g.SetVLines(0)
	g.SetHLineVals([]float64{1, 2})
	g.SetVLineVals(nil)
	g.SetColor(color.White)
	g.SetSize(2)
	g.SetHidden(true)

	want := []Property{PropHLines, PropVLines, PropHLineVals, PropVLineVals, PropColor, PropSize, PropHidden}
	if !slices.Equal(got, want) {
		t.Errorf("notifications = %v, want %v", got, want)
	}

	cancel()
	g.SetHLines(4)
	if len(got) != len(want) {
		t.Errorf("observer called after cancel: %v", got)
	}
}

// gridBox is a 100x100 box mapping data [0, 10] on both axes, with row 0 at
// value 0, so one data unit is 10 pixels.
func gridBox(t *testing.T) *Box {
	t.Helper()
	box := NewBox(100, 100)
	if err := box.SetTotalLimits(0, 10, 0, 10); err != nil {
		t.Fatalf("SetTotalLimits() = %v", err)
	}
	return box
}

func TestGridSegmentsAutoSpacing(t *testing.T) {
	box := gridBox(t)
	g := NewGrid(1, 1, nil, 1)

	got := g.Segments(box)
	want := []Segment{
		{X0: 0, Y0: 50.5, X1: 100, Y1: 50.5},
		{X0: 50.5, Y0: 0, X1: 50.5, Y1: 100},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestGridSegmentsAutoSpacingMany(t *testing.T) {
	box := gridBox(t)
	g := NewGrid(4, 1, nil, 1)

	var rows []float64
	for _, s := range g.Segments(box) {
		if s.Y0 == s.Y1 {
			rows = append(rows, s.Y0)
		}
	}
	want := []float64{20.5, 40.5, 60.5, 80.5}
	if !slices.Equal(rows, want) {
		t.Errorf("horizontal rows = %v, want %v", rows, want)
	}
}

func TestGridSegmentsExplicit(t *testing.T) {
	box := gridBox(t)
	g := NewGridArray(2, 1, []float64{1, 9}, nil, nil, 1)

	got := g.Segments(box)
	want := []Segment{
		{X0: 0, Y0: 10.5, X1: 100, Y1: 10.5},
		{X0: 0, Y0: 90.5, X1: 100, Y1: 90.5},
		{X0: 50.5, Y0: 0, X1: 50.5, Y1: 100},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestGridSegmentsExplicitIgnoresLimits(t *testing.T) {
	box := gridBox(t)
	auto := NewGrid(1, 1, nil, 1)
	explicit := NewGridArray(1, 1, []float64{2}, nil, nil, 1)

	a, e := auto.Segments(box), explicit.Segments(box)
	if a[0].Y0 != 50.5 {
		t.Errorf("auto row = %v, want 50.5", a[0].Y0)
	}
	if e[0].Y0 != 20.5 {
		t.Errorf("explicit row = %v, want 20.5", e[0].Y0)
	}
	// Vertical lines are still auto-spaced from the limits.
	if e[1] != a[1] {
		t.Errorf("explicit vertical = %v, want %v", e[1], a[1])
	}
}

func TestGridSegmentsShortValues(t *testing.T) {
	buf := captureLogs(t)

	box := gridBox(t)
	g := NewGridArray(3, 1, []float64{5}, nil, nil, 1)

	segs := g.Segments(box)
	if len(segs) != 2 {
		t.Fatalf("len(Segments()) = %d, want 2 (one horizontal, one vertical)", len(segs))
	}
	if !strings.Contains(buf.String(), "fewer grid values than lines") {
		t.Errorf("expected short value warning, got: %s", buf.String())
	}
}

func TestGridSegmentsUseVisibleLimitsForPixels(t *testing.T) {
	box := gridBox(t)
	if err := box.SetVisibleLimits(0, 5, 0, 5); err != nil {
		t.Fatalf("SetVisibleLimits() = %v", err)
	}
	g := NewGrid(1, 1, nil, 1)

	// The line stays at data value 5 (middle of the total range), which is
	// the far edge of the zoomed window.
	segs := g.Segments(box)
	if segs[0].Y0 != 100.5 {
		t.Errorf("zoomed horizontal row = %v, want 100.5", segs[0].Y0)
	}
	if segs[1].X0 != 100.5 {
		t.Errorf("zoomed vertical column = %v, want 100.5", segs[1].X0)
	}
}

func TestGridDrawSequence(t *testing.T) {
	box := gridBox(t)
	g := NewGrid(1, 1, color.White, 2)
	cv := newFakeCanvas(100, 100)

	if err := g.Draw(box, cv); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	want := []string{
		"push",
		"dash [5]",
		"M 0 50.5",
		"L 100 50.5",
		"M 50.5 0",
		"L 50.5 100",
		"stroke",
		"pop",
	}
	if !slices.Equal(cv.ops, want) {
		t.Errorf("ops = %q, want %q", cv.ops, want)
	}
	if cv.color != color.White {
		t.Errorf("color = %v, want white", cv.color)
	}
	if cv.width != 2 {
		t.Errorf("line width = %v, want 2", cv.width)
	}
	if cv.depth != 0 {
		t.Errorf("unbalanced push/pop, depth = %d", cv.depth)
	}
}

func TestGridDrawIdempotent(t *testing.T) {
	box := gridBox(t)
	g := NewGridArray(3, 2, []float64{1, 4.5, 7}, nil, nil, 1)

	first := newFakeCanvas(100, 100)
	second := newFakeCanvas(100, 100)
	if err := g.Draw(box, first); err != nil {
		t.Fatal(err)
	}
	if err := g.Draw(box, second); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(first.ops, second.ops) {
		t.Errorf("second draw differs:\n%q\n%q", first.ops, second.ops)
	}
}

func TestGridDrawRecording(t *testing.T) {
	box := gridBox(t)
	if err := box.AddGraph(NewGrid(1, 1, nil, 1)); err != nil {
		t.Fatal(err)
	}

	r, err := box.Record()
	if err != nil {
		t.Fatalf("Record() = %v", err)
	}

	var points []gg.Point
	var strokes int
	for _, cmd := range r.Commands() {
		s, ok := cmd.(recording.StrokePathCommand)
		if !ok {
			continue
		}
		strokes++
		if !slices.Equal(s.Stroke.DashPattern, []float64{5}) {
			t.Errorf("dash pattern = %v, want [5]", s.Stroke.DashPattern)
		}
		if s.Stroke.DashOffset != 0 {
			t.Errorf("dash offset = %v, want 0", s.Stroke.DashOffset)
		}
		for _, el := range r.Resources().GetPath(s.Path).Elements() {
			switch e := el.(type) {
			case gg.MoveTo:
				points = append(points, e.Point)
			case gg.LineTo:
				points = append(points, e.Point)
			}
		}
	}
	if strokes != 1 {
		t.Fatalf("got %d stroke commands, want 1", strokes)
	}
	want := []gg.Point{{X: 0, Y: 50.5}, {X: 100, Y: 50.5}, {X: 50.5, Y: 0}, {X: 50.5, Y: 100}}
	if !slices.Equal(points, want) {
		t.Errorf("path points = %v, want %v", points, want)
	}
}

func TestGridRenderPixels(t *testing.T) {
	box := NewBox(40, 40, WithTotalLimits(0, 40, 0, 40), WithBackground(color.White))
	if err := box.AddGraph(NewGrid(1, 1, color.Black, 1)); err != nil {
		t.Fatal(err)
	}

	dc, err := box.Render()
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	img := dc.Image()

	// Row 20 is the horizontal line; x=2 falls inside the first dash.
	if r, _, _, _ := img.At(2, 20).RGBA(); r > 0x8000 {
		t.Errorf("pixel (2, 20) red = %#x, want dark grid line", r)
	}
	if r, _, _, _ := img.At(2, 5).RGBA(); r < 0xf000 {
		t.Errorf("pixel (2, 5) red = %#x, want white background", r)
	}
	if dc.IsDashed() {
		t.Error("context still dashed after draw")
	}
}

func BenchmarkGridSegments(b *testing.B) {
	box := NewBox(1920, 1080, WithTotalLimits(0, 100, 100, 0))
	g := NewGrid(20, 40, nil, 1)
	b.ReportAllocs()
	for b.Loop() {
		_ = g.Segments(box)
	}
}
