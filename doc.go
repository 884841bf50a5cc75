// Package databox draws grid overlays for 2D plots on top of gg.
//
// # Overview
//
// A Box describes a plotting surface: its pixel size, the data range it
// shows and the scale (linear, log2 or log10) of each axis. Graphs added to
// the box are drawn in order onto a Canvas, which is either a gg drawing
// context or a gg command recording.
//
// Grid is the graph this package provides. It draws dashed horizontal and
// vertical reference lines, evenly spaced across the data range or at
// explicit data values:
//
//	box := databox.NewBox(640, 480, databox.WithTotalLimits(0, 100, 10, 0))
//	grid := databox.NewGrid(4, 9, gg.Hex("#888888").Color(), 1)
//	box.AddGraph(grid)
//
//	dc, err := box.Render()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("grid.png")
//
// # Coordinates
//
// Pixel coordinates have their origin at the top-left corner. The top limit
// of a box is the data value at pixel row 0, so a box with top > bottom has
// y values increasing upward on screen. Grid lines are placed at integer
// pixel positions plus 0.5 so that one-pixel-wide lines cover exactly one
// row or column.
//
// # Change notification
//
// Every graph setter notifies observers registered with OnChange, passing
// the Property that changed. Observers run synchronously.
package databox
