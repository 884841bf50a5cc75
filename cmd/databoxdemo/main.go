// Command databoxdemo renders a databox grid overlay to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/databox"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		hlines  = flag.Int("hlines", 4, "number of horizontal grid lines")
		vlines  = flag.Int("vlines", 9, "number of vertical grid lines")
		hvals   = flag.String("hvals", "", "comma-separated y values of horizontal lines (overrides spacing)")
		vvals   = flag.String("vvals", "", "comma-separated x values of vertical lines (overrides spacing)")
		limits  = flag.String("limits", "0,100,100,0", "data limits as left,right,top,bottom")
		xscale  = flag.String("xscale", "linear", "horizontal scale: linear, log2 or log10")
		yscale  = flag.String("yscale", "linear", "vertical scale: linear, log2 or log10")
		col     = flag.String("color", "#7f7f7f", "grid color as hex")
		bg      = flag.String("background", "#ffffff", "background color as hex")
		size    = flag.Float64("size", 1, "grid line width in pixels")
		title   = flag.String("title", "", "optional title drawn at the top")
		output  = flag.String("output", "grid.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		databox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := config{
		width: *width, height: *height,
		hlines: *hlines, vlines: *vlines,
		hvals: *hvals, vvals: *vvals,
		limits: *limits, xscale: *xscale, yscale: *yscale,
		color: *col, background: *bg, size: *size,
	}
	box, err := cfg.build()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	dc, err := box.Render()
	if err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	if *title != "" {
		if err := drawTitle(dc, *title); err != nil {
			log.Fatalf("Failed to draw title: %v", err)
		}
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Grid saved to %s (%dx%d)\n", *output, *width, *height)
}

// config is the parsed command line.
type config struct {
	width, height  int
	hlines, vlines int
	hvals, vvals   string
	limits         string
	xscale, yscale string
	color          string
	background     string
	size           float64
}

func (c config) build() (*databox.Box, error) {
	lim, err := parseFloats(c.limits)
	if err != nil {
		return nil, fmt.Errorf("limits: %w", err)
	}
	if len(lim) != 4 {
		return nil, fmt.Errorf("limits: want 4 values, got %d", len(lim))
	}
	sx, err := databox.ParseScaleType(c.xscale)
	if err != nil {
		return nil, err
	}
	sy, err := databox.ParseScaleType(c.yscale)
	if err != nil {
		return nil, err
	}
	hv, err := parseFloats(c.hvals)
	if err != nil {
		return nil, fmt.Errorf("hvals: %w", err)
	}
	vv, err := parseFloats(c.vvals)
	if err != nil {
		return nil, fmt.Errorf("vvals: %w", err)
	}

	box := databox.NewBox(c.width, c.height, databox.WithBackground(gg.Hex(c.background).Color()))
	if err := box.SetTotalLimits(lim[0], lim[1], lim[2], lim[3]); err != nil {
		return nil, err
	}
	if err := box.SetScaleTypeX(sx); err != nil {
		return nil, err
	}
	if err := box.SetScaleTypeY(sy); err != nil {
		return nil, err
	}

	hlines, vlines := c.hlines, c.vlines
	if hv != nil {
		hlines = len(hv)
	}
	if vv != nil {
		vlines = len(vv)
	}
	grid := databox.NewGridArray(hlines, vlines, hv, vv, gg.Hex(c.color).Color(), c.size)
	if err := box.AddGraph(grid); err != nil {
		return nil, err
	}
	return box, nil
}

// parseFloats parses a comma-separated list. An empty string yields nil.
func parseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func drawTitle(dc *gg.Context, title string) error {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return err
	}
	dc.SetFont(source.Face(16))
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, float64(dc.Width())/2, 8, 0.5, 1)
	return nil
}
