// Package render draws dashboard figures as PNG images with go-chart.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"

	"SpaceXLaunchDashboard/internal/dashboard"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 480
	MinSize       = 200
	MaxSize       = 2000
)

var palette = []string{
	"4F46E5", "10B981", "F59E0B", "EF4444", "8B5CF6",
	"06B6D4", "EC4899", "84CC16", "F97316", "6366F1",
}

func paletteColor(i int) drawing.Color {
	return drawing.ColorFromHex(palette[i%len(palette)])
}

// pointStyle draws dots only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		StrokeColor: col,
		DotWidth:    5,
		DotColor:    col,
	}
}

// ClampSize keeps requested image dimensions within [MinSize, MaxSize],
// substituting the defaults for zero values.
func ClampSize(width, height int) (int, int) {
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	return min(max(width, MinSize), MaxSize), min(max(height, MinSize), MaxSize)
}

// PiePNG writes c as a PNG pie chart. Zero-sized slices are left out; a chart
// with nothing to draw, or one go-chart refuses, is written as a blank image.
func PiePNG(w io.Writer, c dashboard.PieChart, width, height int) error {
	width, height = ClampSize(width, height)

	values := make([]chart.Value, 0, len(c.Slices))
	for i, s := range c.Slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(s.Value),
			Label: fmt.Sprintf("%s (%d)", s.Label, s.Value),
			Style: chart.Style{FillColor: paletteColor(i)},
		})
	}
	if len(values) == 0 {
		return blank(w, width, height)
	}

	pie := chart.PieChart{
		Title:  c.Title,
		Width:  width,
		Height: height,
		Values: values,
	}
	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		slog.Warn("render.PiePNG(): falling back to blank image", "title", c.Title, "error", err)
		return blank(w, width, height)
	}
	_, err := buf.WriteTo(w)
	return err
}

// ScatterPNG writes c as a PNG scatter chart with one colored series per
// booster category.
func ScatterPNG(w io.Writer, c dashboard.ScatterChart, width, height int) error {
	width, height = ClampSize(width, height)
	if len(c.Points) == 0 {
		return blank(w, width, height)
	}

	grouped := c.Series()
	series := make([]chart.Series, 0, len(c.Categories))
	for i, category := range c.Categories {
		points := grouped[category]
		xs := make([]float64, 0, len(points))
		ys := make([]float64, 0, len(points))
		for _, p := range points {
			xs = append(xs, p.X)
			ys = append(ys, float64(p.Y))
		}
		series = append(series, chart.ContinuousSeries{
			Name:    category,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(paletteColor(i)),
		})
	}

	lo, hi := xBounds(c.Points)
	ch := chart.Chart{
		Title:      c.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 12, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  c.XLabel,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		YAxis: chart.YAxis{
			Name:  c.YLabel,
			Range: &chart.ContinuousRange{Min: -0.5, Max: 1.5},
			Ticks: []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		slog.Warn("render.ScatterPNG(): falling back to blank image", "title", c.Title, "error", err)
		return blank(w, width, height)
	}
	_, err := buf.WriteTo(w)
	return err
}

// xBounds pads the payload extent so single-value data still has a non-zero range.
func xBounds(points []dashboard.ScatterPoint) (float64, float64) {
	lo, hi := points[0].X, points[0].X
	for _, p := range points[1:] {
		lo = min(lo, p.X)
		hi = max(hi, p.X)
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 500
	}
	return lo - pad, hi + pad
}

func blank(w io.Writer, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return png.Encode(w, img)
}
