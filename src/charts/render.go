package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RenderImage rasterizes a spec into an image of the given size via go-chart.
// Callers are expected to fall back to Blank on error so the UI still updates.
func RenderImage(s Spec, width, height int) (image.Image, error) {
	var buf bytes.Buffer
	var err error
	switch s.Kind {
	case KindDonut:
		err = donutFor(s, width, height).Render(chart.PNG, &buf)
	default:
		err = barsFor(s, width, height).Render(chart.PNG, &buf)
	}
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

func barsFor(s Spec, width, height int) chart.BarChart {
	bars := make([]chart.Value, 0, len(s.Values))
	maxV := 0.0
	for _, v := range s.Values {
		bars = append(bars, chart.Value{
			Label: v.Label,
			Value: v.Value,
			Style: chart.Style{FillColor: v.Color, StrokeColor: v.Color},
		})
		if v.Value > maxV {
			maxV = v.Value
		}
	}
	yMax := s.YMax
	if yMax <= 0 {
		yMax = maxV * 1.1
	}
	if yMax <= 0 {
		yMax = 1
	}
	return chart.BarChart{
		Title:      s.Title,
		Width:      width,
		Height:     height,
		BarWidth:   60,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Bars: bars,
	}
}

func donutFor(s Spec, width, height int) chart.DonutChart {
	vals := make([]chart.Value, 0, len(s.Values))
	for _, v := range s.Values {
		vals = append(vals, chart.Value{
			Label: v.Label,
			Value: v.Value,
			Style: chart.Style{FillColor: v.Color, StrokeColor: v.Color},
		})
	}
	return chart.DonutChart{
		Title:  s.Title,
		Width:  width,
		Height: height,
		Values: vals,
	}
}

// Blank returns a dark placeholder image used before a chart exists and as a
// fallback when rendering fails.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}

// DrawCaption stamps a one-line caption onto the bottom-left corner of a
// rendered chart, white on a translucent dark box for readability.
func DrawCaption(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	pad := 6
	x := b.Min.X + 8
	y := b.Max.Y - 6

	bg := image.NewUniform(color.RGBA{A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)

	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
