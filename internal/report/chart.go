// Package report renders the averaged simulation series to a PNG with
// three stacked panels: spread dynamics, belief trajectory, and the
// fundamental against the posted quotes.
package report

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Cava11/Glosten-and-Milgorm-model/internal/domain"
)

const (
	chartWidth  = 1200
	panelHeight = 280
	panelGap    = 20
	marginLeft  = 70
	marginRight = 30
	marginTop   = 30
	marginBot   = 30
)

var (
	colBorder      = color.NRGBA{90, 90, 90, 255}
	colSpread      = color.NRGBA{31, 119, 180, 255}
	colBelief      = color.NRGBA{214, 39, 40, 255}
	colFundamental = color.NRGBA{44, 160, 44, 255}
	colAsk         = color.NRGBA{255, 127, 14, 255}
	colBid         = color.NRGBA{148, 103, 189, 255}
	colText        = color.NRGBA{30, 30, 30, 255}
)

// series pairs a labeled line with its color for one panel.
type series struct {
	label  string
	color  color.NRGBA
	values []float64
}

// Render writes the three-panel chart for result to path (PNG).
func Render(result *domain.AggregateResult, path string) error {
	if result == nil || result.Len() == 0 {
		return fmt.Errorf("report: empty result")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("report: create output dir: %w", err)
	}

	height := 3*panelHeight + 2*panelGap
	img := imaging.New(chartWidth, height, color.NRGBA{255, 255, 255, 255})

	panels := []struct {
		title string
		lines []series
	}{
		{"Spread dynamics (Monte Carlo average)", []series{
			{"spread", colSpread, result.Spread},
		}},
		{"Belief about the low state (Monte Carlo average)", []series{
			{"belief", colBelief, result.Belief},
		}},
		{"Fundamental, ask and bid (Monte Carlo averages)", []series{
			{"fundamental", colFundamental, result.Fundamental},
			{"ask", colAsk, result.Ask},
			{"bid", colBid, result.Bid},
		}},
	}

	for i, p := range panels {
		top := i * (panelHeight + panelGap)
		drawPanel(img, top, p.title, p.lines)
	}

	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("report: save chart: %w", err)
	}
	return nil
}

// drawPanel renders one titled panel with its value range on the left axis.
func drawPanel(img *image.NRGBA, top int, title string, lines []series) {
	inner := image.Rect(marginLeft, top+marginTop, chartWidth-marginRight, top+panelHeight-marginBot)

	drawRect(img, inner, colBorder)
	drawString(img, marginLeft, top+marginTop-10, title, colText)

	lo, hi := valueRange(lines)
	drawString(img, 8, inner.Min.Y+10, formatAxis(hi), colText)
	drawString(img, 8, inner.Max.Y, formatAxis(lo), colText)

	// Legend along the top edge, only useful with multiple lines.
	if len(lines) > 1 {
		x := inner.Min.X + 10
		for _, s := range lines {
			drawString(img, x, inner.Min.Y+14, s.label, s.color)
			x += 7*len(s.label) + 24
		}
	}

	for _, s := range lines {
		drawSeries(img, inner, s.values, lo, hi, s.color)
	}
}

// valueRange computes the shared [lo, hi] over all lines in a panel, with
// a small pad so flat lines stay visible.
func valueRange(lines []series) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range lines {
		for _, v := range s.values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi-lo < 1e-12 {
		lo -= 0.5
		hi += 0.5
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

// drawSeries plots values as a polyline inside rect.
func drawSeries(img *image.NRGBA, rect image.Rectangle, values []float64, lo, hi float64, col color.NRGBA) {
	n := len(values)
	if n == 0 {
		return
	}
	w := rect.Dx()
	h := rect.Dy()

	toPixel := func(i int) (int, int) {
		x := rect.Min.X
		if n > 1 {
			x += i * (w - 1) / (n - 1)
		}
		frac := (values[i] - lo) / (hi - lo)
		y := rect.Max.Y - 1 - int(frac*float64(h-1))
		return x, y
	}

	px, py := toPixel(0)
	for i := 1; i < n; i++ {
		x, y := toPixel(i)
		drawLine(img, px, py, x, y, col)
		px, py = x, y
	}
}

// drawLine draws a straight segment with integer stepping (Bresenham).
func drawLine(img *image.NRGBA, x0, y0, x1, y1 int, col color.NRGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		img.SetNRGBA(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawRect draws the border of rect.
func drawRect(img *image.NRGBA, rect image.Rectangle, col color.NRGBA) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		img.SetNRGBA(x, rect.Min.Y, col)
		img.SetNRGBA(x, rect.Max.Y-1, col)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		img.SetNRGBA(rect.Min.X, y, col)
		img.SetNRGBA(rect.Max.X-1, y, col)
	}
}

// drawString renders s at (x, y) with the built-in 7x13 face.
func drawString(img *image.NRGBA, x, y int, s string, col color.NRGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func formatAxis(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
