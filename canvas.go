package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Natural size of the rendered graph, in unscaled pixels.
const (
	cellSize    = 10.0
	cellGap     = 3.0
	cellRadius  = 2.0
	cellPitch   = cellSize + cellGap
	framePad    = 8.0
	labelColumn = 28.0
	headerH     = 16.0
	legendH     = 20.0
	labelSize   = 9.0
)

// labelFont is the TTF used for month, day and legend labels.
var labelFont = goregular.TTF

func naturalSize() (w, h float64) {
	w = 2*framePad + labelColumn + Cols*cellPitch - cellGap
	h = 2*framePad + headerH + Rows*cellPitch - cellGap + legendH
	return w, h
}

// labelFace parses the label font at the given size. A font that fails to
// load falls back to the built-in bitmap face.
func labelFace(ttf []byte, size float64) font.Face {
	f, err := truetype.Parse(ttf)
	if err != nil {
		Logger().Warn("label font unavailable, using basic face", "err", err)
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// renderGraph draws g at its natural size multiplied by scale onto an opaque
// background.
func renderGraph(g Grid, p Palette, scale int) *gg.Context {
	s := float64(scale)
	w, h := naturalSize()
	dc := gg.NewContext(int(w*s), int(h*s))

	dc.SetColor(mustParseHex(p.Background))
	dc.Clear()
	dc.SetFontFace(labelFace(labelFont, labelSize*s))

	originX := (framePad + labelColumn) * s
	originY := (framePad + headerH) * s

	dc.SetColor(p.TextRGBA())
	for _, m := range months {
		x := originX + float64(m.Start)*cellPitch*s
		dc.DrawStringAnchored(m.Label, x, originY-4*s, 0, 0)
	}
	for day, label := range dayLabels {
		if label == "" {
			continue
		}
		y := originY + (float64(day)*cellPitch+cellSize/2)*s
		dc.DrawStringAnchored(label, framePad*s, y, 0, 0.5)
	}

	g.Each(func(week, day int, level Level) {
		x := originX + float64(week)*cellPitch*s
		y := originY + float64(day)*cellPitch*s
		drawCell(dc, x, y, s, p.RGBA(level))
	})

	drawLegend(dc, p, s, w, h)
	return dc
}

func drawCell(dc *gg.Context, x, y, s float64, c color.Color) {
	dc.SetColor(c)
	dc.DrawRoundedRectangle(x, y, cellSize*s, cellSize*s, cellRadius*s)
	dc.Fill()
}

// drawLegend renders "Less ■■■■■ More" right-aligned under the grid.
func drawLegend(dc *gg.Context, p Palette, s, w, h float64) {
	right := (w - framePad) * s
	mid := (h - framePad - legendH/2) * s

	dc.SetColor(p.TextRGBA())
	dc.DrawStringAnchored("More", right, mid, 1, 0.5)
	moreW, _ := dc.MeasureString("More")

	x := right - moreW - 4*s - float64(NumLevels)*cellPitch*s
	for l := 0; l < NumLevels; l++ {
		drawCell(dc, x+float64(l)*cellPitch*s, mid-cellSize/2*s, s, p.RGBA(Level(l)))
	}

	dc.SetColor(p.TextRGBA())
	dc.DrawStringAnchored("Less", x-4*s, mid, 1, 0.5)
}

// captureGraph renders g oversampled and returns it PNG encoded, the form in
// which the compositor receives its source raster.
func captureGraph(g Grid, p Palette) ([]byte, error) {
	dc := renderGraph(g, p, Oversample)
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}
	return buf.Bytes(), nil
}
