package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

var (
	ErrCapture = errors.New("capture failed")
	ErrDecode  = errors.New("decode failed")
)

// Compositor produces the fixed-size export image. The grid is captured at
// its natural size first and then scaled onto the output canvas, so the
// source aspect ratio never distorts or clips the result.
type Compositor struct {
	Width, Height int
	Padding       int

	// capture renders a grid to encoded raster bytes.
	capture func(Grid) ([]byte, error)
}

func NewCompositor(p Palette) *Compositor {
	return &Compositor{
		Width:   ExportWidth,
		Height:  ExportHeight,
		Padding: ExportPadding,
		capture: func(g Grid) ([]byte, error) { return captureGraph(g, p) },
	}
}

// PendingExport is one in-flight export. It owns its captured raster and
// output canvas, so concurrent exports do not share state.
type PendingExport struct {
	done chan struct{}
	data []byte
	err  error
}

func (p *PendingExport) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the export resolves or ctx is cancelled.
func (p *PendingExport) Wait(ctx context.Context) ([]byte, error) {
	select {
	case <-p.done:
		return p.data, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Request captures g immediately and resolves the composed PNG in the
// background. g is a value copy; later edits to the caller's grid are not
// seen.
func (c *Compositor) Request(ctx context.Context, g Grid) *PendingExport {
	p := &PendingExport{done: make(chan struct{})}
	raw, err := c.capture(g)
	if err != nil {
		if !errors.Is(err, ErrCapture) {
			err = fmt.Errorf("%w: %v", ErrCapture, err)
		}
		p.err = err
		close(p.done)
		Logger().Warn("export capture failed", "err", err)
		return p
	}

	Logger().Info("export requested", "captured_bytes", len(raw), "painted", g.Painted())
	go func() {
		defer close(p.done)
		if err := ctx.Err(); err != nil {
			p.err = err
			return
		}
		p.data, p.err = c.compose(raw)
		if p.err != nil {
			Logger().Warn("export failed", "err", p.err)
			return
		}
		Logger().Info("export ready", "bytes", len(p.data))
	}()
	return p
}

func (c *Compositor) compose(raw []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	sb := src.Bounds()
	if sb.Empty() {
		return nil, fmt.Errorf("%w: empty raster", ErrDecode)
	}

	dc := gg.NewContext(c.Width, c.Height)
	dc.SetColor(color.White)
	dc.Clear()

	dst, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected canvas type %T", dc.Image())
	}
	xdraw.CatmullRom.Scale(dst, c.Placement(sb.Dx(), sb.Dy()), src, sb, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Placement returns where a srcW×srcH raster lands on the output canvas:
// uniformly scaled to fit inside the padding and centered on both axes.
func (c *Compositor) Placement(srcW, srcH int) image.Rectangle {
	if srcW <= 0 || srcH <= 0 {
		return image.Rectangle{}
	}
	availW := float64(c.Width - 2*c.Padding)
	availH := float64(c.Height - 2*c.Padding)
	scale := math.Min(availW/float64(srcW), availH/float64(srcH))

	drawW := math.Round(float64(srcW) * scale)
	drawH := math.Round(float64(srcH) * scale)
	x := math.Round((float64(c.Width) - drawW) / 2)
	y := math.Round((float64(c.Height) - drawH) / 2)
	return image.Rect(int(x), int(y), int(x+drawW), int(y+drawH))
}
