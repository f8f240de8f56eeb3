// Package hud draws a small text overlay into a frame buffer.
package hud

import (
	"image/color"

	"texview/fb"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var (
	colorFG = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorBG = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xc0}
)

const pad = 2

// Overlay renders lines of text at the top-left corner.
type Overlay struct {
	font tinyfont.Fonter
	fg   color.RGBA
	bg   color.RGBA
}

func New() *Overlay {
	return &Overlay{font: &tinyfont.TomThumb, fg: colorFG, bg: colorBG}
}

// Draw writes lines over a translucent panel. Text that does not fit is
// clipped at the buffer edge.
func (o *Overlay) Draw(buf *fb.FrameBuffer, lines ...string) {
	if len(lines) == 0 || buf.Width() == 0 || buf.Height() == 0 {
		return
	}
	d := &fbDisplay{buf: buf}

	lineH := int(o.font.GetYAdvance())
	var panelW int
	for _, s := range lines {
		_, outbox := tinyfont.LineWidth(o.font, s)
		panelW = max(panelW, int(outbox))
	}
	d.fillRect(0, 0, panelW+2*pad, len(lines)*lineH+2*pad, o.bg)

	for i, s := range lines {
		y := pad + (i+1)*lineH - 1
		tinyfont.WriteLine(d, o.font, pad, int16(y), s, o.fg)
	}
}

// fbDisplay adapts a FrameBuffer to drivers.Displayer with clipping.
type fbDisplay struct {
	buf *fb.FrameBuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func (d *fbDisplay) Size() (x, y int16) {
	return int16(d.buf.Width()), int16(d.buf.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.buf.Width() || iy < 0 || iy >= d.buf.Height() {
		return
	}
	d.buf.SetPixel(ix, iy, fb.Blend(d.buf.Pixel(ix, iy), c.R, c.G, c.B, c.A))
}

func (d *fbDisplay) Display() error { return nil }

func (d *fbDisplay) fillRect(x, y, w, h int, c color.RGBA) {
	x0 := clampInt(x, 0, d.buf.Width())
	y0 := clampInt(y, 0, d.buf.Height())
	x1 := clampInt(x+w, 0, d.buf.Width())
	y1 := clampInt(y+h, 0, d.buf.Height())
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d.buf.SetPixel(px, py, fb.Blend(d.buf.Pixel(px, py), c.R, c.G, c.B, c.A))
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
