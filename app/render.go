package app

import (
	"math"
	"runtime"

	"texview/fb"
	"texview/texture"

	"golang.org/x/sync/errgroup"
)

// Renderer draws a texture into a frame buffer as a tiled, zoomable,
// rotatable plane.
//
// At zoom 0 one texture repeat spans the shorter buffer side. The X rotation
// turns the plane in radians around the buffer centre and the Y rotation
// scrolls it vertically in texels.
type Renderer struct {
	tex     *texture.Texture
	filter  Filter
	bg      uint32
	workers int
}

func NewRenderer(tex *texture.Texture, filter Filter, bg uint32, workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{tex: tex, filter: filter, bg: bg, workers: workers}
}

// Render fills dst. Rows are split into bands rendered concurrently; each
// band writes a disjoint set of rows and the texture is read-only.
func (r *Renderer) Render(dst *fb.FrameBuffer, zoom, rotX, rotY float32) error {
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return nil
	}

	scale := float64(min(w, h)) * math.Exp(float64(zoom))
	sin, cos := math.Sincos(float64(rotX))
	vOff := float64(rotY) / float64(r.tex.Height())
	halfW, halfH := float64(w)/2, float64(h)/2

	band := (h + r.workers - 1) / r.workers
	var g errgroup.Group
	g.SetLimit(r.workers)
	for y0 := 0; y0 < h; y0 += band {
		y0, y1 := y0, min(y0+band, h)
		g.Go(func() error {
			for y := y0; y < y1; y++ {
				cy := (float64(y) + 0.5 - halfH) / scale
				for x := 0; x < w; x++ {
					cx := (float64(x) + 0.5 - halfW) / scale
					u := cx*cos - cy*sin + 0.5
					v := cx*sin + cy*cos + 0.5 + vOff
					dst.SetPixel(x, y, r.shade(wrapUnit(u), wrapUnit(v)))
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (r *Renderer) shade(u, v float32) uint32 {
	var c texture.Color
	if r.filter == FilterNearest {
		c = r.tex.GetPixel(u, v)
	} else {
		c = r.tex.SamplePixel(u, v)
	}
	cr, cg, cb, ca := c.RGBA8()
	if r.tex.Channels() == 3 {
		return fb.RGB(cr, cg, cb)
	}
	return fb.Blend(r.bg, cr, cg, cb, ca)
}

// wrapUnit maps f into [0, 1).
func wrapUnit(f float64) float32 {
	f -= math.Floor(f)
	u := float32(f)
	if u >= 1 {
		return 0
	}
	return u
}
