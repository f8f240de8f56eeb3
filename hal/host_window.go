//go:build cgo

package hal

import (
	"errors"

	"texview/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a resizable desktop window, calls the app step once per
// tick and shows the last presented frame. It blocks until the window
// closes or the step returns ErrQuit.
func RunWindow(newApp func(HAL) func() error, opts Options) error {
	opts = opts.withDefaults()
	in := newEbitenInput()
	h := newHostHAL(opts, in)
	step := newApp(h)

	g := &hostGame{h: h, in: in, step: step}
	ebiten.SetWindowTitle(opts.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// The session decides when to stop; a close click only raises
	// Input.CloseRequested.
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	in      *ebitenInput
	img     *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.in.poll()
	g.h.clock.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	var w, h int
	g.scratch, w, h = g.h.surface.snapshot(g.scratch)
	if w == 0 || h == 0 || len(g.scratch) != w*h*4 {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
	}
	g.img.WritePixels(g.scratch)
	screen.DrawImage(g.img, nil)
}

// Layout keeps the logical screen equal to the window so one framebuffer
// pixel maps to one surface pixel.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth, 1)
	h := max(outsideHeight, 1)
	g.h.surface.setSize(w, h)
	return w, h
}
