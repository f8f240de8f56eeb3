//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[KeyCode]ebiten.Key{
	KeyEscape: ebiten.KeyEscape,
	KeyF12:    ebiten.KeyF12,
	KeySpace:  ebiten.KeySpace,
}

// ebitenInput latches ebiten's input state once per Update so every read in
// a tick sees the same values.
type ebitenInput struct {
	scroll    float32
	hasScroll bool

	px, py     float32
	hasPointer bool
	button     bool

	down    map[KeyCode]bool
	pressed map[KeyCode]bool
	closing bool
}

func newEbitenInput() *ebitenInput {
	return &ebitenInput{
		down:    make(map[KeyCode]bool, len(ebitenKeys)),
		pressed: make(map[KeyCode]bool, len(ebitenKeys)),
	}
}

func (in *ebitenInput) poll() {
	_, wy := ebiten.Wheel()
	in.scroll = float32(wy)
	in.hasScroll = wy != 0

	x, y := ebiten.CursorPosition()
	w, h := ebiten.WindowSize()
	in.px, in.py = float32(x), float32(y)
	in.hasPointer = x >= 0 && y >= 0 && x < w && y < h
	in.button = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	for code, key := range ebitenKeys {
		in.down[code] = ebiten.IsKeyPressed(key)
		in.pressed[code] = inpututil.IsKeyJustPressed(key)
	}
	in.closing = ebiten.IsWindowBeingClosed()
}

func (in *ebitenInput) ScrollDelta() (float32, bool) { return in.scroll, in.hasScroll }

func (in *ebitenInput) PointerPosition() (x, y float32, ok bool) {
	return in.px, in.py, in.hasPointer
}

func (in *ebitenInput) PrimaryButtonDown() bool     { return in.button }
func (in *ebitenInput) KeyDown(key KeyCode) bool    { return in.down[key] }
func (in *ebitenInput) KeyPressed(key KeyCode) bool { return in.pressed[key] }
func (in *ebitenInput) CloseRequested() bool        { return in.closing }
