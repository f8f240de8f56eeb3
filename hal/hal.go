package hal

import (
	"errors"
	"fmt"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Logf formats a line and writes it to l. A nil Logger discards.
func Logf(l Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}

// ErrQuit is returned by an app step to end the session without error.
var ErrQuit = errors.New("quit")

// Surface is the visible output of a session.
//
// Pixels handed to Present are packed 0x00RRGGBB, row-major.
type Surface interface {
	Size() (w, h int)
	Present(pix []uint32, w, h int) error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyF12
	KeySpace
)

// Input is polled once per frame tick. Values are stable for the whole tick.
type Input interface {
	// ScrollDelta reports the vertical wheel movement this tick, if any.
	ScrollDelta() (float32, bool)
	// PointerPosition reports the pointer in surface coordinates while it is
	// over the surface.
	PointerPosition() (x, y float32, ok bool)
	PrimaryButtonDown() bool
	// KeyDown reports whether key is held.
	KeyDown(key KeyCode) bool
	// KeyPressed reports whether key went down this tick.
	KeyPressed(key KeyCode) bool
	CloseRequested() bool
}

// Clock counts frame ticks.
type Clock interface {
	Frame() uint64
	FPS() float64
}

// HAL provides the only contact point between the viewer and the outside world.
type HAL interface {
	Logger() Logger
	Surface() Surface
	Input() Input
	Clock() Clock
}
