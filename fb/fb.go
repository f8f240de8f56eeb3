// Package fb is a mutable grid of packed 32-bit pixels.
//
// Pixels are packed 0RGB (0x00RRGGBB), the layout the host surface presents.
// A FrameBuffer has no internal locking; one writer per frame is assumed.
package fb

import (
	"fmt"
	"math"
)

// FrameBuffer stores width*height packed pixels, row-major.
type FrameBuffer struct {
	pix    []uint32
	width  int
	height int
}

// New allocates a zeroed buffer.
func New(width, height int) *FrameBuffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("fb: negative size %dx%d", width, height))
	}
	return &FrameBuffer{
		pix:    make([]uint32, width*height),
		width:  width,
		height: height,
	}
}

func (f *FrameBuffer) Width() int       { return f.width }
func (f *FrameBuffer) Height() int      { return f.height }
func (f *FrameBuffer) Pixels() []uint32 { return f.pix }

// index panics on out-of-range coordinates; a row overflow would otherwise
// silently land in the next row.
func (f *FrameBuffer) index(x, y int) int {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		panic(fmt.Sprintf("fb: pixel (%d,%d) outside %dx%d", x, y, f.width, f.height))
	}
	return x + y*f.width
}

func (f *FrameBuffer) SetPixel(x, y int, value uint32) {
	f.pix[f.index(x, y)] = value
}

func (f *FrameBuffer) Pixel(x, y int) uint32 {
	return f.pix[f.index(x, y)]
}

// SetPixelF32 stores an intensity in [0, 1] scaled to the full uint32 range.
func (f *FrameBuffer) SetPixelF32(x, y int, value float32) {
	f.pix[f.index(x, y)] = fromUnit(value)
}

// GetPixelF32 is the inverse of SetPixelF32.
func (f *FrameBuffer) GetPixelF32(x, y int) float32 {
	return float32(f.pix[f.index(x, y)]) / math.MaxUint32
}

func (f *FrameBuffer) Clear(value uint32) {
	for i := range f.pix {
		f.pix[i] = value
	}
}

// Resize replaces the pixel storage with a zeroed width*height buffer. Old
// contents are discarded even when the size is unchanged.
func (f *FrameBuffer) Resize(width, height int) {
	*f = *New(width, height)
}

// fromUnit scales in float32, where MaxUint32 rounds to 2^32, and saturates.
func fromUnit(v float32) uint32 {
	s := v * math.MaxUint32
	switch {
	case !(s > 0):
		return 0
	case s >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(s)
	}
}
