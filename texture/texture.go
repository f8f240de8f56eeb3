// Package texture holds decoded pixel data in memory and samples it with
// normalized (u, v) coordinates.
//
// Coordinates wrap around the texture edges, so a texture tiles in both
// directions. Two filters are provided: GetPixel picks the nearest texel and
// SamplePixel blends four neighbouring taps bilinearly.
//
// A Texture is immutable after New and is safe to share between goroutines.
package texture

import (
	"errors"
	"fmt"
	"math"
)

// channelScale normalizes an 8-bit channel. Max intensity maps just below 1.0
// (255/255.99); renderers compare against that exact value.
const channelScale = 255.99

// ErrEmpty is wrapped in a *DecodeError when New receives no pixel data.
var ErrEmpty = errors.New("texture: empty pixel data")

// DecodeError reports that the image source produced no pixel data.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("texture: decode: %v", e.Err)
	}
	return fmt.Sprintf("texture: decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnsupportedFormatError reports a channel layout other than RGB or RGBA.
type UnsupportedFormatError struct {
	Channels int
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("texture: unsupported channel count %d (want 3 or 4)", e.Channels)
}

// Texture is a row-major, top-to-bottom buffer of interleaved 8-bit channels.
type Texture struct {
	pix      []byte
	width    int
	height   int
	channels int
}

// New validates and stores pix. The slice is retained, not copied; callers
// must not modify it afterwards.
func New(pix []byte, width, height, channels int) (*Texture, error) {
	if len(pix) == 0 {
		return nil, &DecodeError{Err: ErrEmpty}
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("texture: invalid dimensions %dx%d", width, height)
	}
	if channels != 3 && channels != 4 {
		return nil, &UnsupportedFormatError{Channels: channels}
	}
	if want := width * height * channels; len(pix) != want {
		return nil, fmt.Errorf("texture: pixel data is %d bytes, want %d for %dx%dx%d", len(pix), want, width, height, channels)
	}
	return &Texture{pix: pix, width: width, height: height, channels: channels}, nil
}

func (t *Texture) Width() int    { return t.width }
func (t *Texture) Height() int   { return t.height }
func (t *Texture) Channels() int { return t.channels }

// GetPixel returns the texel nearest to (u, v).
//
// The integer index is truncated from u*width and then reduced modulo
// width-1 (height-1 for v). The reduced modulus means the last column and row
// are only reachable through index 0's neighbour arithmetic; existing output
// depends on it, so it is kept as is. Negative products saturate to index 0.
//
// Three-channel textures report alpha 0. GetPixel panics with an
// *UnsupportedFormatError when called on a Texture not built by New.
func (t *Texture) GetPixel(u, v float32) Color {
	x := wrapIndex(u*float32(t.width), t.width)
	y := wrapIndex(v*float32(t.height), t.height)
	off := (x + y*t.width) * t.channels

	switch t.channels {
	case 4:
		p := t.pix[off : off+4 : off+4]
		return Color{
			R: float32(p[0]) / channelScale,
			G: float32(p[1]) / channelScale,
			B: float32(p[2]) / channelScale,
			A: float32(p[3]) / channelScale,
		}
	case 3:
		p := t.pix[off : off+3 : off+3]
		return Color{
			R: float32(p[0]) / channelScale,
			G: float32(p[1]) / channelScale,
			B: float32(p[2]) / channelScale,
		}
	default:
		panic(&UnsupportedFormatError{Channels: t.channels})
	}
}

// SamplePixel returns the bilinear blend of four taps placed one texel away
// from (u, v) on each axis. Taps wrap like GetPixel; there is no clamping.
func (t *Texture) SamplePixel(u, v float32) Color {
	invW := 1 / float32(t.width)
	invH := 1 / float32(t.height)

	tl := t.GetPixel(u-invW, v-invH)
	bl := t.GetPixel(u-invW, v+invH)
	br := t.GetPixel(u+invW, v+invH)
	tr := t.GetPixel(u+invW, v-invH)

	dx := fract(u * float32(t.width))
	dy := fract(v * float32(t.height))

	bottom := bl.Lerp(br, dx)
	top := tl.Lerp(tr, dx)
	return top.Lerp(bottom, dy)
}

// wrapIndex truncates f toward zero into a uint64, saturating negatives and
// NaN at 0 and values past the range (including +Inf) at MaxUint64, then
// reduces it modulo n-1. A one-texel dimension always resolves to 0.
func wrapIndex(f float32, n int) int {
	if n <= 1 {
		return 0
	}
	var i uint64
	switch {
	case !(f > 0):
		i = 0
	case f >= math.MaxUint64:
		i = math.MaxUint64
	default:
		i = uint64(f)
	}
	return int(i % uint64(n-1))
}

// fract is f minus its integer part, truncated toward zero into an int32
// that saturates at both ends. NaN truncates to 0.
func fract(f float32) float32 {
	var i int32
	switch {
	case f != f:
		i = 0
	case f >= math.MaxInt32:
		i = math.MaxInt32
	case f <= math.MinInt32:
		i = math.MinInt32
	default:
		i = int32(f)
	}
	return f - float32(i)
}
