package texture

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-6

func near(a, b float32) bool { return math.Abs(float64(a-b)) <= eps }

func colorNear(a, b Color) bool {
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}

// gradient4x4 encodes the texel position in each channel: R=x*10, G=y*10,
// B=x+y*4, A=200+x+y*4.
func gradient4x4(t *testing.T) *Texture {
	t.Helper()
	pix := make([]byte, 0, 4*4*4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			i := x + y*4
			pix = append(pix, byte(x*10), byte(y*10), byte(i), byte(200+i))
		}
	}
	tex, err := New(pix, 4, 4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tex
}

func texel(x, y int) Color {
	i := x + y*4
	return Color{
		R: float32(x*10) / channelScale,
		G: float32(y*10) / channelScale,
		B: float32(i) / channelScale,
		A: float32(200+i) / channelScale,
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New(nil, 2, 2, 4); err == nil {
		t.Fatal("expected error for empty data")
	} else {
		var de *DecodeError
		if !errors.As(err, &de) || !errors.Is(err, ErrEmpty) {
			t.Fatalf("expected DecodeError wrapping ErrEmpty, got %v", err)
		}
	}

	_, err := New(make([]byte, 8), 2, 2, 2)
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) || ufe.Channels != 2 {
		t.Fatalf("expected UnsupportedFormatError{2}, got %v", err)
	}

	if _, err := New(make([]byte, 15), 2, 2, 4); err == nil {
		t.Fatal("expected length mismatch error")
	}
	if _, err := New(make([]byte, 12), 0, 2, 3); err == nil {
		t.Fatal("expected dimension error")
	}
}

func TestGetPixelWrapsByDimensionMinusOne(t *testing.T) {
	tex := gradient4x4(t)

	tests := []struct {
		u, v float32
		x, y int
	}{
		{0, 0, 0, 0},
		{0.25, 0, 1, 0},
		{0.5, 0.5, 2, 2},
		// floor(0.75*4)=3, 3 mod 3 = 0: the last column folds onto the first.
		{0.75, 0, 0, 0},
		{0.999, 0.999, 0, 0},
		{0.3, 0.6, 1, 2},
		// Past the right edge: floor(1.25*4)=5, 5 mod 3 = 2.
		{1.25, 0, 2, 0},
		// Negative coordinates saturate at 0.
		{-0.1, -0.9, 0, 0},
		// Past the int64 range: 4e18*4 truncates to 15999999748907991040, mod 3 = 1.
		{4e18, 0, 1, 0},
		// Past the uint64 range the index saturates at MaxUint64, mod 3 = 0.
		{1e19, 0, 0, 0},
		{float32(math.Inf(1)), 0, 0, 0},
		{0, float32(math.Inf(1)), 0, 0},
		{float32(math.Inf(-1)), float32(math.NaN()), 0, 0},
	}
	for _, tt := range tests {
		got := tex.GetPixel(tt.u, tt.v)
		if want := texel(tt.x, tt.y); !colorNear(got, want) {
			t.Fatalf("GetPixel(%v, %v) = %+v, want texel (%d,%d) %+v", tt.u, tt.v, got, tt.x, tt.y, want)
		}
	}
}

func TestGetPixelRGBHasZeroAlpha(t *testing.T) {
	pix := []byte{
		255, 255, 255, 10, 20, 30,
		40, 50, 60, 70, 80, 90,
	}
	tex, err := New(pix, 2, 2, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, uv := range [][2]float32{{0, 0}, {0.5, 0.5}, {0.9, 0.1}} {
		c := tex.GetPixel(uv[0], uv[1])
		if c.A != 0 {
			t.Fatalf("alpha at %v = %v, want 0", uv, c.A)
		}
	}
}

func TestChannelNormalization(t *testing.T) {
	tex, err := New([]byte{255, 255, 255, 255, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 2, 2, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c := tex.GetPixel(0, 0)
	want := float32(255) / float32(255.99)
	if c.R != want || c.A != want {
		t.Fatalf("max channel = %v, want %v", c.R, want)
	}
	if c.R >= 1 {
		t.Fatalf("max channel reached 1.0")
	}
	if math.Abs(float64(c.R)-0.9961) > 1e-4 {
		t.Fatalf("max channel = %v, want ~0.9961", c.R)
	}
}

func TestGetPixelPanicsOnInvalidTexture(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(*UnsupportedFormatError); !ok {
			t.Fatalf("recovered %v, want *UnsupportedFormatError", r)
		}
	}()
	tex := &Texture{pix: make([]byte, 8), width: 2, height: 2, channels: 2}
	tex.GetPixel(0, 0)
}

func TestSingleTexelDimension(t *testing.T) {
	tex, err := New([]byte{1, 2, 3, 4, 5, 6}, 2, 1, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c := tex.GetPixel(0.2, 0.7)
	if !near(c.R, 1/channelScale) {
		t.Fatalf("R = %v, want texel 0", c.R)
	}
}

func TestSamplePixelRedQuadrant(t *testing.T) {
	pix := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 0, 255,
	}
	tex, err := New(pix, 2, 2, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c := tex.SamplePixel(0.25, 0.25)
	if c.R < 0.99 || c.G > 0.01 || c.B > 0.01 || c.A < 0.99 {
		t.Fatalf("SamplePixel(0.25, 0.25) = %+v, want close to red", c)
	}
}

func TestSamplePixelWithinTapHull(t *testing.T) {
	tex := gradient4x4(t)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		u := rng.Float32()
		v := rng.Float32()

		invW := float32(1) / 4
		invH := float32(1) / 4
		taps := []Color{
			tex.GetPixel(u-invW, v-invH),
			tex.GetPixel(u-invW, v+invH),
			tex.GetPixel(u+invW, v+invH),
			tex.GetPixel(u+invW, v-invH),
		}
		got := tex.SamplePixel(u, v)

		check := func(name string, val float32, ch func(Color) float32) {
			lo, hi := ch(taps[0]), ch(taps[0])
			for _, tp := range taps[1:] {
				lo = min(lo, ch(tp))
				hi = max(hi, ch(tp))
			}
			if val < lo-eps || val > hi+eps {
				t.Fatalf("SamplePixel(%v, %v).%s = %v outside [%v, %v]", u, v, name, val, lo, hi)
			}
		}
		check("R", got.R, func(c Color) float32 { return c.R })
		check("G", got.G, func(c Color) float32 { return c.G })
		check("B", got.B, func(c Color) float32 { return c.B })
		check("A", got.A, func(c Color) float32 { return c.A })
	}
}

func TestSamplePixelBlendWeights(t *testing.T) {
	tex := gradient4x4(t)
	// u=0.375: taps at 0.125 (x=0) and 0.625 (x=2), dx=fract(1.5)=0.5.
	// v=0.25: taps at 0 (y=0) and 0.5 (y=2), dy=0.
	got := tex.SamplePixel(0.375, 0.25)
	want := texel(0, 0).Lerp(texel(2, 0), 0.5)
	if !colorNear(got, want) {
		t.Fatalf("SamplePixel = %+v, want %+v", got, want)
	}
}

// Weights are unbounded for such inputs; only the tap lookups must stay in range.
func TestSamplePixelHugeCoordinates(t *testing.T) {
	tex := gradient4x4(t)
	for _, uv := range [][2]float32{
		{1e19, 0},
		{0, -1e19},
		{float32(math.Inf(1)), float32(math.Inf(-1))},
	} {
		_ = tex.SamplePixel(uv[0], uv[1])
	}
}

func TestFractSaturates(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{1.25, 0.25},
		{-1.25, -0.25},
		{3e9, 3e9 - math.MaxInt32},
		{-3e9, -3e9 - math.MinInt32},
	}
	for _, tt := range tests {
		if got := fract(tt.in); got != tt.want {
			t.Fatalf("fract(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := fract(float32(math.NaN())); got == got {
		t.Fatalf("fract(NaN) = %v, want NaN", got)
	}
}

func TestLoadWrapsDecoderFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := Load(DecoderFunc(func(string) ([]byte, int, int, int, error) {
		return nil, 0, 0, 0, boom
	}), "missing.png")
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Path != "missing.png" || !errors.Is(err, boom) {
		t.Fatalf("unexpected DecodeError %+v", de)
	}

	_, err = Load(DecoderFunc(func(string) ([]byte, int, int, int, error) {
		return nil, 4, 4, 4, nil
	}), "empty.png")
	if !errors.As(err, &de) || !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected DecodeError for empty result, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	tex, err := Load(DecoderFunc(func(string) ([]byte, int, int, int, error) {
		return make([]byte, 3*2*3), 3, 2, 3, nil
	}), "ok.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tex.Width() != 3 || tex.Height() != 2 || tex.Channels() != 3 {
		t.Fatalf("unexpected geometry %dx%dx%d", tex.Width(), tex.Height(), tex.Channels())
	}
}
