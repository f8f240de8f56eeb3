package texture

// Color is an RGBA value with channels nominally in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Lerp interpolates each channel from c towards o by t.
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// RGBA8 converts c to 8-bit channels, clamping out-of-range values.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return unit8(c.R), unit8(c.G), unit8(c.B), unit8(c.A)
}

func unit8(f float32) uint8 {
	switch {
	case !(f > 0):
		return 0
	case f >= 1:
		return 0xFF
	default:
		return uint8(f*255 + 0.5)
	}
}
