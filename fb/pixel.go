package fb

// RGB packs 8-bit channels as 0x00RRGGBB.
func RGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a packed pixel into channels. The top byte is ignored.
func Unpack(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Blend composites src over dst with coverage a (0..255).
func Blend(dst uint32, r, g, b, a uint8) uint32 {
	if a == 0xFF {
		return RGB(r, g, b)
	}
	if a == 0 {
		return dst & 0x00FFFFFF
	}
	dr, dg, db := Unpack(dst)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*uint32(a) + uint32(d)*(0xFF-uint32(a)) + 0x7F) / 0xFF)
	}
	return RGB(mix(r, dr), mix(g, dg), mix(b, db))
}
