package hal

// rgbaFrom0RGB expands packed 0x00RRGGBB pixels into opaque RGBA bytes.
// dst must hold 4 bytes per pixel.
func rgbaFrom0RGB(dst []byte, src []uint32) {
	for i, p := range src {
		j := i * 4
		dst[j+0] = uint8(p >> 16)
		dst[j+1] = uint8(p >> 8)
		dst[j+2] = uint8(p)
		dst[j+3] = 0xFF
	}
}
