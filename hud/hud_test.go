package hud

import (
	"image/color"
	"testing"

	"texview/fb"
)

func TestDrawChangesTopLeftOnly(t *testing.T) {
	buf := fb.New(200, 100)
	buf.Clear(fb.RGB(200, 0, 0))

	New().Draw(buf, "zoom=0.00", "rot=(0.00, 0.00)")

	if buf.Pixel(0, 0) == fb.RGB(200, 0, 0) {
		t.Fatal("panel was not drawn")
	}
	if buf.Pixel(199, 99) != fb.RGB(200, 0, 0) {
		t.Fatal("bottom-right pixel changed")
	}
}

func TestDrawClipsToSmallBuffer(t *testing.T) {
	buf := fb.New(4, 3)
	New().Draw(buf, "a very long line that does not fit")
}

func TestDrawNoLines(t *testing.T) {
	buf := fb.New(4, 4)
	buf.Clear(5)
	New().Draw(buf)
	if buf.Pixel(0, 0) != 5 {
		t.Fatal("buffer changed with no lines")
	}
}

func TestDisplayClips(t *testing.T) {
	buf := fb.New(2, 2)
	d := &fbDisplay{buf: buf}
	d.SetPixel(-1, 0, color.RGBA{R: 255, A: 255})
	d.SetPixel(2, 1, color.RGBA{R: 255, A: 255})
	d.SetPixel(1, 1, color.RGBA{R: 255, A: 255})
	if buf.Pixel(1, 1) != fb.RGB(255, 0, 0) {
		t.Fatalf("pixel = %#x", buf.Pixel(1, 1))
	}
	if x, y := d.Size(); x != 2 || y != 2 {
		t.Fatalf("Size = %d,%d", x, y)
	}
}
