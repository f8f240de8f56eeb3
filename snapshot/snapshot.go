// Package snapshot exports frame buffer contents as image files.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"texview/fb"

	"github.com/HugoSmits86/nativewebp"
)

// ErrUnsupportedFormat is returned for extensions other than .png and .webp.
var ErrUnsupportedFormat = errors.New("snapshot: unsupported format")

// Image converts packed 0RGB pixels to an opaque NRGBA image.
func Image(buf *fb.FrameBuffer) *image.NRGBA {
	w, h := buf.Width(), buf.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, p := range buf.Pixels() {
		r, g, b := fb.Unpack(p)
		j := i * 4
		img.Pix[j+0] = r
		img.Pix[j+1] = g
		img.Pix[j+2] = b
		img.Pix[j+3] = 0xFF
	}
	return img
}

// Supported reports whether path has an extension Write can encode.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp", ".png":
		return true
	}
	return false
}

// Encode writes img in the given format ("webp" or "png").
func Encode(w io.Writer, format string, img image.Image) error {
	switch format {
	case "webp":
		return nativewebp.Encode(w, img, nil)
	case "png":
		return png.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Write encodes buf to path, choosing the format from the extension.
func Write(path string, buf *fb.FrameBuffer) error {
	if buf.Width() == 0 || buf.Height() == 0 {
		return fmt.Errorf("snapshot: empty frame buffer")
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !Supported(path) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	if err := Encode(f, format, Image(buf)); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: close %s: %w", path, err)
	}
	return nil
}
