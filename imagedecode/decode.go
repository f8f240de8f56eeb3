// Package imagedecode reads image files into the interleaved 8-bit layout a
// texture.Texture is built from.
//
// Formats are chosen by file extension; unknown extensions fall back to
// content sniffing through image.Decode.
package imagedecode

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ErrEmptyImage is returned when a decoded image has no pixels.
var ErrEmptyImage = errors.New("imagedecode: image has no pixels")

type decodeFunc func(io.Reader) (image.Image, error)

var decoders = map[string]decodeFunc{
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".webp": webp.Decode,
	".tga":  tga.Decode,
}

// Options controls decoding.
type Options struct {
	// MaxSize bounds the larger image dimension; bigger images are scaled
	// down preserving aspect ratio. Zero disables scaling.
	MaxSize int
}

// Decoder implements texture.Decoder.
type Decoder struct {
	opts Options
}

func New(opts Options) *Decoder {
	return &Decoder{opts: opts}
}

// Decode reads path and returns its pixels as RGB (opaque images) or RGBA.
func (d *Decoder) Decode(path string) (pix []byte, width, height, channels int, err error) {
	img, err := Open(path)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	pix, width, height, channels = Pixels(img, d.opts.MaxSize)
	if len(pix) == 0 {
		return nil, 0, 0, 0, ErrEmptyImage
	}
	return pix, width, height, channels, nil
}

// Open decodes the image at path.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imagedecode: open %s: %w", path, err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	if dec, ok := decoders[ext]; ok {
		img, err := dec(f)
		if err != nil {
			return nil, fmt.Errorf("imagedecode: %s: %w", ext, err)
		}
		return img, nil
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imagedecode: sniff %s: %w", path, err)
	}
	return img, nil
}

// Pixels flattens img into top-to-bottom rows of interleaved channels. Images
// that report themselves opaque yield 3 channels, everything else 4.
func Pixels(img image.Image, maxSize int) (pix []byte, width, height, channels int) {
	b := img.Bounds()
	if b.Empty() {
		return nil, 0, 0, 0
	}

	channels = 4
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		channels = 3
	}

	if maxSize > 0 && (b.Dx() > maxSize || b.Dy() > maxSize) {
		img = imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)
	}
	nrgba := imaging.Clone(img)

	width = nrgba.Rect.Dx()
	height = nrgba.Rect.Dy()
	if channels == 4 {
		pix = make([]byte, width*height*4)
		for y := 0; y < height; y++ {
			copy(pix[y*width*4:(y+1)*width*4], nrgba.Pix[y*nrgba.Stride:])
		}
		return pix, width, height, 4
	}

	pix = make([]byte, 0, width*height*3)
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for i := 0; i < len(row); i += 4 {
			pix = append(pix, row[i], row[i+1], row[i+2])
		}
	}
	return pix, width, height, 3
}
