package texture

import "errors"

// Decoder turns an image file into interleaved 8-bit pixel data.
type Decoder interface {
	Decode(path string) (pix []byte, width, height, channels int, err error)
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(path string) ([]byte, int, int, int, error)

func (f DecoderFunc) Decode(path string) ([]byte, int, int, int, error) { return f(path) }

// Load decodes path with d and builds a Texture from the result. Any decoder
// failure, including an empty result, is returned as a *DecodeError. There
// are no retries and no fallback decoder.
func Load(d Decoder, path string) (*Texture, error) {
	pix, w, h, ch, err := d.Decode(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if len(pix) == 0 {
		return nil, &DecodeError{Path: path, Err: ErrEmpty}
	}
	t, err := New(pix, w, h, ch)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, err
	}
	return t, nil
}
