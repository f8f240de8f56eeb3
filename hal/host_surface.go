package hal

import (
	"fmt"
	"sync"
)

// hostSurface keeps the last presented frame as RGBA bytes for the window
// to upload. Its size follows the window; the app reads it each tick to
// detect resizes.
type hostSurface struct {
	mu     sync.Mutex
	width  int
	height int

	frameW int
	frameH int
	frame  []byte
}

func newHostSurface(width, height int) *hostSurface {
	return &hostSurface{width: width, height: height}
}

func (s *hostSurface) Size() (w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *hostSurface) setSize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = w
	s.height = h
}

func (s *hostSurface) Present(pix []uint32, w, h int) error {
	if w < 0 || h < 0 || len(pix) != w*h {
		return fmt.Errorf("hal: present: %d pixels for %dx%d", len(pix), w, h)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if n := w * h * 4; cap(s.frame) < n {
		s.frame = make([]byte, n)
	} else {
		s.frame = s.frame[:n]
	}
	rgbaFrom0RGB(s.frame, pix)
	s.frameW = w
	s.frameH = h
	return nil
}

// snapshot copies the last presented frame into dst, growing it as needed.
func (s *hostSurface) snapshot(dst []byte) (out []byte, w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out = append(dst[:0], s.frame...)
	return out, s.frameW, s.frameH
}
