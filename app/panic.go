package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"texview/fb"
	"texview/hal"
	"texview/hud"
)

// recoverStep turns a panic inside Step into an error after logging the
// stack and putting a panic screen on the surface.
func (s *Session) recoverStep(err *error) {
	r := recover()
	if r == nil {
		return
	}

	hal.Logf(s.log, "texview panic: %v", r)
	for _, line := range strings.Split(string(debug.Stack()), "\n") {
		if line == "" {
			continue
		}
		s.log.WriteLineString(line)
	}

	buf := s.win.Buffer()
	buf.Clear(fb.RGB(0x80, 0, 0))
	hud.New().Draw(buf, "texview panic:", fmt.Sprint(r))
	_ = s.h.Surface().Present(buf.Pixels(), buf.Width(), buf.Height())

	*err = fmt.Errorf("app: panic: %v", r)
}
