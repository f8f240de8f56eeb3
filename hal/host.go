package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Options configures a host session for either runner.
type Options struct {
	Title  string
	Width  int
	Height int
	TPS    int
	Quiet  bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.TPS <= 0 {
		o.TPS = 60
	}
	if o.Title == "" {
		o.Title = "texview"
	}
	return o
}

type hostHAL struct {
	logger  *hostLogger
	surface *hostSurface
	input   Input
	clock   *hostClock
}

func newHostHAL(opts Options, in Input) *hostHAL {
	var w io.Writer = os.Stdout
	if opts.Quiet {
		w = io.Discard
	}
	return &hostHAL{
		logger:  &hostLogger{w: w},
		surface: newHostSurface(opts.Width, opts.Height),
		input:   in,
		clock:   newHostClock(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Surface() Surface { return h.surface }
func (h *hostHAL) Input() Input     { return h.input }
func (h *hostHAL) Clock() Clock     { return h.clock }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// nullInput reports no input at all.
type nullInput struct{}

func (nullInput) ScrollDelta() (float32, bool)             { return 0, false }
func (nullInput) PointerPosition() (x, y float32, ok bool) { return 0, 0, false }
func (nullInput) PrimaryButtonDown() bool                  { return false }
func (nullInput) KeyDown(KeyCode) bool                     { return false }
func (nullInput) KeyPressed(KeyCode) bool                  { return false }
func (nullInput) CloseRequested() bool                     { return false }
