package app

import (
	"texview/fb"
	"texview/hal"
	"texview/view"
)

// Window pairs an output surface with the frame buffer presented to it and
// the view controller fed by its input. The buffer belongs to the Window and
// is replaced, never resized in place, when the surface size changes.
type Window struct {
	surface hal.Surface
	input   hal.Input
	buffer  *fb.FrameBuffer
	ctrl    view.Controller
}

// NewWindow sizes the buffer from the surface.
func NewWindow(surface hal.Surface, input hal.Input) *Window {
	w, h := surface.Size()
	return &Window{
		surface: surface,
		input:   input,
		buffer:  fb.New(w, h),
	}
}

// Buffer returns the current frame buffer. The pointer changes after a
// resize; callers must fetch it every tick.
func (w *Window) Buffer() *fb.FrameBuffer { return w.buffer }

// ShouldClose reports a close request from the surface or a held Escape key.
func (w *Window) ShouldClose() bool {
	return w.input.CloseRequested() || w.input.KeyDown(hal.KeyEscape)
}

func (w *Window) Zoom() float32 { return w.ctrl.Zoom() }

func (w *Window) Rotate() (x, y float32) { return w.ctrl.Rotate() }

// Display runs the tail of one frame tick: input is folded into the view
// controller, the buffer is presented, and the buffer is replaced when the
// surface reports a new size. It returns true when a resize happened.
func (w *Window) Display() (resized bool, err error) {
	in := view.Input{}
	in.Scroll, in.HasScroll = w.input.ScrollDelta()
	in.PointerX, in.PointerY, in.HasPointer = w.input.PointerPosition()
	in.ButtonDown = w.input.PrimaryButtonDown()
	w.ctrl.Update(in)

	if err := w.surface.Present(w.buffer.Pixels(), w.buffer.Width(), w.buffer.Height()); err != nil {
		return false, err
	}

	sw, sh := w.surface.Size()
	if sw != w.buffer.Width() || sh != w.buffer.Height() {
		w.buffer = fb.New(sw, sh)
		return true, nil
	}
	return false, nil
}
