// Package input turns SDL2 events into per-frame viewer input.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Frame is the input gathered during one frame.
type Frame struct {
	Quit    bool
	Resized bool
	Width   int
	Height  int

	// Mouse drag delta while the left button is held.
	DragX, DragY float32
	// Wheel delta, positive away from the user.
	Wheel float32

	// Keys pressed this frame.
	Pressed []sdl.Scancode
}

// Input polls SDL events.
type Input struct {
	dragging bool
	frame    Frame
}

// New creates an input handler.
func New() *Input {
	return &Input{}
}

// Poll drains the SDL event queue and returns the input for this frame.
func (in *Input) Poll() *Frame {
	in.frame = Frame{Pressed: in.frame.Pressed[:0]}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.frame.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				in.frame.Resized = true
				in.frame.Width = int(e.Data1)
				in.frame.Height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				in.frame.Pressed = append(in.frame.Pressed, e.Keysym.Scancode)
			}

		case *sdl.MouseButtonEvent:
			if e.Button == sdl.BUTTON_LEFT {
				in.dragging = e.Type == sdl.MOUSEBUTTONDOWN
			}

		case *sdl.MouseMotionEvent:
			if in.dragging {
				in.frame.DragX += float32(e.XRel)
				in.frame.DragY += float32(e.YRel)
			}

		case *sdl.MouseWheelEvent:
			in.frame.Wheel += float32(e.Y)
		}
	}

	return &in.frame
}

// WasPressed reports whether key went down this frame.
func (f *Frame) WasPressed(key sdl.Scancode) bool {
	for _, k := range f.Pressed {
		if k == key {
			return true
		}
	}
	return false
}

// Held reports whether key is currently held down.
func Held(key sdl.Scancode) bool {
	return sdl.GetKeyboardState()[key] != 0
}
