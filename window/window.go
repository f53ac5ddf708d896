// This file is part of hellosquare.
//
// hellosquare is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// hellosquare is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with hellosquare.  If not, see <https://www.gnu.org/licenses/>.

// Package window defines the windowing and context services that the render
// package depends on. Implementations live in the sub-packages glfwwindow
// and sdlwindow.
//
// All functions must be called from the main thread. The resize callback is
// called synchronously from inside Provider.PollEvents().
package window

import (
	"fmt"
	"unsafe"
)

// Key identifies a keyboard key independently of the windowing library.
type Key int

// List of valid Key values. Only the keys the program needs are listed.
const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyQ
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyQ:
		return "Q"
	}
	return "Unknown"
}

// KeyState is the result of polling a key.
type KeyState int

// List of valid KeyState values.
const (
	Released KeyState = iota
	Pressed
)

// Hints describes the window and GL context to be created.
type Hints struct {
	Width  int
	Height int
	Title  string

	// requested GL context version
	ContextMajor int
	ContextMinor int
	CoreProfile  bool

	// swap interval applied once the context is current. 1 synchronises
	// buffer swaps with the vertical retrace
	SwapInterval int
}

func (h Hints) String() string {
	profile := "compatibility"
	if h.CoreProfile {
		profile = "core"
	}
	return fmt.Sprintf("%dx%d %q (GL %d.%d %s)", h.Width, h.Height, h.Title, h.ContextMajor, h.ContextMinor, profile)
}

// Provider is the process wide windowing system.
type Provider interface {
	// Initialise the windowing system. Must be called before anything else.
	Initialise() error

	// CreateWindow with an associated GL context. The context is not made
	// current.
	CreateWindow(Hints) (Window, error)

	// PollEvents processes pending window and input events. Resize
	// callbacks and close requests are delivered here.
	PollEvents()

	// ProcAddress returns the address of the named GL function for the
	// current context. Used by the function loader.
	ProcAddress(name string) unsafe.Pointer

	// Terminate the windowing system. Any remaining windows are destroyed.
	Terminate()
}

// Window is a single window and its GL context.
type Window interface {
	// MakeContextCurrent makes the window's GL context current on the
	// calling thread and applies the swap interval from the hints.
	MakeContextCurrent() error

	// SetResizeCallback registers the function to call when the framebuffer
	// size changes. Dimensions are in pixels.
	SetResizeCallback(func(width, height int))

	// ShouldClose returns the value of the window's close flag.
	ShouldClose() bool

	// SetShouldClose sets the window's close flag.
	SetShouldClose(bool)

	// KeyState returns the last state of the key as seen by PollEvents().
	KeyState(Key) KeyState

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// FramebufferSize returns the size of the framebuffer in pixels.
	FramebufferSize() (int, int)

	// Destroy the window and its context.
	Destroy()
}
