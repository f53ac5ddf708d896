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

// Package glfwwindow implements the window.Provider and window.Window
// interfaces with GLFW.
//
// GLFW requires that all functions are called from the main thread of the
// program.
package glfwwindow

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hellosquare/hellosquare/logger"
	"github.com/hellosquare/hellosquare/window"
)

// Provider implements the window.Provider interface.
type Provider struct{}

// NewProvider is the preferred method of initialisation for the Provider
// type.
func NewProvider() *Provider {
	return &Provider{}
}

// Initialise implements the window.Provider interface.
func (plt *Provider) Initialise() error {
	err := glfw.Init()
	if err != nil {
		return fmt.Errorf("glfw: %w", err)
	}

	major, minor, rev := glfw.GetVersion()
	logger.Logf(logger.Allow, "glfw", "version: %d.%d.%d", major, minor, rev)

	return nil
}

// boolHint converts a boolean to the value expected by glfw.WindowHint()
func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// CreateWindow implements the window.Provider interface.
func (plt *Provider) CreateWindow(hints window.Hints) (window.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, hints.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, hints.ContextMinor)
	if hints.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
	}

	// required for a core profile context on macOS
	glfw.WindowHint(glfw.OpenGLForwardCompatible, boolHint(hints.CoreProfile))
	glfw.WindowHint(glfw.Resizable, glfw.True)

	w, err := glfw.CreateWindow(hints.Width, hints.Height, hints.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw: %w", err)
	}
	if w == nil {
		return nil, fmt.Errorf("glfw: no window created")
	}

	return &Window{
		win:          w,
		swapInterval: hints.SwapInterval,
	}, nil
}

// PollEvents implements the window.Provider interface.
func (plt *Provider) PollEvents() {
	glfw.PollEvents()
}

// ProcAddress implements the window.Provider interface.
func (plt *Provider) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// Terminate implements the window.Provider interface.
func (plt *Provider) Terminate() {
	glfw.Terminate()
}

// Window implements the window.Window interface.
type Window struct {
	win          *glfw.Window
	swapInterval int
}

// MakeContextCurrent implements the window.Window interface. The swap
// interval requested when the window was created is applied once the
// context is current.
func (w *Window) MakeContextCurrent() error {
	w.win.MakeContextCurrent()
	if glfw.GetCurrentContext() != w.win {
		return fmt.Errorf("glfw: context is not current")
	}
	glfw.SwapInterval(w.swapInterval)
	return nil
}

// SetResizeCallback implements the window.Window interface. The callback
// receives the size of the framebuffer in pixels, which may differ from the
// size of the window on high DPI displays.
func (w *Window) SetResizeCallback(f func(width, height int)) {
	if f == nil {
		w.win.SetFramebufferSizeCallback(nil)
		return
	}
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		f(width, height)
	})
}

// ShouldClose implements the window.Window interface.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// SetShouldClose implements the window.Window interface.
func (w *Window) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

// KeyState implements the window.Window interface.
func (w *Window) KeyState(k window.Key) window.KeyState {
	code, ok := keyCode(k)
	if !ok {
		return window.Released
	}
	return keyState(w.win.GetKey(code))
}

// SwapBuffers implements the window.Window interface.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// FramebufferSize implements the window.Window interface.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// Destroy implements the window.Window interface.
func (w *Window) Destroy() {
	w.win.Destroy()
}
