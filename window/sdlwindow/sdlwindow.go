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

// Package sdlwindow implements the window.Provider and window.Window
// interfaces with SDL2.
//
// Window events are collected by Provider.PollEvents() and delivered to the
// most recently created window. All functions must be called from the main
// thread.
package sdlwindow

import (
	"fmt"
	"unsafe"

	"github.com/hellosquare/hellosquare/logger"
	"github.com/hellosquare/hellosquare/window"
	"github.com/veandco/go-sdl2/sdl"
)

// Provider implements the window.Provider interface.
type Provider struct {
	// the window that receives events
	win *Window
}

// NewProvider is the preferred method of initialisation for the Provider
// type.
func NewProvider() *Provider {
	return &Provider{}
}

// Initialise implements the window.Provider interface.
func (plt *Provider) Initialise() error {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	return nil
}

// setAttributes requests the GL context described by the hints
func setAttributes(hints window.Hints) error {
	err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, hints.ContextMajor)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, hints.ContextMinor)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	if !hints.CoreProfile {
		return nil
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	return nil
}

// CreateWindow implements the window.Provider interface. The GL context is
// created along with the window but is not made current.
func (plt *Provider) CreateWindow(hints window.Hints) (window.Window, error) {
	err := setAttributes(hints)
	if err != nil {
		return nil, err
	}

	w, err := sdl.CreateWindow(hints.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(hints.Width), int32(hints.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	ctx, err := w.GLCreateContext()
	if err != nil {
		_ = w.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.win = &Window{
		win:          w,
		ctx:          ctx,
		swapInterval: hints.SwapInterval,
	}

	return plt.win, nil
}

// PollEvents implements the window.Provider interface.
func (plt *Provider) PollEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if plt.win != nil {
			plt.win.service(ev)
		}
	}
}

// ProcAddress implements the window.Provider interface.
func (plt *Provider) ProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

// Terminate implements the window.Provider interface.
func (plt *Provider) Terminate() {
	plt.win = nil
	sdl.Quit()
}

// Window implements the window.Window interface.
type Window struct {
	win *sdl.Window
	ctx sdl.GLContext

	swapInterval int
	shouldClose  bool
	resize       func(width, height int)
}

// service a single event from the SDL event queue
func (w *Window) service(ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		w.shouldClose = true
	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_CLOSE:
			w.shouldClose = true
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			if w.resize != nil {
				w.resize(w.FramebufferSize())
			}
		}
	}
}

// MakeContextCurrent implements the window.Window interface. The swap
// interval requested when the window was created is applied once the
// context is current.
func (w *Window) MakeContextCurrent() error {
	err := w.win.GLMakeCurrent(w.ctx)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	// not all drivers support the requested swap interval. this is not
	// fatal
	err = sdl.GLSetSwapInterval(w.swapInterval)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "swap interval: %v", err)
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	profile, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_PROFILE_MASK)
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d%s", major, minor, profileName(profile))

	return nil
}

// SetResizeCallback implements the window.Window interface. The callback
// receives the drawable size in pixels.
func (w *Window) SetResizeCallback(f func(width, height int)) {
	w.resize = f
}

// ShouldClose implements the window.Window interface.
func (w *Window) ShouldClose() bool {
	return w.shouldClose
}

// SetShouldClose implements the window.Window interface.
func (w *Window) SetShouldClose(v bool) {
	w.shouldClose = v
}

// KeyState implements the window.Window interface.
func (w *Window) KeyState(k window.Key) window.KeyState {
	code, ok := scancode(k)
	if !ok {
		return window.Released
	}
	return keyState(sdl.GetKeyboardState(), code)
}

// SwapBuffers implements the window.Window interface.
func (w *Window) SwapBuffers() {
	w.win.GLSwap()
}

// FramebufferSize implements the window.Window interface.
func (w *Window) FramebufferSize() (int, int) {
	width, height := w.win.GLGetDrawableSize()
	return int(width), int(height)
}

// Destroy implements the window.Window interface. The GL context is deleted
// before the window.
func (w *Window) Destroy() {
	sdl.GLDeleteContext(w.ctx)
	err := w.win.Destroy()
	if err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
}
