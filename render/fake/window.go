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

package fake

import (
	"unsafe"

	"github.com/hellosquare/hellosquare/window"
)

// Window is a scripted implementation of window.Window.
type Window struct {
	journal *Journal

	Hints window.Hints

	shouldClose bool
	keys        map[window.Key]window.KeyState
	resize      func(width, height int)

	width  int
	height int

	Current   bool
	Swaps     int
	Destroyed int
}

// MakeContextCurrent implements the window.Window interface.
func (w *Window) MakeContextCurrent() error {
	w.journal.add("MakeContextCurrent")
	w.Current = true
	return nil
}

// SetResizeCallback implements the window.Window interface.
func (w *Window) SetResizeCallback(f func(width, height int)) {
	w.journal.add("SetResizeCallback")
	w.resize = f
}

// ShouldClose implements the window.Window interface.
func (w *Window) ShouldClose() bool {
	return w.shouldClose
}

// SetShouldClose implements the window.Window interface.
func (w *Window) SetShouldClose(v bool) {
	w.journal.add("SetShouldClose %v", v)
	w.shouldClose = v
}

// KeyState implements the window.Window interface.
func (w *Window) KeyState(k window.Key) window.KeyState {
	return w.keys[k]
}

// SwapBuffers implements the window.Window interface.
func (w *Window) SwapBuffers() {
	w.journal.add("SwapBuffers")
	w.Swaps++
}

// FramebufferSize implements the window.Window interface.
func (w *Window) FramebufferSize() (int, int) {
	return w.width, w.height
}

// Destroy implements the window.Window interface.
func (w *Window) Destroy() {
	w.journal.add("DestroyWindow")
	w.Destroyed++
}

// Press changes the state of a key as if the user had pressed it.
func (w *Window) Press(k window.Key) {
	w.keys[k] = window.Pressed
}

// Release changes the state of a key as if the user had released it.
func (w *Window) Release(k window.Key) {
	w.keys[k] = window.Released
}

// Close sets the close flag as if the user had clicked the close button.
func (w *Window) Close() {
	w.shouldClose = true
}

// Resize the framebuffer. The resize callback is called synchronously, as it
// would be from inside PollEvents().
func (w *Window) Resize(width, height int) {
	w.width = width
	w.height = height
	if w.resize != nil {
		w.resize(width, height)
	}
}

// Provider is a scripted implementation of window.Provider.
type Provider struct {
	journal *Journal

	// errors to return from Initialise() and CreateWindow()
	InitErr   error
	CreateErr error

	// called at the end of every PollEvents(). poll counts from one
	OnPoll func(poll int, w *Window)

	// the most recently created window
	Win *Window

	Initialised int
	Polls       int
	Terminated  int
}

// NewProvider is the preferred method of initialisation for the Provider
// type.
func NewProvider(j *Journal) *Provider {
	return &Provider{journal: j}
}

// Initialise implements the window.Provider interface.
func (p *Provider) Initialise() error {
	p.journal.add("Initialise")
	if p.InitErr != nil {
		return p.InitErr
	}
	p.Initialised++
	return nil
}

// CreateWindow implements the window.Provider interface.
func (p *Provider) CreateWindow(hints window.Hints) (window.Window, error) {
	p.journal.add("CreateWindow %s", hints)
	if p.CreateErr != nil {
		return nil, p.CreateErr
	}
	p.Win = &Window{
		journal: p.journal,
		Hints:   hints,
		keys:    make(map[window.Key]window.KeyState),
		width:   hints.Width,
		height:  hints.Height,
	}
	return p.Win, nil
}

// PollEvents implements the window.Provider interface.
func (p *Provider) PollEvents() {
	p.journal.add("PollEvents")
	p.Polls++
	if p.OnPoll != nil && p.Win != nil {
		p.OnPoll(p.Polls, p.Win)
	}
}

// procAddress is a non-nil pointer returned for every function name
var procAddress = new(byte)

// ProcAddress implements the window.Provider interface.
func (p *Provider) ProcAddress(name string) unsafe.Pointer {
	if name == "" {
		return nil
	}
	return unsafe.Pointer(procAddress)
}

// Terminate implements the window.Provider interface.
func (p *Provider) Terminate() {
	p.journal.add("Terminate")
	p.Terminated++
}

// CloseAfter returns an OnPoll function that closes the window after n
// polls.
func CloseAfter(n int) func(int, *Window) {
	return func(poll int, w *Window) {
		if poll >= n {
			w.Close()
		}
	}
}

// Loader is a recording implementation of render.Loader.
type Loader struct {
	journal *Journal

	// error to return from LoadAll()
	Err error

	// whether the procAddress function returned an address during LoadAll()
	Resolved bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(j *Journal) *Loader {
	return &Loader{journal: j}
}

// LoadAll implements the render.Loader interface.
func (l *Loader) LoadAll(procAddress func(name string) unsafe.Pointer) error {
	l.journal.add("LoadAll")
	l.Resolved = procAddress("glDrawElements") != nil
	return l.Err
}
