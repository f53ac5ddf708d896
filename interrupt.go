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

package main

import (
	"os"

	"github.com/hellosquare/hellosquare/logger"
	"github.com/hellosquare/hellosquare/window"
)

// interruptible wraps a window.Provider so that an interrupt signal sets the
// close flag of the most recently created window. The signal is checked
// after every call to PollEvents() so the window is only ever touched from
// the main thread.
type interruptible struct {
	window.Provider
	win     window.Window
	intChan <-chan os.Signal
}

func newInterruptible(plt window.Provider, intChan <-chan os.Signal) *interruptible {
	return &interruptible{
		Provider: plt,
		intChan:  intChan,
	}
}

// CreateWindow implements the window.Provider interface.
func (plt *interruptible) CreateWindow(hints window.Hints) (window.Window, error) {
	w, err := plt.Provider.CreateWindow(hints)
	if err != nil {
		return nil, err
	}
	plt.win = w
	return w, nil
}

// PollEvents implements the window.Provider interface.
func (plt *interruptible) PollEvents() {
	plt.Provider.PollEvents()

	select {
	case sig := <-plt.intChan:
		logger.Logf(logger.Allow, "main", "%v received", sig)
		if plt.win != nil {
			plt.win.SetShouldClose(true)
		}
	default:
	}
}
