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

package sdlwindow

import (
	"github.com/hellosquare/hellosquare/window"
	"github.com/veandco/go-sdl2/sdl"
)

// scancode returns the SDL scancode for the window.Key. Returns false if
// there is no equivalent.
func scancode(k window.Key) (sdl.Scancode, bool) {
	switch k {
	case window.KeyEscape:
		return sdl.SCANCODE_ESCAPE, true
	case window.KeySpace:
		return sdl.SCANCODE_SPACE, true
	case window.KeyQ:
		return sdl.SCANCODE_Q, true
	}
	return sdl.SCANCODE_UNKNOWN, false
}

// keyState looks up the scancode in the keyboard state array returned by
// sdl.GetKeyboardState()
func keyState(state []uint8, code sdl.Scancode) window.KeyState {
	if int(code) >= len(state) || state[code] == 0 {
		return window.Released
	}
	return window.Pressed
}

// profileName returns a description of the GL context profile. The empty
// string is returned for an unrecognised profile
func profileName(profile int) string {
	switch profile {
	case sdl.GL_CONTEXT_PROFILE_CORE:
		return " core"
	case sdl.GL_CONTEXT_PROFILE_COMPATIBILITY:
		return " compatibility"
	case sdl.GL_CONTEXT_PROFILE_ES:
		return " ES"
	}
	return ""
}
