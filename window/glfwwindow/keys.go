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

package glfwwindow

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hellosquare/hellosquare/window"
)

// keyCode returns the GLFW key for the window.Key. Returns false if there is
// no equivalent.
func keyCode(k window.Key) (glfw.Key, bool) {
	switch k {
	case window.KeyEscape:
		return glfw.KeyEscape, true
	case window.KeySpace:
		return glfw.KeySpace, true
	case window.KeyQ:
		return glfw.KeyQ, true
	}
	return glfw.KeyUnknown, false
}

// keyState converts the last reported action of a key. A repeating key is
// still pressed.
func keyState(a glfw.Action) window.KeyState {
	switch a {
	case glfw.Press, glfw.Repeat:
		return window.Pressed
	}
	return window.Released
}
