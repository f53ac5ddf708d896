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
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hellosquare/hellosquare/test"
	"github.com/hellosquare/hellosquare/window"
)

func TestKeyCode(t *testing.T) {
	c, ok := keyCode(window.KeyEscape)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, glfw.KeyEscape)

	c, ok = keyCode(window.KeySpace)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, glfw.KeySpace)

	c, ok = keyCode(window.KeyQ)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, glfw.KeyQ)

	_, ok = keyCode(window.KeyUnknown)
	test.ExpectFailure(t, ok)
}

func TestKeyState(t *testing.T) {
	test.ExpectEquality(t, keyState(glfw.Press), window.Pressed)
	test.ExpectEquality(t, keyState(glfw.Repeat), window.Pressed)
	test.ExpectEquality(t, keyState(glfw.Release), window.Released)
}

func TestInterfaces(t *testing.T) {
	var _ window.Provider = NewProvider()
	var _ window.Window = &Window{}
}
