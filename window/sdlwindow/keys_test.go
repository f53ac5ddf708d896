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
	"testing"

	"github.com/hellosquare/hellosquare/test"
	"github.com/hellosquare/hellosquare/window"
	"github.com/veandco/go-sdl2/sdl"
)

func TestScancode(t *testing.T) {
	c, ok := scancode(window.KeyEscape)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, sdl.Scancode(sdl.SCANCODE_ESCAPE))

	c, ok = scancode(window.KeyQ)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, sdl.Scancode(sdl.SCANCODE_Q))

	_, ok = scancode(window.KeyUnknown)
	test.ExpectFailure(t, ok)
}

func TestKeyState(t *testing.T) {
	state := make([]uint8, sdl.NUM_SCANCODES)
	test.ExpectEquality(t, keyState(state, sdl.SCANCODE_ESCAPE), window.Released)

	state[sdl.SCANCODE_ESCAPE] = 1
	test.ExpectEquality(t, keyState(state, sdl.SCANCODE_ESCAPE), window.Pressed)
	test.ExpectEquality(t, keyState(state, sdl.SCANCODE_SPACE), window.Released)

	// a short state array does not panic
	test.ExpectEquality(t, keyState(state[:1], sdl.SCANCODE_Q), window.Released)
}

func TestEvents(t *testing.T) {
	w := &Window{}
	test.ExpectFailure(t, w.ShouldClose())

	w.service(&sdl.QuitEvent{})
	test.ExpectSuccess(t, w.ShouldClose())

	w.SetShouldClose(false)
	w.service(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_CLOSE})
	test.ExpectSuccess(t, w.ShouldClose())
}

func TestProfileName(t *testing.T) {
	test.ExpectEquality(t, profileName(sdl.GL_CONTEXT_PROFILE_CORE), " core")
	test.ExpectEquality(t, profileName(-1), "")
}
