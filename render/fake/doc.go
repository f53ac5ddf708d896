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

// Package fake provides recording implementations of render.Device,
// render.Loader, window.Provider and window.Window. They allow the render
// package to be tested without a display or a GPU.
//
// The Device models just enough GL state to be useful: the bound vertex
// array and its element buffer, the contents of each buffer, the compile
// status of shaders and the link status of programs. Every draw call is
// captured along with the indices it would have read, the program in use
// and the clear colour of the frame.
//
// Misuse of the API, for example drawing with a deleted program or with no
// vertex array bound, is recorded in the Device's list of violations rather
// than causing a panic.
//
// All objects share a Journal which lists every call in order. This makes it
// possible to test the ordering of operations across the device and the
// window, such as teardown.
package fake
