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

// Package assert checks that code runs on the goroutine that owns the GL
// context and the window.
//
// SDL and GLFW both require window and context calls to be made from the
// thread that created them. The main package locks its OS thread in init()
// and calls RecordMainThread(); the render package calls MainThread() at the
// start of setup and on every frame.
//
// The checks are only made when the "assertions" build tag is specified.
// Otherwise the functions are stubbed.
package assert
