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

// Package gl33 implements the render.Device and render.Loader interfaces with
// the OpenGL 3.3 core profile bindings from go-gl.
//
// The Loader must have resolved the GL entry points for the current context
// before any Device function is called. As with every GL binding, all
// functions must be called from the thread that owns the context.
package gl33
