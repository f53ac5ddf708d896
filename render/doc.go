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

// Package render draws a single coloured quad with OpenGL.
//
// The package is a straight line of resource creation followed by a frame
// loop:
//
//	window provider -> window/context -> function loader -> shader stages ->
//	program -> vertex state -> frame loop -> teardown
//
// Nothing in the package talks to OpenGL or to a windowing library directly.
// GL calls go through the Device interface (implemented by the gl33 package)
// and window calls through the interfaces in the window package. This means
// the whole sequence can be tested with the recording implementations in the
// fake package.
//
// Failures to create the window or to load the GL functions are fatal and
// returned from Renderer.Run() as curated errors. Shader compilation and
// program link failures are logged and ignored: the frame loop continues to
// clear and present the framebuffer but no draw call is made.
package render
