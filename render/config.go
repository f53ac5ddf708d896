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

package render

import (
	"fmt"

	"github.com/hellosquare/hellosquare/window"
)

// Color is an RGBA colour with components in the range 0.0 to 1.0.
type Color struct {
	R, G, B, A float32
}

func (c Color) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f, %.2f)", c.R, c.G, c.B, c.A)
}

// ShaderSources is the GLSL source text for the two shader stages.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

// Config collects every fixed value used by the Renderer.
type Config struct {
	Window  window.Hints
	Shaders ShaderSources
	Geom    Geometry

	ClearColor Color

	// pressing ExitKey requests that the window close
	ExitKey window.Key

	// maximum number of bytes of a shader or program info log to keep
	InfoLogLength int
}

// the vertex shader passes the position through unchanged
const vertexShader = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
   gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

// the fragment shader colours every fragment orange
const fragmentShader = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

// DefaultInfoLogLength is the size of the buffer used to retrieve info logs.
const DefaultInfoLogLength = 512

// DefaultConfig returns the configuration used by the hellosquare program.
func DefaultConfig() Config {
	return Config{
		Window: window.Hints{
			Width:        800,
			Height:       800,
			Title:        "LearnOpenGL",
			ContextMajor: 3,
			ContextMinor: 3,
			CoreProfile:  true,
			SwapInterval: 1,
		},
		Shaders: ShaderSources{
			Vertex:   vertexShader,
			Fragment: fragmentShader,
		},
		Geom:          QuadGeometry(),
		ClearColor:    Color{R: 0.2, G: 0.3, B: 0.3, A: 1.0},
		ExitKey:       window.KeyEscape,
		InfoLogLength: DefaultInfoLogLength,
	}
}
