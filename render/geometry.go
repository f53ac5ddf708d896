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

	"github.com/hellosquare/hellosquare/logger"
)

// Geometry is a list of vertex positions and the indices that form triangles
// from them. Each vertex is three float32 components.
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// components per vertex position
const positionComponents = 3

// size in bytes of a float32
const sizeofFloat = 4

// PositionLayout is the attribute layout of the position attribute: three
// tightly packed floats in slot zero.
var PositionLayout = AttribLayout{
	Slot:       0,
	Components: positionComponents,
	Stride:     positionComponents * sizeofFloat,
	Offset:     0,
}

// QuadGeometry returns a square centred on the origin, made from two
// triangles that share the top-right to bottom-left diagonal.
func QuadGeometry() Geometry {
	return Geometry{
		Vertices: []float32{
			0.5, 0.5, 0.0, // top right
			0.5, -0.5, 0.0, // bottom right
			-0.5, -0.5, 0.0, // bottom left
			-0.5, 0.5, 0.0, // top left
		},
		Indices: []uint32{
			0, 1, 3, // first triangle
			1, 2, 3, // second triangle
		},
	}
}

// NumVertices returns the number of complete vertices.
func (g Geometry) NumVertices() int {
	return len(g.Vertices) / positionComponents
}

// Triangles splits the index list into triangles. Any incomplete triangle at
// the end of the list is ignored.
func (g Geometry) Triangles() [][3]uint32 {
	t := make([][3]uint32, 0, len(g.Indices)/3)
	for i := 0; i+2 < len(g.Indices); i += 3 {
		t = append(t, [3]uint32{g.Indices[i], g.Indices[i+1], g.Indices[i+2]})
	}
	return t
}

func (g Geometry) String() string {
	return fmt.Sprintf("%d vertices, %d triangles %v", g.NumVertices(), len(g.Indices)/3, g.Triangles())
}

// VertexState is the vertex array object and the two buffers bound to it.
// Count is the number of indices to draw.
type VertexState struct {
	VAO   uint32
	VBO   uint32
	EBO   uint32
	Count int32
}

// Upload the geometry to GPU memory. On return no vertex array or array
// buffer is bound, so later operations cannot change the vertex state by
// accident. The element array buffer remains part of the vertex array's
// state.
func Upload(dev Device, geom Geometry) VertexState {
	vs := VertexState{
		VBO:   dev.GenBuffer(),
		VAO:   dev.GenVertexArray(),
		EBO:   dev.GenBuffer(),
		Count: int32(len(geom.Indices)),
	}

	dev.BindVertexArray(vs.VAO)

	dev.BindBuffer(ArrayBuffer, vs.VBO)
	dev.BufferData(ArrayBuffer, geom.Vertices)

	dev.BindBuffer(ElementArrayBuffer, vs.EBO)
	dev.BufferData(ElementArrayBuffer, geom.Indices)

	dev.VertexAttribPointer(PositionLayout)
	dev.EnableVertexAttribArray(PositionLayout.Slot)

	// the element array buffer binding is recorded by the vertex array so
	// only the array buffer is unbound
	dev.BindBuffer(ArrayBuffer, 0)
	dev.BindVertexArray(0)

	logger.Logf(logger.Allow, "geometry", "uploaded %s", geom)

	return vs
}
