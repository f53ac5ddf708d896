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

package render_test

import (
	"testing"

	"github.com/hellosquare/hellosquare/render"
	"github.com/hellosquare/hellosquare/render/fake"
	"github.com/hellosquare/hellosquare/test"
)

func TestQuadGeometry(t *testing.T) {
	g := render.QuadGeometry()
	test.ExpectEquality(t, g.NumVertices(), 4)
	test.DemandEquality(t, len(g.Indices), 6)

	tri := g.Triangles()
	test.DemandEquality(t, len(tri), 2)
	test.ExpectEquality(t, tri[0], [3]uint32{0, 1, 3})
	test.ExpectEquality(t, tri[1], [3]uint32{1, 2, 3})

	// incomplete triangles are ignored
	g.Indices = append(g.Indices, 0)
	test.ExpectEquality(t, len(g.Triangles()), 2)
}

func TestUpload(t *testing.T) {
	j := &fake.Journal{}
	dev := fake.NewDevice(j)
	g := render.QuadGeometry()

	vs := render.Upload(dev, g)
	test.ExpectEquality(t, vs.Count, int32(6))
	test.ExpectInequality(t, vs.VAO, uint32(0))
	test.ExpectInequality(t, vs.VBO, uint32(0))
	test.ExpectInequality(t, vs.EBO, uint32(0))
	test.ExpectEquality(t, len(dev.Violations), 0)

	// nothing is left bound
	vao, array := dev.Bound()
	test.ExpectEquality(t, vao, uint32(0))
	test.ExpectEquality(t, array, uint32(0))

	// contents of the buffers are exactly the geometry
	vertices, ok := dev.BufferContents(vs.VBO).([]float32)
	test.DemandSuccess(t, ok)
	test.DemandEquality(t, len(vertices), len(g.Vertices))
	for i := range vertices {
		test.ExpectEquality(t, vertices[i], g.Vertices[i])
	}

	indices, ok := dev.BufferContents(vs.EBO).([]uint32)
	test.DemandSuccess(t, ok)
	test.DemandEquality(t, len(indices), len(g.Indices))
	for i := range indices {
		test.ExpectEquality(t, indices[i], g.Indices[i])
	}

	// both uploads are 48 bytes and 24 bytes respectively
	test.DemandSuccess(t, j.Index("BufferData array 48") >= 0)
	test.DemandSuccess(t, j.Index("BufferData element array 24") >= 0)

	// attribute description: slot 0, 3 components, 12 byte stride, offset 0
	test.DemandSuccess(t, j.Index("VertexAttribPointer 0 3 12 0") >= 0)
	test.DemandSuccess(t, j.Index("EnableVertexAttribArray 0") >= 0)
}

// drawing the uploaded vertex state reads the two triangles of the quad
func TestUploadedDrawIndices(t *testing.T) {
	dev := fake.NewDevice(&fake.Journal{})
	g := render.QuadGeometry()

	program, _ := render.BuildProgram(dev, render.DefaultConfig().Shaders, render.DefaultInfoLogLength)
	test.DemandSuccess(t, program.Success)

	vs := render.Upload(dev, g)

	dev.UseProgram(program.Program)
	dev.BindVertexArray(vs.VAO)
	dev.DrawElements(vs.Count)

	test.DemandEquality(t, len(dev.Draws), 1)
	d := dev.Draws[0]
	tri := d.Triangles()
	test.DemandEquality(t, len(tri), 2)
	test.ExpectEquality(t, tri[0], [3]uint32{0, 1, 3})
	test.ExpectEquality(t, tri[1], [3]uint32{1, 2, 3})

	// positions are read through the attribute layout
	test.DemandEquality(t, len(d.Positions), 6)
	test.ExpectEquality(t, d.Positions[0], [3]float32{0.5, 0.5, 0.0})
	test.ExpectEquality(t, d.Positions[1], [3]float32{0.5, -0.5, 0.0})
	test.ExpectEquality(t, d.Positions[2], [3]float32{-0.5, 0.5, 0.0})
	test.ExpectEquality(t, d.Positions[4], [3]float32{-0.5, -0.5, 0.0})

	test.ExpectEquality(t, len(dev.Violations), 0)
}
