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

import "unsafe"

// ShaderKind is the pipeline stage of a shader.
type ShaderKind int

// List of valid ShaderKind values.
const (
	VertexShader ShaderKind = iota
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// BufferTarget is the binding point of a buffer object.
type BufferTarget int

// List of valid BufferTarget values.
const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "array"
	case ElementArrayBuffer:
		return "element array"
	}
	return "unknown"
}

// AttribLayout describes how a vertex attribute is read from the bound array
// buffer. Attributes are always of type float and never normalised.
type AttribLayout struct {
	Slot       uint32
	Components int32

	// Stride and Offset are in bytes
	Stride int32
	Offset int
}

// Device is the subset of the OpenGL 3.3 core API used by the package. Handles
// are the GL object names. Buffer uploads always use the static draw usage
// hint.
type Device interface {
	CreateShader(kind ShaderKind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32, maxLength int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32, maxLength int) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)

	// BufferData uploads to the buffer bound to target. data is a []float32
	// or a []uint32
	BufferData(target BufferTarget, data any)
	DeleteBuffer(buffer uint32)

	VertexAttribPointer(layout AttribLayout)
	EnableVertexAttribArray(slot uint32)

	ClearColor(c Color)
	Clear()

	// DrawElements draws count indices from the bound element array buffer
	// as triangles. Indices are unsigned int and start at offset zero
	DrawElements(count int32)

	Viewport(x, y, width, height int32)
}

// Loader resolves the GL entry points for the current context.
type Loader interface {
	LoadAll(procAddress func(name string) unsafe.Pointer) error
}
