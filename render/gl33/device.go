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

package gl33

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hellosquare/hellosquare/render"
)

// Device implements the render.Device interface.
type Device struct{}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice() *Device {
	return &Device{}
}

func shaderType(kind render.ShaderKind) uint32 {
	switch kind {
	case render.VertexShader:
		return gl.VERTEX_SHADER
	case render.FragmentShader:
		return gl.FRAGMENT_SHADER
	}
	panic("gl33: unknown shader kind")
}

func bufferTarget(target render.BufferTarget) uint32 {
	switch target {
	case render.ArrayBuffer:
		return gl.ARRAY_BUFFER
	case render.ElementArrayBuffer:
		return gl.ELEMENT_ARRAY_BUFFER
	}
	panic("gl33: unknown buffer target")
}

// CreateShader implements the render.Device interface.
func (dev *Device) CreateShader(kind render.ShaderKind) uint32 {
	return gl.CreateShader(shaderType(kind))
}

// ShaderSource implements the render.Device interface.
func (dev *Device) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	defer free()

	gl.ShaderSource(shader, 1, csource, nil)
}

// CompileShader implements the render.Device interface.
func (dev *Device) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

// ShaderCompiled implements the render.Device interface.
func (dev *Device) ShaderCompiled(shader uint32) bool {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	return isCompiled != gl.FALSE
}

// infoLog allocates a buffer of maxLength bytes and passes it to the get
// function. The maxLength includes the NUL character
func infoLog(maxLength int, get func(bufSize int32, length *int32, log *uint8)) string {
	if maxLength <= 0 {
		return ""
	}

	var length int32
	log := strings.Repeat("\x00", maxLength)
	get(int32(maxLength), &length, gl.Str(log))

	if length < 0 {
		length = 0
	} else if int(length) > maxLength-1 {
		length = int32(maxLength - 1)
	}
	return log[:length]
}

// ShaderInfoLog implements the render.Device interface.
func (dev *Device) ShaderInfoLog(shader uint32, maxLength int) string {
	return infoLog(maxLength, func(bufSize int32, length *int32, log *uint8) {
		gl.GetShaderInfoLog(shader, bufSize, length, log)
	})
}

// DeleteShader implements the render.Device interface.
func (dev *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// CreateProgram implements the render.Device interface.
func (dev *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachShader implements the render.Device interface.
func (dev *Device) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

// LinkProgram implements the render.Device interface.
func (dev *Device) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

// ProgramLinked implements the render.Device interface.
func (dev *Device) ProgramLinked(program uint32) bool {
	var isLinked int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &isLinked)
	return isLinked != gl.FALSE
}

// ProgramInfoLog implements the render.Device interface.
func (dev *Device) ProgramInfoLog(program uint32, maxLength int) string {
	return infoLog(maxLength, func(bufSize int32, length *int32, log *uint8) {
		gl.GetProgramInfoLog(program, bufSize, length, log)
	})
}

// UseProgram implements the render.Device interface.
func (dev *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// DeleteProgram implements the render.Device interface.
func (dev *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// GenVertexArray implements the render.Device interface.
func (dev *Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

// BindVertexArray implements the render.Device interface.
func (dev *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// DeleteVertexArray implements the render.Device interface.
func (dev *Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

// GenBuffer implements the render.Device interface.
func (dev *Device) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

// BindBuffer implements the render.Device interface.
func (dev *Device) BindBuffer(target render.BufferTarget, buffer uint32) {
	gl.BindBuffer(bufferTarget(target), buffer)
}

// BufferData implements the render.Device interface. Empty data allocates
// nothing.
func (dev *Device) BufferData(target render.BufferTarget, data any) {
	switch d := data.(type) {
	case []float32:
		if len(d) == 0 {
			return
		}
		gl.BufferData(bufferTarget(target), len(d)*4, gl.Ptr(d), gl.STATIC_DRAW)
	case []uint32:
		if len(d) == 0 {
			return
		}
		gl.BufferData(bufferTarget(target), len(d)*4, gl.Ptr(d), gl.STATIC_DRAW)
	default:
		panic("gl33: unsupported buffer data type")
	}
}

// DeleteBuffer implements the render.Device interface.
func (dev *Device) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

// VertexAttribPointer implements the render.Device interface.
func (dev *Device) VertexAttribPointer(layout render.AttribLayout) {
	gl.VertexAttribPointerWithOffset(layout.Slot, layout.Components, gl.FLOAT, false, layout.Stride, uintptr(layout.Offset))
}

// EnableVertexAttribArray implements the render.Device interface.
func (dev *Device) EnableVertexAttribArray(slot uint32) {
	gl.EnableVertexAttribArray(slot)
}

// ClearColor implements the render.Device interface.
func (dev *Device) ClearColor(c render.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
}

// Clear implements the render.Device interface. Only the color buffer is
// cleared.
func (dev *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawElements implements the render.Device interface.
func (dev *Device) DrawElements(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)
}

// Viewport implements the render.Device interface.
func (dev *Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}
