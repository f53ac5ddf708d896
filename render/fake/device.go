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

package fake

import (
	"fmt"
	"strings"

	"github.com/hellosquare/hellosquare/render"
)

// the string that must appear in shader source for it to compile
const entryPoint = "void main()"

type shader struct {
	kind     render.ShaderKind
	source   string
	compiled bool
	log      string
	deleted  bool
}

type program struct {
	attached []uint32
	linked   bool
	log      string
	deleted  bool
}

type buffer struct {
	data    any
	deleted bool
}

type attrib struct {
	layout  render.AttribLayout
	buffer  uint32
	enabled bool
}

type vertexArray struct {
	elements uint32
	attribs  map[uint32]*attrib
	deleted  bool
}

// Draw is a captured DrawElements() call.
type Draw struct {
	Program    uint32
	VAO        uint32
	ClearColor render.Color

	// the indices read from the element buffer
	Indices []uint32

	// the position of each vertex referenced by Indices, read through the
	// layout of attribute slot zero
	Positions [][3]float32
}

// Triangles splits the indices of the draw into triangles.
func (d Draw) Triangles() [][3]uint32 {
	return render.Geometry{Indices: d.Indices}.Triangles()
}

// Device is a recording implementation of render.Device.
type Device struct {
	journal *Journal

	next uint32

	shaders  map[uint32]*shader
	programs map[uint32]*program
	buffers  map[uint32]*buffer
	vaos     map[uint32]*vertexArray

	boundVAO     uint32
	boundArray   uint32
	boundProgram uint32
	clearColor   render.Color

	// all draw calls in order
	Draws []Draw

	// every call to Viewport() in order
	Viewports [][4]int32

	// every call to ClearColor() in order
	ClearColors []render.Color

	// description of each misuse of the API
	Violations []string

	// if not empty, replaces the info log of any shader that fails to compile
	CompileLog string
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(j *Journal) *Device {
	return &Device{
		journal:  j,
		shaders:  make(map[uint32]*shader),
		programs: make(map[uint32]*program),
		buffers:  make(map[uint32]*buffer),
		vaos:     make(map[uint32]*vertexArray),
	}
}

func (dev *Device) violation(format string, args ...any) {
	dev.Violations = append(dev.Violations, fmt.Sprintf(format, args...))
}

func (dev *Device) handle() uint32 {
	dev.next++
	return dev.next
}

// Live returns the number of objects of every type that have not been
// deleted. Shaders are included.
func (dev *Device) Live() int {
	n := 0
	for _, s := range dev.shaders {
		if !s.deleted {
			n++
		}
	}
	for _, p := range dev.programs {
		if !p.deleted {
			n++
		}
	}
	for _, b := range dev.buffers {
		if !b.deleted {
			n++
		}
	}
	for _, v := range dev.vaos {
		if !v.deleted {
			n++
		}
	}
	return n
}

// Bound returns the currently bound vertex array and array buffer.
func (dev *Device) Bound() (vao uint32, array uint32) {
	return dev.boundVAO, dev.boundArray
}

// CreateShader implements the render.Device interface.
func (dev *Device) CreateShader(kind render.ShaderKind) uint32 {
	h := dev.handle()
	dev.shaders[h] = &shader{kind: kind}
	dev.journal.add("CreateShader %s %d", kind, h)
	return h
}

func (dev *Device) shader(h uint32) *shader {
	s, ok := dev.shaders[h]
	if !ok || s.deleted {
		dev.violation("shader %d does not exist", h)
		return &shader{}
	}
	return s
}

// ShaderSource implements the render.Device interface.
func (dev *Device) ShaderSource(h uint32, source string) {
	dev.shader(h).source = source
	dev.journal.add("ShaderSource %d", h)
}

// CompileShader implements the render.Device interface. Compilation succeeds
// if the source declares a main function.
func (dev *Device) CompileShader(h uint32) {
	s := dev.shader(h)
	dev.journal.add("CompileShader %d", h)

	s.compiled = strings.Contains(s.source, entryPoint)
	if s.compiled {
		s.log = ""
		return
	}

	if dev.CompileLog != "" {
		s.log = dev.CompileLog
	} else {
		s.log = fmt.Sprintf("0:1(1): error: %s shader has no main function", s.kind)
	}
}

// ShaderCompiled implements the render.Device interface.
func (dev *Device) ShaderCompiled(h uint32) bool {
	return dev.shader(h).compiled
}

// infoLog mimics the GL behaviour of writing at most maxLength bytes
// including the terminating NUL.
func infoLog(log string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	if len(log) > maxLength-1 {
		return log[:maxLength-1]
	}
	return log
}

// ShaderInfoLog implements the render.Device interface.
func (dev *Device) ShaderInfoLog(h uint32, maxLength int) string {
	dev.journal.add("ShaderInfoLog %d", h)
	return infoLog(dev.shader(h).log, maxLength)
}

// DeleteShader implements the render.Device interface. A shader that is
// attached to a program may be deleted.
func (dev *Device) DeleteShader(h uint32) {
	dev.shader(h).deleted = true
	dev.journal.add("DeleteShader %d", h)
}

// ShaderDeleted returns true if the shader has been deleted.
func (dev *Device) ShaderDeleted(h uint32) bool {
	s, ok := dev.shaders[h]
	return ok && s.deleted
}

// CreateProgram implements the render.Device interface.
func (dev *Device) CreateProgram() uint32 {
	h := dev.handle()
	dev.programs[h] = &program{}
	dev.journal.add("CreateProgram %d", h)
	return h
}

func (dev *Device) program(h uint32) *program {
	p, ok := dev.programs[h]
	if !ok || p.deleted {
		dev.violation("program %d does not exist", h)
		return &program{}
	}
	return p
}

// AttachShader implements the render.Device interface.
func (dev *Device) AttachShader(p uint32, s uint32) {
	dev.shader(s)
	prg := dev.program(p)
	prg.attached = append(prg.attached, s)
	dev.journal.add("AttachShader %d %d", p, s)
}

// LinkProgram implements the render.Device interface. Linking succeeds if
// exactly one compiled vertex shader and one compiled fragment shader are
// attached.
func (dev *Device) LinkProgram(p uint32) {
	prg := dev.program(p)
	dev.journal.add("LinkProgram %d", p)

	var vertex, fragment int
	for _, h := range prg.attached {
		s := dev.shaders[h]
		if s == nil || !s.compiled {
			prg.linked = false
			prg.log = fmt.Sprintf("error: linking with uncompiled/unspecialized shader %d", h)
			return
		}
		switch s.kind {
		case render.VertexShader:
			vertex++
		case render.FragmentShader:
			fragment++
		}
	}

	if vertex != 1 || fragment != 1 {
		prg.linked = false
		prg.log = fmt.Sprintf("error: program requires one vertex and one fragment shader (%d, %d)", vertex, fragment)
		return
	}

	prg.linked = true
	prg.log = ""
}

// ProgramLinked implements the render.Device interface.
func (dev *Device) ProgramLinked(p uint32) bool {
	return dev.program(p).linked
}

// ProgramInfoLog implements the render.Device interface.
func (dev *Device) ProgramInfoLog(p uint32, maxLength int) string {
	dev.journal.add("ProgramInfoLog %d", p)
	return infoLog(dev.program(p).log, maxLength)
}

// UseProgram implements the render.Device interface.
func (dev *Device) UseProgram(p uint32) {
	dev.journal.add("UseProgram %d", p)
	if p == 0 {
		dev.boundProgram = 0
		return
	}
	if !dev.program(p).linked {
		dev.violation("use of program %d that has not been linked", p)
	}
	dev.boundProgram = p
}

// DeleteProgram implements the render.Device interface.
func (dev *Device) DeleteProgram(p uint32) {
	dev.program(p).deleted = true
	dev.journal.add("DeleteProgram %d", p)
}

// GenVertexArray implements the render.Device interface.
func (dev *Device) GenVertexArray() uint32 {
	h := dev.handle()
	dev.vaos[h] = &vertexArray{attribs: make(map[uint32]*attrib)}
	dev.journal.add("GenVertexArray %d", h)
	return h
}

func (dev *Device) vertexArray(h uint32) *vertexArray {
	v, ok := dev.vaos[h]
	if !ok || v.deleted {
		dev.violation("vertex array %d does not exist", h)
		return &vertexArray{attribs: make(map[uint32]*attrib)}
	}
	return v
}

// BindVertexArray implements the render.Device interface.
func (dev *Device) BindVertexArray(h uint32) {
	dev.journal.add("BindVertexArray %d", h)
	if h != 0 {
		dev.vertexArray(h)
	}
	dev.boundVAO = h
}

// DeleteVertexArray implements the render.Device interface.
func (dev *Device) DeleteVertexArray(h uint32) {
	dev.vertexArray(h).deleted = true
	if dev.boundVAO == h {
		dev.boundVAO = 0
	}
	dev.journal.add("DeleteVertexArray %d", h)
}

// GenBuffer implements the render.Device interface.
func (dev *Device) GenBuffer() uint32 {
	h := dev.handle()
	dev.buffers[h] = &buffer{}
	dev.journal.add("GenBuffer %d", h)
	return h
}

func (dev *Device) buffer(h uint32) *buffer {
	b, ok := dev.buffers[h]
	if !ok || b.deleted {
		dev.violation("buffer %d does not exist", h)
		return &buffer{}
	}
	return b
}

// BindBuffer implements the render.Device interface. The element array
// buffer binding is part of the bound vertex array's state.
func (dev *Device) BindBuffer(target render.BufferTarget, h uint32) {
	dev.journal.add("BindBuffer %s %d", target, h)
	if h != 0 {
		dev.buffer(h)
	}

	switch target {
	case render.ArrayBuffer:
		dev.boundArray = h
	case render.ElementArrayBuffer:
		if dev.boundVAO == 0 {
			dev.violation("element array buffer %d bound with no vertex array", h)
			return
		}
		dev.vertexArray(dev.boundVAO).elements = h
	}
}

// BufferData implements the render.Device interface.
func (dev *Device) BufferData(target render.BufferTarget, data any) {
	var h uint32
	switch target {
	case render.ArrayBuffer:
		h = dev.boundArray
	case render.ElementArrayBuffer:
		if dev.boundVAO != 0 {
			h = dev.vertexArray(dev.boundVAO).elements
		}
	}
	if h == 0 {
		dev.violation("buffer data for %s target with no buffer bound", target)
		return
	}

	var size int
	switch d := data.(type) {
	case []float32:
		size = len(d) * 4
		data = append([]float32(nil), d...)
	case []uint32:
		size = len(d) * 4
		data = append([]uint32(nil), d...)
	default:
		dev.violation("unsupported buffer data type %T", data)
		return
	}

	dev.buffer(h).data = data
	dev.journal.add("BufferData %s %d", target, size)
}

// BufferContents returns a copy of the data last uploaded to the buffer.
func (dev *Device) BufferContents(h uint32) any {
	b, ok := dev.buffers[h]
	if !ok {
		return nil
	}
	return b.data
}

// DeleteBuffer implements the render.Device interface.
func (dev *Device) DeleteBuffer(h uint32) {
	dev.buffer(h).deleted = true
	if dev.boundArray == h {
		dev.boundArray = 0
	}
	dev.journal.add("DeleteBuffer %d", h)
}

// VertexAttribPointer implements the render.Device interface. The array
// buffer bound at the time of the call is the source of the attribute.
func (dev *Device) VertexAttribPointer(layout render.AttribLayout) {
	dev.journal.add("VertexAttribPointer %d %d %d %d", layout.Slot, layout.Components, layout.Stride, layout.Offset)
	if dev.boundVAO == 0 {
		dev.violation("vertex attribute %d set with no vertex array", layout.Slot)
		return
	}
	if dev.boundArray == 0 {
		dev.violation("vertex attribute %d set with no array buffer", layout.Slot)
		return
	}

	v := dev.vertexArray(dev.boundVAO)
	a, ok := v.attribs[layout.Slot]
	if !ok {
		a = &attrib{}
		v.attribs[layout.Slot] = a
	}
	a.layout = layout
	a.buffer = dev.boundArray
}

// EnableVertexAttribArray implements the render.Device interface.
func (dev *Device) EnableVertexAttribArray(slot uint32) {
	dev.journal.add("EnableVertexAttribArray %d", slot)
	if dev.boundVAO == 0 {
		dev.violation("vertex attribute %d enabled with no vertex array", slot)
		return
	}

	v := dev.vertexArray(dev.boundVAO)
	a, ok := v.attribs[slot]
	if !ok {
		a = &attrib{}
		v.attribs[slot] = a
	}
	a.enabled = true
}

// ClearColor implements the render.Device interface.
func (dev *Device) ClearColor(c render.Color) {
	dev.journal.add("ClearColor %s", c)
	dev.clearColor = c
	dev.ClearColors = append(dev.ClearColors, c)
}

// Clear implements the render.Device interface.
func (dev *Device) Clear() {
	dev.journal.add("Clear")
}

// DrawElements implements the render.Device interface.
func (dev *Device) DrawElements(count int32) {
	dev.journal.add("DrawElements %d", count)

	if dev.boundProgram == 0 {
		dev.violation("draw with no program in use")
		return
	}
	dev.program(dev.boundProgram)
	if dev.boundVAO == 0 {
		dev.violation("draw with no vertex array bound")
		return
	}

	v := dev.vertexArray(dev.boundVAO)
	indices, _ := dev.buffer(v.elements).data.([]uint32)
	if int(count) > len(indices) {
		dev.violation("draw of %d indices from element buffer of %d", count, len(indices))
		return
	}

	d := Draw{
		Program:    dev.boundProgram,
		VAO:        dev.boundVAO,
		ClearColor: dev.clearColor,
		Indices:    append([]uint32(nil), indices[:count]...),
	}

	a, ok := v.attribs[0]
	if !ok || !a.enabled {
		dev.violation("draw with attribute slot 0 disabled")
	} else {
		vertices, _ := dev.buffer(a.buffer).data.([]float32)
		d.Positions = positions(vertices, a.layout, d.Indices)
	}

	dev.Draws = append(dev.Draws, d)
}

// positions reads the position of each index through the attribute layout.
func positions(vertices []float32, layout render.AttribLayout, indices []uint32) [][3]float32 {
	stride := int(layout.Stride) / 4
	if stride == 0 {
		stride = int(layout.Components)
	}
	offset := layout.Offset / 4

	p := make([][3]float32, 0, len(indices))
	for _, i := range indices {
		var v [3]float32
		base := int(i)*stride + offset
		for c := 0; c < int(layout.Components) && c < 3; c++ {
			if base+c < len(vertices) {
				v[c] = vertices[base+c]
			}
		}
		p = append(p, v)
	}
	return p
}

// Viewport implements the render.Device interface.
func (dev *Device) Viewport(x, y, width, height int32) {
	dev.journal.add("Viewport %d %d %d %d", x, y, width, height)
	dev.Viewports = append(dev.Viewports, [4]int32{x, y, width, height})
}
