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
	"github.com/hellosquare/hellosquare/assert"
	"github.com/hellosquare/hellosquare/curated"
	"github.com/hellosquare/hellosquare/logger"
	"github.com/hellosquare/hellosquare/window"
)

// Renderer owns every resource used to draw the quad. Resources are acquired
// by Setup() and released by Teardown() in the reverse order.
type Renderer struct {
	cfg Config
	plt window.Provider
	dev Device
	ldr Loader

	// acquired resources. a nil window or a zero handle means the resource
	// was never acquired
	initialised bool
	win         window.Window
	program     LinkResult
	stages      CompileResult
	vs          VertexState

	loop *FrameLoop

	tornDown bool
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type. Nothing is acquired until Setup() or Run() is called.
func NewRenderer(cfg Config, plt window.Provider, dev Device, ldr Loader) *Renderer {
	return &Renderer{
		cfg: cfg,
		plt: plt,
		dev: dev,
		ldr: ldr,
	}
}

// Setup acquires the window, context, GL functions, program and vertex state.
// Errors are returned for failures that leave no usable context. Shader and
// program failures are logged only. If an error is returned, Teardown() has
// already been called.
func (r *Renderer) Setup() error {
	assert.MainThread()

	err := r.plt.Initialise()
	if err != nil {
		r.Teardown()
		return curated.Errorf(ProviderFailure, err)
	}
	r.initialised = true

	logger.Logf(logger.Allow, "render", "creating window %s", r.cfg.Window)
	r.win, err = r.plt.CreateWindow(r.cfg.Window)
	if err != nil {
		r.win = nil
		r.Teardown()
		return curated.Errorf(WindowCreationFailure, err)
	}

	err = r.win.MakeContextCurrent()
	if err != nil {
		r.Teardown()
		return curated.Errorf(ContextFailure, err)
	}

	err = r.ldr.LoadAll(r.plt.ProcAddress)
	if err != nil {
		r.Teardown()
		return curated.Errorf(LoaderFailure, err)
	}

	r.win.SetResizeCallback(r.resize)

	r.program, r.stages = BuildProgram(r.dev, r.cfg.Shaders, r.cfg.InfoLogLength)
	r.vs = Upload(r.dev, r.cfg.Geom)

	r.loop = NewFrameLoop(r.dev, r.plt, r.win, r.program, r.vs, r.cfg)

	return nil
}

// resize is the window's resize callback. The viewport is the only state that
// changes.
func (r *Renderer) resize(width, height int) {
	r.dev.Viewport(0, 0, int32(width), int32(height))
	logger.Logf(logger.Allow, "render", "viewport %dx%d", width, height)
}

// Run the renderer: setup, frame loop, teardown. Returns an error only if
// setup failed.
func (r *Renderer) Run() error {
	err := r.Setup()
	if err != nil {
		return err
	}

	r.loop.Run()
	r.Teardown()

	return nil
}

// Loop returns the frame loop. Returns nil before a successful Setup().
func (r *Renderer) Loop() *FrameLoop {
	return r.loop
}

// Program returns the result of building the shader program.
func (r *Renderer) Program() (LinkResult, CompileResult) {
	return r.program, r.stages
}

// VertexState returns the uploaded vertex state.
func (r *Renderer) VertexState() VertexState {
	return r.vs
}

// Teardown releases the vertex array, vertex buffer, element buffer, program,
// window and finally the windowing system. Only resources that were acquired
// are released. Calling Teardown() more than once has no effect.
func (r *Renderer) Teardown() {
	if r.tornDown {
		return
	}
	r.tornDown = true

	if r.vs.VAO != 0 {
		r.dev.DeleteVertexArray(r.vs.VAO)
	}
	if r.vs.VBO != 0 {
		r.dev.DeleteBuffer(r.vs.VBO)
	}
	if r.vs.EBO != 0 {
		r.dev.DeleteBuffer(r.vs.EBO)
	}
	r.vs = VertexState{}

	if r.program.Program != 0 {
		r.dev.DeleteProgram(r.program.Program)
	}
	r.program = LinkResult{}

	if r.win != nil {
		r.win.Destroy()
		r.win = nil
	}

	if r.initialised {
		r.plt.Terminate()
		r.initialised = false
	}

	logger.Log(logger.Allow, "render", "teardown complete")
}
