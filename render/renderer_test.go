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
	"errors"
	"strings"
	"testing"

	"github.com/hellosquare/hellosquare/curated"
	"github.com/hellosquare/hellosquare/render"
	"github.com/hellosquare/hellosquare/render/fake"
	"github.com/hellosquare/hellosquare/test"
)

type fixture struct {
	j   *fake.Journal
	dev *fake.Device
	plt *fake.Provider
	ldr *fake.Loader
}

func newFixture() fixture {
	j := &fake.Journal{}
	return fixture{
		j:   j,
		dev: fake.NewDevice(j),
		plt: fake.NewProvider(j),
		ldr: fake.NewLoader(j),
	}
}

func (f fixture) renderer(cfg render.Config) *render.Renderer {
	return render.NewRenderer(cfg, f.plt, f.dev, f.ldr)
}

func TestSetupSequence(t *testing.T) {
	f := newFixture()
	r := f.renderer(render.DefaultConfig())
	test.DemandSuccess(t, r.Setup())

	// window and context requests
	test.DemandEquality(t, f.plt.Win != nil, true)
	test.ExpectEquality(t, f.plt.Win.Hints.Width, 800)
	test.ExpectEquality(t, f.plt.Win.Hints.Height, 800)
	test.ExpectEquality(t, f.plt.Win.Hints.Title, "LearnOpenGL")
	test.ExpectEquality(t, f.plt.Win.Hints.ContextMajor, 3)
	test.ExpectEquality(t, f.plt.Win.Hints.ContextMinor, 3)
	test.ExpectSuccess(t, f.plt.Win.Hints.CoreProfile)
	test.ExpectSuccess(t, f.plt.Win.Current)
	test.ExpectSuccess(t, f.ldr.Resolved)

	// the order of setup
	order := f.j.Filter("Initialise", "CreateWindow", "MakeContextCurrent", "LoadAll", "SetResizeCallback", "CreateProgram", "GenVertexArray")
	test.DemandEquality(t, len(order), 7)
	for i, p := range []string{"Initialise", "CreateWindow", "MakeContextCurrent", "LoadAll", "SetResizeCallback", "CreateProgram", "GenVertexArray"} {
		test.ExpectSuccess(t, strings.HasPrefix(order[i], p), order[i])
	}

	program, stages := r.Program()
	test.ExpectSuccess(t, program.Success)
	test.ExpectSuccess(t, stages.Success())
	test.ExpectEquality(t, r.Loop().State(), render.Running)

	r.Teardown()
	test.ExpectEquality(t, len(f.dev.Violations), 0)
}

func TestTeardownOrder(t *testing.T) {
	f := newFixture()
	f.plt.OnPoll = fake.CloseAfter(2)

	r := f.renderer(render.DefaultConfig())
	test.DemandSuccess(t, r.Run())

	vs := r.VertexState()
	test.ExpectEquality(t, vs, render.VertexState{})

	order := f.j.Filter("DeleteVertexArray", "DeleteBuffer", "DeleteProgram", "DestroyWindow", "Terminate")
	expected := []string{
		"DeleteVertexArray 5",
		"DeleteBuffer 4",
		"DeleteBuffer 6",
		"DeleteProgram 1",
		"DestroyWindow",
		"Terminate",
	}
	test.DemandEquality(t, len(order), len(expected))
	for i := range expected {
		test.ExpectEquality(t, order[i], expected[i])
	}

	// teardown happens after the loop has finished
	entries := f.j.Entries()
	test.ExpectEquality(t, entries[len(entries)-1], "Terminate")
	test.ExpectSuccess(t, f.j.Index("DeleteVertexArray 5") > f.j.Index("SwapBuffers"))

	// every GL object has been released
	test.ExpectEquality(t, f.dev.Live(), 0)
	test.ExpectEquality(t, len(f.dev.Violations), 0)
}

func TestTeardownOnce(t *testing.T) {
	f := newFixture()
	f.plt.OnPoll = fake.CloseAfter(1)

	r := f.renderer(render.DefaultConfig())
	test.DemandSuccess(t, r.Run())
	r.Teardown()
	r.Teardown()

	test.ExpectEquality(t, f.plt.Terminated, 1)
	test.ExpectEquality(t, f.plt.Win.Destroyed, 1)
	test.ExpectEquality(t, f.j.Count("DeleteProgram"), 1)
	test.ExpectEquality(t, f.j.Count("DeleteVertexArray"), 1)
	test.ExpectEquality(t, f.j.Count("DeleteBuffer"), 2)
}

// compile failures are logged but teardown still happens exactly once
func TestTeardownAfterCompileFailure(t *testing.T) {
	f := newFixture()
	f.plt.OnPoll = fake.CloseAfter(3)

	cfg := render.DefaultConfig()
	cfg.Shaders.Vertex = brokenSource

	r := f.renderer(cfg)
	test.DemandSuccess(t, r.Run())

	test.ExpectEquality(t, f.plt.Terminated, 1)
	test.ExpectEquality(t, f.plt.Win.Destroyed, 1)
	test.ExpectEquality(t, f.j.Count("DeleteProgram"), 1)
	test.ExpectEquality(t, f.dev.Live(), 0)

	// frames are presented but nothing is drawn
	test.ExpectEquality(t, f.plt.Win.Swaps, 3)
	test.ExpectEquality(t, len(f.dev.ClearColors), 3)
	test.ExpectEquality(t, len(f.dev.Draws), 0)
	test.ExpectEquality(t, f.j.Count("DrawElements"), 0)
	test.ExpectEquality(t, f.j.Count("UseProgram"), 0)
	test.ExpectEquality(t, len(f.dev.Violations), 0)
}

func TestProviderFailure(t *testing.T) {
	f := newFixture()
	f.plt.InitErr = errors.New("no video driver")

	err := f.renderer(render.DefaultConfig()).Run()
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, render.ProviderFailure))
	test.ExpectEquality(t, err.Error(), "render: window provider: no video driver")

	// nothing to release
	test.ExpectEquality(t, f.plt.Terminated, 0)
	test.ExpectEquality(t, f.j.Count("CreateWindow"), 0)
}

func TestWindowCreationFailure(t *testing.T) {
	f := newFixture()
	f.plt.CreateErr = errors.New("no display")

	err := f.renderer(render.DefaultConfig()).Run()
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, render.WindowCreationFailure))

	// setup stops immediately. no GL calls are made on a missing context
	test.ExpectEquality(t, f.j.Count("MakeContextCurrent"), 0)
	test.ExpectEquality(t, f.j.Count("LoadAll"), 0)
	test.ExpectEquality(t, f.j.Count("CreateProgram"), 0)
	test.ExpectEquality(t, f.j.Count("DestroyWindow"), 0)
	test.ExpectEquality(t, f.plt.Terminated, 1)
}

func TestLoaderFailure(t *testing.T) {
	f := newFixture()
	f.ldr.Err = errors.New("missing glDrawElements")

	err := f.renderer(render.DefaultConfig()).Run()
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, render.LoaderFailure))

	test.ExpectEquality(t, f.j.Count("CreateShader"), 0)
	test.ExpectEquality(t, f.j.Count("GenBuffer"), 0)
	test.ExpectEquality(t, f.plt.Win.Destroyed, 1)
	test.ExpectEquality(t, f.plt.Terminated, 1)
	test.ExpectSuccess(t, f.j.Index("DestroyWindow") < f.j.Index("Terminate"))
}
