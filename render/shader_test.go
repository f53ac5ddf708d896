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
	"strings"
	"testing"

	"github.com/hellosquare/hellosquare/curated"
	"github.com/hellosquare/hellosquare/logger"
	"github.com/hellosquare/hellosquare/render"
	"github.com/hellosquare/hellosquare/render/fake"
	"github.com/hellosquare/hellosquare/test"
)

const brokenSource = "#version 330 core\nvoid mian() {}\n"

func TestCompileStages(t *testing.T) {
	dev := fake.NewDevice(&fake.Journal{})
	src := render.DefaultConfig().Shaders

	r := render.CompileStages(dev, src, render.DefaultInfoLogLength)
	test.ExpectSuccess(t, r.Success())
	test.ExpectSuccess(t, r.Vertex.Success)
	test.ExpectSuccess(t, r.Fragment.Success)
	test.ExpectEquality(t, r.Vertex.Kind, render.VertexShader)
	test.ExpectEquality(t, r.Fragment.Kind, render.FragmentShader)
	test.ExpectInequality(t, r.Vertex.Handle, r.Fragment.Handle)

	// diagnostics are only populated on failure
	test.ExpectEquality(t, r.Vertex.Diagnostic, "")
	test.ExpectEquality(t, r.Fragment.Diagnostic, "")
	test.ExpectSuccess(t, r.Vertex.Err())
	test.ExpectEquality(t, len(dev.Violations), 0)
}

func TestCompileVertexFailure(t *testing.T) {
	logger.Clear()
	dev := fake.NewDevice(&fake.Journal{})

	// the result is a failure whatever the state of the fragment source
	for _, frag := range []string{render.DefaultConfig().Shaders.Fragment, brokenSource} {
		src := render.ShaderSources{Vertex: brokenSource, Fragment: frag}
		r := render.CompileStages(dev, src, render.DefaultInfoLogLength)
		test.ExpectFailure(t, r.Success())
		test.ExpectFailure(t, r.Vertex.Success)
		test.ExpectInequality(t, r.Vertex.Diagnostic, "")
		test.ExpectSuccess(t, curated.Is(r.Vertex.Err(), render.ShaderCompileFailure))
	}

	entries := logger.Entries()
	test.DemandEquality(t, len(entries) > 0, true)
	test.ExpectEquality(t, entries[0].Tag, "shader")
	test.ExpectSuccess(t, strings.HasPrefix(entries[0].Detail, "render: vertex shader compilation:"))
}

// each stage is checked independently. a broken fragment stage is reported
// even though the vertex stage compiled
func TestCompileFragmentFailure(t *testing.T) {
	dev := fake.NewDevice(&fake.Journal{})

	src := render.ShaderSources{Vertex: render.DefaultConfig().Shaders.Vertex, Fragment: brokenSource}
	r := render.CompileStages(dev, src, render.DefaultInfoLogLength)
	test.ExpectFailure(t, r.Success())
	test.ExpectSuccess(t, r.Vertex.Success)
	test.ExpectEquality(t, r.Vertex.Diagnostic, "")
	test.ExpectFailure(t, r.Fragment.Success)
	test.ExpectSuccess(t, strings.Contains(r.Fragment.Diagnostic, "fragment"))
}

func TestDiagnosticBound(t *testing.T) {
	j := &fake.Journal{}
	dev := fake.NewDevice(j)
	dev.CompileLog = strings.Repeat("error: too long ", 100)

	src := render.ShaderSources{Vertex: brokenSource, Fragment: brokenSource}
	r := render.CompileStages(dev, src, render.DefaultInfoLogLength)
	test.ExpectSuccess(t, len(r.Vertex.Diagnostic) <= render.DefaultInfoLogLength)
	test.ExpectSuccess(t, len(r.Vertex.Diagnostic) > 0)

	// the info log of each stage is fetched from that stage
	test.ExpectEquality(t, j.Count("ShaderInfoLog"), 2)
	test.DemandSuccess(t, j.Index("ShaderInfoLog 1") >= 0)
	test.DemandSuccess(t, j.Index("ShaderInfoLog 2") >= 0)
}

func TestLinkProgram(t *testing.T) {
	j := &fake.Journal{}
	dev := fake.NewDevice(j)

	program := dev.CreateProgram()
	stages := render.CompileStages(dev, render.DefaultConfig().Shaders, render.DefaultInfoLogLength)
	r := render.LinkProgram(dev, program, stages, render.DefaultInfoLogLength)
	test.ExpectSuccess(t, r.Success)
	test.ExpectEquality(t, r.Program, program)
	test.ExpectEquality(t, r.Diagnostic, "")
	test.ExpectSuccess(t, r.Err())
	test.ExpectEquality(t, j.Count("AttachShader"), 2)
	test.ExpectEquality(t, j.Count("ProgramInfoLog"), 0)
}

func TestLinkFailure(t *testing.T) {
	logger.Clear()
	dev := fake.NewDevice(&fake.Journal{})

	program := dev.CreateProgram()
	src := render.ShaderSources{Vertex: render.DefaultConfig().Shaders.Vertex, Fragment: brokenSource}
	stages := render.CompileStages(dev, src, render.DefaultInfoLogLength)
	r := render.LinkProgram(dev, program, stages, render.DefaultInfoLogLength)
	test.ExpectFailure(t, r.Success)
	test.ExpectInequality(t, r.Diagnostic, "")
	test.ExpectSuccess(t, curated.Is(r.Err(), render.ProgramLinkFailure))

	found := false
	for _, e := range logger.Entries() {
		if strings.HasPrefix(e.Detail, "render: program link:") {
			found = true
		}
	}
	test.ExpectSuccess(t, found)
}

// stages are deleted immediately after linking whether or not linking
// succeeded
func TestBuildProgramDeletesStages(t *testing.T) {
	for _, src := range []render.ShaderSources{
		render.DefaultConfig().Shaders,
		{Vertex: brokenSource, Fragment: brokenSource},
	} {
		j := &fake.Journal{}
		dev := fake.NewDevice(j)

		link, stages := render.BuildProgram(dev, src, render.DefaultInfoLogLength)
		test.ExpectSuccess(t, dev.ShaderDeleted(stages.Vertex.Handle))
		test.ExpectSuccess(t, dev.ShaderDeleted(stages.Fragment.Handle))
		test.ExpectEquality(t, link.Success, stages.Success())

		// deletion follows the link
		linked := j.Index("LinkProgram 1")
		test.DemandSuccess(t, linked >= 0)
		test.ExpectSuccess(t, j.Index("DeleteShader 2") > linked)
		test.ExpectSuccess(t, j.Index("DeleteShader 3") > linked)

		// only the program remains
		test.ExpectEquality(t, dev.Live(), 1)
	}
}
