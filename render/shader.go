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
	"github.com/hellosquare/hellosquare/curated"
	"github.com/hellosquare/hellosquare/logger"
)

// StageResult is the outcome of compiling one shader stage. Diagnostic is
// only set when Success is false.
type StageResult struct {
	Kind       ShaderKind
	Handle     uint32
	Success    bool
	Diagnostic string
}

// Err returns a curated error describing a failed compilation, or nil.
func (r StageResult) Err() error {
	if r.Success {
		return nil
	}
	return curated.Errorf(ShaderCompileFailure, r.Kind, r.Diagnostic)
}

// CompileResult is the outcome of compiling both shader stages.
type CompileResult struct {
	Vertex   StageResult
	Fragment StageResult
}

// Success is true only if both stages compiled.
func (r CompileResult) Success() bool {
	return r.Vertex.Success && r.Fragment.Success
}

// LinkResult is the outcome of linking the program. Diagnostic is only set
// when Success is false.
type LinkResult struct {
	Program    uint32
	Success    bool
	Diagnostic string
}

// Err returns a curated error describing a failed link, or nil.
func (r LinkResult) Err() error {
	if r.Success {
		return nil
	}
	return curated.Errorf(ProgramLinkFailure, r.Diagnostic)
}

// truncate s to at most n bytes. info logs are bounded in size
func truncate(s string, n int) string {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}

func compileStage(dev Device, kind ShaderKind, source string, maxLog int) StageResult {
	r := StageResult{Kind: kind}

	r.Handle = dev.CreateShader(kind)
	dev.ShaderSource(r.Handle, source)
	dev.CompileShader(r.Handle)

	r.Success = dev.ShaderCompiled(r.Handle)
	if !r.Success {
		r.Diagnostic = truncate(dev.ShaderInfoLog(r.Handle, maxLog), maxLog)
		logger.Log(logger.Allow, "shader", r.Err())
	}

	return r
}

// CompileStages compiles the vertex and fragment stages. The status of each
// stage is checked independently and a failure in either is logged. No
// error is returned: the caller decides what to do with a failed result.
func CompileStages(dev Device, src ShaderSources, maxLog int) CompileResult {
	return CompileResult{
		Vertex:   compileStage(dev, VertexShader, src.Vertex, maxLog),
		Fragment: compileStage(dev, FragmentShader, src.Fragment, maxLog),
	}
}

// LinkProgram attaches both stages to the program and links it. A failure is
// logged along with the program's info log.
func LinkProgram(dev Device, program uint32, stages CompileResult, maxLog int) LinkResult {
	r := LinkResult{Program: program}

	dev.AttachShader(program, stages.Vertex.Handle)
	dev.AttachShader(program, stages.Fragment.Handle)
	dev.LinkProgram(program)

	r.Success = dev.ProgramLinked(program)
	if !r.Success {
		r.Diagnostic = truncate(dev.ProgramInfoLog(program, maxLog), maxLog)
		logger.Log(logger.Allow, "shader", r.Err())
	}

	return r
}

// BuildProgram creates a program, compiles both stages and links them. The
// stages are deleted once linking has been attempted, whatever the outcome.
func BuildProgram(dev Device, src ShaderSources, maxLog int) (LinkResult, CompileResult) {
	program := dev.CreateProgram()

	stages := CompileStages(dev, src, maxLog)
	link := LinkProgram(dev, program, stages, maxLog)

	// now that the program has been linked we no longer need the
	// individual stages
	dev.DeleteShader(stages.Vertex.Handle)
	dev.DeleteShader(stages.Fragment.Handle)

	if link.Success {
		logger.Logf(logger.Allow, "shader", "program %d linked", program)
	}

	return link, stages
}
