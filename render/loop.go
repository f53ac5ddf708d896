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
	"github.com/hellosquare/hellosquare/logger"
	"github.com/hellosquare/hellosquare/window"
)

// LoopState is the state of the FrameLoop.
type LoopState int

// List of valid LoopState values.
const (
	Running LoopState = iota
	Closing
)

func (s LoopState) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	}
	return "unknown"
}

// FrameLoop draws the program and vertex state once per frame until the
// window is asked to close.
type FrameLoop struct {
	dev Device
	plt window.Provider
	win window.Window

	program LinkResult
	vs      VertexState

	clearColor Color
	exitKey    window.Key

	state  LoopState
	frames int
}

// NewFrameLoop is the preferred method of initialisation for the FrameLoop
// type. The loop starts in the Running state.
func NewFrameLoop(dev Device, plt window.Provider, win window.Window, program LinkResult, vs VertexState, cfg Config) *FrameLoop {
	return &FrameLoop{
		dev:        dev,
		plt:        plt,
		win:        win,
		program:    program,
		vs:         vs,
		clearColor: cfg.ClearColor,
		exitKey:    cfg.ExitKey,
		state:      Running,
	}
}

// AllowLogging implements the logger.Permission interface. Per-frame log
// entries are only made for the first frame.
func (l *FrameLoop) AllowLogging() bool {
	return l.frames == 0
}

// State returns the current state of the loop.
func (l *FrameLoop) State() LoopState {
	return l.state
}

// Frames returns the number of frames completed.
func (l *FrameLoop) Frames() int {
	return l.frames
}

// Run calls Frame() until the window's close flag is set. A close flag set
// by the windowing system during PollEvents() is seen at the top of the next
// iteration.
func (l *FrameLoop) Run() {
	for {
		if l.win.ShouldClose() {
			l.state = Closing
		}
		if l.state == Closing {
			break // for loop
		}
		l.Frame()
	}
	logger.Logf(logger.Allow, "render", "frame loop ended after %d frames", l.frames)
}

// Frame performs one iteration of the loop: input, clear, draw, present.
func (l *FrameLoop) Frame() {
	assert.MainThread()

	l.processInput()
	l.render()

	l.win.SwapBuffers()
	l.plt.PollEvents()

	l.frames++
}

// processInput requests that the window closes if the exit key is pressed.
// No other key has any effect.
func (l *FrameLoop) processInput() {
	if l.win.KeyState(l.exitKey) == window.Pressed {
		l.win.SetShouldClose(true)
		logger.Logf(logger.Allow, "render", "%s pressed", l.exitKey)
	}
	if l.win.ShouldClose() {
		l.state = Closing
	}
}

func (l *FrameLoop) render() {
	l.dev.ClearColor(l.clearColor)
	l.dev.Clear()

	// nothing may be drawn with a program that failed to compile or link
	if !l.program.Success {
		logger.Log(l, "render", "no usable program. draw skipped")
		return
	}

	l.dev.UseProgram(l.program.Program)
	l.dev.BindVertexArray(l.vs.VAO)
	l.dev.DrawElements(l.vs.Count)

	logger.Logf(l, "render", "first frame: program %d, vertex array %d, %d indices", l.program.Program, l.vs.VAO, l.vs.Count)
}
