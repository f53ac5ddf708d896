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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/hellosquare/hellosquare/assert"
	"github.com/hellosquare/hellosquare/logger"
	"github.com/hellosquare/hellosquare/modalflag"
	"github.com/hellosquare/hellosquare/render"
	"github.com/hellosquare/hellosquare/render/gl33"
	"github.com/hellosquare/hellosquare/statsview"
	"github.com/hellosquare/hellosquare/version"
	"github.com/hellosquare/hellosquare/window"
	"github.com/hellosquare/hellosquare/window/glfwwindow"
	"github.com/hellosquare/hellosquare/window/sdlwindow"
)

// exit values returned to the operating system
const (
	exitOK          = 0
	exitParseError  = 10
	exitSetupFailed = 20
)

func init() {
	// the window and the GL context must be used from the main thread of the
	// process. main() runs on that thread only if it is locked during init
	runtime.LockOSThread()
	assert.RecordMainThread()
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the command line and runs the selected mode. Returns the
// exit value of the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		p, err = run(md, output)
		if p == modalflag.ParseError {
			fmt.Fprintf(output, "* error: %v\n", err)
			return exitParseError
		}

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitSetupFailed
	}

	return exitOK
}

// windowing systems that can be selected with the -window flag
var providers = []string{"glfw", "sdl"}

// newProvider returns the windowing system with the given name. The name is
// not case sensitive.
func newProvider(name string) (window.Provider, error) {
	switch strings.ToLower(name) {
	case "glfw":
		return glfwwindow.NewProvider(), nil
	case "sdl":
		return sdlwindow.NewProvider(), nil
	}
	return nil, fmt.Errorf("unknown window system %q (use one of %s)", name, strings.Join(providers, ", "))
}

func run(md *modalflag.Modes, output io.Writer) (modalflag.ParseResult, error) {
	md.NewMode()

	windowSystem := md.AddString("window", providers[0], fmt.Sprintf("window system to use: %s", strings.Join(providers, ", ")))
	log := md.AddBool("log", true, "echo log to stdout")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return p, err
	}

	if len(md.RemainingArgs()) > 0 {
		return modalflag.ParseError, fmt.Errorf("too many arguments for %s mode", md)
	}

	// set log echo
	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		defer statsview.Launch(output)()
	}

	plt, err := newProvider(*windowSystem)
	if err != nil {
		return modalflag.ParseError, err
	}

	// ctrl-c closes the window in the same way as the exit key
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	rnd := render.NewRenderer(render.DefaultConfig(), newInterruptible(plt, intChan), gl33.NewDevice(), gl33.Loader{})
	return modalflag.ParseContinue, rnd.Run()
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}
