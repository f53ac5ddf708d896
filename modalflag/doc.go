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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes (and sub-modes), each of which can have its
// own set of flags.
//
// Arguments are given to NewArgs() and then consumed by one or more calls to
// Parse(). For example, the hellosquare command line is a mode selection
// followed by the flags for that mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("RUN", "VERSION")
//
//	p, err := md.Parse()
//	...
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		backend := md.AddString("window", "glfw", "window provider: glfw, sdl")
//		p, err := md.Parse()
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default and is selected if
// the next argument is not one of the listed sub-modes. Sub-mode comparisons
// are case insensitive.
//
// Help is printed automatically to the Output writer when the -help flag is
// found. Parse() returns ParseHelp in that case and the program should stop
// without printing anything further.
package modalflag
