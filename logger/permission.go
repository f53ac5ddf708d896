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

package logger

// Permission implementations decide whether a log request made in the
// current state of the program should create a new entry.
//
// The FrameLoop in the render package implements this interface so that
// entries made every frame are only logged for the first frame.
type Permission interface {
	AllowLogging() bool
}

// PermissionFunc adapts an ordinary function to the Permission interface.
type PermissionFunc func() bool

// AllowLogging implements the Permission interface.
func (f PermissionFunc) AllowLogging() bool {
	return f()
}

// Allow is the Permission to use when an entry should always be made.
var Allow Permission = PermissionFunc(func() bool { return true })

// Deny is the Permission to use when an entry should never be made.
var Deny Permission = PermissionFunc(func() bool { return false })
