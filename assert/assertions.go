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

//go:build assertions

package assert

import (
	"fmt"
	"sync/atomic"
)

var mainThread atomic.Uint64

// RecordMainThread notes the calling goroutine as the owner of the window
// and GL context.
func RecordMainThread() {
	mainThread.Store(GoRoutineID())
}

// MainThread panics if it is not called from the goroutine noted by
// RecordMainThread(). Does nothing if RecordMainThread() has never been
// called.
func MainThread() {
	id := mainThread.Load()
	if id == 0 {
		return
	}
	if g := GoRoutineID(); g != id {
		panic(fmt.Sprintf("assert: GL call from goroutine %d (main is %d)", g, id))
	}
}
