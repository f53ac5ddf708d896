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

package assert_test

import (
	"testing"

	"github.com/hellosquare/hellosquare/assert"
	"github.com/hellosquare/hellosquare/test"
)

func TestGoRoutineID(t *testing.T) {
	id := assert.GoRoutineID()
	test.ExpectInequality(t, id, uint64(0))
	test.ExpectEquality(t, assert.GoRoutineID(), id)

	done := make(chan uint64)
	go func() {
		done <- assert.GoRoutineID()
	}()
	test.ExpectInequality(t, <-done, id)
}
