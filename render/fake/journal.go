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

package fake

import (
	"fmt"
	"strings"
)

// Journal is an ordered list of calls made to fake objects.
type Journal struct {
	entries []string
}

func (j *Journal) add(format string, args ...any) {
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

// Entries returns every entry in the journal.
func (j *Journal) Entries() []string {
	return j.entries
}

// Filter returns the entries that begin with one of the prefixes, in order.
func (j *Journal) Filter(prefixes ...string) []string {
	var f []string
	for _, e := range j.entries {
		for _, p := range prefixes {
			if strings.HasPrefix(e, p) {
				f = append(f, e)
				break // for prefixes loop
			}
		}
	}
	return f
}

// Count returns the number of entries that begin with prefix.
func (j *Journal) Count(prefix string) int {
	return len(j.Filter(prefix))
}

// Index returns the position of the first entry that equals e, or -1.
func (j *Journal) Index(e string) int {
	for i := range j.entries {
		if j.entries[i] == e {
			return i
		}
	}
	return -1
}

func (j *Journal) String() string {
	return strings.Join(j.entries, "\n")
}
