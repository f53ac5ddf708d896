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

package test

import (
	"fmt"
	"strings"
)

// CappedWriter is an io.Writer that keeps at most a fixed number of bytes.
// Useful for capturing the echo output of a logger in a test, where an
// unbounded buffer would hide a runaway log.
type CappedWriter struct {
	sb        strings.Builder
	limit     int
	truncated bool
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type. The limit must be greater than zero.
func NewCappedWriter(limit int) (*CappedWriter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("test: capped writer limit must be positive (%d)", limit)
	}
	c := &CappedWriter{limit: limit}
	c.sb.Grow(limit)
	return c, nil
}

func (c *CappedWriter) String() string {
	return c.sb.String()
}

// Lines returns the captured output split into lines. A trailing newline
// does not produce an empty line.
func (c *CappedWriter) Lines() []string {
	s := strings.TrimSuffix(c.sb.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Truncated is true if any bytes have been dropped since the last Reset().
func (c *CappedWriter) Truncated() bool {
	return c.truncated
}

// Reset discards everything captured so far.
func (c *CappedWriter) Reset() {
	c.sb.Reset()
	c.truncated = false
}

// Write implements the io.Writer interface. Bytes beyond the limit are
// dropped and the returned count is the number of bytes kept. An error is
// never returned.
func (c *CappedWriter) Write(p []byte) (int, error) {
	n := min(len(p), c.limit-c.sb.Len())
	if n < len(p) {
		c.truncated = true
	}
	c.sb.Write(p[:n])
	return n, nil
}
