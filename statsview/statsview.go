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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/hellosquare/hellosquare/logger"
)

// Address of the stats server
const Address = "localhost:12600"

const url = "/debug/statsview"

// only one server is ever started
var (
	crit sync.Mutex
	mgr  *statsview.ViewManager
)

// Launch the stats server in a new goroutine. The returned function stops
// the server. Calling Launch() while the server is running does nothing
// except return another stop function.
func Launch(output io.Writer) func() {
	crit.Lock()
	defer crit.Unlock()

	if mgr == nil {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr = statsview.New()
		go mgr.Start()

		logger.Logf(logger.Allow, "statsview", "started on %s", Address)
		fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
	}

	return stop
}

func stop() {
	crit.Lock()
	defer crit.Unlock()

	if mgr != nil {
		mgr.Stop()
		mgr = nil
		logger.Log(logger.Allow, "statsview", "stopped")
	}
}

// Available returns true if a stats server can be launched.
func Available() bool {
	return true
}
