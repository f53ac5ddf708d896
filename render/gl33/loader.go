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

package gl33

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hellosquare/hellosquare/logger"
)

// Loader implements the render.Loader interface.
type Loader struct{}

// LoadAll resolves every GL 3.3 core entry point using the procAddress
// function supplied by the windowing system. An entry point that cannot be
// resolved is an error.
func (Loader) LoadAll(procAddress func(name string) unsafe.Pointer) error {
	err := gl.InitWithProcAddrFunc(procAddress)
	if err != nil {
		return fmt.Errorf("gl33: %w", err)
	}

	// log GPU vendor information
	logger.Logf(logger.Allow, "gl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Logf(logger.Allow, "gl", "glsl: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	return nil
}
