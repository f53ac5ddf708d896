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

// Patterns for curated errors created by the package. Use curated.Is() or
// curated.Has() to test for them.
const (
	ProviderFailure       = "render: window provider: %v"
	WindowCreationFailure = "render: window creation: %v"
	ContextFailure        = "render: context: %v"
	LoaderFailure         = "render: function loader: %v"

	// never returned from Run(). used to format log entries
	ShaderCompileFailure = "render: %v shader compilation: %s"
	ProgramLinkFailure   = "render: program link: %s"
)
