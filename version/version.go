// This file is part of Gopheradvance.
//
// Gopheradvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopheradvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopheradvance.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the application. The version number
// is set at link time. For example:
//
//	go build -ldflags "-X github.com/jetsetilly/gopheradvance/version.number=v0.1.0"
//
// Otherwise the version is taken from the build information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopheradvance"

// set with the -X linker flag
var number string

// Version returns the version string and the vcs revision. The version string
// is "unreleased" if there is no version number but there is vcs information
// and "local" if there is neither. A revision with uncommitted changes is
// suffixed with "+dirty".
func Version() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionString(number, false), ""
	}

	var vcs bool
	var revision string
	var modified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	return versionString(number, vcs), revision
}

func versionString(number string, vcs bool) string {
	if number != "" {
		return number
	}
	if vcs {
		return "unreleased"
	}
	return "local"
}

// Title returns the application name and version, suitable for a window
// title.
func Title() string {
	v, _ := Version()
	return fmt.Sprintf("%s (%s)", ApplicationName, v)
}
