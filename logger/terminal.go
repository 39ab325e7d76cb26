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

package logger

import (
	"os"

	"golang.org/x/term"
)

// SetEchoFile echoes new log entries to the file. If the file is a terminal
// the output is colorized.
func SetEchoFile(f *os.File) {
	if term.IsTerminal(int(f.Fd())) {
		central.SetEcho(NewColorizer(f))
		return
	}
	central.SetEcho(f)
}
