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

package television

import (
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/hardware/television/specification"
)

// DISPSTAT bits
const (
	statusVBlank      = 0x0001
	statusHBlank      = 0x0002
	statusVCounter    = 0x0004
	statusVBlankIRQ   = 0x0008
	statusHBlankIRQ   = 0x0010
	statusVCounterIRQ = 0x0020
)

// updateStatus writes the scanline to VCOUNT and sets the VBLANK and V-counter
// flags of DISPSTAT accordingly. the two registers share a word and the
// program may be writing to the upper bits of DISPSTAT at the same time so
// the word is updated with a compare-and-set loop.
//
// returns the new value of DISPSTAT.
func (tv *Television) updateStatus(line int) uint16 {
	for {
		v := tv.mem.Read32(addresses.DISPSTAT)
		stat := uint16(v)

		stat &^= statusVBlank | statusVCounter
		if line >= specification.ScanlineVBlank {
			stat |= statusVBlank
		}
		if int(stat>>8) == line {
			stat |= statusVCounter
		}

		n := uint32(stat) | uint32(line)<<16
		if tv.mem.CompareAndSet(addresses.DISPSTAT, v, n) {
			return stat
		}
	}
}

// setHBlank sets or clears the HBLANK flag. returns the new value of DISPSTAT
func (tv *Television) setHBlank(on bool) uint16 {
	for {
		v := tv.mem.Read32(addresses.DISPSTAT)
		n := v &^ statusHBlank
		if on {
			n |= statusHBlank
		}
		if tv.mem.CompareAndSet(addresses.DISPSTAT, v, n) {
			return uint16(n)
		}
	}
}
