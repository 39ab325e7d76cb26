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

package bus

// Memory is the typed access to the register file. Half word and word
// accesses are aligned down to the access width. Reading from an address that
// is not backed by any memory returns zero and writing to one has no effect.
type Memory interface {
	Read8(address uint32) uint8
	Read16(address uint32) uint16
	Read32(address uint32) uint32
	Write8(address uint32, data uint8)
	Write16(address uint32, data uint16)
	Write32(address uint32, data uint32)
}

// Atomic is implemented by memory that supports compare-and-set at word
// granularity.
type Atomic interface {
	// CompareAndSet updates the word at address if and only if it currently
	// contains the expected value. Returns true if the update happened.
	CompareAndSet(address uint32, expected uint32, update uint32) bool
}

// Monitor is called after a write lands inside a monitored range. The address
// is the word address containing the write. The bits of the word that were
// written are mask<<shift, where mask is 0xff, 0xffff or 0xffffffff depending
// on the width of the write. The prev and next arguments are the full word
// values before and after the write.
type Monitor func(address uint32, shift uint, mask uint32, prev uint32, next uint32)

// Monitorable is implemented by memory that supports write monitors.
type Monitorable interface {
	// AddMonitor registers a Monitor for writes in the range base to
	// base+length-1. Monitors are called in the order they were added.
	AddMonitor(monitor Monitor, base uint32, length uint32)
}

// Register is the complete register file interface consumed by the PPU.
type Register interface {
	Memory
	Atomic
	Monitorable
}
