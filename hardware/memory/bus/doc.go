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

// Package bus defines the memory buses that the PPU and its collaborators
// use to talk to each other.
//
// The register file is a flat, typed store. Everything the timing engine,
// renderer and compositor know about the state of the display is read from it
// on demand. The Atomic interface is used by components that modify bits that
// may also be written by an external agent (for example, the status bits in
// DISPSTAT). The Monitorable interface allows a component to be told about
// writes to a range of addresses as soon as they land.
package bus
