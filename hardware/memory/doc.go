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

// Package memory implements the register file and video memories of the
// console as a flat, little-endian store.
//
// Storage is word granular. Every access, including byte and half word writes,
// is an atomic operation on the containing word. This means that the timing
// engine can safely update status bits with CompareAndSet() while another
// goroutine writes to the same register, without the need for a lock.
//
// Write monitors are kept in an ordered list and are called on the goroutine
// that performed the write, after the write has landed.
package memory
