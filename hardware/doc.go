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

// Package hardware is the base package for the console emulation. It and its
// sub-packages contain everything required for a headless emulation of the
// display hardware.
//
// The Console type is the root of the emulation and contains references to
// all the sub-systems. From here the emulation can be run continuously, until
// the context is cancelled, or for a fixed number of frames. Frames are
// obtained from the television with the WaitFrame(), BorrowFrame() and
// Consume() functions.
//
// The CPU is not part of the emulation. The contents of memory are supplied by
// the caller, either directly through the Mem field or by a scene script.
package hardware
