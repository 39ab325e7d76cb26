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

// Package scene populates the display registers, palette, VRAM and OAM from a
// Lua script. It stands in for a program running on a CPU.
//
// The following functions are available to the script:
//
//	poke8(addr, v)          poke16(addr, v)          poke32(addr, v)
//	peek8(addr)             peek16(addr)             peek32(addr)
//	fill16(addr, count, v)  rgb(r, g, b)             log(msg)
//
// The rgb() function returns a 15 bit colour from three 5 bit components.
//
// If the script defines a global function called setup() it is called once by
// the Setup() function. If it defines a global function called frame() it is
// called with the frame number at the start of every vertical blank.
//
// The names of the display registers and memory regions are available as
// global variables. For example:
//
//	poke16(DISPCNT, 0x0403)
//	poke16(VRAM + (10 + 20*240)*2, rgb(31, 0, 0))
//
// Only the base, table, string and math libraries are opened. Scripts cannot
// access the file system.
package scene
