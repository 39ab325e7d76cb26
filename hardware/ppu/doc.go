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

// Package ppu is the picture processing unit. It renders a single scanline at
// a time on request of the television, reading the display registers, VRAM,
// the palette and OAM from memory.
//
// The PPU owns the affine reference points of backgrounds 2 and 3. These are
// reloaded at the end of every frame and whenever the program writes to the
// BG2X, BG2Y, BG3X or BG3Y registers. The reload on write is implemented by
// attaching monitors to the memory.
package ppu
