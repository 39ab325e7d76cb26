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

package addresses

// Memory regions.
const (
	EWRAM      uint32 = 0x02000000
	EWRAMSize  uint32 = 0x40000
	IWRAM      uint32 = 0x03000000
	IWRAMSize  uint32 = 0x8000
	IO         uint32 = 0x04000000
	IOSize     uint32 = 0x400
	Palette    uint32 = 0x05000000
	PaletteLen uint32 = 0x400
	VRAM       uint32 = 0x06000000
	VRAMSize   uint32 = 0x18000
	OAM        uint32 = 0x07000000
	OAMSize    uint32 = 0x400
)

// Palette RAM is divided between backgrounds and objects.
const (
	PaletteBG  = Palette
	PaletteOBJ = Palette + 0x200
)

// VRAM layout as seen by the object layer. Object tiles always live in the
// top 32k of VRAM, which is 0x14000 in the bitmap modes.
const (
	VRAMObjects       = VRAM + 0x10000
	VRAMObjectsBitmap = VRAM + 0x14000
	VRAMFrame1        = VRAM + 0xa000
)

// Display registers.
const (
	DISPCNT  = IO + 0x000
	DISPSTAT = IO + 0x004
	VCOUNT   = IO + 0x006
	BG0CNT   = IO + 0x008
	BG1CNT   = IO + 0x00a
	BG2CNT   = IO + 0x00c
	BG3CNT   = IO + 0x00e
	BG0HOFS  = IO + 0x010
	BG0VOFS  = IO + 0x012
	BG2PA    = IO + 0x020
	BG2PB    = IO + 0x022
	BG2PC    = IO + 0x024
	BG2PD    = IO + 0x026
	BG2X     = IO + 0x028
	BG2Y     = IO + 0x02c
	BG3PA    = IO + 0x030
	BG3PB    = IO + 0x032
	BG3PC    = IO + 0x034
	BG3PD    = IO + 0x036
	BG3X     = IO + 0x038
	BG3Y     = IO + 0x03c
	WIN0H    = IO + 0x040
	WIN1H    = IO + 0x042
	WIN0V    = IO + 0x044
	WIN1V    = IO + 0x046
	WININ    = IO + 0x048
	WINOUT   = IO + 0x04a
	MOSAIC   = IO + 0x04c
	BLDCNT   = IO + 0x050
	BLDALPHA = IO + 0x052
	BLDY     = IO + 0x054
)

// BGCNT returns the control register of background n.
func BGCNT(n int) uint32 {
	return BG0CNT + uint32(n)*2
}

// BGHOFS returns the horizontal offset register of background n.
func BGHOFS(n int) uint32 {
	return BG0HOFS + uint32(n)*4
}

// BGVOFS returns the vertical offset register of background n.
func BGVOFS(n int) uint32 {
	return BG0VOFS + uint32(n)*4
}

// AffineBase returns the first register (PA) of the affine register block
// for affine slot 0 (background 2) or slot 1 (background 3). The layout of
// the block is PA, PB, PC, PD, X, Y.
func AffineBase(slot int) uint32 {
	return BG2PA + uint32(slot)*0x10
}

// DMA registers. Only the control half word is of interest to the PPU.
const (
	DMA0CNTH = IO + 0x0ba
	DMAStep  = 12
)

// Interrupt registers.
const (
	IE  = IO + 0x200
	IF  = IO + 0x202
	IME = IO + 0x208
)
