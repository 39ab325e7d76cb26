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

package video

import (
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/registers"
	"github.com/jetsetilly/gopheradvance/hardware/television/specification"
)

// a screen block is a 32x32 map of tile entries. larger maps are made of two
// or four screen blocks
const (
	screenBlockSize  = 0x800
	screenBlockTiles = 32
)

// tile map entry fields
const (
	entryTile    = 0x03ff
	entryHFlip   = 0x0400
	entryVFlip   = 0x0800
	entryPalette = 12
)

// tiledDimensions returns the size of a tiled map in pixels.
func tiledDimensions(cnt registers.BGControl) (int, int) {
	switch cnt.Size() {
	case 1:
		return 512, 256
	case 2:
		return 256, 512
	case 3:
		return 512, 512
	}
	return 256, 256
}

// screenBlock returns the index of the screen block that contains the map
// pixel (sx, sy)
func screenBlock(size int, sx int, sy int) int {
	var block int
	switch size {
	case 1:
		if sx >= 256 {
			block = 1
		}
	case 2:
		if sy >= 256 {
			block = 1
		}
	case 3:
		if sx >= 256 {
			block++
		}
		if sy >= 256 {
			block += 2
		}
	}
	return block
}

func (r *Renderer) renderTiled(n int, line int, regs *registers.Registers) {
	if !regs.DISPCNT.LayerEnabled(registers.Layer(n)) {
		return
	}

	cnt := regs.BGCNT[n]
	width, height := tiledDimensions(cnt)
	screenBase := addresses.VRAM + cnt.ScreenBase()
	charBase := addresses.VRAM + cnt.CharBase()

	y := line
	if cnt.Mosaic() {
		y = mosaic(y, regs.MOSAIC.BGV())
	}
	sy := (y + regs.VOFS[n]) & (height - 1)

	buf := &r.BG[n]

	for x := range specification.Width {
		mx := x
		if cnt.Mosaic() {
			mx = mosaic(mx, regs.MOSAIC.BGH())
		}
		sx := (mx + regs.HOFS[n]) & (width - 1)

		block := screenBlock(cnt.Size(), sx, sy)
		cell := ((sy&0xff)>>3)*screenBlockTiles + (sx&0xff)>>3
		entry := r.mem.Read16(screenBase + uint32(block*screenBlockSize+cell*2))

		tile := uint32(entry & entryTile)
		px := sx & 7
		py := sy & 7
		if entry&entryHFlip != 0 {
			px = 7 - px
		}
		if entry&entryVFlip != 0 {
			py = 7 - py
		}

		if cnt.Colors256() {
			idx := r.mem.Read8(charBase + tile*64 + uint32(py*8+px))
			if idx != 0 {
				buf[x] = r.bgPalette(int(idx))
			}
			continue
		}

		b := r.mem.Read8(charBase + tile*32 + uint32(py*4+px/2))
		idx := (b >> ((px & 1) * 4)) & 0x0f
		if idx != 0 {
			pal := int(entry >> entryPalette)
			buf[x] = r.bgPalette(pal*16 + int(idx))
		}
	}
}
