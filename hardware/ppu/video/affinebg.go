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
	"github.com/jetsetilly/gopheradvance/hardware/ppu/affine"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/registers"
	"github.com/jetsetilly/gopheradvance/hardware/television/specification"
)

// texel converts an accumulator value to a whole texture coordinate, rounding
// to the nearest texel
func texel(v int32) int {
	return int((v + 0x80) >> 8)
}

// affine backgrounds are always square
func affineDimension(cnt registers.BGControl) int {
	return 128 << cnt.Size()
}

func (r *Renderer) renderAffine(n int, regs *registers.Registers, ref affine.ReferencePoint) {
	if !regs.DISPCNT.LayerEnabled(registers.Layer(n)) {
		return
	}

	cnt := regs.BGCNT[n]
	size := affineDimension(cnt)
	screenBase := addresses.VRAM + cnt.ScreenBase()
	charBase := addresses.VRAM + cnt.CharBase()
	m := regs.Affine[n-2]

	buf := &r.BG[n]

	x, y := ref.X, ref.Y
	for col := range specification.Width {
		tx := texel(x)
		ty := texel(y)
		x += m.PA
		y += m.PC

		if tx < 0 || tx >= size || ty < 0 || ty >= size {
			if !cnt.Wrap() {
				continue
			}
			tx &= size - 1
			ty &= size - 1
		}

		if cnt.Mosaic() {
			tx = mosaic(tx, regs.MOSAIC.BGH())
			ty = mosaic(ty, regs.MOSAIC.BGV())
		}

		// affine maps are one byte per entry with no flip or palette bits
		tile := uint32(r.mem.Read8(screenBase + uint32((ty>>3)*(size>>3)+tx>>3)))
		idx := r.mem.Read8(charBase + tile*64 + uint32((ty&7)*8+tx&7))
		if idx != 0 {
			buf[col] = r.bgPalette(int(idx))
		}
	}
}
