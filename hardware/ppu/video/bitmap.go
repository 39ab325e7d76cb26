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

// bitmapDimensions returns the size in pixels of the bitmap for the mode.
func bitmapDimensions(mode int) (int, int) {
	if mode == registers.ModeBitmapHalf {
		return 160, 128
	}
	return specification.Width, specification.Height
}

// bitmaps are drawn into background 2 and are sampled through the affine
// parameters of that background in the same way as an affine map
func (r *Renderer) renderBitmap(mode int, regs *registers.Registers, ref affine.ReferencePoint) {
	if !regs.DISPCNT.LayerEnabled(registers.BG2) {
		return
	}

	width, height := bitmapDimensions(mode)

	base := addresses.VRAM
	if mode != registers.ModeBitmap && regs.DISPCNT.FrameSelect() {
		base = addresses.VRAMFrame1
	}

	cnt := regs.BGCNT[2]
	m := regs.Affine[0]
	buf := &r.BG[2]

	x, y := ref.X, ref.Y
	for col := range specification.Width {
		tx := texel(x)
		ty := texel(y)
		x += m.PA
		y += m.PC

		if tx < 0 || tx >= width || ty < 0 || ty >= height {
			continue
		}

		if cnt.Mosaic() {
			tx = mosaic(tx, regs.MOSAIC.BGH())
			ty = mosaic(ty, regs.MOSAIC.BGV())
		}

		offset := uint32(ty*width + tx)

		if mode == registers.ModeBitmapPal {
			idx := r.mem.Read8(base + offset)
			if idx != 0 {
				buf[col] = r.bgPalette(int(idx))
			}
			continue
		}

		buf[col] = r.mem.Read16(base+offset*2) &^ Transparent
	}
}
