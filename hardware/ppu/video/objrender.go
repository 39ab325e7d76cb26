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

// in the bitmap modes the lower half of object VRAM is used by the bitmap
const bitmapFirstObjectTile = 512

// renderObjects draws every object that intersects the line. objects are
// visited from the last record to the first so that, for equal priority, the
// lower numbered object is drawn over the higher numbered object
func (r *Renderer) renderObjects(line int, regs *registers.Registers) {
	if !regs.DISPCNT.LayerEnabled(registers.OBJ) {
		return
	}

	bitmap := regs.DISPCNT.Mode() >= registers.ModeBitmap
	mapping1D := regs.DISPCNT.OBJMapping1D()

	for i := NumObjects - 1; i >= 0; i-- {
		a := ReadAttributes(r.mem, i)
		if !a.Visible() {
			continue
		}
		if bitmap && a.Tile < bitmapFirstObjectTile {
			continue
		}

		_, boxH := a.Bounds()

		// Y is eight bits and objects wrap from the bottom of the screen to
		// the top
		dy := (line - a.Y) & 0xff
		if dy >= boxH {
			continue
		}

		if a.Mosaic {
			my := (mosaic(line, regs.MOSAIC.OBJV()) - a.Y) & 0xff
			if my < boxH {
				dy = my
			}
		}

		r.renderObject(a, dy, regs, mapping1D)
	}
}

func (r *Renderer) renderObject(a Attributes, dy int, regs *registers.Registers, mapping1D bool) {
	w, h := a.Dimensions()
	boxW, boxH := a.Bounds()

	var pa, pb, pc, pd int32
	if a.Affine {
		pa, pb, pc, pd = ReadAffineGroup(r.mem, a.AffineGroup)
	}

	for bx := range boxW {
		sx := a.X + bx
		if sx < 0 {
			continue
		}
		if sx >= specification.Width {
			break
		}

		ox := bx
		if a.Mosaic {
			ox = max(0, bx-sx%regs.MOSAIC.OBJH())
		}

		var tx, ty int
		if a.Affine {
			ddx := int32(ox - boxW/2)
			ddy := int32(dy - boxH/2)
			tx = int((pa*ddx+pb*ddy)>>8) + w/2
			ty = int((pc*ddx+pd*ddy)>>8) + h/2
			if tx < 0 || tx >= w || ty < 0 || ty >= h {
				continue
			}
		} else {
			tx, ty = ox, dy
			if a.HFlip {
				tx = w - 1 - tx
			}
			if a.VFlip {
				ty = h - 1 - ty
			}
		}

		idx := r.objectTexel(a, tx, ty, mapping1D)
		if idx == 0 {
			continue
		}

		// an object only draws over a pixel of the same or lower priority. a
		// higher numbered object has already been drawn so a lower numbered
		// object wins ties
		info := r.OBJInfo[sx]
		if a.Priority > InfoPriority(info) {
			continue
		}

		info = (info & InfoOBJWindow) | uint8(a.Priority) | uint8(a.Mode)<<InfoModeShift
		if a.Mode == ObjectWindow {
			r.OBJInfo[sx] = info | InfoOBJWindow
			continue
		}
		r.OBJInfo[sx] = info

		if a.Colors256 {
			r.OBJColour[sx] = r.objPalette(idx)
		} else {
			r.OBJColour[sx] = r.objPalette(a.Palette*16 + idx)
		}
	}
}

// objectTexel returns the palette index of the object pixel. zero is
// transparent
func (r *Renderer) objectTexel(a Attributes, tx int, ty int, mapping1D bool) int {
	offset := TileAddress(a, tx, ty, mapping1D)
	px := tx & 7
	py := ty & 7

	if a.Colors256 {
		offset += uint32(py*8 + px)
		return int(r.mem.Read8(addresses.VRAMObjects + offset&0x7fff))
	}

	offset += uint32(py*4 + px/2)
	b := r.mem.Read8(addresses.VRAMObjects + offset&0x7fff)
	return int((b >> ((px & 1) * 4)) & 0x0f)
}
