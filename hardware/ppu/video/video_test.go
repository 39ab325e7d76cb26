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

package video_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/affine"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/registers"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/video"
	"github.com/jetsetilly/gopheradvance/test"
)

// disable every object so that tests only see the objects they set up
func disableObjects(mem *memory.Memory) {
	for i := range video.NumObjects {
		mem.Write16(addresses.OAM+uint32(i*8), 0x0200)
	}
}

func render(mem *memory.Memory, st *affine.State, line int) (*video.Renderer, bool) {
	r := video.NewRenderer(mem)
	regs := registers.Read(mem)
	blank := r.RenderLine(line, &regs, st)
	return r, blank
}

func TestEmptyState(t *testing.T) {
	mem := memory.NewMemory()
	st := affine.NewState(mem)

	r, blank := render(mem, st, 0)
	test.ExpectEquality(t, blank, false)

	for x := range r.OBJColour {
		for n := range r.BG {
			test.DemandEquality(t, r.BG[n][x], video.Transparent, n, x)
		}
		test.DemandEquality(t, r.OBJColour[x], video.Transparent, x)
		test.DemandEquality(t, video.InfoPriority(r.OBJInfo[x]), 3, x)
	}
}

func TestBlankLines(t *testing.T) {
	mem := memory.NewMemory()
	st := affine.NewState(mem)

	mem.Write16(addresses.DISPCNT, 0x0080)
	_, blank := render(mem, st, 0)
	test.ExpectEquality(t, blank, true)

	mem.Write16(addresses.DISPCNT, 0x0006)
	_, blank = render(mem, st, 0)
	test.ExpectEquality(t, blank, true)

	mem.Write16(addresses.DISPCNT, 0x0007)
	_, blank = render(mem, st, 0)
	test.ExpectEquality(t, blank, true)

	mem.Write16(addresses.DISPCNT, 0x0005)
	_, blank = render(mem, st, 0)
	test.ExpectEquality(t, blank, false)
}

func TestAdvanceWhileDisabled(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write16(addresses.BG2PB, 0x0100)
	mem.Write16(addresses.BG2PD, 0x0200)
	mem.Write16(addresses.BG3PB, 0xff00)
	mem.Write16(addresses.BG3PD, 0x0080)
	st := affine.NewState(mem)

	// mode 0 with nothing enabled
	for line := range 3 {
		render(mem, st, line)
	}

	test.ExpectEquality(t, st.Get(0), affine.ReferencePoint{X: 0x300, Y: 0x600})
	test.ExpectEquality(t, st.Get(1), affine.ReferencePoint{X: -0x300, Y: 0x180})

	// forced blank lines also advance
	mem.Write16(addresses.DISPCNT, 0x0080)
	render(mem, st, 3)
	test.ExpectEquality(t, st.Get(0), affine.ReferencePoint{X: 0x400, Y: 0x800})
}

func TestBitmapDirect(t *testing.T) {
	mem := memory.NewMemory()
	disableObjects(mem)

	// mode 3 with background 2 enabled and an identity transform
	mem.Write16(addresses.DISPCNT, 0x0403)
	mem.Write16(addresses.BG2PA, 0x0100)
	mem.Write16(addresses.BG2PD, 0x0100)
	st := affine.NewState(mem)

	mem.Write16(addresses.VRAM+uint32(5*240+10)*2, 0x1234)
	mem.Write16(addresses.VRAM+uint32(5*240+11)*2, 0xffff)

	r := video.NewRenderer(mem)
	for line := range 6 {
		regs := registers.Read(mem)
		test.DemandEquality(t, r.RenderLine(line, &regs, st), false)
	}

	test.ExpectEquality(t, r.BG[2][10], 0x1234)
	test.ExpectEquality(t, r.BG[2][11], 0x7fff)

	// black is not transparent in a direct colour bitmap
	test.ExpectEquality(t, r.BG[2][12], 0x0000)

	// other backgrounds are unused in mode 3
	test.ExpectEquality(t, r.BG[0][10], video.Transparent)
}

func TestBitmapPaletted(t *testing.T) {
	mem := memory.NewMemory()
	disableObjects(mem)

	mem.Write16(addresses.DISPCNT, 0x0404)
	mem.Write16(addresses.BG2PA, 0x0100)
	mem.Write16(addresses.BG2PD, 0x0100)
	st := affine.NewState(mem)

	mem.Write16(addresses.PaletteBG+2*2, 0x03e0)
	mem.Write8(addresses.VRAM+1, 2)
	mem.Write8(addresses.VRAMFrame1+2, 2)

	r, _ := render(mem, st, 0)
	test.ExpectEquality(t, r.BG[2][0], video.Transparent)
	test.ExpectEquality(t, r.BG[2][1], 0x03e0)
	test.ExpectEquality(t, r.BG[2][2], video.Transparent)

	// second frame
	mem.Write16(addresses.DISPCNT, 0x0414)
	st.Reload(mem)
	r, _ = render(mem, st, 0)
	test.ExpectEquality(t, r.BG[2][1], video.Transparent)
	test.ExpectEquality(t, r.BG[2][2], 0x03e0)
}

func TestBitmapHalf(t *testing.T) {
	mem := memory.NewMemory()
	disableObjects(mem)

	mem.Write16(addresses.DISPCNT, 0x0405)
	mem.Write16(addresses.BG2PA, 0x0100)
	mem.Write16(addresses.BG2PD, 0x0100)
	st := affine.NewState(mem)

	mem.Write16(addresses.VRAM+159*2, 0x0011)

	r, _ := render(mem, st, 0)
	test.ExpectEquality(t, r.BG[2][159], 0x0011)

	// outside the 160 pixel wide bitmap
	test.ExpectEquality(t, r.BG[2][160], video.Transparent)
}

func TestTiled(t *testing.T) {
	mem := memory.NewMemory()
	disableObjects(mem)

	// mode 0, background 0 enabled. map in screen block 31, tiles at 0
	mem.Write16(addresses.DISPCNT, 0x0100)
	mem.Write16(addresses.BG0CNT, 31<<8)
	st := affine.NewState(mem)

	// first map entry uses tile 1 with palette 2. second entry is the same
	// but flipped horizontally
	mem.Write16(addresses.VRAM+0xf800, 0x2001)
	mem.Write16(addresses.VRAM+0xf802, 0x2401)

	// tile 1, row 0: pixel 0 is colour 3, all other pixels transparent
	mem.Write8(addresses.VRAM+32, 0x03)
	mem.Write16(addresses.PaletteBG+uint32(2*16+3)*2, 0x7c00)

	r, _ := render(mem, st, 0)
	test.ExpectEquality(t, r.BG[0][0], 0x7c00)
	test.ExpectEquality(t, r.BG[0][1], video.Transparent)
	test.ExpectEquality(t, r.BG[0][7], video.Transparent)
	test.ExpectEquality(t, r.BG[0][8], video.Transparent)
	test.ExpectEquality(t, r.BG[0][15], 0x7c00)

	// row 1 of the tile is empty
	r, _ = render(mem, st, 1)
	test.ExpectEquality(t, r.BG[0][0], video.Transparent)

	// horizontal scroll
	mem.Write16(addresses.BG0HOFS, 15)
	r, _ = render(mem, st, 0)
	test.ExpectEquality(t, r.BG[0][0], 0x7c00)
	test.ExpectEquality(t, r.BG[0][1], video.Transparent)

	// mosaic repeats the first pixel of each cell
	mem.Write16(addresses.BG0HOFS, 0)
	mem.Write16(addresses.BG0CNT, 31<<8|0x40)
	mem.Write16(addresses.MOSAIC, 0x0003)
	r, _ = render(mem, st, 0)
	test.ExpectEquality(t, r.BG[0][0], 0x7c00)
	test.ExpectEquality(t, r.BG[0][3], 0x7c00)
	test.ExpectEquality(t, r.BG[0][4], video.Transparent)
}

func TestAffineBackground(t *testing.T) {
	mem := memory.NewMemory()
	disableObjects(mem)

	// mode 2, background 2 enabled. 128x128 map in screen block 8
	mem.Write16(addresses.DISPCNT, 0x0402)
	mem.Write16(addresses.BG2CNT, 8<<8)
	mem.Write16(addresses.BG2PA, 0x0100)
	mem.Write16(addresses.BG2PD, 0x0100)

	// start sixteen pixels to the left of the map
	mem.Write32(addresses.BG2X, 0x0ffff000)
	st := affine.NewState(mem)

	// map entry 0 is tile 1. every pixel of tile 1 is colour 4
	mem.Write8(addresses.VRAM+0x4000, 1)
	mem.Fill16(addresses.VRAM+64, 32, 0x0404)
	mem.Write16(addresses.PaletteBG+4*2, 0x0421)

	r, _ := render(mem, st, 0)
	test.ExpectEquality(t, r.BG[2][15], video.Transparent)
	test.ExpectEquality(t, r.BG[2][16], 0x0421)
	test.ExpectEquality(t, r.BG[2][23], 0x0421)
	test.ExpectEquality(t, r.BG[2][24], video.Transparent)

	// with wrapping the left of the screen shows the right of the map. map
	// entry 15 is tile 0 which is empty
	mem.Write16(addresses.BG2CNT, 8<<8|0x2000)
	st.Reload(mem)
	r, _ = render(mem, st, 0)
	test.ExpectEquality(t, r.BG[2][0], video.Transparent)
	test.ExpectEquality(t, r.BG[2][16], 0x0421)
	test.ExpectEquality(t, r.BG[2][16+128], 0x0421)
}
