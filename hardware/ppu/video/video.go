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
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/affine"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/registers"
	"github.com/jetsetilly/gopheradvance/hardware/television/specification"
)

// Transparent is set in a layer pixel if nothing was drawn. The remaining
// bits of a pixel are a 15-bit colour.
const Transparent uint16 = 0x8000

// the priority and mode of the object pixel are packed into the info buffer
const (
	InfoPriorityMask = 0x03
	InfoModeShift    = 2
	InfoModeMask     = 0x03

	// set if any object window pixel has been drawn in the column. unlike the
	// priority and mode it is never cleared by a later object
	InfoOBJWindow = 0x10
)

// the info value at the start of each line. objects of any priority can be
// drawn over it
const infoEmpty = 3

// InfoPriority returns the priority field of an info value.
func InfoPriority(info uint8) int {
	return int(info & InfoPriorityMask)
}

// InfoMode returns the object mode field of an info value.
func InfoMode(info uint8) ObjectMode {
	return ObjectMode((info >> InfoModeShift) & InfoModeMask)
}

// LineBuffers are the output of the renderer for a single scanline.
type LineBuffers struct {
	BG        [registers.NumBackgrounds][specification.Width]uint16
	OBJColour [specification.Width]uint16
	OBJInfo   [specification.Width]uint8
}

// Renderer fills the LineBuffers.
type Renderer struct {
	mem bus.Memory
	LineBuffers
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type.
func NewRenderer(mem bus.Memory) *Renderer {
	return &Renderer{mem: mem}
}

func (r *Renderer) clearBackgrounds() {
	for n := range r.BG {
		for x := range r.BG[n] {
			r.BG[n][x] = Transparent
		}
	}
}

func (r *Renderer) clearObjects() {
	for x := range r.OBJColour {
		r.OBJColour[x] = Transparent
		r.OBJInfo[x] = infoEmpty
	}
}

// RenderLine renders the scanline into the line buffers. Returns true if the
// line should be displayed as a white line, in which case the line buffers
// should be ignored.
func (r *Renderer) RenderLine(line int, regs *registers.Registers, st *affine.State) bool {
	// reference points advance once per line whatever happens
	defer st.Advance(regs.Affine)

	r.clearBackgrounds()
	r.clearObjects()

	mode := regs.DISPCNT.Mode()
	if regs.DISPCNT.ForcedBlank() || mode >= registers.ModeBlank {
		return true
	}

	switch mode {
	case registers.ModeTiled:
		for n := range registers.NumBackgrounds {
			r.renderTiled(n, line, regs)
		}
	case registers.ModeMixed:
		r.renderTiled(0, line, regs)
		r.renderTiled(1, line, regs)
		r.renderAffine(2, regs, st.Get(0))
	case registers.ModeAffine:
		r.renderAffine(2, regs, st.Get(0))
		r.renderAffine(3, regs, st.Get(1))
	case registers.ModeBitmap, registers.ModeBitmapPal, registers.ModeBitmapHalf:
		r.renderBitmap(mode, regs, st.Get(0))
	}

	r.renderObjects(line, regs)

	return false
}

// read a background palette entry
func (r *Renderer) bgPalette(idx int) uint16 {
	return r.mem.Read16(addresses.PaletteBG+uint32(idx)*2) &^ Transparent
}

// read an object palette entry
func (r *Renderer) objPalette(idx int) uint16 {
	return r.mem.Read16(addresses.PaletteOBJ+uint32(idx)*2) &^ Transparent
}

// snap a coordinate down to a multiple of the mosaic cell size
func mosaic(v int, size int) int {
	return v - v%size
}
