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

package registers

import (
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
)

// Layer indexes the layers that take part in compositing. The values are also
// the bit positions of the layers in the window and blend control registers.
type Layer int

// List of valid Layer values.
const (
	BG0 Layer = iota
	BG1
	BG2
	BG3
	OBJ
	Backdrop
)

// NumBackgrounds is the number of background layers.
const NumBackgrounds = 4

// DisplayControl is the DISPCNT register.
type DisplayControl uint16

// Mode values of interest to the renderer.
const (
	ModeTiled      = 0
	ModeMixed      = 1
	ModeAffine     = 2
	ModeBitmap     = 3
	ModeBitmapPal  = 4
	ModeBitmapHalf = 5
	ModeBlank      = 6
)

// Mode returns the video mode in bits 0 to 2.
func (r DisplayControl) Mode() int {
	return int(r & 0x07)
}

// FrameSelect returns true if the second bitmap frame is displayed.
func (r DisplayControl) FrameSelect() bool {
	return r&0x0010 != 0
}

// OBJMapping1D returns true if object tiles are mapped one dimensionally.
func (r DisplayControl) OBJMapping1D() bool {
	return r&0x0040 != 0
}

// ForcedBlank returns true if the display is forced to white.
func (r DisplayControl) ForcedBlank() bool {
	return r&0x0080 != 0
}

// LayerEnabled returns true if the background or object layer is enabled.
func (r DisplayControl) LayerEnabled(l Layer) bool {
	if l < BG0 || l > OBJ {
		return false
	}
	return r&(0x0100<<uint(l)) != 0
}

// Win0Enabled returns true if window 0 is enabled.
func (r DisplayControl) Win0Enabled() bool {
	return r&0x2000 != 0
}

// Win1Enabled returns true if window 1 is enabled.
func (r DisplayControl) Win1Enabled() bool {
	return r&0x4000 != 0
}

// OBJWinEnabled returns true if the object window is enabled.
func (r DisplayControl) OBJWinEnabled() bool {
	return r&0x8000 != 0
}

// AnyWindowEnabled returns true if at least one of the windows is enabled.
func (r DisplayControl) AnyWindowEnabled() bool {
	return r&0xe000 != 0
}

// BGControl is one of the BGnCNT registers.
type BGControl uint16

// Priority of the background. Zero is the front most.
func (r BGControl) Priority() int {
	return int(r & 0x03)
}

// CharBase returns the VRAM offset of the tile data.
func (r BGControl) CharBase() uint32 {
	return uint32((r>>2)&0x03) * 0x4000
}

// Mosaic returns true if the mosaic effect is applied to the background.
func (r BGControl) Mosaic() bool {
	return r&0x0040 != 0
}

// Colors256 returns true if tiles are eight bits per pixel.
func (r BGControl) Colors256() bool {
	return r&0x0080 != 0
}

// ScreenBase returns the VRAM offset of the tile map.
func (r BGControl) ScreenBase() uint32 {
	return uint32((r>>8)&0x1f) * 0x800
}

// Wrap returns true if an affine background wraps at its edges.
func (r BGControl) Wrap() bool {
	return r&0x2000 != 0
}

// Size returns the screen size field.
func (r BGControl) Size() int {
	return int((r >> 14) & 0x03)
}

// Mosaic is the MOSAIC register. The sizes returned by the methods are in
// pixels, so a register field of zero is a size of one.
type Mosaic uint16

// BGH returns the horizontal cell size for backgrounds.
func (r Mosaic) BGH() int { return int(r&0x0f) + 1 }

// BGV returns the vertical cell size for backgrounds.
func (r Mosaic) BGV() int { return int((r>>4)&0x0f) + 1 }

// OBJH returns the horizontal cell size for objects.
func (r Mosaic) OBJH() int { return int((r>>8)&0x0f) + 1 }

// OBJV returns the vertical cell size for objects.
func (r Mosaic) OBJV() int { return int((r>>12)&0x0f) + 1 }

// Affine is the PA, PB, PC, PD matrix of an affine background. Values are
// signed fixed point with eight fractional bits.
type Affine struct {
	PA, PB, PC, PD int32
}

// Registers is a snapshot of the display registers.
type Registers struct {
	DISPCNT  DisplayControl
	DISPSTAT uint16
	VCOUNT   uint16

	BGCNT [NumBackgrounds]BGControl
	HOFS  [NumBackgrounds]int
	VOFS  [NumBackgrounds]int

	// affine parameters for background 2 and 3
	Affine [2]Affine

	Win0   Window
	Win1   Window
	WININ  uint16
	WINOUT uint16

	MOSAIC   Mosaic
	BLDCNT   BlendControl
	BLDALPHA BlendAlpha
	BLDY     BlendY
}

// Read a snapshot of the display registers from memory.
func Read(mem bus.Memory) Registers {
	var r Registers

	r.DISPCNT = DisplayControl(mem.Read16(addresses.DISPCNT))
	r.DISPSTAT = mem.Read16(addresses.DISPSTAT)
	r.VCOUNT = mem.Read16(addresses.VCOUNT)

	for n := range NumBackgrounds {
		r.BGCNT[n] = BGControl(mem.Read16(addresses.BGCNT(n)))
		r.HOFS[n] = int(mem.Read16(addresses.BGHOFS(n)) & 0x1ff)
		r.VOFS[n] = int(mem.Read16(addresses.BGVOFS(n)) & 0x1ff)
	}

	for slot := range r.Affine {
		base := addresses.AffineBase(slot)
		r.Affine[slot] = Affine{
			PA: int32(int16(mem.Read16(base))),
			PB: int32(int16(mem.Read16(base + 2))),
			PC: int32(int16(mem.Read16(base + 4))),
			PD: int32(int16(mem.Read16(base + 6))),
		}
	}

	r.Win0 = NewWindow(mem.Read16(addresses.WIN0H), mem.Read16(addresses.WIN0V))
	r.Win1 = NewWindow(mem.Read16(addresses.WIN1H), mem.Read16(addresses.WIN1V))
	r.WININ = mem.Read16(addresses.WININ)
	r.WINOUT = mem.Read16(addresses.WINOUT)

	r.MOSAIC = Mosaic(mem.Read16(addresses.MOSAIC))
	r.BLDCNT = BlendControl(mem.Read16(addresses.BLDCNT))
	r.BLDALPHA = BlendAlpha(mem.Read16(addresses.BLDALPHA))
	r.BLDY = BlendY(mem.Read16(addresses.BLDY))

	return r
}
