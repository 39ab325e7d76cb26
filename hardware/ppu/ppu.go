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

package ppu

import (
	"sync"

	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/affine"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/compositor"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/registers"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/video"
	"github.com/jetsetilly/gopheradvance/hardware/television/frame"
)

// Memory is the view of memory required by the PPU.
type Memory interface {
	bus.Memory
	bus.Monitorable
}

// PPU renders scanlines. It satisfies the television.LineRenderer interface.
type PPU struct {
	mem Memory

	Affine     *affine.State
	Video      *video.Renderer
	Compositor *compositor.Compositor

	// the register snapshot of the most recently rendered line
	crit sync.Mutex
	regs registers.Registers
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(mem Memory) *PPU {
	ppu := &PPU{
		mem:        mem,
		Affine:     affine.NewState(mem),
		Video:      video.NewRenderer(mem),
		Compositor: compositor.NewCompositor(mem),
	}
	ppu.Affine.Attach(mem)
	return ppu
}

// Reset reloads the affine reference points from memory.
func (ppu *PPU) Reset() {
	ppu.Affine.Reload(ppu.mem)
}

// RenderLine renders the scanline into row. Row should be at least
// specification.Width long.
func (ppu *PPU) RenderLine(line int, row []uint16) {
	regs := registers.Read(ppu.mem)

	ppu.crit.Lock()
	ppu.regs = regs
	ppu.crit.Unlock()

	if ppu.Video.RenderLine(line, &regs, ppu.Affine) {
		for x := range row {
			row[x] = frame.White
		}
		return
	}

	ppu.Compositor.Compose(line, &regs, &ppu.Video.LineBuffers, row)
}

// EndOfFrame is called by the television at the start of the vertical blank.
func (ppu *PPU) EndOfFrame() {
	ppu.Affine.Reload(ppu.mem)
}

// Snapshot returns the register values used to render the most recent line.
func (ppu *PPU) Snapshot() registers.Registers {
	ppu.crit.Lock()
	defer ppu.crit.Unlock()
	return ppu.regs
}

// Objects returns the decoded attributes of every object.
func (ppu *PPU) Objects() []video.Attributes {
	objs := make([]video.Attributes, video.NumObjects)
	for i := range objs {
		objs[i] = video.ReadAttributes(ppu.mem, i)
	}
	return objs
}
