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

package hardware

import (
	"context"

	"github.com/jetsetilly/gopheradvance/hardware/dma"
	"github.com/jetsetilly/gopheradvance/hardware/interrupts"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/ppu"
	"github.com/jetsetilly/gopheradvance/hardware/preferences"
	"github.com/jetsetilly/gopheradvance/hardware/television"
	"github.com/jetsetilly/gopheradvance/prefs"
)

// Console is the main container for the emulated components.
type Console struct {
	Prefs *preferences.Preferences

	Mem        *memory.Memory
	Interrupts *interrupts.Controller
	DMA        *dma.Signals
	PPU        *ppu.PPU
	TV         *television.Television
}

// NewConsole creates a new Console and everything associated with the
// hardware.
func NewConsole(p *preferences.Preferences) (*Console, error) {
	con := &Console{Prefs: p}

	con.Mem = memory.NewMemory()
	con.Interrupts = interrupts.NewController(con.Mem)
	con.DMA = dma.NewSignals(con.Mem)
	con.PPU = ppu.NewPPU(con.Mem)
	con.TV = television.NewTelevision(con.Mem, con.PPU, con.Interrupts, con.DMA)

	con.TV.SetFPSCap(p.FPSCap.Get().(bool))
	p.FPSCap.SetHookPost(func(v prefs.Value) error {
		con.TV.SetFPSCap(v.(bool))
		return nil
	})

	return con, nil
}

// Reset the console. Memory is cleared, the affine reference points are
// reloaded and the television returns to the start of a frame.
//
// Should not be called while the television is running.
func (con *Console) Reset() {
	con.Mem.Reset()
	con.PPU.Reset()
	con.TV.Reset()
}

// Run the console until the context is cancelled.
func (con *Console) Run(ctx context.Context) error {
	return con.TV.Run(ctx)
}

// RunForFrameCount runs the console for the specified number of frames.
func (con *Console) RunForFrameCount(ctx context.Context, numFrames int) error {
	return con.TV.RunFrames(ctx, numFrames)
}
