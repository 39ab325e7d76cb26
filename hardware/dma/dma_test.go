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

package dma_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/dma"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestSignals(t *testing.T) {
	mem := memory.NewMemory()

	// channel 1 is an enabled HBLANK transfer, channel 2 is an enabled VBLANK
	// transfer and channel 3 is a disabled HBLANK transfer
	mem.Write16(addresses.DMA0CNTH+addresses.DMAStep*1, 0xa000)
	mem.Write16(addresses.DMA0CNTH+addresses.DMAStep*2, 0x9000)
	mem.Write16(addresses.DMA0CNTH+addresses.DMAStep*3, 0x2000)

	sig := dma.NewSignals(mem)
	sig.SignalHBlank()
	sig.SignalHBlank()
	sig.SignalVBlank()

	test.ExpectEquality(t, sig.HBlank.Load(), 2)
	test.ExpectEquality(t, sig.VBlank.Load(), 1)
	test.ExpectEquality(t, sig.Triggered(0), 0)
	test.ExpectEquality(t, sig.Triggered(1), 2)
	test.ExpectEquality(t, sig.Triggered(2), 1)
	test.ExpectEquality(t, sig.Triggered(3), 0)
	test.ExpectEquality(t, sig.Triggered(4), 0)
}
