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

package interrupts_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/interrupts"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestController(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write16(addresses.IE, 0x0007)

	ctrl := interrupts.NewController(mem)
	ctrl.RequestInterrupt(interrupts.LCDVBlank)
	test.ExpectEquality(t, mem.Read16(addresses.IF), 0x0001)

	ctrl.RequestInterrupt(interrupts.LCDVCounterMatch)
	ctrl.RequestInterrupt(interrupts.LCDVCounterMatch)
	test.ExpectEquality(t, mem.Read16(addresses.IF), 0x0005)

	// IE is not disturbed
	test.ExpectEquality(t, mem.Read16(addresses.IE), 0x0007)

	test.ExpectEquality(t, ctrl.Count(interrupts.LCDVBlank), 1)
	test.ExpectEquality(t, ctrl.Count(interrupts.LCDHBlank), 0)
	test.ExpectEquality(t, ctrl.Count(interrupts.LCDVCounterMatch), 2)

	// out of range sources are ignored
	ctrl.RequestInterrupt(interrupts.Source(10))
	test.ExpectEquality(t, ctrl.Count(interrupts.Source(10)), 0)
	test.ExpectEquality(t, mem.Read16(addresses.IF), 0x0005)
}

func TestSourceString(t *testing.T) {
	test.ExpectEquality(t, interrupts.LCDHBlank.String(), "LCD HBLANK")
	test.ExpectEquality(t, interrupts.Source(9).String(), "unknown interrupt (9)")
}
