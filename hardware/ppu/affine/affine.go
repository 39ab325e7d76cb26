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

// Package affine holds the reference point accumulators of the two affine
// capable background slots. Slot 0 belongs to background 2 and slot 1 to
// background 3. The bitmap modes use slot 0.
//
// An accumulator is a signed 28-bit fixed point value with eight fractional
// bits. It is reloaded from the BGnX and BGnY registers at the start of the
// vertical blank and whenever one of those registers is written. It advances
// by PB (for X) and PD (for Y) once for every rendered scanline, whether or
// not the background is enabled.
package affine

import (
	"sync"

	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/registers"
)

// NumSlots is the number of affine slots.
const NumSlots = 2

// the width of an accumulator in bits
const accumulatorBits = 28

// SignExtend28 truncates the value to 28 bits and sign extends the result.
func SignExtend28(v uint32) int32 {
	return int32(v<<(32-accumulatorBits)) >> (32 - accumulatorBits)
}

// wrap an accumulator after arithmetic
func wrap(v int32) int32 {
	return SignExtend28(uint32(v))
}

// ReferencePoint is the current position of an affine slot.
type ReferencePoint struct {
	X int32
	Y int32
}

// State is the pair of reference points. It is owned by the PPU and passed to
// the renderer by reference.
//
// Monitors run on the goroutine of the writer so access to the reference
// points is guarded.
type State struct {
	crit sync.Mutex
	ref  [NumSlots]ReferencePoint
}

// NewState creates a State seeded from the current register values.
func NewState(mem bus.Memory) *State {
	st := &State{}
	st.Reload(mem)
	return st
}

// the addresses of the X and Y reference registers for the slot
func xRegister(slot int) uint32 {
	return addresses.BG2X + uint32(slot)*0x10
}

func yRegister(slot int) uint32 {
	return addresses.BG2Y + uint32(slot)*0x10
}

// Get returns the current reference point of the slot.
func (st *State) Get(slot int) ReferencePoint {
	st.crit.Lock()
	defer st.crit.Unlock()
	return st.ref[slot]
}

// Reload both reference points from the registers.
func (st *State) Reload(mem bus.Memory) {
	st.crit.Lock()
	defer st.crit.Unlock()
	for slot := range st.ref {
		st.ref[slot].X = SignExtend28(mem.Read32(xRegister(slot)))
		st.ref[slot].Y = SignExtend28(mem.Read32(yRegister(slot)))
	}
}

// Advance both reference points by one scanline.
func (st *State) Advance(affine [NumSlots]registers.Affine) {
	st.crit.Lock()
	defer st.crit.Unlock()
	for slot := range st.ref {
		st.ref[slot].X = wrap(st.ref[slot].X + affine[slot].PB)
		st.ref[slot].Y = wrap(st.ref[slot].Y + affine[slot].PD)
	}
}

// Monitor returns a bus.Monitor that refreshes the slot's reference point
// when its registers are written.
func (st *State) Monitor(slot int) bus.Monitor {
	x := xRegister(slot)
	y := yRegister(slot)
	return func(address uint32, _ uint, _ uint32, _ uint32, next uint32) {
		st.crit.Lock()
		defer st.crit.Unlock()
		switch address {
		case x:
			st.ref[slot].X = SignExtend28(next)
		case y:
			st.ref[slot].Y = SignExtend28(next)
		}
	}
}

// Attach registers monitors for both slots. Each monitor covers the eight
// bytes of the X and Y registers of the slot.
func (st *State) Attach(mem bus.Monitorable) {
	for slot := range NumSlots {
		mem.AddMonitor(st.Monitor(slot), xRegister(slot), 8)
	}
}
