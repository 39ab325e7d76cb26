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

package memory

import (
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
)

// region is a contiguous, word addressable area of memory
type region struct {
	name   string
	origin uint32
	words  []atomic.Uint32
}

func newRegion(name string, origin uint32, size uint32) *region {
	return &region{
		name:   name,
		origin: origin,
		words:  make([]atomic.Uint32, size>>2),
	}
}

// returns the word index for the address and whether the address is inside
// the region
func (r *region) index(address uint32) (int, bool) {
	idx := int((address - r.origin) >> 2)
	return idx, idx < len(r.words)
}

type monitor struct {
	base   uint32
	length uint32
	fn     bus.Monitor
}

// Memory is the complete address space visible to the PPU. It implements the
// bus.Register interface.
type Memory struct {
	// regions indexed by the top byte of the address
	regions [16]*region

	monitorsCrit sync.RWMutex
	monitors     []monitor
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	for _, m := range memorymap.Regions {
		r := newRegion(m.Area.String(), m.Origin, m.Size)
		mem.regions[r.origin>>24] = r
	}
	return mem
}

func (mem *Memory) String() string {
	return "memory"
}

// Reset zeroes every region. Monitors are not called.
func (mem *Memory) Reset() {
	for _, r := range mem.regions {
		if r == nil {
			continue
		}
		for i := range r.words {
			r.words[i].Store(0)
		}
	}
}

// returns the word storage for the address or nil if the address is not
// backed by memory
func (mem *Memory) word(address uint32) *atomic.Uint32 {
	top := address >> 24
	if top >= uint32(len(mem.regions)) {
		return nil
	}
	r := mem.regions[top]
	if r == nil {
		return nil
	}
	idx, ok := r.index(address)
	if !ok {
		return nil
	}
	return &r.words[idx]
}

// Read8 implements the bus.Memory interface.
func (mem *Memory) Read8(address uint32) uint8 {
	w := mem.word(address)
	if w == nil {
		return 0
	}
	return uint8(w.Load() >> ((address & 3) << 3))
}

// Read16 implements the bus.Memory interface.
func (mem *Memory) Read16(address uint32) uint16 {
	w := mem.word(address)
	if w == nil {
		return 0
	}
	return uint16(w.Load() >> ((address & 2) << 3))
}

// Read32 implements the bus.Memory interface.
func (mem *Memory) Read32(address uint32) uint32 {
	w := mem.word(address)
	if w == nil {
		return 0
	}
	return w.Load()
}

// Write8 implements the bus.Memory interface.
func (mem *Memory) Write8(address uint32, data uint8) {
	mem.write(address, uint((address&3)<<3), 0xff, uint32(data), 1)
}

// Write16 implements the bus.Memory interface.
func (mem *Memory) Write16(address uint32, data uint16) {
	address &^= 1
	mem.write(address, uint((address&2)<<3), 0xffff, uint32(data), 2)
}

// Write32 implements the bus.Memory interface.
func (mem *Memory) Write32(address uint32, data uint32) {
	address &^= 3
	mem.write(address, 0, 0xffffffff, data, 4)
}

func (mem *Memory) write(address uint32, shift uint, mask uint32, data uint32, width uint32) {
	w := mem.word(address)
	if w == nil {
		return
	}

	var prev, next uint32
	for {
		prev = w.Load()
		next = (prev &^ (mask << shift)) | ((data & mask) << shift)
		if w.CompareAndSwap(prev, next) {
			break
		}
	}

	mem.notify(address, width, shift, mask, prev, next)
}

// CompareAndSet implements the bus.Atomic interface.
func (mem *Memory) CompareAndSet(address uint32, expected uint32, update uint32) bool {
	address &^= 3
	w := mem.word(address)
	if w == nil {
		return false
	}
	if !w.CompareAndSwap(expected, update) {
		return false
	}
	mem.notify(address, 4, 0, 0xffffffff, expected, update)
	return true
}

// AddMonitor implements the bus.Monitorable interface.
func (mem *Memory) AddMonitor(fn bus.Monitor, base uint32, length uint32) {
	mem.monitorsCrit.Lock()
	defer mem.monitorsCrit.Unlock()
	mem.monitors = append(mem.monitors, monitor{base: base, length: length, fn: fn})
}

// call every monitor whose range overlaps the write
func (mem *Memory) notify(address uint32, width uint32, shift uint, mask uint32, prev uint32, next uint32) {
	mem.monitorsCrit.RLock()
	defer mem.monitorsCrit.RUnlock()

	for _, m := range mem.monitors {
		if address < m.base+m.length && m.base < address+width {
			m.fn(address&^3, shift, mask, prev, next)
		}
	}
}

// Load copies data into memory starting at address. The data is written
// through the normal write path, in words where possible, so monitors will
// see the change.
func (mem *Memory) Load(address uint32, data []byte) {
	i := 0
	for ; i < len(data) && (address+uint32(i))&3 != 0; i++ {
		mem.Write8(address+uint32(i), data[i])
	}
	for ; i+4 <= len(data); i += 4 {
		v := uint32(data[i]) | uint32(data[i+1])<<8 | uint32(data[i+2])<<16 | uint32(data[i+3])<<24
		mem.Write32(address+uint32(i), v)
	}
	for ; i < len(data); i++ {
		mem.Write8(address+uint32(i), data[i])
	}
}

// Fill16 writes the value to count consecutive half words starting at address.
func (mem *Memory) Fill16(address uint32, count int, value uint16) {
	for i := range count {
		mem.Write16(address+uint32(i)*2, value)
	}
}
