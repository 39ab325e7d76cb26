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

// Package interrupts defines the interrupt sink that the timing engine
// raises display interrupts on, and a Controller that implements the sink by
// setting bits in the IF register.
//
// The Controller does not dispatch interrupts. That is the job of the CPU,
// which is not part of this emulation.
package interrupts

import (
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/logger"
)

// Source identifies an interrupt. The value is the bit position of the
// interrupt in the IE and IF registers.
type Source int

// List of valid Source values.
const (
	LCDVBlank Source = iota
	LCDHBlank
	LCDVCounterMatch
	numSources
)

func (src Source) String() string {
	switch src {
	case LCDVBlank:
		return "LCD VBLANK"
	case LCDHBlank:
		return "LCD HBLANK"
	case LCDVCounterMatch:
		return "LCD VCOUNTER MATCH"
	}
	return fmt.Sprintf("unknown interrupt (%d)", int(src))
}

// Sink is implemented by anything that can receive interrupt requests.
type Sink interface {
	RequestInterrupt(Source)
}

// memory required by the Controller
type memory interface {
	bus.Memory
	bus.Atomic
}

// Controller raises interrupts by setting the corresponding bit in the IF
// register. IE and IF share a word so IF is updated with a compare-and-set
// loop.
type Controller struct {
	mem    memory
	counts [numSources]atomic.Uint64

	// logging is allowed if this is true. it is false by default because
	// interrupts are very frequent
	Verbose bool
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(mem memory) *Controller {
	return &Controller{mem: mem}
}

// RequestInterrupt implements the Sink interface.
func (ctrl *Controller) RequestInterrupt(src Source) {
	if src < 0 || src >= numSources {
		return
	}

	ctrl.counts[src].Add(1)

	// IF is the upper half of the word at IE
	bit := uint32(1) << (uint32(src) + 16)
	for {
		v := ctrl.mem.Read32(addresses.IE)
		if ctrl.mem.CompareAndSet(addresses.IE, v, v|bit) {
			break
		}
	}

	logger.Log(ctrl, "interrupts", src)
}

// AllowLogging implements the logger.Permission interface.
func (ctrl *Controller) AllowLogging() bool {
	return ctrl.Verbose
}

// Count returns the number of times the interrupt has been requested.
func (ctrl *Controller) Count(src Source) uint64 {
	if src < 0 || src >= numSources {
		return 0
	}
	return ctrl.counts[src].Load()
}
