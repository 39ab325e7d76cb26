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

// Package dma defines the trigger signals that the timing engine sends to the
// DMA controller. Transfers themselves are not emulated. The Signals type
// records which channels would have started a transfer.
package dma

import (
	"sync/atomic"

	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/logger"
)

// Trigger is implemented by anything that receives the blanking signals.
type Trigger interface {
	SignalHBlank()
	SignalVBlank()
}

// NumChannels is the number of DMA channels.
const NumChannels = 4

// start timing values in bits 12 and 13 of the DMA control register
const (
	timingImmediate = iota
	timingVBlank
	timingHBlank
	timingSpecial
)

const (
	controlEnable = 0x8000
	timingShift   = 12
	timingMask    = 0x03
)

// Signals implements the Trigger interface. It counts the signals and the
// number of times each channel was triggered.
type Signals struct {
	mem bus.Memory

	HBlank atomic.Uint64
	VBlank atomic.Uint64

	channels [NumChannels]atomic.Uint64

	// log triggered channels
	Verbose bool
}

// NewSignals is the preferred method of initialisation for the Signals type.
func NewSignals(mem bus.Memory) *Signals {
	return &Signals{mem: mem}
}

// SignalHBlank implements the Trigger interface.
func (sig *Signals) SignalHBlank() {
	sig.HBlank.Add(1)
	sig.trigger(timingHBlank)
}

// SignalVBlank implements the Trigger interface.
func (sig *Signals) SignalVBlank() {
	sig.VBlank.Add(1)
	sig.trigger(timingVBlank)
}

func (sig *Signals) trigger(timing uint16) {
	for ch := range NumChannels {
		ctrl := sig.mem.Read16(addresses.DMA0CNTH + uint32(ch)*addresses.DMAStep)
		if ctrl&controlEnable == 0 {
			continue
		}
		if (ctrl>>timingShift)&timingMask != timing {
			continue
		}
		sig.channels[ch].Add(1)
		logger.Logf(sig, "dma", "channel %d triggered", ch)
	}
}

// Triggered returns the number of times a channel has been triggered by a
// blanking signal.
func (sig *Signals) Triggered(channel int) uint64 {
	if channel < 0 || channel >= NumChannels {
		return 0
	}
	return sig.channels[channel].Load()
}

// AllowLogging implements the logger.Permission interface.
func (sig *Signals) AllowLogging() bool {
	return sig.Verbose
}
