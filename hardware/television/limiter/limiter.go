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

package limiter

import (
	"runtime"
	"sync/atomic"
	"time"
)

// sleeping is not accurate enough for the short phases of a scanline. the
// final part of every wait is spent yielding the processor instead
const spinThreshold = 200 * time.Microsecond

// how often to update the Measured value
const measurementPeriod = time.Second

// Limiter waits for deadlines and measures the frame rate.
type Limiter struct {
	// whether to wait for deadlines
	active atomic.Bool

	// number of deadlines that had already passed when WaitUntil() was called
	Late atomic.Uint64

	// the measured number of frames per second
	Measured atomic.Value // float32

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The limiter is active by default.
func NewLimiter() *Limiter {
	lmtr := &Limiter{}
	lmtr.active.Store(true)
	lmtr.Measured.Store(float32(0.0))
	lmtr.measureTime = time.Now()
	return lmtr
}

// SetActive turns the limiter on or off. A limiter that is not active never
// waits.
func (lmtr *Limiter) SetActive(active bool) {
	lmtr.active.Store(active)
}

// Active returns true if the limiter is waiting for deadlines.
func (lmtr *Limiter) Active() bool {
	return lmtr.active.Load()
}

// WaitUntil blocks until the deadline has passed. The deadline should be
// derived from a time.Time that carries a monotonic clock reading.
func (lmtr *Limiter) WaitUntil(deadline time.Time) {
	if !lmtr.active.Load() {
		return
	}

	rem := time.Until(deadline)
	if rem <= 0 {
		lmtr.Late.Add(1)
		return
	}

	if rem > spinThreshold {
		time.Sleep(rem - spinThreshold)
	}

	for time.Now().Before(deadline) {
		runtime.Gosched()
	}
}

// CheckFrame should be called once per frame. The Measured field is updated
// once per second.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	t := time.Now()
	d := t.Sub(lmtr.measureTime)
	if d < measurementPeriod {
		return
	}

	lmtr.Measured.Store(float32(lmtr.measureCt) / float32(d.Seconds()))

	// reset time and count ready for next measurement
	lmtr.measureTime = t
	lmtr.measureCt = 0
}
