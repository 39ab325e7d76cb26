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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopheradvance/hardware/television/limiter"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestWaitUntil(t *testing.T) {
	lmtr := limiter.NewLimiter()
	test.ExpectSuccess(t, lmtr.Active())

	start := time.Now()
	lmtr.WaitUntil(start.Add(5 * time.Millisecond))
	test.ExpectSuccess(t, time.Since(start) >= 5*time.Millisecond)
	test.ExpectEquality(t, lmtr.Late.Load(), 0)

	// a deadline in the past is counted as late
	lmtr.WaitUntil(start)
	test.ExpectEquality(t, lmtr.Late.Load(), 1)
}

func TestInactive(t *testing.T) {
	lmtr := limiter.NewLimiter()
	lmtr.SetActive(false)

	start := time.Now()
	lmtr.WaitUntil(start.Add(time.Second))
	test.ExpectSuccess(t, time.Since(start) < 500*time.Millisecond)

	// inactive limiters don't count late deadlines
	lmtr.WaitUntil(start.Add(-time.Second))
	test.ExpectEquality(t, lmtr.Late.Load(), 0)
}

const measurementTolerance = 0.1

func TestMeasurement(t *testing.T) {
	lmtr := limiter.NewLimiter()

	const hz = 100
	next := time.Now()
	for range hz + hz/2 {
		next = next.Add(time.Second / hz)
		lmtr.WaitUntil(next)
		lmtr.CheckFrame()
	}

	rate := lmtr.Measured.Load().(float32)
	test.ExpectSuccess(t, rate >= hz*(1.0-measurementTolerance) && rate <= hz*(1.0+measurementTolerance))
}
