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

package specification_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopheradvance/hardware/television/specification"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestDurations(t *testing.T) {
	test.ExpectEquality(t, specification.CyclesFrame, 280896)

	// a frame is a little under 16.75ms
	test.ExpectSuccess(t, specification.Frame > 16700*time.Microsecond)
	test.ExpectSuccess(t, specification.Frame < 16750*time.Microsecond)

	// phases add up to a scanline, allowing for rounding
	d := specification.Scanline - specification.VisiblePhase - specification.BlankPhase
	test.ExpectSuccess(t, d >= 0 && d <= time.Nanosecond)

	test.ExpectSuccess(t, specification.RefreshRate > 59.7 && specification.RefreshRate < 59.8)
}
