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

// Package specification contains the fixed geometry and timing of the
// console's display. None of these values are configurable.
package specification

import "time"

// Geometry of the visible display.
const (
	Width  = 240
	Height = 160
)

// ScanlinesTotal is the number of scanlines in a frame. Scanlines from
// Height (160) to ScanlinesTotal-1 (227) are in the vertical blank.
const ScanlinesTotal = 228

// ScanlineVBlank is the first scanline of the vertical blank.
const ScanlineVBlank = Height

// ClockHz is the frequency of the master clock.
const ClockHz = 16 * 1024 * 1024

// the number of master clock cycles in each part of a scanline
const (
	CyclesVisible  = 960
	CyclesHBlank   = 272
	CyclesScanline = CyclesVisible + CyclesHBlank
	CyclesFrame    = CyclesScanline * ScanlinesTotal
)

// cycles converts a number of clock cycles into a real-time duration
func cycles(n int) time.Duration {
	return time.Duration(int64(n) * int64(time.Second) / ClockHz)
}

// Real-time durations of each timing phase.
var (
	VisiblePhase = cycles(CyclesVisible)
	BlankPhase   = cycles(CyclesHBlank)
	Scanline     = cycles(CyclesScanline)
	Frame        = cycles(CyclesFrame)
)

// RefreshRate is the number of frames per second.
const RefreshRate = float32(ClockHz) / float32(CyclesFrame)
