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

// Package television is the timing engine of the display. It steps through
// the 228 scanlines of a frame in real-time, asking a LineRenderer to render
// each of the 160 visible scanlines, and keeps the status bits of the
// DISPSTAT and VCOUNT registers up to date.
//
// Each scanline consists of a visible phase followed by a horizontal blank
// phase. The television waits for the real-time duration of each phase using
// the limiter package. The deadline of each phase is measured from the start
// of the scanline so a slow scanline makes the television fall behind rather
// than causing it to rush to catch up.
//
// The television raises interrupts and DMA signals at the appropriate points
// of the frame:
//
//	every scanline
//		VCOUNT is updated and the V-counter match flag is evaluated
//		the DMA HBlank signal is sent at the start of the horizontal blank
//
//	visible scanlines only
//		the HBLANK interrupt is raised, if enabled in DISPSTAT
//
//	scanline 160
//		the DMA VBlank signal is sent and the VBLANK interrupt is raised, if
//		enabled in DISPSTAT
//		the completed frame is swapped with the presentation buffer
//		the LineRenderer is told that the frame has ended
//		FrameTriggers are called
//
// Completed frames are double buffered. The timing engine renders into the
// back buffer while presenters read the front buffer. Presenters must not
// keep a reference to the frame after the BorrowFrame() callback returns.
package television
