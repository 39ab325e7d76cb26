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

package television

import "github.com/jetsetilly/gopheradvance/hardware/television/frame"

// LineRenderer implementations render a single scanline on request. The
// ppu.PPU type is the principal implementation.
type LineRenderer interface {
	// RenderLine is called for each of the visible scanlines. The row is
	// specification.Width pixels wide
	RenderLine(line int, row []uint16)

	// EndOfFrame is called at the start of the vertical blank
	EndOfFrame()
}

// FrameTrigger implementations listen for NewFrame events. NewFrame is called
// on the timing goroutine so implementations should return quickly.
type FrameTrigger interface {
	NewFrame(frameNum int) error
}

// Presenter implementations display, or otherwise work with, completed
// frames. For example digest.Video.
//
// Present() is called with the front buffer borrowed. The frame must not be
// referenced after Present() returns.
type Presenter interface {
	Present(f *frame.Frame) error
}

// StateReq is used to identify which television attribute is being asked
// with the GetState() function.
type StateReq int

// List of valid state requests.
const (
	ReqFrameNum StateReq = iota
	ReqScanline
)
