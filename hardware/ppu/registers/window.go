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

package registers

// Window is the rectangle of window 0 or window 1. The right and bottom edges
// are exclusive. If the left edge is greater than the right edge the window
// wraps around the horizontal edges of the screen. The same applies
// vertically.
type Window struct {
	X1, X2 int
	Y1, Y2 int
}

// NewWindow decodes the WINnH and WINnV registers.
func NewWindow(h uint16, v uint16) Window {
	return Window{
		X1: int(h >> 8),
		X2: int(h & 0xff),
		Y1: int(v >> 8),
		Y2: int(v & 0xff),
	}
}

func inRange(v int, a int, b int) bool {
	if a <= b {
		return v >= a && v < b
	}
	return v >= a || v < b
}

// ContainsLine returns true if the scanline is inside the window.
func (w Window) ContainsLine(y int) bool {
	return inRange(y, w.Y1, w.Y2)
}

// ContainsColumn returns true if the column is inside the window.
func (w Window) ContainsColumn(x int) bool {
	return inRange(x, w.X1, w.X2)
}

// WindowControl is the six bit control field of a window. The first five
// bits enable the layers inside the window and the sixth enables colour
// special effects.
type WindowControl uint8

// AllEnabled is the control value used when no windows are enabled.
const AllEnabled WindowControl = 0x3f

// LayerEnabled returns true if the layer is visible inside the window.
func (c WindowControl) LayerEnabled(l Layer) bool {
	if l < BG0 || l > OBJ {
		return false
	}
	return c&(1<<uint(l)) != 0
}

// Effects returns true if colour special effects are applied inside the
// window.
func (c WindowControl) Effects() bool {
	return c&0x20 != 0
}

// Win0Control returns the control field for the inside of window 0.
func (r Registers) Win0Control() WindowControl {
	return WindowControl(r.WININ & 0x3f)
}

// Win1Control returns the control field for the inside of window 1.
func (r Registers) Win1Control() WindowControl {
	return WindowControl((r.WININ >> 8) & 0x3f)
}

// OutsideControl returns the control field for pixels outside of every
// window.
func (r Registers) OutsideControl() WindowControl {
	return WindowControl(r.WINOUT & 0x3f)
}

// OBJWinControl returns the control field for the inside of the object
// window.
func (r Registers) OBJWinControl() WindowControl {
	return WindowControl((r.WINOUT >> 8) & 0x3f)
}
