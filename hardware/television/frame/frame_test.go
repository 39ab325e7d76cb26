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

package frame_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/television/frame"
	"github.com/jetsetilly/gopheradvance/hardware/television/specification"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestRGBA(t *testing.T) {
	test.ExpectEquality(t, frame.RGBA(0), color.RGBA{A: 255})
	test.ExpectEquality(t, frame.RGBA(frame.White), color.RGBA{R: 255, G: 255, B: 255, A: 255})
	test.ExpectEquality(t, frame.RGBA(0x001f), color.RGBA{R: 255, A: 255})
	test.ExpectEquality(t, frame.RGBA(0x03e0), color.RGBA{G: 255, A: 255})
	test.ExpectEquality(t, frame.RGBA(0x7c00), color.RGBA{B: 255, A: 255})
}

func TestRows(t *testing.T) {
	var f frame.Frame
	f.Clear(0x1234)
	test.ExpectEquality(t, f.Pixel(0, 0), 0x1234)

	f.Row(10)[20] = 0x001f
	test.ExpectEquality(t, f.Pixel(20, 10), 0x001f)
	test.ExpectEquality(t, f.At(20, 10), color.Color(color.RGBA{R: 255, A: 255}))

	// outside of the frame
	test.ExpectEquality(t, f.At(specification.Width, 0), color.Color(color.RGBA{}))
}

func TestCopyRGBA(t *testing.T) {
	var f frame.Frame
	f.Row(0)[1] = 0x7c00

	b := make([]byte, specification.Width*specification.Height*frame.PixelDepth)
	f.CopyRGBA(b)
	test.ExpectEquality(t, b[4], 0)
	test.ExpectEquality(t, b[6], 255)
	test.ExpectEquality(t, b[7], 255)
}
