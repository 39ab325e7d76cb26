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

// Package frame defines the completed image produced by the PPU. A Frame is
// a row-major array of 15-bit colours. Red is in the low five bits, then
// green, then blue. Bit 15 is never set in a completed frame.
//
// Frame implements the image.Image interface so that it can be used directly
// with the image packages of the standard library and golang.org/x/image.
package frame

import (
	"image"
	"image/color"

	"github.com/jetsetilly/gopheradvance/hardware/television/specification"
)

// ColourMask is the mask of the significant bits of a colour value.
const ColourMask = 0x7fff

// White is the colour of a forced blank line.
const White = ColourMask

// Frame is a complete display image.
type Frame struct {
	Pixels [specification.Width * specification.Height]uint16
}

// Row returns the pixels of scanline y. The returned slice aliases the frame.
func (f *Frame) Row(y int) []uint16 {
	return f.Pixels[y*specification.Width : (y+1)*specification.Width]
}

// Pixel returns the colour at x, y.
func (f *Frame) Pixel(x, y int) uint16 {
	return f.Pixels[y*specification.Width+x]
}

// Clear sets every pixel to the colour.
func (f *Frame) Clear(colour uint16) {
	for i := range f.Pixels {
		f.Pixels[i] = colour
	}
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, specification.Width, specification.Height)
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(f.Bounds())) {
		return color.RGBA{}
	}
	return RGBA(f.Pixel(x, y))
}

// RGBA converts a 15-bit colour to 8 bits per channel. The top bits of each
// channel are repeated in the low bits so that full intensity maps to 255.
func RGBA(colour uint16) color.RGBA {
	r := uint8(colour & 0x1f)
	g := uint8((colour >> 5) & 0x1f)
	b := uint8((colour >> 10) & 0x1f)
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<3 | g>>2,
		B: b<<3 | b>>2,
		A: 255,
	}
}

// PixelDepth is the number of bytes per pixel written by CopyRGBA().
const PixelDepth = 4

// CopyRGBA writes the frame to dst as consecutive R, G, B, A bytes. The dst
// slice must be at least Width*Height*PixelDepth bytes long.
func (f *Frame) CopyRGBA(dst []byte) {
	for i, c := range f.Pixels {
		col := RGBA(c)
		j := i * PixelDepth
		dst[j] = col.R
		dst[j+1] = col.G
		dst[j+2] = col.B
		dst[j+3] = col.A
	}
}
