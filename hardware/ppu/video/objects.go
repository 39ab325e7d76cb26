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

package video

import (
	"fmt"

	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
)

// NumObjects is the number of object records in OAM.
const NumObjects = 128

// each object record is four half-words. the fourth half-word is not part of
// the object but is one of the sixteen parameters of an affine group
const objectRecordSize = 8

// ObjectMode is the rendering mode of an object.
type ObjectMode int

// List of valid ObjectMode values.
const (
	ObjectNormal ObjectMode = iota
	ObjectSemiTransparent
	ObjectWindow
	ObjectProhibited
)

func (m ObjectMode) String() string {
	switch m {
	case ObjectNormal:
		return "normal"
	case ObjectSemiTransparent:
		return "semi-transparent"
	case ObjectWindow:
		return "window"
	}
	return "prohibited"
}

// ShapeProhibited is the shape value that does not describe a valid object.
const ShapeProhibited = 3

// object dimensions in pixels indexed by shape and size
var objectDimensions = [3][4][2]int{
	{{8, 8}, {16, 16}, {32, 32}, {64, 64}},
	{{16, 8}, {32, 8}, {32, 16}, {64, 32}},
	{{8, 16}, {8, 32}, {16, 32}, {32, 64}},
}

// ObjectDimensions returns the width and height of an object with the shape
// and size. The prohibited shape returns zero.
func ObjectDimensions(shape int, size int) (int, int) {
	if shape < 0 || shape >= len(objectDimensions) || size < 0 || size > 3 {
		return 0, 0
	}
	d := objectDimensions[shape][size]
	return d[0], d[1]
}

// Attributes is the decoded form of an object record.
type Attributes struct {
	Index int

	X int
	Y int

	Affine bool

	// DoubleSize is only meaningful for affine objects. Disabled is only
	// meaningful for regular objects. The bit is shared
	DoubleSize bool
	Disabled   bool

	Mode      ObjectMode
	Mosaic    bool
	Colors256 bool
	Shape     int
	Size      int

	// AffineGroup is only meaningful for affine objects. HFlip and VFlip are
	// only meaningful for regular objects. The bits are shared
	AffineGroup int
	HFlip       bool
	VFlip       bool

	Tile     int
	Priority int
	Palette  int
}

// DecodeAttributes decodes the three attribute half-words of an object.
func DecodeAttributes(index int, attr0 uint16, attr1 uint16, attr2 uint16) Attributes {
	a := Attributes{
		Index:     index,
		Y:         int(attr0 & 0xff),
		Affine:    attr0&0x0100 != 0,
		Mode:      ObjectMode((attr0 >> 10) & 0x03),
		Mosaic:    attr0&0x1000 != 0,
		Colors256: attr0&0x2000 != 0,
		Shape:     int(attr0 >> 14),
		Size:      int(attr1 >> 14),
		Tile:      int(attr2 & 0x03ff),
		Priority:  int((attr2 >> 10) & 0x03),
		Palette:   int(attr2 >> 12),
	}

	// X is a 9-bit signed value
	a.X = int(attr1 & 0x1ff)
	if a.X >= 0x100 {
		a.X -= 0x200
	}

	if a.Affine {
		a.DoubleSize = attr0&0x0200 != 0
		a.AffineGroup = int((attr1 >> 9) & 0x1f)
	} else {
		a.Disabled = attr0&0x0200 != 0
		a.HFlip = attr1&0x1000 != 0
		a.VFlip = attr1&0x2000 != 0
	}

	return a
}

// ReadAttributes reads and decodes the object record at index.
func ReadAttributes(mem bus.Memory, index int) Attributes {
	base := addresses.OAM + uint32(index*objectRecordSize)
	return DecodeAttributes(index, mem.Read16(base), mem.Read16(base+2), mem.Read16(base+4))
}

func (a Attributes) String() string {
	w, h := a.Dimensions()
	return fmt.Sprintf("#%03d (%d,%d) %dx%d tile=%d prio=%d %s", a.Index, a.X, a.Y, w, h, a.Tile, a.Priority, a.Mode)
}

// Dimensions returns the width and height of the object graphic.
func (a Attributes) Dimensions() (int, int) {
	return ObjectDimensions(a.Shape, a.Size)
}

// Bounds returns the width and height of the area covered by the object on
// the screen. This is twice the dimensions of an affine object with the
// double size bit set.
func (a Attributes) Bounds() (int, int) {
	w, h := a.Dimensions()
	if a.Affine && a.DoubleSize {
		return w * 2, h * 2
	}
	return w, h
}

// Visible returns false if the object is never drawn.
func (a Attributes) Visible() bool {
	if a.Shape == ShapeProhibited || a.Mode == ObjectProhibited {
		return false
	}
	return a.Affine || !a.Disabled
}

// ReadAffineGroup returns the PA, PB, PC, PD parameters of the affine group.
// The parameters are stored in the fourth half-word of four consecutive
// object records.
func ReadAffineGroup(mem bus.Memory, group int) (int32, int32, int32, int32) {
	base := addresses.OAM + uint32(group*4*objectRecordSize) + 6
	var p [4]int32
	for i := range p {
		p[i] = int32(int16(mem.Read16(base + uint32(i*objectRecordSize))))
	}
	return p[0], p[1], p[2], p[3]
}

// the number of tiles in a row of the two dimensional tile sheet
const sheetWidth = 32

// the object tile number wraps at this value
const objectTiles = 1024

// TileAddress returns the offset from the start of object VRAM of the 8x8 tile
// containing the pixel (tx, ty) of the object graphic.
//
// With one dimensional mapping the tiles of an object are consecutive. With
// two dimensional mapping object VRAM is treated as a sheet of 32 tiles per
// row.
func TileAddress(a Attributes, tx int, ty int, mapping1D bool) uint32 {
	w, _ := a.Dimensions()

	col := tx >> 3
	row := ty >> 3

	// 256 colour tiles are twice the size of 16 colour tiles and occupy
	// two tile numbers
	var tile int
	switch {
	case mapping1D && a.Colors256:
		tile = a.Tile + (row*(w>>3)+col)*2
	case mapping1D:
		tile = a.Tile + row*(w>>3) + col
	case a.Colors256:
		tile = (a.Tile &^ 1) + row*sheetWidth + col*2
	default:
		tile = a.Tile + row*sheetWidth + col
	}

	return uint32(tile%objectTiles) * 32
}
