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

package memorymap

import "github.com/jetsetilly/gopheradvance/hardware/memory/addresses"

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case EWRAM:
		return "EWRAM"
	case IWRAM:
		return "IWRAM"
	case IO:
		return "IO"
	case Palette:
		return "Palette"
	case VRAM:
		return "VRAM"
	case OAM:
		return "OAM"
	}

	return "undefined"
}

// The different memory areas.
const (
	Undefined Area = iota
	EWRAM
	IWRAM
	IO
	Palette
	VRAM
	OAM
)

// Region is the extent of an Area.
type Region struct {
	Area   Area
	Origin uint32
	Size   uint32
}

// Memtop returns the highest address in the region.
func (r Region) Memtop() uint32 {
	return r.Origin + r.Size - 1
}

// Regions lists every area of memory in address order.
var Regions = []Region{
	{Area: EWRAM, Origin: addresses.EWRAM, Size: addresses.EWRAMSize},
	{Area: IWRAM, Origin: addresses.IWRAM, Size: addresses.IWRAMSize},
	{Area: IO, Origin: addresses.IO, Size: addresses.IOSize},
	{Area: Palette, Origin: addresses.Palette, Size: addresses.PaletteLen},
	{Area: VRAM, Origin: addresses.VRAM, Size: addresses.VRAMSize},
	{Area: OAM, Origin: addresses.OAM, Size: addresses.OAMSize},
}

// MapAddress returns the area the address falls within and the offset of the
// address from the origin of the area.
func MapAddress(address uint32) (uint32, Area) {
	for _, r := range Regions {
		if address >= r.Origin && address <= r.Memtop() {
			return address - r.Origin, r.Area
		}
	}
	return address, Undefined
}
