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

package scene

import (
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	lua "github.com/yuin/gopher-lua"
)

// globals made available to every script
var globals = map[string]uint32{
	"EWRAM":       addresses.EWRAM,
	"IWRAM":       addresses.IWRAM,
	"PALETTE":     addresses.PaletteBG,
	"PALETTE_OBJ": addresses.PaletteOBJ,
	"VRAM":        addresses.VRAM,
	"VRAM_OBJ":    addresses.VRAMObjects,
	"VRAM_FRAME1": addresses.VRAMFrame1,
	"OAM":         addresses.OAM,
	"DISPCNT":     addresses.DISPCNT,
	"DISPSTAT":    addresses.DISPSTAT,
	"VCOUNT":      addresses.VCOUNT,
	"BG0CNT":      addresses.BG0CNT,
	"BG1CNT":      addresses.BG1CNT,
	"BG2CNT":      addresses.BG2CNT,
	"BG3CNT":      addresses.BG3CNT,
	"BG0HOFS":     addresses.BG0HOFS,
	"BG0VOFS":     addresses.BG0VOFS,
	"BG2PA":       addresses.BG2PA,
	"BG2PB":       addresses.BG2PB,
	"BG2PC":       addresses.BG2PC,
	"BG2PD":       addresses.BG2PD,
	"BG2X":        addresses.BG2X,
	"BG2Y":        addresses.BG2Y,
	"BG3PA":       addresses.BG3PA,
	"BG3PB":       addresses.BG3PB,
	"BG3PC":       addresses.BG3PC,
	"BG3PD":       addresses.BG3PD,
	"BG3X":        addresses.BG3X,
	"BG3Y":        addresses.BG3Y,
	"WIN0H":       addresses.WIN0H,
	"WIN1H":       addresses.WIN1H,
	"WIN0V":       addresses.WIN0V,
	"WIN1V":       addresses.WIN1V,
	"WININ":       addresses.WININ,
	"WINOUT":      addresses.WINOUT,
	"MOSAIC":      addresses.MOSAIC,
	"BLDCNT":      addresses.BLDCNT,
	"BLDALPHA":    addresses.BLDALPHA,
	"BLDY":        addresses.BLDY,
}

func (scn *Scene) register() {
	for k, v := range globals {
		scn.L.SetGlobal(k, lua.LNumber(v))
	}

	fns := map[string]lua.LGFunction{
		"poke8":  scn.poke8,
		"poke16": scn.poke16,
		"poke32": scn.poke32,
		"peek8":  scn.peek8,
		"peek16": scn.peek16,
		"peek32": scn.peek32,
		"fill16": scn.fill16,
		"rgb":    rgb,
		"log":    scn.log,
	}
	for k, fn := range fns {
		scn.L.SetGlobal(k, scn.L.NewFunction(fn))
	}
}

// addresses and values are numbers in Lua. values that don't fit in the
// width of the access are truncated
func checkUint32(L *lua.LState, n int) uint32 {
	return uint32(int64(L.CheckNumber(n)))
}

func (scn *Scene) poke8(L *lua.LState) int {
	scn.mem.Write8(checkUint32(L, 1), uint8(checkUint32(L, 2)))
	return 0
}

func (scn *Scene) poke16(L *lua.LState) int {
	scn.mem.Write16(checkUint32(L, 1), uint16(checkUint32(L, 2)))
	return 0
}

func (scn *Scene) poke32(L *lua.LState) int {
	scn.mem.Write32(checkUint32(L, 1), checkUint32(L, 2))
	return 0
}

func (scn *Scene) peek8(L *lua.LState) int {
	L.Push(lua.LNumber(scn.mem.Read8(checkUint32(L, 1))))
	return 1
}

func (scn *Scene) peek16(L *lua.LState) int {
	L.Push(lua.LNumber(scn.mem.Read16(checkUint32(L, 1))))
	return 1
}

func (scn *Scene) peek32(L *lua.LState) int {
	L.Push(lua.LNumber(scn.mem.Read32(checkUint32(L, 1))))
	return 1
}

func (scn *Scene) fill16(L *lua.LState) int {
	count := L.CheckInt(2)
	if count < 0 {
		L.ArgError(2, "count must not be negative")
	}
	scn.mem.Fill16(checkUint32(L, 1), count, uint16(checkUint32(L, 3)))
	return 0
}

func (scn *Scene) log(L *lua.LState) int {
	scn.logf("%s", L.CheckAny(1).String())
	return 0
}

// Colour creates a 15 bit colour from three 5 bit components. Components
// larger than 31 are masked.
func Colour(r, g, b int) uint16 {
	return uint16(r&0x1f) | uint16(g&0x1f)<<5 | uint16(b&0x1f)<<10
}

func rgb(L *lua.LState) int {
	L.Push(lua.LNumber(Colour(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3))))
	return 1
}
