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

package compositor

import "github.com/jetsetilly/gopheradvance/hardware/ppu/registers"

const channelMax = 31

func channels(c uint16) (int, int, int) {
	return int(c & 0x1f), int((c >> 5) & 0x1f), int((c >> 10) & 0x1f)
}

func colour(r int, g int, b int) uint16 {
	return uint16(r) | uint16(g)<<5 | uint16(b)<<10
}

// clamp a coefficient to the range zero to sixteen
func coefficient(k int) int {
	return max(0, min(k, registers.MaxCoefficient))
}

// weight a five bit channel by a coefficient in sixteenths. the channel is
// widened before multiplication and the result is rounded
func weight(c int, k int) int {
	return ((((c << 4) * k) >> 4) + 8) >> 4
}

// Alpha blends two colours. The top colour is weighted by eva and the bottom
// colour is weighted by evb. Each channel saturates at 31.
func Alpha(top uint16, bottom uint16, eva int, evb int) uint16 {
	eva = coefficient(eva)
	evb = coefficient(evb)

	tr, tg, tb := channels(top)
	br, bg, bb := channels(bottom)

	return colour(
		min(channelMax, weight(tr, eva)+weight(br, evb)),
		min(channelMax, weight(tg, eva)+weight(bg, evb)),
		min(channelMax, weight(tb, eva)+weight(bb, evb)),
	)
}

// Brighten moves each channel of the colour towards white by evy sixteenths.
func Brighten(c uint16, evy int) uint16 {
	evy = coefficient(evy)
	r, g, b := channels(c)
	up := func(v int) int {
		return v + ((channelMax-v)*evy+8)>>4
	}
	return colour(up(r), up(g), up(b))
}

// Darken moves each channel of the colour towards black by evy sixteenths.
func Darken(c uint16, evy int) uint16 {
	evy = coefficient(evy)
	r, g, b := channels(c)
	down := func(v int) int {
		return v - (v*evy+8)>>4
	}
	return colour(down(r), down(g), down(b))
}
