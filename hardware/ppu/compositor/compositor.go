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

import (
	"github.com/jetsetilly/gopheradvance/hardware/memory/addresses"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/registers"
	"github.com/jetsetilly/gopheradvance/hardware/ppu/video"
	"github.com/jetsetilly/gopheradvance/hardware/television/specification"
)

// Candidate is a visible pixel of one of the layers.
type Candidate struct {
	Layer    registers.Layer
	Colour   uint16
	Priority int
}

// NumLayers is the number of layers searched for candidates.
const NumLayers = 5

// search order. later layers win ties so objects are in front of backgrounds
// of the same priority and background 0 is in front of background 1 and so on
var searchOrder = [NumLayers]registers.Layer{
	registers.BG3, registers.BG2, registers.BG1, registers.BG0, registers.OBJ,
}

// lowest priority. the backdrop has this priority and is behind any layer of
// the same priority
const backdropPriority = 3

// SelectCandidates finds the front most and second front most candidates
// among the layers. Pixels are indexed by registers.Layer and a pixel with
// the video.Transparent bit set is not a candidate. Both candidates are the
// backdrop if no layer is visible.
func SelectCandidates(ctrl registers.WindowControl, pixels [NumLayers]Candidate, backdrop uint16) (Candidate, Candidate) {
	first := Candidate{Layer: registers.Backdrop, Colour: backdrop, Priority: backdropPriority}
	second := first

	for _, l := range searchOrder {
		if !ctrl.LayerEnabled(l) {
			continue
		}
		p := pixels[l]
		if p.Colour&video.Transparent != 0 {
			continue
		}
		p.Layer = l
		if p.Priority <= first.Priority {
			second = first
			first = p
		} else if p.Priority <= second.Priority {
			second = p
		}
	}

	return first, second
}

// Compositor produces the final colour of every pixel in a scanline.
type Compositor struct {
	mem bus.Memory
}

// NewCompositor is the preferred method of initialisation for the Compositor
// type.
func NewCompositor(mem bus.Memory) *Compositor {
	return &Compositor{mem: mem}
}

// windowControl returns the control field for the pixel. window 0 takes
// precedence over window 1 which takes precedence over the object window
func windowControl(regs *registers.Registers, in0 bool, in1 bool, x int, info uint8) registers.WindowControl {
	switch {
	case in0 && regs.Win0.ContainsColumn(x):
		return regs.Win0Control()
	case in1 && regs.Win1.ContainsColumn(x):
		return regs.Win1Control()
	case regs.DISPCNT.OBJWinEnabled() && info&video.InfoOBJWindow != 0:
		return regs.OBJWinControl()
	}
	return regs.OutsideControl()
}

// Compose writes the line into row, which should be at least
// specification.Width long.
func (c *Compositor) Compose(line int, regs *registers.Registers, buf *video.LineBuffers, row []uint16) {
	backdrop := c.mem.Read16(addresses.PaletteBG) &^ video.Transparent

	windows := regs.DISPCNT.AnyWindowEnabled()
	in0 := regs.DISPCNT.Win0Enabled() && regs.Win0.ContainsLine(line)
	in1 := regs.DISPCNT.Win1Enabled() && regs.Win1.ContainsLine(line)

	var bgPriority [registers.NumBackgrounds]int
	for n := range bgPriority {
		bgPriority[n] = regs.BGCNT[n].Priority()
	}

	var pixels [NumLayers]Candidate

	for x := range specification.Width {
		info := buf.OBJInfo[x]

		ctrl := registers.AllEnabled
		if windows {
			ctrl = windowControl(regs, in0, in1, x, info)
		}

		for n := range registers.NumBackgrounds {
			pixels[n].Colour = buf.BG[n][x]
			pixels[n].Priority = bgPriority[n]
		}
		pixels[registers.OBJ].Colour = buf.OBJColour[x]
		pixels[registers.OBJ].Priority = video.InfoPriority(info)

		first, second := SelectCandidates(ctrl, pixels, backdrop)

		if ctrl.Effects() {
			row[x] = effect(regs, first, second, video.InfoMode(info))
		} else {
			row[x] = first.Colour
		}
	}
}

// effect applies the colour special effect to the front most candidate
func effect(regs *registers.Registers, first Candidate, second Candidate, mode video.ObjectMode) uint16 {
	bld := regs.BLDCNT

	// semi-transparent and object window mode objects are alpha blended with
	// whatever is behind them regardless of the selected effect, so long as the layer behind is
	// a second target
	if first.Layer == registers.OBJ && (mode == video.ObjectSemiTransparent || mode == video.ObjectWindow) {
		if bld.SecondTarget(second.Layer) {
			return Alpha(first.Colour, second.Colour, regs.BLDALPHA.EVA(), regs.BLDALPHA.EVB())
		}
	}

	if !bld.FirstTarget(first.Layer) {
		return first.Colour
	}

	switch bld.Effect() {
	case registers.EffectAlpha:
		if bld.SecondTarget(second.Layer) {
			return Alpha(first.Colour, second.Colour, regs.BLDALPHA.EVA(), regs.BLDALPHA.EVB())
		}
	case registers.EffectBrighten:
		return Brighten(first.Colour, regs.BLDY.EVY())
	case registers.EffectDarken:
		return Darken(first.Colour, regs.BLDY.EVY())
	}

	return first.Colour
}
