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

// Effect is the colour special effect selected in BLDCNT.
type Effect int

// List of valid Effect values.
const (
	EffectNone Effect = iota
	EffectAlpha
	EffectBrighten
	EffectDarken
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectAlpha:
		return "alpha"
	case EffectBrighten:
		return "brighten"
	case EffectDarken:
		return "darken"
	}
	return "unknown"
}

// MaxCoefficient is the largest value of a blend coefficient. Larger register
// values are treated as this value.
const MaxCoefficient = 16

// BlendControl is the BLDCNT register.
type BlendControl uint16

// FirstTarget returns true if the layer is a first target of the effect.
func (r BlendControl) FirstTarget(l Layer) bool {
	return r&(1<<uint(l)) != 0
}

// Effect returns the selected effect.
func (r BlendControl) Effect() Effect {
	return Effect((r >> 6) & 0x03)
}

// SecondTarget returns true if the layer is a second target of the effect.
func (r BlendControl) SecondTarget(l Layer) bool {
	return r&(0x100<<uint(l)) != 0
}

// BlendAlpha is the BLDALPHA register.
type BlendAlpha uint16

// EVA is the coefficient of the first target.
func (r BlendAlpha) EVA() int {
	return min(MaxCoefficient, int(r&0x1f))
}

// EVB is the coefficient of the second target.
func (r BlendAlpha) EVB() int {
	return min(MaxCoefficient, int((r>>8)&0x1f))
}

// BlendY is the BLDY register.
type BlendY uint16

// EVY is the coefficient of the brightness effects.
func (r BlendY) EVY() int {
	return min(MaxCoefficient, int(r&0x1f))
}
