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

// Package video is the scanline renderer. For every visible scanline it fills
// six line buffers: one for each of the four backgrounds, one for the colour
// of the object layer and one for per-pixel object information.
//
// The backgrounds that are rendered and the way they are rendered depend on
// the video mode:
//
//	mode 0    four tiled backgrounds
//	mode 1    backgrounds 0 and 1 tiled, background 2 affine
//	mode 2    backgrounds 2 and 3 affine
//	mode 3    240x160 direct colour bitmap in background 2
//	mode 4    240x160 paletted bitmap in background 2, two frames
//	mode 5    160x128 direct colour bitmap in background 2, two frames
//
// Backgrounds that are not used by a mode, or that are not enabled, are
// transparent for the entire line. Objects are rendered in every mode.
//
// Mode 6, mode 7 and the forced blank bit result in a white line. The
// renderer reports this to the caller rather than filling the buffers.
//
// The affine reference points are advanced at the end of every line, for every
// mode, regardless of which backgrounds are enabled.
package video
