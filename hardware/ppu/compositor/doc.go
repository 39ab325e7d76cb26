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

// Package compositor combines the line buffers produced by the video package
// into the final colour of each pixel in a scanline.
//
// For each pixel the compositor decides which window the pixel is in, finds
// the front most and second front most visible layers and then applies the
// colour special effect selected by the BLDCNT register. The backdrop colour,
// entry zero of the background palette, is behind every layer.
package compositor
