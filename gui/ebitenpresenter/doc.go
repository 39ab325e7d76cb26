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

// Package ebitenpresenter displays television frames using the Ebitengine
// game library.
//
// The Run() function blocks and must be called from the main thread. Frames
// are passed to the presenter by the Present() function, which can be called
// from any goroutine.
//
// Pressing F12 copies a PNG image of the most recent frame to the system
// clipboard.
package ebitenpresenter
