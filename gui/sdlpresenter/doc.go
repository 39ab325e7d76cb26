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

// Package sdlpresenter displays television frames in an SDL window.
//
// SDL must be serviced on the main thread. The Present() function can be
// called from any goroutine and copies the frame into a staging buffer. The
// Service() function must be called repeatedly from the main thread. It polls
// the SDL event queue and uploads the staging buffer to a texture whenever it
// has changed.
//
// Pressing F12 saves a screenshot to the shots resource directory. Closing
// the window or pressing escape calls the cancel function given to Service().
package sdlpresenter
