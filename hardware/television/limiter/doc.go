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

// Package limiter paces the timing engine to real time. The engine calls
// WaitUntil() at the end of each timing phase with the deadline for that
// phase. The limiter blocks until the deadline has passed.
//
// If the deadline has already passed when WaitUntil() is called then the call
// returns immediately and the late count is incremented. The limiter never
// tries to catch up lost time.
//
// The limiter also measures the actual frame rate. CheckFrame() should be
// called once per frame and the measurement is updated once per second.
package limiter
