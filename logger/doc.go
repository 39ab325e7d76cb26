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

// Package logger is the central log for the emulation. Entries are tagged and
// consecutive identical entries are collapsed into a single entry with a
// repeat count.
//
// Logging is subject to a Permission. The Allow value can be used when
// logging should always happen. Components that are sometimes run in a
// context where logging is undesirable (for example, the timing engine when it
// is being driven by a test harness) can supply their own implementation.
//
// The central logger has a maximum number of entries. Older entries are
// discarded as new entries are added. Entries can be echoed to an io.Writer
// as they are added with SetEcho().
package logger
