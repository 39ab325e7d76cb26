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

// Package digest contains an implementation of the television.Presenter
// interface that produces a cryptographic hash of every frame presented to it.
// The hash can be used to compare output from subsequent executions. If a new
// hash differs from a previously recorded value then something has changed.
// This is the basis of the HEADLESS mode and of the regression tests.
//
// The hash of each frame is chained to the hash of the previous frame so the
// final hash is a fingerprint of every presented frame in order.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash is achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
