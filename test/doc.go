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

// Package test contains helper functions for writing tests. The Expect*()
// functions report a failure and allow the test to continue. The Demand*()
// functions stop the test immediately.
//
// Optional tags can be supplied to the Demand*() functions. They are prefixed
// to the failure message and are useful for identifying the iteration of a
// table driven test.
package test
