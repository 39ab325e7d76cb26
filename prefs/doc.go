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

// Package prefs facilitates the storage of preferential values. Preference
// values are typed (Bool, Int, Float and String) and can be collected into a
// Disk instance, which can load and save the values to a file.
//
// Each value can have hooks that are called before and after the value
// changes. A hook that returns an error from before the change prevents the
// change from happening.
//
// Values can also be specified on the command line using a string of the
// form:
//
//	key::value; key::value
//
// The string is added to a stack with PushCommandLineStack(). When a value is
// added to a Disk instance any matching value in the top group of the stack
// is applied and removed from the group.
package prefs
