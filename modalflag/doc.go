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

// Package modalflag wraps the flag package of the standard library with
// support for program modes. Each mode can have its own set of flags.
//
// A mode is selected by the first non-flag argument. If the argument does not
// match one of the modes added with AddModes() then the first mode in the list
// is the default and the argument is left for the mode to handle. For
// example, with the modes RUN, HEADLESS and SHOT:
//
//	gopheradvance -fpscap=false scene.lua           (RUN mode)
//	gopheradvance headless -frames 60 scene.lua
//	gopheradvance shot -scale 2 scene.lua
//
// Typical use:
//
//	md := modalflag.NewModes(os.Stdout, os.Args[1:])
//	md.AddModes("RUN", "HEADLESS")
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	md.NewMode()
//	switch md.Mode() {
//	case "HEADLESS":
//		frames := md.AddInt("frames", 60, "number of frames")
//		...
//	}
//
// Mode names are case insensitive and reported in upper case.
package modalflag
