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

// Package paths contains functions to prepare paths to gopheradvance
// resources, such as the preferences file and screenshots.
//
// If a directory named ".gopheradvance" is present in the current directory
// then it is used as the base of every resource path. Otherwise the
// "gopheradvance" directory in the user's config directory is used, as
// returned by os.UserConfigDir(). For example, on a modern Linux system:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// will return
//
//	/home/user/.config/gopheradvance/preferences
package paths
