// This file is part of sdlport.
//
// sdlport is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdlport is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdlport.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs holds the preferences system. Preference values are typed
// (Bool, Int, Float, String, Duration and Generic) and are registered with a
// Disk instance under a key. The Disk saves and loads values to a file in a
// simple line based format:
//
//	input.debounce :: 300ms
//	input.touch :: true
//
// A preferences file can be shared by more than one Disk instance. Saving
// from one Disk will not clobber the values saved by another.
//
// Values can also be set from the command line. The command line stack is
// consulted by Disk.Load() and values found there take precedence over the
// values in the file.
package prefs
