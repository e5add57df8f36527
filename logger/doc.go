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

// Package logger is the central log for the application. Entries are made
// up of a tag and a detail string. The tag should be short and identify the
// part of the program making the entry:
//
//	logger.Log(logger.Allow, "input", "touch controls enabled")
//
// Repeated entries are collapsed into a single entry with a repeat count.
//
// Every logging request requires a Permission. The Allow value will always
// permit the entry to be made. Other implementations can be used to suppress
// logging in some situations, for example when a debounce window is active.
package logger
