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

// Package touch implements virtual controls for touch screens. A Layout
// describes a set of on-screen buttons and an aiming stick. The Controls type
// tracks the state of those controls as touches are received.
//
// A button has two keys. The first key is used during gameplay and the
// alternate key, if set, is used in menus. This allows the fire button to
// select menu items and the two small buttons beside the aim stick to move
// the menu selection.
//
// Touch coordinates are in the coordinate space of the layout's surface. The
// aim stick maps touches onto the game's display.
package touch
