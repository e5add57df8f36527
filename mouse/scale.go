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

package mouse

import "image"

// fixed point precision of the scaling factors
const fixedShift = 16

// Scaler maps device pixels onto logical pixels using 16.16 fixed point
// factors.
type Scaler struct {
	factor  image.Point
	logical image.Point
}

// NewScaler is the preferred method of initialisation for the Scaler type. A
// device dimension of zero or less is treated as being the same as the
// logical dimension.
func NewScaler(device, logical image.Point) Scaler {
	f := func(d, l int) int {
		if d <= 0 {
			return 1 << fixedShift
		}
		return (l << fixedShift) / d
	}
	return Scaler{
		factor:  image.Pt(f(device.X, logical.X), f(device.Y, logical.Y)),
		logical: logical,
	}
}

// Factor returns the 16.16 fixed point factor for each axis.
func (s Scaler) Factor() image.Point {
	return s.factor
}

// Scale converts device coordinates to logical coordinates. The result is
// clamped to the logical screen.
func (s Scaler) Scale(x, y int) image.Point {
	return image.Pt(
		clamp((x*s.factor.X)>>fixedShift, s.logical.X-1),
		clamp((y*s.factor.Y)>>fixedShift, s.logical.Y-1),
	)
}

func clamp(v, max int) int {
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}
