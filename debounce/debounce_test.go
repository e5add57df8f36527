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

package debounce_test

import (
	"testing"
	"time"

	"github.com/abuse-go/sdlport/debounce"
	"github.com/abuse-go/sdlport/test"
)

const ms = time.Millisecond

func TestTransition(t *testing.T) {
	tr := debounce.NewTracker(debounce.DefaultDuration)
	test.ExpectEquality(t, tr.State(), debounce.Idle)

	// staying in the menu does nothing
	test.ExpectFailure(t, tr.Observe(false, 0))
	test.ExpectFailure(t, tr.Active(0))

	// change to gameplay starts the window
	test.ExpectSuccess(t, tr.Observe(true, 1000*ms))
	test.ExpectEquality(t, tr.State(), debounce.Debouncing)

	// the transition is only reported once
	test.ExpectFailure(t, tr.Observe(true, 1001*ms))

	test.ExpectSuccess(t, tr.Active(1000*ms))
	test.ExpectSuccess(t, tr.Active(1299*ms))
	test.ExpectEquality(t, tr.State(), debounce.Debouncing)

	// the first sample at the threshold is processed normally
	test.ExpectFailure(t, tr.Active(1300*ms))
	test.ExpectEquality(t, tr.State(), debounce.Idle)
	test.ExpectFailure(t, tr.Active(1301*ms))
}

func TestReturnToMenu(t *testing.T) {
	tr := debounce.NewTracker(debounce.DefaultDuration)

	test.ExpectSuccess(t, tr.Observe(true, 0))
	test.ExpectSuccess(t, tr.Active(100*ms))

	// returning to the menu ends the window
	test.ExpectFailure(t, tr.Observe(false, 150*ms))
	test.ExpectFailure(t, tr.Active(160*ms))

	// and going back to gameplay starts a new one
	test.ExpectSuccess(t, tr.Observe(true, 200*ms))
	test.ExpectSuccess(t, tr.Active(499*ms))
	test.ExpectFailure(t, tr.Active(500*ms))
}

func TestStartInGameplay(t *testing.T) {
	// the first observation counts as a transition if the game starts in
	// gameplay mode
	tr := debounce.NewTracker(debounce.DefaultDuration)
	test.ExpectSuccess(t, tr.Observe(true, 0))
}

func TestDisabled(t *testing.T) {
	tr := debounce.NewTracker(0)
	test.ExpectSuccess(t, tr.Observe(true, 0))
	test.ExpectFailure(t, tr.Active(0))
	test.ExpectEquality(t, tr.State(), debounce.Idle)
}
