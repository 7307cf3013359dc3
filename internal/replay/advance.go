package replay

import (
	"github.com/vovakirdan/shop-escalation/internal/core"
	"github.com/vovakirdan/shop-escalation/internal/games/galaxian"
)

// TickDT is the fixed step used by every replay.
const TickDT = 1.0 / 60.0

const frameMillis = 1000.0 / 60.0

// TicksFor converts wall milliseconds into whole ticks, never fewer than one.
func TicksFor(ms float64) int {
	return max(1, core.RoundPx(ms/frameMillis))
}

// AdvanceTime steps s through ms of game time. Only the first tick carries
// input; the rest run with nothing pressed. It returns the number of ticks run.
func AdvanceTime(s *galaxian.State, first galaxian.Input, ms float64) int {
	n := TicksFor(ms)
	for i := 0; i < n; i++ {
		in := galaxian.Input{}
		if i == 0 {
			in = first
		}
		galaxian.Step(s, in, TickDT)
	}
	return n
}
