package replay

import (
	"math"

	"github.com/vovakirdan/shop-escalation/internal/games/galaxian"
)

// Pilot chooses the next input from the public snapshot only.
type Pilot func(snap galaxian.Snapshot) galaxian.Input

// Idle presses nothing.
func Idle(galaxian.Snapshot) galaxian.Input {
	return galaxian.Input{}
}

// aimTolerance is how far off the target column the pilot keeps firing without
// steering.
const aimTolerance = 8

// AutoPilot plays a full run: it steers under the lowest enemy and keeps firing,
// fires both powers whenever it can, and in intermission buys the first
// affordable row until nothing is affordable before confirming.
func AutoPilot(snap galaxian.Snapshot) galaxian.Input {
	switch snap.Mode {
	case galaxian.ModeMenu:
		return galaxian.Input{Start: true}
	case galaxian.ModePaused:
		return galaxian.Input{Pause: true}
	case galaxian.ModeIntermission:
		for i, item := range snap.Shop.Items {
			if item.Affordable {
				return galaxian.Input{ShopBuyIndex: galaxian.BuyIndex(i)}
			}
		}
		return galaxian.Input{Confirm: true, ActivateInfLives: true, ActivateDoubleXP: true}
	case galaxian.ModePlaying:
		in := galaxian.Input{
			Shoot:            true,
			ActivateInfLives: snap.Inventory.InfLivesCharges > 0 && snap.Timers.InfLives == 0,
			ActivateDoubleXP: snap.Inventory.DoubleXPCharges > 0 && snap.Timers.DoubleXP == 0,
		}
		if target, ok := lowestEnemy(snap); ok {
			dx := target.X - snap.Player.X
			in.Left = dx < -aimTolerance
			in.Right = dx > aimTolerance
		}
		return in
	default:
		return galaxian.Input{}
	}
}

// lowestEnemy picks the living enemy closest to the player's row, breaking ties
// by horizontal distance.
func lowestEnemy(snap galaxian.Snapshot) (galaxian.EnemyView, bool) {
	var best galaxian.EnemyView
	found := false
	for _, e := range snap.Enemies {
		if !e.Alive {
			continue
		}
		if !found || e.Y > best.Y ||
			(e.Y == best.Y && math.Abs(float64(e.X-snap.Player.X)) < math.Abs(float64(best.X-snap.Player.X))) {
			best = e
			found = true
		}
	}
	return best, found
}
