package galaxian

import "github.com/vovakirdan/shop-escalation/internal/core"

// Input is the flat intent record consumed by one Step.
type Input struct {
	Left             bool
	Right            bool
	Shoot            bool
	Start            bool
	Pause            bool
	Restart          bool
	Confirm          bool
	ActivateInfLives bool
	ActivateDoubleXP bool

	// ShopBuyIndex selects a catalog row during intermission; nil means no purchase.
	ShopBuyIndex *int
}

// BuyIndex returns a pointer suitable for Input.ShopBuyIndex.
func BuyIndex(i int) *int {
	return &i
}

// FromFrame converts a platform input frame into an Input record.
func FromFrame(f core.InputFrame) Input {
	in := Input{
		Left:             f.Has(core.ActionLeft),
		Right:            f.Has(core.ActionRight),
		Shoot:            f.Has(core.ActionShoot),
		Start:            f.Has(core.ActionStart),
		Pause:            f.Has(core.ActionPause),
		Restart:          f.Has(core.ActionRestart),
		Confirm:          f.Has(core.ActionConfirm),
		ActivateInfLives: f.Has(core.ActionInfLives),
		ActivateDoubleXP: f.Has(core.ActionDoubleXP),
	}
	if idx, ok := f.BuyIndex(); ok {
		in.ShopBuyIndex = BuyIndex(idx)
	}
	return in
}

// Step advances the simulation by dt seconds. Intents that do not apply to the
// current mode are ignored; restart is honored in every mode.
func Step(s *State, in Input, dt float64) {
	if in.Restart {
		s.restart()
		return
	}

	switch s.Mode {
	case ModeMenu:
		if in.Start {
			s.Mode = ModePlaying
		}
	case ModePaused:
		// Unpausing resumes play within the same tick.
		if in.Pause {
			s.Mode = ModePlaying
			s.stepPlaying(in, dt)
		}
	case ModeIntermission:
		s.stepIntermission(in)
	case ModePlaying:
		if in.Pause {
			s.Mode = ModePaused
			return
		}
		s.stepPlaying(in, dt)
	}
}

func (s *State) stepIntermission(in Input) {
	if in.ShopBuyIndex != nil {
		s.purchaseAt(*in.ShopBuyIndex)
	}
	s.activatePowers(in)
	if in.Confirm {
		s.leaveIntermission()
	}
}

func (s *State) activatePowers(in Input) {
	if in.ActivateInfLives {
		ActivatePower(s, PowerInfLives)
	}
	if in.ActivateDoubleXP {
		ActivatePower(s, PowerDoubleXP)
	}
}

func (s *State) stepPlaying(in Input, dt float64) {
	s.Ticks++

	p := &s.Player
	if p.Invuln > 0 {
		p.Invuln = max(0, p.Invuln-dt)
	}
	s.tickPowers(dt)
	s.activatePowers(in)

	if in.Left {
		p.X -= p.Speed * dt
	} else if in.Right {
		p.X += p.Speed * dt
	}
	s.clampPlayer()

	if p.Cooldown > 0 {
		p.Cooldown = max(0, p.Cooldown-dt)
	}
	s.firePlayer(in.Shoot)
	s.updateDrone(dt)

	s.advanceProjectiles(dt)
	if s.updateEnemies(dt) {
		s.clearWave()
		return
	}
	if s.Mode != ModePlaying {
		return
	}
	s.scheduleDives(dt)
	s.scheduleEnemyFire(dt)
	s.resolveBulletHits()
	s.resolvePlayerHits()
}
