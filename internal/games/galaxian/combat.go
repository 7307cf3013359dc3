package galaxian

import (
	"math"

	"github.com/vovakirdan/shop-escalation/internal/core"
)

// fireCooldown is the player's delay between shots at the current rapid fire level.
func (s *State) fireCooldown() float64 {
	w := s.cfg.Weapons
	return math.Max(w.MinFireCooldown, w.FireCooldown-w.RapidFireStep*float64(s.Upgrades.RapidFire))
}

// invulnWindow is the grace period after losing a life.
func (s *State) invulnWindow() float64 {
	return 1.2 + 0.2*float64(s.Upgrades.HullPlating)
}

// firePlayer spawns one volley: a center shot plus a symmetric pair per spread level.
func (s *State) firePlayer(shoot bool) {
	p := &s.Player
	if !shoot || p.Cooldown > 0 {
		return
	}

	w := s.cfg.Weapons
	spread := s.Upgrades.SpreadShot
	for i := -spread; i <= spread; i++ {
		s.Bullets = append(s.Bullets, Bullet{
			X:      p.X + float64(i)*w.SpreadOffset,
			Y:      p.Y - 16,
			VX:     float64(i) * w.SpreadDrift,
			VY:     -w.BulletSpeed,
			Pierce: s.Upgrades.Pierce,
			Source: SourcePlayer,
		})
	}
	p.Cooldown = s.fireCooldown()
}

// updateDrone eases the drone toward its escort position and fires on cooldown.
// The follow factor is applied per tick, not per second.
func (s *State) updateDrone(dt float64) {
	d := &s.Drone
	if !d.Active {
		return
	}

	d.X = core.Lerp(d.X, s.Player.X+droneOffsetX, droneFollow)
	d.Y = core.Lerp(d.Y, s.Player.Y+droneOffsetY, droneFollow)

	d.Cooldown -= dt
	if d.Cooldown > 0 {
		return
	}
	d.Cooldown = s.cfg.Weapons.DroneCooldown

	target := s.pickAliveEnemy()
	if target == nil {
		return
	}
	s.Bullets = append(s.Bullets, Bullet{
		X:      d.X + (target.X-d.X)*droneBias,
		Y:      d.Y - 10,
		VY:     -s.cfg.Weapons.BulletSpeed,
		Source: SourceDrone,
	})
}

// pickAliveEnemy draws one living enemy uniformly, diving or not.
func (s *State) pickAliveEnemy() *Enemy {
	alive := make([]int, 0, len(s.Enemies))
	for i := range s.Enemies {
		if s.Enemies[i].Alive {
			alive = append(alive, i)
		}
	}
	if len(alive) == 0 {
		return nil
	}
	return &s.Enemies[alive[s.pickIndex(len(alive))]]
}

// advanceProjectiles integrates every projectile and drops those off the canvas.
func (s *State) advanceProjectiles(dt float64) {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.X += b.VX * dt
		b.Y += b.VY * dt
		if b.Y > -20 && b.X > -20 && b.X < s.Width+20 {
			kept = append(kept, b)
		}
	}
	s.Bullets = kept

	keptEnemy := s.EnemyBullets[:0]
	for _, b := range s.EnemyBullets {
		b.Y += b.VY * dt
		if b.Y < s.Height+20 {
			keptEnemy = append(keptEnemy, b)
		}
	}
	s.EnemyBullets = keptEnemy
}

// scheduleEnemyFire lets one random enemy shoot when the shared timer expires.
func (s *State) scheduleEnemyFire(dt float64) {
	s.EnemyFireTimer -= dt
	if s.EnemyFireTimer > 0 {
		return
	}
	s.EnemyFireTimer = s.Profile.EnemyFireInterval

	shooter := s.pickAliveEnemy()
	if shooter == nil {
		return
	}
	s.EnemyBullets = append(s.EnemyBullets, EnemyBullet{
		X:  shooter.X,
		Y:  shooter.Y + 12,
		VY: s.Profile.EnemyBulletSpeed,
	})
}

// killValue is the score an enemy is worth right now.
func (s *State) killValue(e *Enemy) int {
	if e.Diving {
		return e.DiveScore
	}
	return 100 + 10*s.WaveBlock
}

// resolveBulletHits tests every bullet against enemies in slice order. A bullet
// keeps travelling while it has pierce left and may kill several enemies per tick.
func (s *State) resolveBulletHits() {
	for bi := range s.Bullets {
		b := &s.Bullets[bi]
		for ei := range s.Enemies {
			if b.Pierce < 0 {
				break
			}
			e := &s.Enemies[ei]
			if !e.Alive || !core.Near(b.X, b.Y, e.X, e.Y, bulletHitW, bulletHitH) {
				continue
			}

			value := s.killValue(e)
			e.Alive = false
			s.Score += value
			s.Credits += value / 10
			s.awardXP(value / 20)
			b.Pierce--
		}
	}

	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.Pierce >= 0 {
			kept = append(kept, b)
		}
	}
	s.Bullets = kept
}

// resolvePlayerHits applies at most one life loss per tick. Enemy bodies are
// checked before enemy bullets.
func (s *State) resolvePlayerHits() {
	p := &s.Player
	if p.Invuln > 0 || s.Timers.InfLives > 0 {
		return
	}

	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Alive || !core.Near(e.X, e.Y, p.X, p.Y, playerHitW, playerHitH) {
			continue
		}
		s.loseLife()
		e.resetHome()
		return
	}

	for i := range s.EnemyBullets {
		b := &s.EnemyBullets[i]
		if !core.Near(b.X, b.Y, p.X, p.Y, enemyShotHitW, enemyShotHitH) {
			continue
		}
		s.loseLife()
		b.Y = s.Height + 100 // culled on the next advance
		return
	}
}

func (s *State) loseLife() {
	s.Lives--
	s.HitsTaken++
	s.Player.Invuln = s.invulnWindow()
	if s.Lives <= 0 {
		s.Lives = 0
		s.Mode = ModeGameOver
	}
}
