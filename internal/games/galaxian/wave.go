package galaxian

import (
	"fmt"
	"math"
)

// spawnWave lays out a fresh grid for the active profile, reusing the enemy slice.
func (s *State) spawnWave() {
	p := s.Profile
	layout := s.cfg.Layout

	startX := layout.MarginX
	spacingX := 0.0
	if p.Cols > 1 {
		spacingX = (s.Width - 2*layout.MarginX) / float64(p.Cols-1)
	} else {
		startX = s.Width / 2
	}

	diveScore := 150 + 15*s.WaveBlock

	s.Enemies = s.Enemies[:0]
	id := 0
	for row := 0; row < p.Rows; row++ {
		for col := 0; col < p.Cols; col++ {
			x := startX + float64(col)*spacingX
			y := layout.OffsetY + float64(row)*layout.SpacingY
			s.Enemies = append(s.Enemies, Enemy{
				ID:        id,
				X:         x,
				Y:         y,
				HomeX:     x,
				HomeY:     y,
				Row:       row,
				Col:       col,
				Alive:     true,
				DiveScore: diveScore,
			})
			id++
		}
	}

	s.Formation = Formation{
		Dir:      1,
		Speed:    p.FormationSpeed,
		StepDown: p.StepDown,
	}
	s.DiveCooldown = p.DiveBaseCooldown
	s.DiveTimer = p.DiveBaseCooldown
	s.EnemyFireTimer = p.EnemyFireInterval
}

// beginWave prepares the current wave number for play.
func (s *State) beginWave() {
	block := BlockForWave(s.Wave, s.WavesPerBlock)
	if block != s.WaveBlock || s.Profile.BlockIndex != block {
		s.applyProfile(block)
	}
	s.clearProjectiles()
	s.spawnWave()
}

func (s *State) clearProjectiles() {
	s.Bullets = s.Bullets[:0]
	s.EnemyBullets = s.EnemyBullets[:0]
}

// updateEnemies moves the formation and divers. It returns true when no enemy is
// left alive, in which case nothing else was changed.
func (s *State) updateEnemies(dt float64) bool {
	dx := s.Formation.Dir * s.Formation.Speed * dt

	minX := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	alive := 0
	inFormation := 0

	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Alive {
			continue
		}
		alive++
		e.HomeX += dx

		if e.Diving {
			e.X += e.VX * dt
			e.Y += e.VY * dt
			if e.Y > s.Height+diveExitMargin || e.X < -diveExitMargin || e.X > s.Width+diveExitMargin {
				e.resetHome()
			}
			continue
		}

		e.X += dx
		inFormation++
		minX = math.Min(minX, e.X)
		maxX = math.Max(maxX, e.X)
		maxY = math.Max(maxY, e.Y)
	}

	if alive == 0 {
		return true
	}
	if inFormation == 0 {
		return false
	}

	left := minX - enemyHalfWidth
	right := maxX + enemyHalfWidth
	if (left < screenMargin && s.Formation.Dir < 0) || (right > s.Width-screenMargin && s.Formation.Dir > 0) {
		s.Formation.Dir = -s.Formation.Dir
		for i := range s.Enemies {
			e := &s.Enemies[i]
			if !e.Alive {
				continue
			}
			e.HomeY += s.Formation.StepDown
			if !e.Diving {
				e.Y += s.Formation.StepDown
			}
		}
		maxY += s.Formation.StepDown
	}

	if maxY > s.Height-breachLine {
		s.Mode = ModeGameOver
	}
	return false
}

// scheduleDives counts down the dive timer and launches divers on expiry.
func (s *State) scheduleDives(dt float64) {
	s.DiveTimer -= dt
	if s.DiveTimer > 0 {
		return
	}

	for n := 0; n < s.Profile.SimultaneousDivers; n++ {
		target := s.pickDiveTarget()
		if target == nil {
			break
		}
		target.Diving = true
		target.VX = (s.Player.X - target.X) * diveAim
		target.VY = s.Profile.DiveSpeed + s.rand()*diveSpeedJitter
		s.LastDiveEnemyID = target.ID
	}

	s.DiveCooldown = s.Profile.DiveBaseCooldown + s.rand()*s.Profile.DiveVariance
	s.DiveTimer = s.DiveCooldown
}

// pickDiveTarget draws one alive, non-diving enemy. The candidate list is rebuilt
// on every call so an enemy picked earlier in the same volley is excluded.
func (s *State) pickDiveTarget() *Enemy {
	candidates := make([]int, 0, len(s.Enemies))
	for i := range s.Enemies {
		if s.Enemies[i].Alive && !s.Enemies[i].Diving {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return &s.Enemies[candidates[s.pickIndex(len(candidates))]]
}

// clearWave pays wave rewards and moves to victory, intermission or the next wave.
func (s *State) clearWave() {
	mult := s.WaveBlock + 1
	s.Score += 500 * mult
	s.Credits += 40 * mult
	s.awardXP(25 * mult)
	s.clearProjectiles()

	if s.Wave >= s.MaxWave {
		s.Mode = ModeVictory
		s.Intermission = Intermission{
			Reason:    fmt.Sprintf("All %d waves cleared", s.MaxWave),
			NextBlock: s.WaveBlock,
		}
		return
	}

	if s.Wave%s.WavesPerBlock == 0 {
		cleared := s.WaveBlock
		s.Wave++
		s.applyProfile(BlockForWave(s.Wave, s.WavesPerBlock))
		s.Mode = ModeIntermission
		s.Intermission = Intermission{
			Reason:    fmt.Sprintf("Block %d cleared. Refit before wave %d.", cleared+1, s.Wave),
			NextBlock: s.WaveBlock,
		}
		return
	}

	s.Wave++
	s.beginWave()
}

// leaveIntermission starts the wave that the intermission was holding back.
func (s *State) leaveIntermission() {
	s.Intermission = Intermission{}
	s.Mode = ModePlaying
	s.beginWave()
}
