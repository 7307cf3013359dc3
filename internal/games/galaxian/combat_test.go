package galaxian

import (
	"math"
	"testing"
)

func TestFireVolleyWithSpread(t *testing.T) {
	s := startedGame(t, 1)
	s.Upgrades.SpreadShot = 2
	s.Upgrades.Pierce = 1

	Step(s, Input{Shoot: true}, tickDT)

	if got := len(s.Bullets); got != 5 {
		t.Fatalf("bullets = %d, expected 5", got)
	}
	for i, b := range s.Bullets {
		if want := float64(i-2) * 60; b.VX != want {
			t.Errorf("bullet %d vx = %v, expected %v", i, b.VX, want)
		}
		if b.Pierce != 1 || b.Source != SourcePlayer {
			t.Errorf("bullet %d pierce/source = %d/%s", i, b.Pierce, b.Source)
		}
	}
	if s.Player.Cooldown != 0.35 {
		t.Errorf("cooldown = %v, expected 0.35", s.Player.Cooldown)
	}

	Step(s, Input{Shoot: true}, tickDT)
	if got := len(s.Bullets); got != 5 {
		t.Errorf("fired during cooldown: %d bullets", got)
	}
}

func TestBulletHits(t *testing.T) {
	tests := []struct {
		name        string
		pierce      int
		diving      bool
		stacked     bool
		wantKills   int
		wantScore   int
		wantBullets int
	}{
		{"single kill", 0, false, false, 1, 100, 0},
		{"diving bonus", 0, true, false, 1, 150, 0},
		{"pierce through two", 1, false, true, 2, 200, 0},
		{"pierce left over", 2, false, true, 2, 200, 1},
		{"no pierce stops at first", 0, false, true, 1, 100, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := startedGame(t, 1)
			target := &s.Enemies[0]
			target.Diving = tc.diving
			if tc.stacked {
				s.Enemies[1].X, s.Enemies[1].Y = target.X, target.Y
			}
			s.Bullets = []Bullet{{X: target.X, Y: target.Y + 4, VY: -380, Pierce: tc.pierce, Source: SourcePlayer}}

			s.resolveBulletHits()

			kills := len(s.Enemies) - s.AliveCount()
			if kills != tc.wantKills {
				t.Errorf("kills = %d, expected %d", kills, tc.wantKills)
			}
			if s.Score != tc.wantScore {
				t.Errorf("score = %d, expected %d", s.Score, tc.wantScore)
			}
			if s.Credits != tc.wantScore/10 {
				t.Errorf("credits = %d, expected %d", s.Credits, tc.wantScore/10)
			}
			if got := len(s.Bullets); got != tc.wantBullets {
				t.Errorf("bullets = %d, expected %d", got, tc.wantBullets)
			}
			if s.Enemies[0].Alive {
				t.Error("first enemy in slice order survived the hit")
			}
			if tc.stacked && tc.wantKills == 1 && !s.Enemies[1].Alive {
				t.Error("second stacked enemy died without pierce")
			}
		})
	}
}

func TestKillRewardsScaleWithBlock(t *testing.T) {
	s := startedGame(t, 1)
	s.WaveBlock = 3
	e := &s.Enemies[0]

	if got := s.killValue(e); got != 130 {
		t.Errorf("formation value = %d, expected 130", got)
	}
	e.Diving = true
	if got := s.killValue(e); got != e.DiveScore {
		t.Errorf("diving value = %d, expected %d", got, e.DiveScore)
	}
}

func TestPlayerHitByEnemyBullet(t *testing.T) {
	s := startedGame(t, 1)
	p := s.Player

	s.EnemyBullets = []EnemyBullet{{X: p.X, Y: p.Y, VY: 170}}
	s.resolvePlayerHits()

	if s.Lives != 2 || s.HitsTaken != 1 {
		t.Fatalf("lives/hits = %d/%d, expected 2/1", s.Lives, s.HitsTaken)
	}
	if math.Abs(s.Player.Invuln-1.2) > 1e-9 {
		t.Errorf("invuln = %v, expected 1.2", s.Player.Invuln)
	}
	if s.EnemyBullets[0].Y <= s.Height {
		t.Error("hitting bullet was not moved off screen")
	}

	s.EnemyBullets = append(s.EnemyBullets, EnemyBullet{X: p.X, Y: p.Y, VY: 170})
	s.resolvePlayerHits()
	if s.Lives != 2 {
		t.Errorf("lost a life while invulnerable: %d", s.Lives)
	}
}

func TestPlayerHitByDiver(t *testing.T) {
	s := startedGame(t, 1)
	s.Upgrades.HullPlating = 2
	e := &s.Enemies[3]
	e.Diving = true
	e.X, e.Y = s.Player.X+5, s.Player.Y-5

	s.resolvePlayerHits()

	if s.Lives != 2 {
		t.Errorf("lives = %d, expected 2", s.Lives)
	}
	if e.Diving || e.X != e.HomeX || e.Y != e.HomeY {
		t.Error("diver was not sent home")
	}
	if math.Abs(s.Player.Invuln-1.6) > 1e-9 {
		t.Errorf("invuln = %v, expected 1.6", s.Player.Invuln)
	}
}

func TestInfiniteLivesBlocksHits(t *testing.T) {
	s := startedGame(t, 1)
	s.Timers.InfLives = 3
	s.EnemyBullets = []EnemyBullet{{X: s.Player.X, Y: s.Player.Y, VY: 170}}

	s.resolvePlayerHits()

	if s.Lives != 3 || s.HitsTaken != 0 {
		t.Errorf("lives/hits = %d/%d, expected 3/0", s.Lives, s.HitsTaken)
	}
}

func TestLastLifeEndsRun(t *testing.T) {
	s := startedGame(t, 1)
	s.Lives = 1
	s.EnemyBullets = []EnemyBullet{{X: s.Player.X, Y: s.Player.Y, VY: 170}}

	s.resolvePlayerHits()

	if s.Mode != ModeGameOver || s.Lives != 0 {
		t.Fatalf("mode/lives = %s/%d, expected gameover/0", s.Mode, s.Lives)
	}

	ticks := s.Ticks
	Step(s, Input{Shoot: true, Start: true}, tickDT)
	if s.Ticks != ticks || s.Mode != ModeGameOver {
		t.Error("game over is not terminal")
	}
}

func TestDroneFires(t *testing.T) {
	s := startedGame(t, 1)
	s.Drone = Drone{Active: true, X: s.Player.X, Y: s.Player.Y}
	rng := s.RNGState

	s.updateDrone(tickDT)

	if len(s.Bullets) != 1 || s.Bullets[0].Source != SourceDrone {
		t.Fatalf("bullets = %+v, expected one drone shot", s.Bullets)
	}
	if s.Bullets[0].Pierce != 0 {
		t.Errorf("drone pierce = %d, expected 0", s.Bullets[0].Pierce)
	}
	if s.RNGState == rng {
		t.Error("drone target selection did not draw from the rng")
	}
	if s.Drone.Cooldown != 0.72 {
		t.Errorf("drone cooldown = %v, expected 0.72", s.Drone.Cooldown)
	}

	wantX := s.Player.X + (s.Player.X+droneOffsetX-s.Player.X)*droneFollow
	if math.Abs(s.Drone.X-wantX) > 1e-9 {
		t.Errorf("drone x = %v, expected %v", s.Drone.X, wantX)
	}
}

func TestEnemyFire(t *testing.T) {
	s := startedGame(t, 1)
	s.EnemyFireTimer = 0.001

	Step(s, Input{}, tickDT)

	if got := len(s.EnemyBullets); got != 1 {
		t.Fatalf("enemy bullets = %d, expected 1", got)
	}
	if s.EnemyBullets[0].VY != 170 {
		t.Errorf("vy = %v, expected 170", s.EnemyBullets[0].VY)
	}
	if s.EnemyFireTimer != s.Profile.EnemyFireInterval {
		t.Errorf("fire timer = %v, expected reset", s.EnemyFireTimer)
	}
}
