package galaxian

import (
	"strings"
	"testing"

	"github.com/vovakirdan/shop-escalation/internal/config"
	"github.com/vovakirdan/shop-escalation/internal/core"
)

const tickDT = 1.0 / 60.0

func startedGame(t *testing.T, seed int64) *State {
	t.Helper()
	s := New(seed)
	Step(s, Input{Start: true}, tickDT)
	if s.Mode != ModePlaying {
		t.Fatalf("mode after start = %s, expected playing", s.Mode)
	}
	return s
}

// clearCurrentWave kills every enemy and lets one tick pay the wave out.
func clearCurrentWave(t *testing.T, s *State) {
	t.Helper()
	if s.Mode != ModePlaying {
		t.Fatalf("cannot clear a wave in mode %s", s.Mode)
	}
	for i := range s.Enemies {
		s.Enemies[i].Alive = false
	}
	Step(s, Input{}, tickDT)
}

// advanceToWave clears waves, confirming every intermission, until wave is in play.
func advanceToWave(t *testing.T, s *State, wave int) {
	t.Helper()
	for s.Wave < wave || s.Mode != ModePlaying {
		if s.Mode == ModeIntermission {
			Step(s, Input{Confirm: true}, tickDT)
			continue
		}
		clearCurrentWave(t, s)
	}
}

func TestNewStartsInMenu(t *testing.T) {
	s := New(20260223)

	if s.Mode != ModeMenu {
		t.Errorf("mode = %s, expected menu", s.Mode)
	}
	if s.Wave != 1 || s.WaveBlock != 0 {
		t.Errorf("wave/block = %d/%d, expected 1/0", s.Wave, s.WaveBlock)
	}
	if s.Lives != 3 || s.MaxLives != 3 {
		t.Errorf("lives = %d/%d, expected 3/3", s.Lives, s.MaxLives)
	}
	if s.Width != 480 || s.Height != 720 {
		t.Errorf("canvas = %vx%v, expected 480x720", s.Width, s.Height)
	}
	if got := len(s.Enemies); got != 40 {
		t.Errorf("enemies = %d, expected 40", got)
	}
	if s.AliveCount() != 40 {
		t.Errorf("alive = %d, expected 40", s.AliveCount())
	}
	if s.Player.X != 240 || s.Player.Y != 650 {
		t.Errorf("player at (%v,%v), expected (240,650)", s.Player.X, s.Player.Y)
	}
	if s.LastDiveEnemyID != NoEnemy {
		t.Errorf("last dive id = %d, expected none", s.LastDiveEnemyID)
	}
	if s.RNGState != 20260223 {
		t.Errorf("rng state = %d, expected seed", s.RNGState)
	}
}

func TestMenuIgnoresGameplayInput(t *testing.T) {
	s := New(1)
	x := s.Player.X

	Step(s, Input{Left: true, Shoot: true, Confirm: true}, tickDT)

	if s.Mode != ModeMenu {
		t.Errorf("mode = %s, expected menu", s.Mode)
	}
	if s.Ticks != 0 {
		t.Errorf("ticks = %d, expected 0", s.Ticks)
	}
	if s.Player.X != x || len(s.Bullets) != 0 {
		t.Error("menu step moved the player or fired")
	}
}

func TestPauseToggle(t *testing.T) {
	s := startedGame(t, 1)
	Step(s, Input{}, tickDT)
	ticks := s.Ticks

	Step(s, Input{Pause: true}, tickDT)
	if s.Mode != ModePaused {
		t.Fatalf("mode = %s, expected paused", s.Mode)
	}

	for i := 0; i < 30; i++ {
		Step(s, Input{Right: true, Shoot: true}, tickDT)
	}
	if s.Ticks != ticks {
		t.Errorf("ticks advanced while paused: %d -> %d", ticks, s.Ticks)
	}

	Step(s, Input{Pause: true, Right: true}, tickDT)
	if s.Mode != ModePlaying {
		t.Errorf("mode = %s, expected playing", s.Mode)
	}
	if s.Ticks != ticks+1 {
		t.Errorf("ticks after unpause = %d, expected %d", s.Ticks, ticks+1)
	}
}

func TestWaveClearRewards(t *testing.T) {
	s := startedGame(t, 3)
	clearCurrentWave(t, s)

	if s.Wave != 2 || s.Mode != ModePlaying {
		t.Fatalf("wave/mode = %d/%s, expected 2/playing", s.Wave, s.Mode)
	}
	if s.Score != 500 || s.Credits != 40 || s.XP != 25 {
		t.Errorf("rewards = score %d credits %d xp %d, expected 500/40/25", s.Score, s.Credits, s.XP)
	}
	if s.AliveCount() != len(s.Enemies) || len(s.Enemies) == 0 {
		t.Error("next wave was not spawned")
	}
}

func TestIntermissionEveryFiveWaves(t *testing.T) {
	s := startedGame(t, 5)

	for i := 0; i < 4; i++ {
		clearCurrentWave(t, s)
	}
	if s.Wave != 5 || s.Mode != ModePlaying {
		t.Fatalf("wave/mode = %d/%s, expected 5/playing", s.Wave, s.Mode)
	}

	clearCurrentWave(t, s)
	if s.Mode != ModeIntermission {
		t.Fatalf("mode = %s, expected intermission", s.Mode)
	}
	if s.Wave != 6 {
		t.Errorf("wave = %d, expected 6", s.Wave)
	}
	if s.Intermission.NextBlock != 1 {
		t.Errorf("next block = %d, expected 1", s.Intermission.NextBlock)
	}
	if s.WaveBlock != BlockForWave(s.Wave, s.WavesPerBlock) || s.Profile.BlockIndex != s.WaveBlock {
		t.Errorf("intermission block = %d, profile block = %d, expected %d",
			s.WaveBlock, s.Profile.BlockIndex, BlockForWave(s.Wave, s.WavesPerBlock))
	}

	snap := TakeSnapshot(s)
	if !snap.Shop.Available || len(snap.Shop.Items) != 9 {
		t.Errorf("shop available=%v items=%d", snap.Shop.Available, len(snap.Shop.Items))
	}
	if snap.Intermission == nil || snap.Intermission.Reason == "" {
		t.Error("snapshot lacks intermission details")
	}
	if snap.WaveBlock != 1 || snap.Profile.BlockIndex != 1 {
		t.Errorf("snapshot block = %d, profile block = %d, expected 1", snap.WaveBlock, snap.Profile.BlockIndex)
	}

	ticks := s.Ticks
	Step(s, Input{Shoot: true, Left: true}, tickDT)
	if s.Ticks != ticks || len(s.Bullets) != 0 {
		t.Error("intermission simulated gameplay")
	}

	Step(s, Input{Confirm: true}, tickDT)
	if s.Mode != ModePlaying {
		t.Fatalf("mode = %s, expected playing", s.Mode)
	}
	if s.WaveBlock != 1 || s.Profile.BlockIndex != 1 {
		t.Errorf("block = %d, expected 1", s.WaveBlock)
	}
	if s.Width != 494 || s.Height != 730 {
		t.Errorf("canvas = %vx%v, expected 494x730", s.Width, s.Height)
	}
}

func TestBlockScalingAtWave16(t *testing.T) {
	s := startedGame(t, 16)
	advanceToWave(t, s, 16)

	if s.WaveBlock != 3 {
		t.Fatalf("block = %d, expected 3", s.WaveBlock)
	}
	if s.Width <= 480 || s.Height <= 720 {
		t.Errorf("canvas %vx%v did not grow", s.Width, s.Height)
	}
	if s.Profile.Rows < 6 {
		t.Errorf("rows = %d, expected at least 6", s.Profile.Rows)
	}
	if got := len(s.Enemies); got != s.Profile.Rows*s.Profile.Cols {
		t.Errorf("enemies = %d, expected %d", got, s.Profile.Rows*s.Profile.Cols)
	}
}

func TestVictoryAtFinalWave(t *testing.T) {
	s := startedGame(t, 60)
	s.Wave = 60
	s.applyProfile(11)
	s.spawnWave()

	clearCurrentWave(t, s)

	if s.Mode != ModeVictory {
		t.Fatalf("mode = %s, expected victory", s.Mode)
	}
	if !strings.Contains(s.Intermission.Reason, "60") {
		t.Errorf("reason = %q", s.Intermission.Reason)
	}
	snap := TakeSnapshot(s)
	if !snap.VictoryReached || snap.GameOver {
		t.Errorf("victory=%v gameOver=%v", snap.VictoryReached, snap.GameOver)
	}

	ticks := s.Ticks
	Step(s, Input{Shoot: true, Start: true, Confirm: true}, tickDT)
	if s.Mode != ModeVictory || s.Ticks != ticks {
		t.Error("victory is not terminal")
	}

	Step(s, Input{Restart: true}, tickDT)
	if s.Mode != ModePlaying || s.Wave != 1 {
		t.Errorf("after restart mode=%s wave=%d", s.Mode, s.Wave)
	}
}

func runScript(seed int64) Snapshot {
	s := New(seed)
	Step(s, Input{Start: true}, tickDT)
	for i := 0; i < 900; i++ {
		Step(s, Input{
			Shoot: i%3 == 0,
			Left:  i%120 < 60,
			Right: i%120 >= 60,
		}, tickDT)
	}
	return TakeSnapshot(s)
}

func TestDeterministicRun(t *testing.T) {
	a := runScript(7777)
	b := runScript(7777)

	if a.Hash() != b.Hash() {
		t.Errorf("same seed produced different snapshots: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Tick != b.Tick {
		t.Errorf("score/tick differ: %d/%d vs %d/%d", a.Score, a.Tick, b.Score, b.Tick)
	}

	c := runScript(7778)
	if a.Hash() == c.Hash() {
		t.Error("different seeds produced identical snapshots")
	}
}

func TestRestartResetsRun(t *testing.T) {
	s := startedGame(t, 99)
	advanceToWave(t, s, 5)
	clearCurrentWave(t, s)
	s.Credits = 5000
	Step(s, Input{ShopBuyIndex: BuyIndex(0)}, tickDT)
	if s.Upgrades.RapidFire != 1 {
		t.Fatalf("rapid fire = %d, expected 1", s.Upgrades.RapidFire)
	}

	Step(s, Input{Restart: true}, tickDT)

	if s.Mode != ModePlaying {
		t.Errorf("mode = %s, expected playing", s.Mode)
	}
	if s.Score != 0 || s.Credits != 0 || s.XP != 0 || s.Ticks != 0 {
		t.Errorf("score/credits/xp/ticks not reset: %d/%d/%d/%d", s.Score, s.Credits, s.XP, s.Ticks)
	}
	if s.Lives != 3 || s.Wave != 1 || s.WaveBlock != 0 {
		t.Errorf("lives/wave/block = %d/%d/%d", s.Lives, s.Wave, s.WaveBlock)
	}
	if s.Upgrades != (Upgrades{}) {
		t.Errorf("upgrades not reset: %+v", s.Upgrades)
	}
	if s.Seed != 99 || s.RNGState != 99 {
		t.Errorf("seed/rng = %d/%d, expected 99/99", s.Seed, s.RNGState)
	}
}

func TestPlayerClampedToCanvas(t *testing.T) {
	s := startedGame(t, 1)
	for i := 0; i < 90; i++ {
		Step(s, Input{Left: true}, tickDT)
		if s.Mode != ModePlaying {
			break
		}
	}
	if s.Player.X != 24 {
		t.Errorf("player x = %v, expected 24", s.Player.X)
	}
}

func TestGameAdapter(t *testing.T) {
	g := NewGame(config.DefaultGalaxianConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: 42})

	if g.ID() != "galaxian" {
		t.Errorf("id = %s", g.ID())
	}
	if g.Mode() != ModeMenu || g.Seed() != 42 {
		t.Errorf("mode/seed = %s/%d", g.Mode(), g.Seed())
	}

	frame := core.NewInputFrame()
	frame.Set(core.ActionStart)
	state := g.Step(frame)
	if !state.Playing {
		t.Errorf("state after start = %+v", state)
	}

	frame.Clear()
	frame.Set(core.ActionPause)
	if state := g.Step(frame); !state.Paused {
		t.Errorf("state after pause = %+v", state)
	}

	screen := core.NewScreen(80, 40)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Score 0") {
		t.Errorf("hud row = %q", screen.Row(0))
	}
}
