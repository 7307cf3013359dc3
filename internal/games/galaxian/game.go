package galaxian

import (
	"github.com/vovakirdan/shop-escalation/internal/config"
	"github.com/vovakirdan/shop-escalation/internal/core"
)

// ID is the identifier used for score storage and CLI commands.
const ID = "galaxian"

// Game wraps a State for the terminal platform: it owns the fixed timestep and
// converts platform input frames.
type Game struct {
	state *State
	cfg   config.GalaxianConfig
	dt    float64
}

// NewGame creates a game that uses the given tuning.
func NewGame(cfg config.GalaxianConfig) *Game {
	return &Game{cfg: cfg, dt: core.DefaultConfig().TickDT()}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Galaxian: Shop Escalation" }

// Reset starts a new run in menu mode. The screen size in cfg only affects
// rendering; the simulation keeps its own pixel canvas.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = NewWithConfig(cfg.Seed, g.cfg)
	g.dt = cfg.TickDT()
}

// Step advances one fixed tick.
func (g *Game) Step(in core.InputFrame) core.GameState {
	if g.state == nil {
		g.Reset(core.DefaultConfig())
	}
	Step(g.state, FromFrame(in), g.dt)
	return g.State()
}

// Render draws the current state.
func (g *Game) Render(dst *core.Screen) {
	if g.state == nil {
		return
	}
	Render(g.state, dst)
}

// State summarizes the run for the platform.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	s := g.state
	return core.GameState{
		Score:   s.Score,
		Wave:    s.Wave,
		Block:   s.WaveBlock,
		Paused:  s.Mode == ModePaused,
		Over:    s.Mode == ModeGameOver,
		Won:     s.Mode == ModeVictory,
		Playing: s.Mode == ModePlaying,
	}
}

// Mode returns the current simulation mode.
func (g *Game) Mode() Mode {
	if g.state == nil {
		return ModeMenu
	}
	return g.state.Mode
}

// Seed returns the seed of the running state.
func (g *Game) Seed() int64 {
	if g.state == nil {
		return 0
	}
	return g.state.Seed
}

// Snapshot returns the external view of the running state.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		g.Reset(core.DefaultConfig())
	}
	return TakeSnapshot(g.state)
}
