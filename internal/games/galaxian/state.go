// Package galaxian implements the deterministic simulation core of Galaxian: Shop
// Escalation. A State is created from a seed and advanced only by Step; identical
// seeds and input sequences always produce identical states.
package galaxian

import (
	"github.com/vovakirdan/shop-escalation/internal/config"
)

// Mode drives all dispatch inside Step.
type Mode string

const (
	ModeMenu         Mode = "menu"
	ModePlaying      Mode = "playing"
	ModePaused       Mode = "paused"
	ModeIntermission Mode = "intermission"
	ModeGameOver     Mode = "gameover"
	ModeVictory      Mode = "victory"
)

// Terminal reports whether only a restart can leave this mode.
func (m Mode) Terminal() bool {
	return m == ModeGameOver || m == ModeVictory
}

// BulletSource identifies who fired a player-side bullet.
type BulletSource string

const (
	SourcePlayer BulletSource = "player"
	SourceDrone  BulletSource = "drone"
)

// NoEnemy is the LastDiveEnemyID before any dive has happened.
const NoEnemy = -1

// Hit boxes, expressed as center-distance half extents.
const (
	enemyHalfWidth   = 18.0
	screenMargin     = 20.0
	bulletHitW       = 16.0
	bulletHitH       = 14.0
	playerHitW       = 20.0
	playerHitH       = 18.0
	enemyShotHitW    = 12.0
	enemyShotHitH    = 14.0
	breachLine       = 150.0 // distance from the canvas bottom
	diveExitMargin   = 50.0
	diveAim          = 0.62
	diveSpeedJitter  = 70.0
	droneFollow      = 0.2
	droneBias        = 0.06
	droneOffsetX     = -38.0
	droneOffsetY     = 12.0
	infLivesDuration = 10.0
	doubleXPDuration = 16.0
)

// Player is the ship controlled by the input record.
type Player struct {
	X, Y     float64
	W, H     float64
	Speed    float64
	Cooldown float64 // seconds until the next shot
	Invuln   float64 // seconds of post-hit invulnerability left
}

// Bullet is a player- or drone-fired projectile moving up the screen.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Pierce int // further enemies this bullet may pass through; spent once negative
	Source BulletSource
}

// EnemyBullet is a projectile fired down the screen by an enemy.
type EnemyBullet struct {
	X, Y float64
	VY   float64
}

// Enemy is one formation slot. Dead enemies stay in the slice with Alive=false so
// IDs remain stable for the whole wave.
type Enemy struct {
	ID           int
	X, Y         float64
	HomeX, HomeY float64 // formation slot
	Row, Col     int
	Alive        bool
	Diving       bool
	VX, VY       float64
	DiveScore    int // kill value while diving
}

// Formation is shared by every non-diving enemy.
type Formation struct {
	Dir      float64 // +1 right, -1 left
	Speed    float64
	StepDown float64
}

// Upgrades are the permanent shop levels.
type Upgrades struct {
	RapidFire    int `json:"rapidFire"`
	Thrusters    int `json:"thrusters"`
	SpreadShot   int `json:"spreadShot"`
	Pierce       int `json:"pierce"`
	HullPlating  int `json:"hullPlating"`
	ExtraLifeCap int `json:"extraLifeCap"`
	Drone        int `json:"drone"`
}

// Inventory holds consumable charges.
type Inventory struct {
	InfLivesCharges int `json:"infLivesCharges"`
	DoubleXPCharges int `json:"doubleXpCharges"`
}

// Timers are the active-duration countdowns of consumables, in seconds.
type Timers struct {
	InfLives float64 `json:"infLives"`
	DoubleXP float64 `json:"doubleXp"`
}

// Drone is the optional escort unit.
type Drone struct {
	Active   bool
	X, Y     float64
	Cooldown float64
}

// Intermission describes why play stopped between blocks (or at victory).
type Intermission struct {
	Reason    string
	NextBlock int
}

// State is the whole simulation aggregate. It is owned by whoever calls Step and
// must not be mutated from outside the package except in tests.
type State struct {
	Mode Mode

	Width  float64
	Height float64

	Seed     int64
	RNGState uint32

	Wave          int
	MaxWave       int
	WavesPerBlock int
	WaveBlock     int

	Score   int
	Credits int
	XP      int

	Lives    int
	MaxLives int

	Player       Player
	Bullets      []Bullet
	EnemyBullets []EnemyBullet
	Enemies      []Enemy
	Formation    Formation

	DiveTimer       float64
	DiveCooldown    float64
	EnemyFireTimer  float64
	LastDiveEnemyID int

	HitsTaken int
	Ticks     int

	Upgrades  Upgrades
	Inventory Inventory
	Timers    Timers
	Drone     Drone

	Profile      DifficultyProfile
	Intermission Intermission

	cfg config.GalaxianConfig
}

// New creates a fresh game in menu mode using the default tuning.
func New(seed int64) *State {
	return NewWithConfig(seed, config.DefaultGalaxianConfig())
}

// NewWithConfig creates a fresh game in menu mode with enemies spawned for block 0.
func NewWithConfig(seed int64, cfg config.GalaxianConfig) *State {
	s := &State{
		Mode:            ModeMenu,
		Seed:            seed,
		RNGState:        uint32(seed), //#nosec G115 -- truncation is the seeding rule
		Wave:            1,
		MaxWave:         cfg.Rules.MaxWave,
		WavesPerBlock:   cfg.Rules.WavesPerBlock,
		Credits:         cfg.Rules.StartCredits,
		Lives:           cfg.Player.StartLives,
		MaxLives:        cfg.Player.StartLives,
		LastDiveEnemyID: NoEnemy,
		cfg:             cfg,
	}

	s.Player = Player{
		W:     cfg.Player.Width,
		H:     cfg.Player.Height,
		Speed: cfg.Player.Speed,
	}

	s.applyProfile(0)
	s.Player.X = s.Width / 2
	s.spawnWave()

	return s
}

// Config returns the tuning the state was created with.
func (s *State) Config() config.GalaxianConfig {
	return s.cfg
}

// restart replaces the whole state with a fresh one carrying the same seed.
func (s *State) restart() {
	*s = *NewWithConfig(s.Seed, s.cfg)
	s.Mode = ModePlaying
}

// applyProfile switches the cached profile and canvas to a block.
func (s *State) applyProfile(block int) {
	s.WaveBlock = block
	s.Profile = ResolveProfile(block)
	s.Width = s.Profile.CanvasWidth
	s.Height = s.Profile.CanvasHeight

	s.Player.Y = s.Height - s.cfg.Player.BottomOffset
	s.clampPlayer()
}

func (s *State) clampPlayer() {
	margin := s.cfg.Player.EdgeMargin
	if s.Player.X < margin {
		s.Player.X = margin
	}
	if s.Player.X > s.Width-margin {
		s.Player.X = s.Width - margin
	}
}

// AliveCount returns the number of living enemies.
func (s *State) AliveCount() int {
	n := 0
	for i := range s.Enemies {
		if s.Enemies[i].Alive {
			n++
		}
	}
	return n
}

// resetHome returns an enemy to its formation slot.
func (e *Enemy) resetHome() {
	e.X = e.HomeX
	e.Y = e.HomeY
	e.VX = 0
	e.VY = 0
	e.Diving = false
}

// Autostart skips the menu of a freshly created state. It has no effect once the
// run has left the menu.
func Autostart(s *State) {
	if s.Mode == ModeMenu {
		s.Mode = ModePlaying
	}
}
