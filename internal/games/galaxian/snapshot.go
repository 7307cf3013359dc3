package galaxian

import (
	"encoding/json"
	"hash/fnv"

	"github.com/vovakirdan/shop-escalation/internal/core"
)

// CoordinateSystem tells renderers how to read positions.
type CoordinateSystem struct {
	Origin string `json:"origin"`
	X      string `json:"x"`
	Y      string `json:"y"`
	Units  string `json:"units"`
}

// Pixels is the only coordinate system the simulation uses.
var Pixels = CoordinateSystem{Origin: "top-left", X: "right", Y: "down", Units: "pixels"}

type PlayerView struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	W      int     `json:"w"`
	H      int     `json:"h"`
	Invuln float64 `json:"invuln"`
}

type BulletView struct {
	X      int          `json:"x"`
	Y      int          `json:"y"`
	VY     float64      `json:"vy"`
	Pierce int          `json:"pierce"`
	Source BulletSource `json:"source"`
}

type EnemyBulletView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type EnemyView struct {
	ID     int  `json:"id"`
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Alive  bool `json:"alive"`
	Diving bool `json:"diving"`
	Row    int  `json:"row"`
	Col    int  `json:"col"`
}

type DroneView struct {
	Active bool `json:"active"`
	X      int  `json:"x"`
	Y      int  `json:"y"`
}

type ShopView struct {
	Available bool       `json:"available"`
	Items     []ShopItem `json:"items"`
}

type IntermissionView struct {
	Reason    string `json:"reason"`
	NextBlock int    `json:"nextBlock"`
}

// Snapshot is a rounded, detached view of a State. Positions are whole pixels
// and timers carry two decimals.
type Snapshot struct {
	Mode             Mode              `json:"mode"`
	Width            int               `json:"width"`
	Height           int               `json:"height"`
	Seed             int64             `json:"seed"`
	Tick             int               `json:"tick"`
	Score            int               `json:"score"`
	Credits          int               `json:"credits"`
	XP               int               `json:"xp"`
	Wave             int               `json:"wave"`
	MaxWave          int               `json:"maxWave"`
	WaveBlock        int               `json:"waveBlock"`
	Lives            int               `json:"lives"`
	MaxLives         int               `json:"maxLives"`
	HitsTaken        int               `json:"hitsTaken"`
	Player           PlayerView        `json:"player"`
	Drone            DroneView         `json:"drone"`
	Bullets          []BulletView      `json:"bullets"`
	EnemyBullets     []EnemyBulletView `json:"enemyBullets"`
	Enemies          []EnemyView       `json:"enemies"`
	FormationDir     int               `json:"formationDir"`
	DiveTimer        float64           `json:"diveTimer"`
	EnemyFireTimer   float64           `json:"enemyFireTimer"`
	LastDiveEnemyID  *int              `json:"lastDiveEnemyId"`
	Upgrades         Upgrades          `json:"upgrades"`
	Inventory        Inventory         `json:"inventory"`
	Timers           Timers            `json:"timers"`
	Profile          DifficultyProfile `json:"difficultyProfile"`
	Shop             ShopView          `json:"shop"`
	Intermission     *IntermissionView `json:"intermission"`
	VictoryReached   bool              `json:"victoryReached"`
	GameOver         bool              `json:"gameOver"`
	CoordinateSystem CoordinateSystem  `json:"coordinateSystem"`
}

// TakeSnapshot builds the external view of a state. It does not mutate s.
func TakeSnapshot(s *State) Snapshot {
	snap := Snapshot{
		Mode:      s.Mode,
		Width:     core.RoundPx(s.Width),
		Height:    core.RoundPx(s.Height),
		Seed:      s.Seed,
		Tick:      s.Ticks,
		Score:     s.Score,
		Credits:   s.Credits,
		XP:        s.XP,
		Wave:      s.Wave,
		MaxWave:   s.MaxWave,
		WaveBlock: s.WaveBlock,
		Lives:     s.Lives,
		MaxLives:  s.MaxLives,
		HitsTaken: s.HitsTaken,
		Player: PlayerView{
			X:      core.RoundPx(s.Player.X),
			Y:      core.RoundPx(s.Player.Y),
			W:      core.RoundPx(s.Player.W),
			H:      core.RoundPx(s.Player.H),
			Invuln: core.Round2(s.Player.Invuln),
		},
		Drone: DroneView{
			Active: s.Drone.Active,
			X:      core.RoundPx(s.Drone.X),
			Y:      core.RoundPx(s.Drone.Y),
		},
		Bullets:        make([]BulletView, 0, len(s.Bullets)),
		EnemyBullets:   make([]EnemyBulletView, 0, len(s.EnemyBullets)),
		Enemies:        make([]EnemyView, 0, len(s.Enemies)),
		FormationDir:   int(s.Formation.Dir),
		DiveTimer:      core.Round2(s.DiveTimer),
		EnemyFireTimer: core.Round2(s.EnemyFireTimer),
		Upgrades:       s.Upgrades,
		Inventory:      s.Inventory,
		Timers: Timers{
			InfLives: core.Round2(s.Timers.InfLives),
			DoubleXP: core.Round2(s.Timers.DoubleXP),
		},
		Profile: s.Profile,
		Shop: ShopView{
			Available: s.Mode == ModeIntermission,
			Items:     ListItems(s),
		},
		VictoryReached:   s.Mode == ModeVictory,
		GameOver:         s.Mode == ModeGameOver,
		CoordinateSystem: Pixels,
	}

	if s.LastDiveEnemyID != NoEnemy {
		id := s.LastDiveEnemyID
		snap.LastDiveEnemyID = &id
	}
	if s.Mode == ModeIntermission || s.Mode == ModeVictory {
		snap.Intermission = &IntermissionView{
			Reason:    s.Intermission.Reason,
			NextBlock: s.Intermission.NextBlock,
		}
	}

	for _, b := range s.Bullets {
		snap.Bullets = append(snap.Bullets, BulletView{
			X:      core.RoundPx(b.X),
			Y:      core.RoundPx(b.Y),
			VY:     b.VY,
			Pierce: b.Pierce,
			Source: b.Source,
		})
	}
	for _, b := range s.EnemyBullets {
		snap.EnemyBullets = append(snap.EnemyBullets, EnemyBulletView{
			X: core.RoundPx(b.X),
			Y: core.RoundPx(b.Y),
		})
	}
	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:     e.ID,
			X:      core.RoundPx(e.X),
			Y:      core.RoundPx(e.Y),
			Alive:  e.Alive,
			Diving: e.Diving,
			Row:    e.Row,
			Col:    e.Col,
		})
	}

	return snap
}

// JSON returns the stable text form of the snapshot.
func (snap Snapshot) JSON() ([]byte, error) {
	return json.Marshal(snap)
}

// Hash returns an FNV-1a digest of the JSON form for determinism checks.
func (snap Snapshot) Hash() uint64 {
	data, err := snap.JSON()
	if err != nil {
		// Snapshot holds only plain data; Marshal cannot fail.
		panic(err)
	}
	h := fnv.New64a()
	h.Write(data) //nolint:errcheck // hash.Hash writes never fail
	return h.Sum64()
}
