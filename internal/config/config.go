// Package config provides YAML-based tuning for the simulation and the difficulty
// presets exposed on the command line.
package config

// GalaxianConfig contains all tunable parameters of the simulation that are not
// derived from the wave-block difficulty profile.
type GalaxianConfig struct {
	Player  GalaxianPlayer  `yaml:"player"`
	Weapons GalaxianWeapons `yaml:"weapons"`
	Layout  GalaxianLayout  `yaml:"layout"`
	Rules   GalaxianRules   `yaml:"rules"`
}

// GalaxianPlayer defines the player ship.
type GalaxianPlayer struct {
	Speed        float64 `yaml:"speed"`         // px/s before thruster upgrades
	ThrusterStep float64 `yaml:"thruster_step"` // px/s added per thruster level
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // distance from the canvas bottom
	EdgeMargin   float64 `yaml:"edge_margin"`   // horizontal clamp margin
	StartLives   int     `yaml:"start_lives"`
}

// GalaxianWeapons defines player and drone fire.
type GalaxianWeapons struct {
	BulletSpeed     float64 `yaml:"bullet_speed"`
	FireCooldown    float64 `yaml:"fire_cooldown"`
	MinFireCooldown float64 `yaml:"min_fire_cooldown"`
	RapidFireStep   float64 `yaml:"rapid_fire_step"` // cooldown removed per rapid fire level
	SpreadOffset    float64 `yaml:"spread_offset"`   // px between side shots
	SpreadDrift     float64 `yaml:"spread_drift"`    // horizontal px/s per side shot
	DroneCooldown   float64 `yaml:"drone_cooldown"`
}

// GalaxianLayout defines where enemy formations spawn.
type GalaxianLayout struct {
	OffsetY  float64 `yaml:"offset_y"`  // y of the first row
	SpacingY float64 `yaml:"spacing_y"` // vertical distance between rows
	MarginX  float64 `yaml:"margin_x"`  // x of the first and last column from the edges
}

// GalaxianRules defines the campaign shape and starting economy.
type GalaxianRules struct {
	MaxWave       int `yaml:"max_wave"`
	WavesPerBlock int `yaml:"waves_per_block"`
	StartCredits  int `yaml:"start_credits"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
