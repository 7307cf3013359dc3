package galaxian

import "math"

// DifficultyProfile holds the tunables shared by every wave of one block.
type DifficultyProfile struct {
	BlockIndex         int     `json:"blockIndex"`
	Rows               int     `json:"rows"`
	Cols               int     `json:"cols"`
	FormationSpeed     float64 `json:"formationSpeed"`
	StepDown           float64 `json:"stepDown"`
	DiveBaseCooldown   float64 `json:"diveBaseCooldown"`
	DiveVariance       float64 `json:"diveVariance"`
	DiveSpeed          float64 `json:"diveSpeed"`
	SimultaneousDivers int     `json:"simultaneousDivers"`
	EnemyFireInterval  float64 `json:"enemyFireInterval"`
	EnemyBulletSpeed   float64 `json:"enemyBulletSpeed"`
	CanvasWidth        float64 `json:"canvasWidth"`
	CanvasHeight       float64 `json:"canvasHeight"`
}

// ResolveProfile maps a wave block index to its difficulty profile.
// Growth is capped so blocks past ~11 stop getting wider or faster in places.
func ResolveProfile(block int) DifficultyProfile {
	if block < 0 {
		block = 0
	}
	b := float64(block)

	return DifficultyProfile{
		BlockIndex:         block,
		Rows:               min(10, 5+block/2),
		Cols:               min(13, 8+block/3),
		FormationSpeed:     28 + 7*b,
		StepDown:           float64(18 + block/2),
		DiveBaseCooldown:   math.Max(0.85, 2.8-0.18*b),
		DiveVariance:       math.Max(0.2, 1.5-0.04*b),
		DiveSpeed:          190 + 14*b,
		SimultaneousDivers: min(3, 1+block/3),
		EnemyFireInterval:  math.Max(0.35, 1.4-0.08*b),
		EnemyBulletSpeed:   170 + 10*b,
		CanvasWidth:        math.Min(640, 480+14*b),
		CanvasHeight:       math.Min(860, 720+10*b),
	}
}

// BlockForWave returns the zero-based block index of a one-based wave.
func BlockForWave(wave, wavesPerBlock int) int {
	if wave < 1 || wavesPerBlock < 1 {
		return 0
	}
	return (wave - 1) / wavesPerBlock
}
