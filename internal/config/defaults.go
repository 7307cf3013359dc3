package config

import (
	_ "embed"
)

//go:embed defaults/galaxian.yaml
var defaultGalaxianYAML []byte

// DefaultGalaxianConfig returns the default simulation configuration.
// It must stay in sync with defaults/galaxian.yaml.
func DefaultGalaxianConfig() GalaxianConfig {
	return GalaxianConfig{
		Player: GalaxianPlayer{
			Speed:        220,
			ThrusterStep: 24,
			Width:        34,
			Height:       18,
			BottomOffset: 70,
			EdgeMargin:   24,
			StartLives:   3,
		},
		Weapons: GalaxianWeapons{
			BulletSpeed:     380,
			FireCooldown:    0.35,
			MinFireCooldown: 0.12,
			RapidFireStep:   0.04,
			SpreadOffset:    10,
			SpreadDrift:     60,
			DroneCooldown:   0.72,
		},
		Layout: GalaxianLayout{
			OffsetY:  90,
			SpacingY: 36,
			MarginX:  60,
		},
		Rules: GalaxianRules{
			MaxWave:       60,
			WavesPerBlock: 5,
			StartCredits:  0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGalaxianYAML
}
