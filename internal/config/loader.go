package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("config: invalid galaxian config")

// LoadGalaxian loads the simulation configuration.
// Search order: customPath -> ~/.arcade/configs/galaxian.yaml -> ./configs/galaxian.yaml -> embedded default
func LoadGalaxian(customPath string) (GalaxianConfig, error) {
	// Start from defaults so partial files only override what they name
	cfg := DefaultGalaxianConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("galaxian.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultGalaxianConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
				return candidate, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "galaxian.yaml")); err == nil {
		candidate := DefaultGalaxianConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultGalaxianYAML, &cfg); err != nil {
		return DefaultGalaxianConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c GalaxianConfig) Validate() error {
	switch {
	case c.Rules.MaxWave < 1:
		return fmt.Errorf("%w: max_wave must be >= 1, got %d", ErrInvalidConfig, c.Rules.MaxWave)
	case c.Rules.WavesPerBlock < 1:
		return fmt.Errorf("%w: waves_per_block must be >= 1, got %d", ErrInvalidConfig, c.Rules.WavesPerBlock)
	case c.Player.StartLives < 1:
		return fmt.Errorf("%w: start_lives must be >= 1, got %d", ErrInvalidConfig, c.Player.StartLives)
	case c.Weapons.BulletSpeed <= 0:
		return fmt.Errorf("%w: bullet_speed must be positive", ErrInvalidConfig)
	case c.Weapons.MinFireCooldown <= 0 || c.Weapons.FireCooldown < c.Weapons.MinFireCooldown:
		return fmt.Errorf("%w: fire_cooldown must be >= min_fire_cooldown > 0", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyGalaxianPreset modifies the config based on a difficulty preset.
func ApplyGalaxianPreset(cfg *GalaxianConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.StartLives = 5
		cfg.Rules.StartCredits = 300
	case DifficultyHard:
		cfg.Player.StartLives = 2
		cfg.Rules.StartCredits = 0
	}
}
