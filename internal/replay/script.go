package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/shop-escalation/internal/games/galaxian"
)

// Script is a recorded input sequence.
//
//	seed: 7777
//	autostart: true
//	steps:
//	  - repeat: 120
//	    input: {shoot: true, right: true}
//	    checkpoint: true
type Script struct {
	Seed      int64  `yaml:"seed"`
	Autostart bool   `yaml:"autostart"`
	Steps     []Step `yaml:"steps"`
}

// Step holds one input for Repeat consecutive ticks of DT seconds.
type Step struct {
	Repeat     int         `yaml:"repeat"`
	DT         float64     `yaml:"dt"`
	Input      ScriptInput `yaml:"input"`
	Checkpoint bool        `yaml:"checkpoint"`
}

// ScriptInput is the YAML form of galaxian.Input. Buy is a zero-based catalog row.
type ScriptInput struct {
	Left     bool `yaml:"left"`
	Right    bool `yaml:"right"`
	Shoot    bool `yaml:"shoot"`
	Start    bool `yaml:"start"`
	Pause    bool `yaml:"pause"`
	Restart  bool `yaml:"restart"`
	Confirm  bool `yaml:"confirm"`
	InfLives bool `yaml:"inf_lives"`
	DoubleXP bool `yaml:"double_xp"`
	Buy      *int `yaml:"buy"`
}

// Input converts the script record.
func (si ScriptInput) Input() galaxian.Input {
	in := galaxian.Input{
		Left:             si.Left,
		Right:            si.Right,
		Shoot:            si.Shoot,
		Start:            si.Start,
		Pause:            si.Pause,
		Restart:          si.Restart,
		Confirm:          si.Confirm,
		ActivateInfLives: si.InfLives,
		ActivateDoubleXP: si.DoubleXP,
	}
	if si.Buy != nil {
		in.ShopBuyIndex = galaxian.BuyIndex(*si.Buy)
	}
	return in
}

// ParseScript decodes and validates a YAML script. Zero repeat means one tick
// and zero dt means TickDT.
func ParseScript(data []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("replay: decode script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, ErrEmptyScript
	}

	for i := range sc.Steps {
		st := &sc.Steps[i]
		if st.Repeat < 0 {
			return nil, fmt.Errorf("replay: step %d: negative repeat %d", i, st.Repeat)
		}
		if st.DT < 0 {
			return nil, fmt.Errorf("replay: step %d: negative dt %v", i, st.DT)
		}
		if st.Repeat == 0 {
			st.Repeat = 1
		}
		if st.DT == 0 {
			st.DT = TickDT
		}
	}
	return &sc, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: read script: %w", err)
	}
	return ParseScript(data)
}
