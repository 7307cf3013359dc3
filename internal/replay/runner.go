package replay

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shop-escalation/internal/config"
	"github.com/vovakirdan/shop-escalation/internal/games/galaxian"
)

// Checkpoint records the snapshot hash after a flagged script step.
type Checkpoint struct {
	Step int    `json:"step"`
	Tick int    `json:"tick"`
	Hash uint64 `json:"hash"`
}

// Result is the outcome of a headless run.
type Result struct {
	Final       galaxian.Snapshot `json:"final"`
	Checkpoints []Checkpoint      `json:"checkpoints"`
}

// Runner replays scripts and pilots against fresh states.
type Runner struct {
	logger *log.Logger
	cfg    config.GalaxianConfig
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(cfg config.GalaxianConfig, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{logger: logger, cfg: cfg}
}

func (r *Runner) newState(seed int64, autostart bool) *galaxian.State {
	s := galaxian.NewWithConfig(seed, r.cfg)
	if autostart {
		galaxian.Autostart(s)
	}
	return s
}

// Run plays a script from a fresh state.
func (r *Runner) Run(sc *Script) (Result, error) {
	if sc == nil || len(sc.Steps) == 0 {
		return Result{}, ErrEmptyScript
	}

	r.logger.Debug("Replay started", "seed", sc.Seed, "steps", len(sc.Steps))
	s := r.newState(sc.Seed, sc.Autostart)

	res := Result{Checkpoints: []Checkpoint{}}
	for i, st := range sc.Steps {
		in := st.Input.Input()
		for n := 0; n < st.Repeat; n++ {
			galaxian.Step(s, in, st.DT)
		}
		if st.Checkpoint {
			cp := Checkpoint{Step: i, Tick: s.Ticks, Hash: galaxian.TakeSnapshot(s).Hash()}
			res.Checkpoints = append(res.Checkpoints, cp)
			r.logger.Debug("Checkpoint", "step", cp.Step, "tick", cp.Tick, "hash", cp.Hash, "mode", s.Mode)
		}
	}

	res.Final = galaxian.TakeSnapshot(s)
	r.logger.Debug("Replay finished", "seed", sc.Seed, "tick", res.Final.Tick, "score", res.Final.Score, "mode", res.Final.Mode)
	return res, nil
}

// RunPilot plays up to opts.Ticks steps chosen by pilot, stopping early once the
// run reaches game over or victory.
func (r *Runner) RunPilot(opts Options, pilot Pilot) Result {
	if pilot == nil {
		pilot = Idle
	}

	s := r.newState(opts.Seed, opts.Autostart)
	r.logger.Debug("Pilot started", "seed", opts.Seed, "ticks", opts.Ticks)

	for i := 0; i < opts.Ticks && !s.Mode.Terminal(); i++ {
		galaxian.Step(s, pilot(galaxian.TakeSnapshot(s)), TickDT)
	}

	res := Result{Final: galaxian.TakeSnapshot(s), Checkpoints: []Checkpoint{}}
	r.logger.Debug("Pilot finished", "tick", res.Final.Tick, "wave", res.Final.Wave, "score", res.Final.Score, "mode", res.Final.Mode)
	return res
}
