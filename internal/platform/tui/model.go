package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shop-escalation/internal/core"
	"github.com/vovakirdan/shop-escalation/internal/games/galaxian"
	"github.com/vovakirdan/shop-escalation/internal/storage"
)

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game      *galaxian.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	gameState core.GameState
	ticks     int // ticks since the current run was (re)started
	quitting  bool
	back      bool
	runSaved  bool // whether the current run is already in the log
}

// NewModel creates a model for game. A nil store disables the run log and a nil
// logger discards output.
func NewModel(game *galaxian.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The simulation keeps its own canvas, so a resize only rescales drawing.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "esc", "b":
		if mode := m.game.Mode(); mode.Terminal() || mode == galaxian.ModePaused {
			m.saveRun(m.gameState)
			m.back = true
			return m, tea.Quit
		}
	}

	if m.keyMapper.Press(msg) {
		m.saveRun(m.gameState)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.keyMapper.Frame()
	if frame.Has(core.ActionRestart) {
		m.saveRun(m.gameState)
		m.runSaved = false
		m.ticks = 0
	}

	m.gameState = m.game.Step(frame)
	if m.gameState.Playing {
		m.ticks++
	}

	if m.gameState.Finished() {
		m.keyMapper.Release()
		m.saveRun(m.gameState)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun logs the current run once. Runs that never scored are skipped.
func (m *Model) saveRun(state core.GameState) {
	if m.runSaved || state.Score <= 0 {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	run := storage.RunResult{
		Seed:    m.game.Seed(),
		Score:   state.Score,
		Wave:    state.Wave,
		Block:   state.Block,
		Ticks:   m.ticks,
		Outcome: outcomeOf(state),
	}
	runID, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "run", runID, "score", run.Score, "wave", run.Wave, "outcome", run.Outcome)
}

func outcomeOf(state core.GameState) storage.Outcome {
	switch {
	case state.Won:
		return storage.OutcomeVictory
	case state.Over:
		return storage.OutcomeGameOver
	default:
		return storage.OutcomeAbandoned
	}
}

// saveScreenshot writes the current screen and its snapshot under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if _, err := m.writeScreenshot(dir, time.Now()); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// writeScreenshot stores the rendered screen as text and the snapshot as JSON,
// sharing one base name. It returns that base path without extension.
func (m *Model) writeScreenshot(dir string, at time.Time) (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%d_%s", m.game.ID(), m.game.Seed(), at.Format("20060102_150405")))
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screen: %w", err)
	}

	data, err := m.game.Snapshot().JSON()
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(base+".json", data, 0o600); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return base, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to leave the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for one game and reports whether the player
// asked to go back to the menu.
func Run(game *galaxian.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
