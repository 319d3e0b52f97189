package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/turbine-climb/internal/core"
	"github.com/vovakirdan/turbine-climb/internal/games/climb"
	"github.com/vovakirdan/turbine-climb/internal/registry"
	"github.com/vovakirdan/turbine-climb/internal/storage"
)

// climbReporter is implemented by games that produce a detailed climb record.
type climbReporter interface {
	Result() climb.Result
}

// GameModel is the Bubble Tea model for running a single game.
type GameModel struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	keys        GameKeyMap
	help        help.Model
	holds       *HoldTracker
	pending     core.InputFrame // One-shot actions for the next tick
	lastTick    time.Time
	gameState   core.GameState
	now         func() time.Time
	standalone  bool // Back quits the program instead of returning to a menu
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the current finished climb has been recorded
	onRecord    func(storage.ClimbRecord)
}

// NewGameModel creates a game model. A nil store disables score saving and a
// nil logger discards log output.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		store:   store,
		logger:  logger,
		config:  cfg,
		keys:    DefaultGameKeyMap(),
		help:    h,
		holds:   NewHoldTracker(),
		pending: core.NewInputFrame(),
		now:     time.Now,
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Rendering scales to the terminal, so the climb keeps going
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.gameState.GameOver {
			m.pending.Set(core.ActionRestart)
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.gameState.GameOver {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if action := m.keys.HeldAction(msg); action != core.ActionNone {
		// Pressing one lane key ends the other's hold, so tapping back and
		// forth yields a fresh press every time.
		switch action {
		case core.ActionLeft:
			m.holds.Release(core.ActionRight)
		case core.ActionRight:
			m.holds.Release(core.ActionLeft)
		}
		m.holds.Press(action, m.now())
	}
	return m, nil
}

// handleTick runs one simulation step with the real time since the last tick.
func (m GameModel) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	frame := m.holds.Frame(t)
	for a, on := range m.pending.Actions {
		if on {
			frame.Set(a)
		}
	}
	frame.Delta = frameDelta(m.lastTick, t, m.config.TickInterval())
	m.lastTick = t

	wasOver := m.gameState.GameOver
	result := m.game.Step(frame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.resultSaved:
		m.recordResult()
		m.resultSaved = true
	case !m.gameState.GameOver && wasOver:
		// Restarted
		m.resultSaved = false
		m.holds.Reset()
		m.logger.Debug("game restarted", "game", m.game.ID())
	}

	m.pending.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordResult logs the finished game and saves it, best-effort.
func (m *GameModel) recordResult() {
	state := m.gameState
	outcome := "lost"
	if state.Won {
		outcome = "won"
	}

	var ticks uint64
	rec := storage.ClimbRecord{
		GameID:  m.game.ID(),
		Outcome: outcome,
		Score:   state.Score,
	}
	if r, ok := m.game.(climbReporter); ok {
		res := r.Result()
		rec.Outcome = res.Outcome.String()
		rec.HeightRemaining = res.HeightRemaining
		rec.Lives = res.Lives
		rec.Elapsed = res.Elapsed
		ticks = res.Ticks
	}

	m.logger.Info("climb finished",
		"game", rec.GameID,
		"outcome", rec.Outcome,
		"score", rec.Score,
		"height", fmt.Sprintf("%.1f", rec.HeightRemaining),
		"lives", rec.Lives,
		"elapsed", rec.Elapsed.Round(time.Millisecond),
		"ticks", ticks,
	)

	if m.onRecord != nil {
		m.onRecord(rec)
	}
	if m.store == nil {
		return
	}
	if state.Score > 0 {
		if _, err := m.store.SaveScore(rec.GameID, state.Score); err != nil {
			m.logger.Error("could not save score", "error", err)
		}
	}
	if _, err := m.store.SaveClimb(rec); err != nil {
		m.logger.Error("could not save climb", "error", err)
	}
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".turbine-climb", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keys))

	// The game gets whatever the help footer leaves
	m.screen.Resize(m.config.ScreenW, max(1, m.config.ScreenH-lipgloss.Height(footer)))
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
