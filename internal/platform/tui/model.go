package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// GameModel runs one game with its pause menu overlay.
type GameModel struct {
	game       registry.Game
	gen        int
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	pauseMenu  MenuList
	chosen     *MenuEntry
	logger     *log.Logger
	quitting   bool
}

// NewGameModel creates a model for game. gen tags its tick loop.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, gen int, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		gen:        gen,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		pauseMenu:  NewMenuList(PauseMenuEntries()),
		logger:     logger,
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.gameState.Paused {
			if action := m.keyMapper.MapMouse(msg); action != core.ActionNone {
				m.inputFrame.Set(action)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The game draws in world units, so a resize only changes the scale.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	if m.gameState.Paused {
		action := m.keyMapper.MapKeyToMenuAction(msg)
		switch action {
		case MenuActionQuit:
			m.quitting = true
		case MenuActionBack:
			m.chosen = &PauseMenuEntries()[0]
		default:
			if entry, ok := m.pauseMenu.Handle(action); ok {
				m.chosen = &entry
			}
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	wasPaused := m.gameState.Paused

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.Paused && !wasPaused {
		m.pauseMenu = NewMenuList(PauseMenuEntries())
	}

	// Record each finished run once; the game reports it on a single tick.
	if result.RunEnded && result.FinalScore > 0 && m.store != nil {
		if _, err := m.store.SaveScore(m.game.ID(), result.FinalScore); err != nil {
			m.logger.Warn("could not record run", "score", result.FinalScore, "error", err)
		}
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// Resume asks the game to leave the pause menu on the next tick.
func (m *GameModel) Resume() {
	m.inputFrame.Set(core.ActionResume)
}

// saveScreenshot writes the current screen to a file and copies it to
// the clipboard.
func (m *GameModel) saveScreenshot() error {
	m.game.Render(m.screen)
	text := m.screen.String()

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)

	// Headless and SSH sessions usually have no clipboard.
	if err := clipboard.WriteAll(text); err != nil {
		m.logger.Debug("clipboard unavailable", "error", err)
	}
	return nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.Paused {
		m.pauseMenu.DrawOn(m.screen, "Paused")
	}
	return RenderScreen(m.screen)
}

// Chosen returns the pause menu entry picked since the last dispatch.
func (m GameModel) Chosen() *MenuEntry {
	return m.chosen
}

// clearChoice forgets the picked pause menu entry.
func (m *GameModel) clearChoice() {
	m.chosen = nil
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}
