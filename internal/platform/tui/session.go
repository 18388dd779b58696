package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// GameID is the game started by the Play entry.
const GameID = "flappy"

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full arcade session flow: menu, game and score
// screen. It is the top-level model for local and SSH sessions.
type SessionModel struct {
	store     *storage.Store
	config    core.RuntimeConfig
	logger    *log.Logger
	view      sessionView
	menu      MenuModel
	gameModel *GameModel
	scores    *ScoresModel
	gen       int
	startCmd  tea.Cmd
	quitting  bool
}

// NewSessionModel creates a session opened at start, usually TargetMainMenu
// or TargetGame.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, start MenuTarget, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := SessionModel{
		store:  store,
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(cfg),
	}
	m, m.startCmd = m.dispatch(start)
	return m
}

// Init starts whatever the session opened on.
func (m SessionModel) Init() tea.Cmd {
	return m.startCmd
}

// dispatch acts on a menu target. Every menu choice in the arcade ends up here.
func (m SessionModel) dispatch(target MenuTarget) (SessionModel, tea.Cmd) {
	m.logger.Debug("menu", "target", target)

	switch target {
	case TargetNone:
		m.quitting = true
		return m, tea.Quit

	case TargetGame:
		game, err := registry.Create(GameID)
		if err != nil {
			m.logger.Error("cannot start game", "error", err)
			return m, nil
		}
		m.gen++
		gm := NewGameModel(game, m.store, m.config, m.gen, m.logger)
		m.gameModel = &gm
		m.view = viewGame
		return m, gm.Init()

	case TargetScores:
		sm := NewScoresModel(m.store, GameID, flappy.BestScore(), m.config.ScreenW, m.config.ScreenH)
		m.scores = &sm
		m.view = viewScores
		return m, sm.Init()

	case TargetResume:
		if m.gameModel != nil {
			m.gameModel.Resume()
		}
		return m, nil

	case TargetMainMenu:
		m.gameModel = nil
		m.scores = nil
		m.menu = NewMenuModel(m.config)
		m.view = viewMenu
		return m, m.menu.Init()
	}

	return m, nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if chosen := m.menu.Chosen(); chosen != nil {
		return m.dispatch(chosen.Target)
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.gameModel == nil {
		return m, nil
	}
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		return m.dispatch(TargetNone)
	}
	if chosen := m.gameModel.Chosen(); chosen != nil {
		m.gameModel.clearChoice()
		next, dispatchCmd := m.dispatch(chosen.Target)
		return next, tea.Batch(cmd, dispatchCmd)
	}
	return m, cmd
}

// updateScores handles updates when the score screen is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scores == nil {
		return m, nil
	}
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoresModel); ok {
		m.scores = &scores
	}

	switch {
	case m.scores.IsQuitting():
		return m.dispatch(TargetNone)
	case m.scores.IsGoingBack():
		return m.dispatch(TargetMainMenu)
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.view == viewGame && m.gameModel != nil:
		return m.gameModel.View()
	case m.view == viewScores && m.scores != nil:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local session opened at start.
func Run(store *storage.Store, cfg core.RuntimeConfig, start MenuTarget, logger *log.Logger) error {
	model := NewSessionModel(store, cfg, start, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses flap
	)

	_, err := p.Run()
	return err
}
