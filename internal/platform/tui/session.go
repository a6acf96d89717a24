package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// It backs both local play without a variant and every SSH session.
type SessionModel struct {
	board     *storage.Leaderboard
	config    core.RuntimeConfig
	opts      PlayOptions
	screen    screenKind
	menu      MenuModel
	gameModel *GameModel
	scores    *ScoreboardModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(board *storage.Leaderboard, cfg core.RuntimeConfig, opts PlayOptions) SessionModel {
	opts.Standalone = false
	return SessionModel{
		board:  board,
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(board, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
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

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.board, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sb
		m.screen = screenScores
		return m, sb.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Menu only lists registered variants
			return m, nil
		}

		gm := NewGameModel(game, m.board, m.config, m.opts)
		m.gameModel = &gm
		m.screen = screenGame
		return m, gm.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

// toMenu drops the current screen and rebuilds the menu with fresh high scores.
// Pending ticks of a left game are ignored by the menu.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.gameModel = nil
	m.scores = nil
	m.menu = NewMenuModel(m.board, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session locally until the user quits.
func RunSession(board *storage.Leaderboard, cfg core.RuntimeConfig, opts PlayOptions) error {
	p := tea.NewProgram(
		NewSessionModel(board, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
