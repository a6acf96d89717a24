package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// PlayOptions tune a game model beyond the runtime config.
type PlayOptions struct {
	// Player is the name recorded on the leaderboard.
	Player string

	// Bell, when set, receives a terminal bell on every explosion cue.
	Bell io.Writer

	// Standalone makes Back quit the program instead of returning to a menu.
	Standalone bool
}

// waveCounter is implemented by games that report cleared waves.
type waveCounter interface {
	Waves() int
}

// GameModel runs one game inside Bubble Tea: fixed ticks, key mapping,
// leaderboard recording and back-to-menu handling.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	board      *storage.Leaderboard
	config     core.RuntimeConfig
	opts       PlayOptions
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new game model. board may be nil.
func NewGameModel(game registry.Game, board *storage.Leaderboard, cfg core.RuntimeConfig, opts PlayOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		board:      board,
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack && m.canLeave() {
		if m.opts.Standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}

	return m, nil
}

// canLeave reports whether no round is in progress.
func (m GameModel) canLeave() bool {
	return m.gameState.GameOver || m.gameState.Paused || m.gameState.Lives == 0
}

// handleResize follows the terminal size. Games that cannot resize in place
// are reset unless a round just ended.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.ring(result.Cues)

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished round on the leaderboard.
func (m *GameModel) saveScore() {
	if m.board == nil || m.gameState.Score <= 0 {
		return
	}
	waves := 0
	if wc, ok := m.game.(waveCounter); ok {
		waves = wc.Waves()
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.board.Record(m.game.ID(), m.opts.Player, m.gameState.Score, waves)
}

// ring writes a bell for the first explosion cue of the tick.
func (m GameModel) ring(cues []core.Cue) {
	if m.opts.Bell == nil {
		return
	}
	for _, c := range cues {
		if c.IsBang() {
			//nolint:errcheck // Bell is cosmetic
			io.WriteString(m.opts.Bell, "\a")
			return
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the user quits.
func Run(game registry.Game, board *storage.Leaderboard, cfg core.RuntimeConfig, opts PlayOptions) error {
	opts.Standalone = true
	model := NewGameModel(game, board, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
