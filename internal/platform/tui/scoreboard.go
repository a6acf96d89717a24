package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Rows loaded per variant
const maxScores = 100

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	scoreActiveTab  = scoreTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	scoreFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	scoreEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	scoreHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultScoreboardKeys = scoreboardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
	Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next variant")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev variant")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel shows the leaderboard of one game variant at a time.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	board      *storage.Leaderboard
	scores     []storage.Entry
	stats      storage.Stats
	table      table.Model
	help       help.Model
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel opens the scoreboard on the first registered variant.
// A nil board shows every variant as empty.
func NewScoreboardModel(board *storage.Leaderboard, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		board:  board,
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newScoreTable(height)
	if len(m.games) > 0 {
		m.loadScores(m.games[0].ID)
	}
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 16},
			{Title: "Score", Width: 8},
			{Title: "Waves", Width: 6},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// loadScores reads the top entries and stats of a variant into the table.
func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores = nil
	m.stats = storage.Stats{GameID: gameID}
	if m.board != nil {
		if scores, err := m.board.Top(gameID, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.board.Stats(gameID); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Waves),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selectVariant moves the variant cursor by delta, wrapping at both ends.
func (m *ScoreboardModel) selectVariant(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.loadScores(m.games[m.gameCursor].ID)
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		keys := defaultScoreboardKeys
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, keys.Next):
			m.selectVariant(1)
			return m, nil
		case key.Matches(msg, keys.Prev):
			m.selectVariant(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-10, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, scoreTitleStyle.Render("HIGH SCORES")))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = scoreActiveTab.Render(g.Title)
		} else {
			tabs[i] = scoreTabStyle.Render(g.Title)
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(tabs, " ")))
	b.WriteString("\n")

	if m.stats.GamesCount > 0 {
		summary := fmt.Sprintf("%d games  |  best %d  |  avg %.0f",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)
		b.WriteString(centerText(summary, m.width))
	}
	b.WriteString("\n\n")

	content := scoreEmptyStyle.Render("No scores recorded yet.\nClear some rocks to set a high score!")
	if len(m.scores) > 0 {
		content = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, scoreFrameStyle.Render(content)))
	b.WriteString("\n")
	b.WriteString(scoreHelpStyle.Render(m.help.View(defaultScoreboardKeys)))

	return b.String()
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to end the session.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
