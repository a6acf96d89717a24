package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// fakeGame is a scripted game: state and cues are set by the test.
type fakeGame struct {
	state  core.GameState
	cues   []core.Cue
	waves  int
	resets int
	steps  int
	inputs []core.InputFrame
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Waves() int { return g.waves }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state, Cues: g.cues}
}

// resizableGame also follows terminal resizes.
type resizableGame struct {
	fakeGame
	width, height int
}

func (g *resizableGame) Resize(w, h int) { g.width, g.height = w, h }

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
}

func testBoard(t *testing.T) *storage.Leaderboard {
	t.Helper()
	lb, err := storage.OpenLeaderboard()
	if err != nil {
		t.Fatalf("OpenLeaderboard() failed: %v", err)
	}
	t.Cleanup(func() { lb.Close() })
	return lb
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm
}

func TestGameModelRecordsScoreOnce(t *testing.T) {
	board := testBoard(t)
	game := &fakeGame{waves: 2}
	m := NewGameModel(game, board, testConfig(), PlayOptions{Player: "ann"})

	game.state = core.GameState{Score: 170, Lives: 1}
	m = update(t, m, TickMsg{})

	game.state = core.GameState{Score: 270, GameOver: true}
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	top, err := board.Top("fake", 10)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("got %d entries, want 1", len(top))
	}
	if top[0].Player != "ann" || top[0].Score != 270 || top[0].Waves != 2 {
		t.Errorf("entry = %+v, want ann/270/2", top[0])
	}

	// A new round followed by another game over records again.
	game.state = core.GameState{Score: 0, Lives: 3}
	m = update(t, m, TickMsg{})
	game.state = core.GameState{Score: 20, GameOver: true}
	update(t, m, TickMsg{})

	top, _ = board.Top("fake", 10)
	if len(top) != 2 {
		t.Errorf("got %d entries after second game, want 2", len(top))
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	board := testBoard(t)
	game := &fakeGame{state: core.GameState{GameOver: true}}
	m := NewGameModel(game, board, testConfig(), PlayOptions{})

	update(t, m, TickMsg{})

	if best, _ := board.HighScore("fake"); best != 0 {
		t.Errorf("HighScore = %d, want 0", best)
	}
}

func TestGameModelNilBoard(t *testing.T) {
	game := &fakeGame{state: core.GameState{Score: 100, GameOver: true}}
	m := NewGameModel(game, nil, testConfig(), PlayOptions{})

	m = update(t, m, TickMsg{})
	if !m.scoreSaved {
		t.Error("game over should be marked handled without a board")
	}
}

func TestGameModelPassesKeysToStep(t *testing.T) {
	game := &fakeGame{}
	m := NewGameModel(game, nil, testConfig(), PlayOptions{})

	m = update(t, m, runeKey('a'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	if game.steps != 2 {
		t.Fatalf("steps = %d, want 2", game.steps)
	}
	first := game.inputs[0]
	if !first.Has(core.ActionLeft) || !first.Has(core.ActionFire) {
		t.Errorf("first frame = %v, want Left and Fire", first.Actions)
	}
	if len(game.inputs[1].Actions) != 0 {
		t.Errorf("second frame = %v, want empty", game.inputs[1].Actions)
	}
}

func TestGameModelBell(t *testing.T) {
	var bell bytes.Buffer
	game := &fakeGame{cues: []core.Cue{core.CueFire, core.CueBangSmall, core.CueBangLarge}}
	m := NewGameModel(game, nil, testConfig(), PlayOptions{Bell: &bell})

	m = update(t, m, TickMsg{})
	if bell.String() != "\a" {
		t.Errorf("bell = %q, want one bell", bell.String())
	}

	game.cues = []core.Cue{core.CueFire, core.CueThrust}
	update(t, m, TickMsg{})
	if bell.Len() != 1 {
		t.Errorf("non-bang cues rang the bell: %q", bell.String())
	}
}

func TestGameModelRestart(t *testing.T) {
	game := &fakeGame{state: core.GameState{Score: 50, GameOver: true}}
	m := NewGameModel(game, nil, testConfig(), PlayOptions{})

	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})

	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
	if game.steps != 1 {
		t.Errorf("restart tick should not step, steps = %d", game.steps)
	}
	if m.scoreSaved {
		t.Error("restart should clear the saved flag")
	}
}

func TestGameModelResize(t *testing.T) {
	t.Run("resizable keeps state", func(t *testing.T) {
		game := &resizableGame{}
		m := NewGameModel(game, nil, testConfig(), PlayOptions{})

		m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

		if game.width != 100 || game.height != 30 {
			t.Errorf("Resize got %dx%d, want 100x30", game.width, game.height)
		}
		if game.resets != 0 {
			t.Errorf("resets = %d, want 0", game.resets)
		}
		if m.screen.Width() != 100 || m.screen.Height() != 30 {
			t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
		}
	})

	t.Run("others reset", func(t *testing.T) {
		game := &fakeGame{}
		m := NewGameModel(game, nil, testConfig(), PlayOptions{})

		update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

		if game.resets != 1 {
			t.Errorf("resets = %d, want 1", game.resets)
		}
	})
}

func TestGameModelBack(t *testing.T) {
	t.Run("ignored mid round", func(t *testing.T) {
		game := &fakeGame{state: core.GameState{Score: 10, Lives: 2}}
		m := NewGameModel(game, nil, testConfig(), PlayOptions{})
		m = update(t, m, TickMsg{})
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if m.BackToMenu() || m.IsQuitting() {
			t.Error("back should be ignored while a round runs")
		}
	})

	t.Run("returns to menu after game over", func(t *testing.T) {
		game := &fakeGame{state: core.GameState{GameOver: true}}
		m := NewGameModel(game, nil, testConfig(), PlayOptions{})
		m = update(t, m, TickMsg{})
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if !m.BackToMenu() {
			t.Error("BackToMenu() = false, want true")
		}
	})

	t.Run("standalone quits", func(t *testing.T) {
		game := &fakeGame{state: core.GameState{Paused: true, Lives: 1}}
		m := NewGameModel(game, nil, testConfig(), PlayOptions{Standalone: true})
		m = update(t, m, TickMsg{})
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if !next.(GameModel).IsQuitting() || cmd == nil {
			t.Error("standalone back should quit")
		}
	})
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&fakeGame{}, nil, testConfig(), PlayOptions{})
	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}
