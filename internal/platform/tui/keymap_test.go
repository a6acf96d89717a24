package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w thrusts", runeKey('w'), core.ActionUp, false},
		{"up thrusts", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a turns left", runeKey('a'), core.ActionLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d turns right", runeKey('d'), core.ActionRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"v toggles hints", runeKey('v'), core.ActionHints, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
					tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('a'), &frame) {
		t.Fatal("a should not quit")
	}
	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame) {
		t.Fatal("space should not quit")
	}
	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionFire) {
		t.Errorf("frame = %v, want Left and Fire", frame.Actions)
	}

	km.MapKeyToFrame(runeKey('x'), &frame)
	if len(frame.Actions) != 2 {
		t.Errorf("unbound key changed the frame: %v", frame.Actions)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
