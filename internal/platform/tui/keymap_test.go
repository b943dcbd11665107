package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkruglov/retris/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 || s == " " {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyGameActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"a", core.ActionLeft},
		{"left", core.ActionLeft},
		{"d", core.ActionRight},
		{"right", core.ActionRight},
		{"w", core.ActionRotate},
		{"up", core.ActionRotate},
		{" ", core.ActionRotate},
		{"s", core.ActionSoftDrop},
		{"down", core.ActionSoftDrop},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"enter", core.ActionConfirm},
		{"esc", core.ActionBack},
		{"x", core.ActionNone},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(keyMsg(tc.key))
		if action != tc.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.key, action, tc.want)
		}
		if isQuit {
			t.Errorf("MapKey(%q) should not be a quit request", tc.key)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"q", "ctrl+c"} {
		action, isQuit := km.MapKey(keyMsg(key))
		if !isQuit || action != core.ActionQuit {
			t.Errorf("MapKey(%q) = (%v, %v), expected quit", key, action, isQuit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("a"), &frame); quit {
		t.Error("'a' should not quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame should hold the left action")
	}

	// Unmapped keys leave the frame alone.
	km.MapKeyToFrame(keyMsg("x"), &frame)
	if frame.Has(core.ActionNone) {
		t.Error("ActionNone must never be recorded")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"tab", MenuActionScoreboard},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}
