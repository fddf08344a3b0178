package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()

	if cmd == nil {
		t.Fatalf("expected a command")
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatalf("command did not complete")
		return nil
	}
}

func mustEvent[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatalf("expected event not received")
	}
	var zero T
	return zero
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab       = tea.KeyMsg{Type: tea.KeyTab}
	keyCtrlL     = tea.KeyMsg{Type: tea.KeyCtrlL}
	keyCtrlC     = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyNewChat   = typeText("n")
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
)
