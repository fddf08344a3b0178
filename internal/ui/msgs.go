package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wirechat-client/internal/core"
	"github.com/vovakirdan/wirechat-client/internal/gateway"
)

// Mediator and gateway events delivered into the tea loop.
type (
	loginEventMsg         core.LoginEvent
	createChannelEventMsg core.CreateChannelEvent
	channelEventMsg       gateway.ChannelEvent
)

type channelsLoadedMsg struct {
	channels []gateway.Channel
	err      error
}

// Navigation.
type (
	loggedInMsg    struct{}
	loggedOutMsg   struct{}
	backToListMsg  struct{}
	openChannelMsg struct {
		cid  string
		name string
	}
)

type watchResultMsg struct{ err error }

type sendResultMsg struct{ err error }

// listen turns one receive from ch into a tea.Cmd. A closed channel yields
// a nil message, which ends the listen cycle.
func listen[T any](ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return wrap(v)
	}
}

func navigate(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
