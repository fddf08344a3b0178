package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wirechat-client/internal/gateway"
)

const maxMessages = 500

// MessagesModel shows one channel's messages and a compose line.
type MessagesModel struct {
	ctx       context.Context
	messenger gateway.Messenger
	cid       string
	name      string

	lines    []string
	viewport viewport.Model
	input    textinput.Model
	err      string

	styles Styles
}

// NewMessagesModel creates the messages screen for cid.
func NewMessagesModel(ctx context.Context, messenger gateway.Messenger, cid, name string) MessagesModel {
	in := textinput.New()
	in.Placeholder = "message"
	in.CharLimit = 1000
	in.Focus()

	return MessagesModel{
		ctx:       ctx,
		messenger: messenger,
		cid:       cid,
		name:      name,
		viewport:  viewport.New(80, 20),
		input:     in,
		styles:    DefaultStyles(),
	}
}

// CID returns the channel shown.
func (m MessagesModel) CID() string {
	return m.cid
}

// Lines returns the rendered conversation, oldest first.
func (m MessagesModel) Lines() []string {
	return m.lines
}

// Error returns the last error shown.
func (m MessagesModel) Error() string {
	return m.err
}

// Init starts watching the channel.
func (m MessagesModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.watch())
}

func (m MessagesModel) watch() tea.Cmd {
	messenger, ctx, cid := m.messenger, m.ctx, m.cid
	return func() tea.Msg {
		_, err := messenger.WatchChannel(cid).Execute(ctx)
		return watchResultMsg{err: err}
	}
}

// SetSize resizes the conversation area, keeping room for the title and input.
func (m *MessagesModel) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = max(height-4, 1)
	m.input.Width = max(width-4, 10)
}

// Update handles messages.
func (m MessagesModel) Update(msg tea.Msg) (MessagesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case watchResultMsg:
		if msg.err != nil {
			m.err = errorText(msg.err)
		}
		return m, nil

	case sendResultMsg:
		if msg.err != nil {
			m.err = errorText(msg.err)
		}
		return m, nil

	case channelEventMsg:
		m.handleEvent(gateway.ChannelEvent(msg))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			messenger, ctx, cid := m.messenger, m.ctx, m.cid
			return m, tea.Batch(
				func() tea.Msg {
					// Leaving is best effort; the list does not depend on it.
					_, _ = messenger.StopWatching(cid).Execute(ctx)
					return nil
				},
				navigate(backToListMsg{}),
			)
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.err = ""
			messenger, ctx, cid := m.messenger, m.ctx, m.cid
			return m, func() tea.Msg {
				_, err := messenger.SendMessage(cid, text).Execute(ctx)
				return sendResultMsg{err: err}
			}
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *MessagesModel) handleEvent(ev gateway.ChannelEvent) {
	if ev.Kind == gateway.ChannelEventError {
		if ev.Err != nil {
			m.err = errorText(ev.Err)
		}
		return
	}
	if ev.CID != m.cid {
		return
	}

	switch ev.Kind {
	case gateway.ChannelEventHistory:
		m.lines = make([]string, 0, len(ev.Messages))
		for _, msg := range ev.Messages {
			m.lines = append(m.lines, m.renderMessage(msg))
		}
	case gateway.ChannelEventMessage:
		m.lines = append(m.lines, m.renderMessage(ev.Message))
	case gateway.ChannelEventUserJoined:
		m.lines = append(m.lines, m.styles.System.Render(ev.User+" joined"))
	case gateway.ChannelEventUserLeft:
		m.lines = append(m.lines, m.styles.System.Render(ev.User+" left"))
	}

	if len(m.lines) > maxMessages {
		m.lines = m.lines[len(m.lines)-maxMessages:]
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m MessagesModel) renderMessage(msg gateway.Message) string {
	ts := ""
	if !msg.CreatedAt.IsZero() {
		ts = m.styles.Label.Render(msg.CreatedAt.Format("15:04")) + " "
	}
	return ts + m.styles.Author.Render(msg.User) + ": " + msg.Text
}

// View renders the conversation.
func (m MessagesModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.name))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(m.styles.Error.Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	return b.String()
}
