package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/vovakirdan/wirechat-client/internal/core"
	"github.com/vovakirdan/wirechat-client/internal/gateway"
)

const (
	// ChannelListTitle heads the channel list.
	ChannelListTitle = "Chats👨‍💻"
	// MsgChannelCreated is toasted after a successful creation.
	MsgChannelCreated = "channel created"
)

type channelItem struct {
	ch gateway.Channel
}

func (i channelItem) Title() string { return i.ch.Name }
func (i channelItem) Description() string {
	if i.ch.MemberCount > 0 {
		return fmt.Sprintf("%s • %d members", i.ch.Type, i.ch.MemberCount)
	}
	return i.ch.Type
}
func (i channelItem) FilterValue() string { return i.ch.Name }

// ChannelListModel is the channel list screen with its name-entry dialog.
type ChannelListModel struct {
	ctx         context.Context
	gw          gateway.Gateway
	channels    *core.ChannelMediator
	types       []string
	channelType string

	list       list.Model
	dialog     bool
	nameInput  textinput.Model
	lastStatus string

	styles Styles
}

// NewChannelListModel creates the channel list. types restricts the listing;
// channelType is used for new channels.
func NewChannelListModel(ctx context.Context, gw gateway.Gateway, channels *core.ChannelMediator, types []string, channelType string) ChannelListModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = ChannelListTitle
	l.SetStatusBarItemName("chat", "chats")
	l.SetShowHelp(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new chat")),
			key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "logout")),
		}
	}

	in := textinput.New()
	in.Placeholder = "channel name"
	in.CharLimit = 64
	in.Width = 32

	return ChannelListModel{
		ctx:         ctx,
		gw:          gw,
		channels:    channels,
		types:       types,
		channelType: channelType,
		list:        l,
		nameInput:   in,
		styles:      DefaultStyles(),
	}
}

// Init loads the channel listing.
func (m ChannelListModel) Init() tea.Cmd {
	return m.refresh()
}

// SetSize resizes the list.
func (m *ChannelListModel) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Channels returns the channels currently listed.
func (m ChannelListModel) Channels() []gateway.Channel {
	return lo.Map(m.list.Items(), func(it list.Item, _ int) gateway.Channel {
		return it.(channelItem).ch
	})
}

// DialogOpen reports whether the name-entry dialog is shown.
func (m ChannelListModel) DialogOpen() bool {
	return m.dialog
}

// Status returns the last toast shown.
func (m ChannelListModel) Status() string {
	return m.lastStatus
}

func (m ChannelListModel) refresh() tea.Cmd {
	gw, ctx := m.gw, m.ctx
	filter := gateway.ChannelFilter{Types: m.types}
	return func() tea.Msg {
		channels, err := gw.QueryChannels(filter).Execute(ctx)
		return channelsLoadedMsg{channels: channels, err: err}
	}
}

func (m ChannelListModel) logout() tea.Cmd {
	channels, ctx := m.channels, m.ctx
	return func() tea.Msg {
		// Logout logs its own failure; the user always lands on the login screen.
		_ = channels.Logout(ctx)
		return loggedOutMsg{}
	}
}

func (m *ChannelListModel) toast(text string) tea.Cmd {
	m.lastStatus = text
	return m.list.NewStatusMessage(text)
}

// Update handles messages.
func (m ChannelListModel) Update(msg tea.Msg) (ChannelListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case channelsLoadedMsg:
		if msg.err != nil {
			return m, m.toast(errorText(msg.err))
		}
		items := lo.Map(msg.channels, func(ch gateway.Channel, _ int) list.Item {
			return channelItem{ch: ch}
		})
		return m, m.list.SetItems(items)

	case createChannelEventMsg:
		ev := core.CreateChannelEvent(msg)
		if ev.Kind == core.CreateChannelSuccess {
			return m, tea.Batch(m.toast(MsgChannelCreated), m.refresh())
		}
		return m, m.toast(ev.Error)

	case tea.KeyMsg:
		if m.dialog {
			return m.updateDialog(msg)
		}
		// Keys belong to the filter input while the user types a search.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "n":
			m.dialog = true
			m.nameInput.SetValue("")
			return m, m.nameInput.Focus()
		case "ctrl+l":
			return m, m.logout()
		case "enter":
			if item, ok := m.list.SelectedItem().(channelItem); ok {
				return m, navigate(openChannelMsg{cid: item.ch.CID(), name: item.ch.Name})
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateDialog routes keys to the name input. Enter and esc both dismiss
// the dialog, and dismissing always submits what was typed.
func (m ChannelListModel) updateDialog(msg tea.KeyMsg) (ChannelListModel, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		name := m.nameInput.Value()
		m.dialog = false
		m.nameInput.Blur()
		m.channels.SubmitChannelCreation(m.ctx, name, m.channelType)
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// View renders the list, with the dialog below it when open.
func (m ChannelListModel) View() string {
	if !m.dialog {
		return m.list.View()
	}

	dialog := m.styles.Dialog.Render(strings.Join([]string{
		m.styles.Label.Render("New chat"),
		m.nameInput.View(),
		m.styles.Label.Render("enter/esc: create"),
	}, "\n"))
	return m.list.View() + "\n" + dialog
}

func errorText(err error) string {
	if msg := gateway.MessageOf(err); msg != "" {
		return msg
	}
	return core.MsgUnknownError
}
