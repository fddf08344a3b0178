package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wirechat-client/internal/core"
	"github.com/vovakirdan/wirechat-client/internal/event"
	"github.com/vovakirdan/wirechat-client/internal/gateway"
)

// Page identifies the active screen.
type Page int

const (
	PageLogin Page = iota
	PageChannels
	PageMessages
)

// Options wires the screens to the mediators and the gateway.
type Options struct {
	Login     *core.LoginMediator
	Channels  *core.ChannelMediator
	Gateway   gateway.Gateway
	Messenger gateway.Messenger

	// Token is used by "Login as User". Nil when none is configured.
	Token *string
	// Username pre-fills the login form.
	Username string

	ChannelTypes       []string
	DefaultChannelType string
}

// Model is the root tea.Model. It owns the mediator subscriptions for the
// whole program run and forwards their events to the active screen.
type Model struct {
	ctx  context.Context
	opts Options
	page Page

	loginSub   *event.Subscription[core.LoginEvent]
	createSub  *event.Subscription[core.CreateChannelEvent]
	channelSub gateway.ChannelSubscription

	login    LoginModel
	channels ChannelListModel
	messages MessagesModel

	width, height int
}

// New creates the root model showing the login screen. Subscriptions are
// attached here, before any submission can happen.
func New(ctx context.Context, opts Options) Model {
	m := Model{
		ctx:       ctx,
		opts:      opts,
		page:      PageLogin,
		loginSub:  opts.Login.Subscribe(),
		createSub: opts.Channels.Subscribe(),
		login:     NewLoginModel(ctx, opts.Login, opts.Token, opts.Username),
	}
	if opts.Messenger != nil {
		m.channelSub = opts.Messenger.Subscribe()
	}
	return m
}

// Page returns the active screen.
func (m Model) Page() Page {
	return m.page
}

// Close detaches from the mediators and the realtime stream.
func (m Model) Close() {
	m.loginSub.Close()
	m.createSub.Close()
	if m.channelSub != nil {
		m.channelSub.Close()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listenLogin(), m.listenCreate(), m.login.Init()}
	if m.channelSub != nil {
		cmds = append(cmds, m.listenChannel())
	}
	return tea.Batch(cmds...)
}

func (m Model) listenLogin() tea.Cmd {
	return listen(m.loginSub.Events(), func(ev core.LoginEvent) tea.Msg { return loginEventMsg(ev) })
}

func (m Model) listenCreate() tea.Cmd {
	return listen(m.createSub.Events(), func(ev core.CreateChannelEvent) tea.Msg { return createChannelEventMsg(ev) })
}

func (m Model) listenChannel() tea.Cmd {
	return listen(m.channelSub.Events(), func(ev gateway.ChannelEvent) tea.Msg { return channelEventMsg(ev) })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.login.SetSize(msg.Width, msg.Height)
		// Screens past the login only exist once navigated to.
		if m.page != PageLogin {
			m.channels.SetSize(msg.Width, msg.Height)
		}
		if m.page == PageMessages {
			m.messages.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case loginEventMsg:
		var cmd tea.Cmd
		if m.page == PageLogin {
			m.login, cmd = m.login.Update(msg)
		}
		return m, tea.Batch(cmd, m.listenLogin())

	case createChannelEventMsg:
		var cmd tea.Cmd
		if m.page == PageChannels {
			m.channels, cmd = m.channels.Update(msg)
		}
		return m, tea.Batch(cmd, m.listenCreate())

	case channelEventMsg:
		var cmd tea.Cmd
		if m.page == PageMessages {
			m.messages, cmd = m.messages.Update(msg)
		}
		return m, tea.Batch(cmd, m.listenChannel())

	case loggedInMsg:
		m.page = PageChannels
		m.channels = NewChannelListModel(m.ctx, m.opts.Gateway, m.opts.Channels, m.opts.ChannelTypes, m.opts.DefaultChannelType)
		m.channels.SetSize(m.width, m.height)
		return m, m.channels.Init()

	case loggedOutMsg:
		m.page = PageLogin
		m.login = NewLoginModel(m.ctx, m.opts.Login, m.opts.Token, m.login.Username())
		m.login.SetSize(m.width, m.height)
		return m, m.login.Init()

	case openChannelMsg:
		if m.opts.Messenger == nil {
			return m, nil
		}
		m.page = PageMessages
		m.messages = NewMessagesModel(m.ctx, m.opts.Messenger, msg.cid, msg.name)
		m.messages.SetSize(m.width, m.height)
		return m, m.messages.Init()

	case backToListMsg:
		m.page = PageChannels
		return m, m.channels.refresh()
	}

	var cmd tea.Cmd
	switch m.page {
	case PageLogin:
		m.login, cmd = m.login.Update(msg)
	case PageChannels:
		m.channels, cmd = m.channels.Update(msg)
	case PageMessages:
		m.messages, cmd = m.messages.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.page {
	case PageChannels:
		return m.channels.View()
	case PageMessages:
		return m.messages.View()
	default:
		return m.login.View()
	}
}
