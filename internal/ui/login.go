package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wirechat-client/internal/core"
)

// MsgUsernameTooShort is shown for core.LoginInputTooShort.
const MsgUsernameTooShort = "username too short"

type loginFocus int

const (
	focusUsername loginFocus = iota
	focusUserButton
	focusGuestButton
	loginFocusCount
)

// LoginModel is the login screen.
type LoginModel struct {
	ctx   context.Context
	login *core.LoginMediator
	token *string

	input   textinput.Model
	spinner spinner.Model
	focus   loginFocus
	pending bool
	err     string
	width   int

	styles Styles
}

// NewLoginModel creates the login screen. token is passed to the registered
// flow; a nil token still lets the user try it and see the gateway's answer.
func NewLoginModel(ctx context.Context, login *core.LoginMediator, token *string, username string) LoginModel {
	in := textinput.New()
	in.Placeholder = "username"
	in.CharLimit = 64
	in.Width = 32
	in.SetValue(username)
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(Primary)

	return LoginModel{
		ctx:     ctx,
		login:   login,
		token:   token,
		input:   in,
		spinner: sp,
		styles:  DefaultStyles(),
	}
}

// Init initializes the model.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the available width.
func (m *LoginModel) SetSize(width, _ int) {
	m.width = width
}

// Username returns the current draft.
func (m LoginModel) Username() string {
	return m.input.Value()
}

// Pending reports whether a login is in flight.
func (m LoginModel) Pending() bool {
	return m.pending
}

// Error returns the message shown under the form.
func (m LoginModel) Error() string {
	return m.err
}

// Update handles messages.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginEventMsg:
		return m.handleEvent(core.LoginEvent(msg))

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.pending {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % loginFocusCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + loginFocusCount - 1) % loginFocusCount)
			return m, nil
		case "enter":
			switch m.focus {
			case focusUserButton:
				return m.submit(true)
			case focusGuestButton:
				return m.submit(false)
			default:
				return m.submit(m.token != nil)
			}
		}
	}

	if m.focus != focusUsername {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *LoginModel) setFocus(f loginFocus) {
	m.focus = f
	if f == focusUsername {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m LoginModel) submit(registered bool) (LoginModel, tea.Cmd) {
	var token *string
	if registered {
		token = m.token
		if token == nil {
			empty := ""
			token = &empty
		}
	}

	m.err = ""
	m.pending = true
	m.login.SubmitLogin(m.ctx, m.input.Value(), token)
	return m, m.spinner.Tick
}

func (m LoginModel) handleEvent(ev core.LoginEvent) (LoginModel, tea.Cmd) {
	m.pending = false
	switch ev.Kind {
	case core.LoginSuccess:
		m.err = ""
		return m, navigate(loggedInMsg{})
	case core.LoginInputTooShort:
		m.err = MsgUsernameTooShort
	case core.LoginFailed:
		m.err = ev.Error
	}
	return m, nil
}

// View renders the login form.
func (m LoginModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("wirechat"))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Username"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	userBtn, guestBtn := m.styles.Button, m.styles.Button
	switch m.focus {
	case focusUserButton:
		userBtn = m.styles.ActiveButton
	case focusGuestButton:
		guestBtn = m.styles.ActiveButton
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		userBtn.Render("Login as User"),
		guestBtn.Render("Login as Guest"),
	))
	b.WriteString("\n\n")

	switch {
	case m.pending:
		b.WriteString(m.spinner.View() + " Connecting...")
	case m.err != "":
		b.WriteString(m.styles.Error.Render(m.err))
	}

	b.WriteString(m.styles.Help.Render("tab: switch field • enter: login • ctrl+c: quit"))
	return m.styles.Frame.Render(b.String())
}
