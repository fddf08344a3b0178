package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/wirechat-client/internal/core"
	"github.com/vovakirdan/wirechat-client/internal/gateway"
	"github.com/vovakirdan/wirechat-client/internal/mocks"
)

func newLoginFixture(t *testing.T, token *string, username string) (LoginModel, *mocks.MockGateway, <-chan core.LoginEvent) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	mediator := core.NewLoginMediator(gw, core.DefaultMinUsernameLength, nil)
	sub := mediator.Subscribe()
	t.Cleanup(sub.Close)

	return NewLoginModel(context.Background(), mediator, token, username), gw, sub.Events()
}

func TestLoginModel_PrefillsUsername(t *testing.T) {
	m, _, _ := newLoginFixture(t, nil, "ann")
	require.Equal(t, "ann", m.Username())
	require.Contains(t, m.View(), "Login as Guest")
}

func TestLoginModel_TooShortShowsInlineError(t *testing.T) {
	m, _, events := newLoginFixture(t, nil, "")

	m, _ = m.Update(typeText("a"))
	m, _ = m.Update(keyEnter)
	require.True(t, m.Pending())

	ev := mustEvent(t, events)
	require.Equal(t, core.LoginInputTooShort, ev.Kind)

	m, cmd := m.Update(loginEventMsg(ev))
	require.Nil(t, cmd)
	require.False(t, m.Pending())
	require.Equal(t, MsgUsernameTooShort, m.Error())
	require.Contains(t, m.View(), MsgUsernameTooShort)
}

func TestLoginModel_GuestButtonNavigatesOnSuccess(t *testing.T) {
	m, gw, events := newLoginFixture(t, strPtr("tok"), "")
	gw.EXPECT().ConnectGuestUser("ann", "ann").Return(gateway.Completed(struct{}{})).Times(1)

	m, _ = m.Update(typeText("ann"))
	m, _ = m.Update(keyTab)
	m, _ = m.Update(keyTab)
	m, _ = m.Update(keyEnter)

	ev := mustEvent(t, events)
	require.Equal(t, core.LoginSuccess, ev.Kind)

	m, cmd := m.Update(loginEventMsg(ev))
	require.Empty(t, m.Error())
	require.Equal(t, loggedInMsg{}, runCmd(t, cmd))
}

func TestLoginModel_UserButtonShowsGatewayError(t *testing.T) {
	m, gw, events := newLoginFixture(t, strPtr("tok"), "ann")
	gw.EXPECT().
		ConnectUser(gateway.User{ID: "ann", Name: "ann"}, "tok").
		Return(gateway.Failed[struct{}](gateway.NewError(gateway.ErrCodeUnauthorized, "invalid token"))).
		Times(1)

	m, _ = m.Update(keyTab)
	m, _ = m.Update(keyEnter)

	// Keys are ignored while the login is in flight.
	m, _ = m.Update(keyEnter)

	ev := mustEvent(t, events)
	m, _ = m.Update(loginEventMsg(ev))
	require.Equal(t, "invalid token", m.Error())
	require.True(t, strings.Contains(m.View(), "invalid token"))
}

func TestLoginModel_EnterOnInputUsesConfiguredToken(t *testing.T) {
	m, gw, events := newLoginFixture(t, strPtr("tok"), "bob")
	gw.EXPECT().ConnectUser(gateway.User{ID: "bob", Name: "bob"}, "tok").Return(gateway.Completed(struct{}{})).Times(1)

	_, _ = m.Update(keyEnter)
	require.Equal(t, core.LoginSuccess, mustEvent(t, events).Kind)
}

func TestLoginModel_UserButtonWithoutToken(t *testing.T) {
	m, gw, events := newLoginFixture(t, nil, "bob")
	gw.EXPECT().
		ConnectUser(gateway.User{ID: "bob", Name: "bob"}, "").
		Return(gateway.Failed[struct{}](gateway.NewError(gateway.ErrCodeUnauthorized, "token is required"))).
		Times(1)

	m, _ = m.Update(keyTab)
	_, _ = m.Update(keyEnter)

	ev := mustEvent(t, events)
	require.Equal(t, core.LoginEvent{Kind: core.LoginFailed, Error: "token is required"}, ev)
}

func TestLoginModel_TypingOnlyReachesInputWhenFocused(t *testing.T) {
	m, _, _ := newLoginFixture(t, nil, "an")

	m, _ = m.Update(keyTab)
	m, _ = m.Update(typeText("x"))
	require.Equal(t, "an", m.Username())

	m, _ = m.Update(keyTab)
	m, _ = m.Update(keyTab)
	m, _ = m.Update(typeText("n"))
	m, _ = m.Update(keyBackspace)
	m, _ = m.Update(typeText("n"))
	require.Equal(t, "ann", m.Username())
}

func strPtr(s string) *string {
	return &s
}
