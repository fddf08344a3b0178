package ui

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/wirechat-client/internal/core"
	"github.com/vovakirdan/wirechat-client/internal/gateway"
	"github.com/vovakirdan/wirechat-client/internal/mocks"
)

var testTypes = []string{"gaming", "messaging", "commerce", "team", "livestream"}

func newChannelsFixture(t *testing.T) (ChannelListModel, *mocks.MockGateway, <-chan core.CreateChannelEvent) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	mediator := core.NewChannelMediator(gw, nil)
	sub := mediator.Subscribe()
	t.Cleanup(sub.Close)

	m := NewChannelListModel(context.Background(), gw, mediator, testTypes, core.DefaultChannelType)
	m.SetSize(80, 24)
	return m, gw, sub.Events()
}

func loadChannels(t *testing.T, m ChannelListModel, gw *mocks.MockGateway, channels []gateway.Channel) ChannelListModel {
	t.Helper()

	gw.EXPECT().
		QueryChannels(gateway.ChannelFilter{Types: testTypes}).
		Return(gateway.Completed(channels)).
		Times(1)

	m, _ = m.Update(runCmd(t, m.Init()))
	return m
}

func TestChannelListModel_LoadsChannels(t *testing.T) {
	m, gw, _ := newChannelsFixture(t)
	channels := []gateway.Channel{
		{Type: "messaging", ID: "1", Name: "general"},
		{Type: "team", ID: "2", Name: "Team Sync", MemberCount: 3},
	}

	m = loadChannels(t, m, gw, channels)
	require.Equal(t, channels, m.Channels())

	view := m.View()
	require.Contains(t, view, ChannelListTitle)
	require.Contains(t, view, "general")
	require.Contains(t, view, "Team Sync")
}

func TestChannelListModel_LoadErrorIsToasted(t *testing.T) {
	m, gw, _ := newChannelsFixture(t)
	gw.EXPECT().
		QueryChannels(gomock.Any()).
		Return(gateway.Failed[[]gateway.Channel](gateway.NewError(gateway.ErrCodeTransport, "connection refused"))).
		Times(1)

	m, _ = m.Update(runCmd(t, m.Init()))
	require.Equal(t, "connection refused", m.Status())
	require.Empty(t, m.Channels())
}

func TestChannelListModel_EnterOpensSelectedChannel(t *testing.T) {
	m, gw, _ := newChannelsFixture(t)
	m = loadChannels(t, m, gw, []gateway.Channel{{Type: "team", ID: "abc", Name: "Team Sync"}})

	_, cmd := m.Update(keyEnter)
	require.Equal(t, openChannelMsg{cid: "team:abc", name: "Team Sync"}, runCmd(t, cmd))
}

func TestChannelListModel_DismissingEmptyDialogSubmits(t *testing.T) {
	for _, key := range []struct {
		name string
		msg  any
	}{{"enter", keyEnter}, {"esc", keyEsc}} {
		t.Run(key.name, func(t *testing.T) {
			m, _, events := newChannelsFixture(t) // no CreateChannel expected

			m, _ = m.Update(keyNewChat)
			require.True(t, m.DialogOpen())

			m, _ = m.Update(key.msg)
			require.False(t, m.DialogOpen())

			ev := mustEvent(t, events)
			require.Equal(t, core.CreateChannelEvent{Kind: core.CreateChannelError, Error: core.MsgEnterChannelName}, ev)

			m, _ = m.Update(createChannelEventMsg(ev))
			require.Equal(t, core.MsgEnterChannelName, m.Status())
		})
	}
}

func TestChannelListModel_CreateSuccessToastsAndRefreshes(t *testing.T) {
	m, gw, events := newChannelsFixture(t)
	created := gateway.Channel{Type: core.DefaultChannelType, ID: "new", Name: "Team Sync"}

	gw.EXPECT().
		CreateChannel(core.DefaultChannelType, gomock.Any(), []string{}, map[string]string{
			core.ExtraKeyName:  "Team Sync",
			core.ExtraKeyImage: "",
		}).
		Return(gateway.Completed(created)).
		Times(1)

	m, _ = m.Update(keyNewChat)
	m, _ = m.Update(typeText("Team Sync"))
	m, _ = m.Update(keyEnter)

	ev := mustEvent(t, events)
	require.Equal(t, core.CreateChannelSuccess, ev.Kind)

	m, cmd := m.Update(createChannelEventMsg(ev))
	require.Equal(t, MsgChannelCreated, m.Status())
	require.NotNil(t, cmd)
}

func TestChannelListModel_CreateFailureIsToasted(t *testing.T) {
	m, gw, events := newChannelsFixture(t)
	gw.EXPECT().
		CreateChannel(core.DefaultChannelType, gomock.Any(), []string{}, gomock.Any()).
		Return(gateway.Failed[gateway.Channel](gateway.NewError(gateway.ErrCodeTransport, "network down"))).
		Times(1)

	m, _ = m.Update(keyNewChat)
	m, _ = m.Update(typeText("x"))
	m, _ = m.Update(keyEsc)

	m, _ = m.Update(createChannelEventMsg(mustEvent(t, events)))
	require.Equal(t, "network down", m.Status())
}

func TestChannelListModel_LogoutDisconnects(t *testing.T) {
	m, gw, _ := newChannelsFixture(t)
	gw.EXPECT().Disconnect(gomock.Any()).Return(nil).Times(1)

	_, cmd := m.Update(keyCtrlL)
	require.Equal(t, loggedOutMsg{}, runCmd(t, cmd))
}

func TestChannelListModel_FilteringKeepsKeys(t *testing.T) {
	m, gw, _ := newChannelsFixture(t)
	m = loadChannels(t, m, gw, []gateway.Channel{{Type: "team", ID: "abc", Name: "Team Sync"}})

	m, _ = m.Update(typeText("/"))
	require.Equal(t, list.Filtering, m.list.FilterState())

	// "n" is part of the search, not the new-chat shortcut.
	m, _ = m.Update(keyNewChat)
	require.False(t, m.DialogOpen())
}
