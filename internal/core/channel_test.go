package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/wirechat-client/internal/gateway"
	"github.com/vovakirdan/wirechat-client/internal/mocks"
)

func TestSubmitChannelCreation_BlankNameIsRejected(t *testing.T) {
	for _, name := range []string{"", " ", "  ", "\t\n"} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gw := mocks.NewMockGateway(ctrl) // no expectations: any call fails the test

			m := NewChannelMediator(gw, nil)
			sub := m.Subscribe()
			defer sub.Close()

			m.SubmitChannelCreation(context.Background(), name, "")

			require.Equal(t,
				CreateChannelEvent{Kind: CreateChannelError, Error: MsgEnterChannelName},
				mustEvent(t, sub.C))
			mustNoEvent(t, sub.C)
		})
	}
}

func TestSubmitChannelCreation_GatewayFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	gw.EXPECT().
		CreateChannel(DefaultChannelType, gomock.Any(), []string{}, map[string]string{
			ExtraKeyName:  "Team Sync",
			ExtraKeyImage: "",
		}).
		Return(gateway.Failed[gateway.Channel](gateway.NewError(gateway.ErrCodeTransport, "network down"))).
		Times(1)

	m := NewChannelMediator(gw, nil)
	sub := m.Subscribe()
	defer sub.Close()

	m.SubmitChannelCreation(context.Background(), "  Team Sync ", "")

	require.Equal(t,
		CreateChannelEvent{Kind: CreateChannelError, Error: "network down"},
		mustEvent(t, sub.C))
	mustNoEvent(t, sub.C)
}

func TestSubmitChannelCreation_FailureWithoutMessageUsesFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	gw.EXPECT().
		CreateChannel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(gateway.Failed[gateway.Channel](gateway.NewError(gateway.ErrCodeServer, ""))).
		Times(1)

	m := NewChannelMediator(gw, nil)
	sub := m.Subscribe()
	defer sub.Close()

	m.SubmitChannelCreation(context.Background(), "general", "")

	require.Equal(t,
		CreateChannelEvent{Kind: CreateChannelError, Error: MsgUnknownError},
		mustEvent(t, sub.C))
}

func TestSubmitChannelCreation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	gw.EXPECT().
		CreateChannel("team", gomock.Any(), []string{}, gomock.Any()).
		DoAndReturn(func(channelType, channelID string, _ []string, extra map[string]string) *gateway.Call[gateway.Channel] {
			return gateway.Completed(gateway.Channel{Type: channelType, ID: channelID, Name: extra[ExtraKeyName]})
		}).
		Times(1)

	m := NewChannelMediator(gw, nil)
	sub := m.Subscribe()
	defer sub.Close()

	m.SubmitChannelCreation(context.Background(), "ops", "team")

	ev := mustEvent(t, sub.C)
	require.Equal(t, CreateChannelSuccess, ev.Kind)
	require.Equal(t, "team", ev.Channel.Type)
	require.Equal(t, "ops", ev.Channel.Name)
	require.NotEmpty(t, ev.Channel.ID)
	mustNoEvent(t, sub.C)
}

func TestSubmitChannelCreation_GeneratesDistinctIDs(t *testing.T) {
	const n = 50

	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	ids := make(chan string, n)
	gw.EXPECT().
		CreateChannel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(channelType, channelID string, _ []string, _ map[string]string) *gateway.Call[gateway.Channel] {
			ids <- channelID
			return gateway.Completed(gateway.Channel{Type: channelType, ID: channelID})
		}).
		Times(n)

	m := NewChannelMediator(gw, nil)
	sub := m.Subscribe()
	defer sub.Close()

	for i := 0; i < n; i++ {
		m.SubmitChannelCreation(context.Background(), "same name", "")
	}

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		require.Equal(t, CreateChannelSuccess, mustEvent(t, sub.C).Kind)
		id := <-ids
		_, dup := seen[id]
		require.False(t, dup, "channel id %q reused", id)
		seen[id] = struct{}{}
	}
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	gw.EXPECT().Disconnect(gomock.Any()).Return(nil).Times(1)
	gw.EXPECT().Disconnect(gomock.Any()).Return(errors.New("boom")).Times(1)

	m := NewChannelMediator(gw, nil)
	require.NoError(t, m.Logout(context.Background()))
	require.Error(t, m.Logout(context.Background()))
}
