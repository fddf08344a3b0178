package core

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/wirechat-client/internal/event"
	"github.com/vovakirdan/wirechat-client/internal/gateway"
	"github.com/vovakirdan/wirechat-client/internal/utils"
)

// DefaultChannelType is used when SubmitChannelCreation gets no type.
const DefaultChannelType = "messaging"

// Extra data keys sent with every new channel.
const (
	ExtraKeyName  = "name"
	ExtraKeyImage = "image"
)

// ChannelMediator turns channel-creation intents into gateway calls and
// republishes their outcome as CreateChannelEvents.
type ChannelMediator struct {
	gw     gateway.Gateway
	events *event.Bus[CreateChannelEvent]
	log    *zerolog.Logger
	newID  func() string
}

// NewChannelMediator constructs a mediator over gw.
func NewChannelMediator(gw gateway.Gateway, logger *zerolog.Logger) *ChannelMediator {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &ChannelMediator{
		gw:     gw,
		events: event.NewBus[CreateChannelEvent]("create_channel", logger),
		log:    logger,
		newID:  utils.NewID,
	}
}

// Subscribe attaches to the channel-creation event stream.
func (m *ChannelMediator) Subscribe() *event.Subscription[CreateChannelEvent] {
	return m.events.Subscribe(event.DefaultBuffer)
}

// SubmitChannelCreation starts creating a channel named name and returns
// immediately. An empty channelType selects DefaultChannelType.
func (m *ChannelMediator) SubmitChannelCreation(ctx context.Context, name, channelType string) {
	if channelType == "" {
		channelType = DefaultChannelType
	}
	channelID := m.newID()
	name = strings.TrimSpace(name)

	if name == "" {
		m.emit(CreateChannelEvent{Kind: CreateChannelError, Error: MsgEnterChannelName})
		return
	}

	extra := map[string]string{
		ExtraKeyName:  name,
		ExtraKeyImage: "",
	}

	m.log.Info().Str("type", channelType).Str("channel_id", channelID).Str("name", name).Msg("creating channel")
	m.gw.CreateChannel(channelType, channelID, []string{}, extra).
		Enqueue(ctx, func(res gateway.Result[gateway.Channel]) {
			if res.IsSuccess() {
				m.log.Info().Str("cid", res.Value.CID()).Msg("channel created")
				m.emit(CreateChannelEvent{Kind: CreateChannelSuccess, Channel: res.Value})
				return
			}
			m.log.Warn().Err(res.Err).Str("channel_id", channelID).Msg("channel creation failed")
			m.emit(CreateChannelEvent{
				Kind:  CreateChannelError,
				Error: messageOr(gateway.MessageOf(res.Err), MsgUnknownError),
			})
		})
}

// Logout closes the gateway session.
func (m *ChannelMediator) Logout(ctx context.Context) error {
	if err := m.gw.Disconnect(ctx); err != nil {
		m.log.Warn().Err(err).Msg("disconnect failed")
		return err
	}
	m.log.Info().Msg("logged out")
	return nil
}

func (m *ChannelMediator) emit(ev CreateChannelEvent) {
	m.events.Publish(ev)
}
