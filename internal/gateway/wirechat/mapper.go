package wirechat

import (
	"encoding/json"
	"time"

	"github.com/vovakirdan/wirechat-client/internal/gateway"
	"github.com/vovakirdan/wirechat-client/internal/proto"
)

func channelFromRoom(room proto.RoomResponse) gateway.Channel {
	ch := gateway.Channel{
		Type:        room.Type,
		ID:          room.ID,
		Name:        room.Name,
		Image:       room.Image,
		MemberCount: room.MemberCount,
	}
	if room.CID != "" {
		if typ, id, ok := gateway.ParseCID(room.CID); ok {
			ch.Type, ch.ID = typ, id
		}
	}
	if ch.Name == "" {
		ch.Name = ch.ID
	}
	if ts, err := time.Parse(time.RFC3339, room.CreatedAt); err == nil {
		ch.CreatedAt = ts
	}
	return ch
}

func messageFromEvent(ev proto.EventMessage) gateway.Message {
	return gateway.Message{
		ID:        ev.ID,
		CID:       ev.Room,
		User:      ev.User,
		Text:      ev.Text,
		CreatedAt: time.Unix(ev.TS, 0),
	}
}

// eventFromOutbound maps a server envelope to a channel event.
// Unknown envelopes are reported with ok == false.
func eventFromOutbound(out proto.Outbound) (gateway.ChannelEvent, bool, error) {
	if out.Type == proto.OutboundTypeError {
		if out.Error == nil {
			return gateway.ChannelEvent{
				Kind: gateway.ChannelEventError,
				Err:  gateway.NewError(gateway.ErrCodeServer, "unknown error"),
			}, true, nil
		}
		return gateway.ChannelEvent{
			Kind: gateway.ChannelEventError,
			Err:  gateway.NewError(out.Error.Code, out.Error.Msg),
		}, true, nil
	}

	switch out.Event {
	case proto.EventNameMessage:
		var msg proto.EventMessage
		if err := json.Unmarshal(out.Data, &msg); err != nil {
			return gateway.ChannelEvent{}, false, err
		}
		return gateway.ChannelEvent{
			Kind:    gateway.ChannelEventMessage,
			CID:     msg.Room,
			User:    msg.User,
			Message: messageFromEvent(msg),
		}, true, nil
	case proto.EventNameHistory:
		var history proto.EventHistory
		if err := json.Unmarshal(out.Data, &history); err != nil {
			return gateway.ChannelEvent{}, false, err
		}
		messages := make([]gateway.Message, 0, len(history.Messages))
		for _, msg := range history.Messages {
			m := messageFromEvent(msg)
			if m.CID == "" {
				m.CID = history.Room
			}
			messages = append(messages, m)
		}
		return gateway.ChannelEvent{
			Kind:     gateway.ChannelEventHistory,
			CID:      history.Room,
			Messages: messages,
		}, true, nil
	case proto.EventNameUserJoined:
		var joined proto.EventUserJoined
		if err := json.Unmarshal(out.Data, &joined); err != nil {
			return gateway.ChannelEvent{}, false, err
		}
		return gateway.ChannelEvent{Kind: gateway.ChannelEventUserJoined, CID: joined.Room, User: joined.User}, true, nil
	case proto.EventNameUserLeft:
		var left proto.EventUserLeft
		if err := json.Unmarshal(out.Data, &left); err != nil {
			return gateway.ChannelEvent{}, false, err
		}
		return gateway.ChannelEvent{Kind: gateway.ChannelEventUserLeft, CID: left.Room, User: left.User}, true, nil
	default:
		return gateway.ChannelEvent{}, false, nil
	}
}
