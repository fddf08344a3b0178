package wirechat

import (
	"context"
	"strings"

	"github.com/vovakirdan/wirechat-client/internal/event"
	"github.com/vovakirdan/wirechat-client/internal/gateway"
	"github.com/vovakirdan/wirechat-client/internal/proto"
)

// WatchChannel joins cid on the realtime connection. History and new
// messages arrive on Subscribe.
func (c *Client) WatchChannel(cid string) *gateway.Call[struct{}] {
	return c.roomCommand(proto.InboundTypeJoin, cid)
}

// StopWatching leaves cid.
func (c *Client) StopWatching(cid string) *gateway.Call[struct{}] {
	return c.roomCommand(proto.InboundTypeLeave, cid)
}

// SendMessage posts text to cid.
func (c *Client) SendMessage(cid, text string) *gateway.Call[struct{}] {
	return gateway.NewCall(func(ctx context.Context) (struct{}, error) {
		if _, _, ok := gateway.ParseCID(cid); !ok {
			return struct{}{}, gateway.ErrInvalidCID
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return struct{}{}, gateway.NewError(gateway.ErrCodeBadRequest, "message is empty")
		}
		conn, err := c.connection()
		if err != nil {
			return struct{}{}, err
		}
		if err := conn.send(ctx, proto.InboundTypeMsg, proto.MsgData{Room: cid, Text: text}); err != nil {
			return struct{}{}, gateway.Wrap(gateway.ErrCodeTransport, "send failed", err)
		}
		return struct{}{}, nil
	})
}

// Subscribe attaches to realtime channel events.
func (c *Client) Subscribe() gateway.ChannelSubscription {
	return c.events.Subscribe(event.DefaultBuffer * 4)
}

func (c *Client) roomCommand(kind, cid string) *gateway.Call[struct{}] {
	return gateway.NewCall(func(ctx context.Context) (struct{}, error) {
		if _, _, ok := gateway.ParseCID(cid); !ok {
			return struct{}{}, gateway.ErrInvalidCID
		}
		conn, err := c.connection()
		if err != nil {
			return struct{}{}, err
		}
		if err := conn.send(ctx, kind, proto.JoinData{Room: cid}); err != nil {
			return struct{}{}, gateway.Wrap(gateway.ErrCodeTransport, kind+" failed", err)
		}
		return struct{}{}, nil
	})
}
