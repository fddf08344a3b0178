package wirechat

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/vovakirdan/wirechat-client/internal/gateway"
	"github.com/vovakirdan/wirechat-client/internal/proto"
)

// CreateChannel creates a channel owned by the current session.
func (c *Client) CreateChannel(channelType, channelID string, memberIDs []string, extra map[string]string) *gateway.Call[gateway.Channel] {
	return gateway.NewCall(func(ctx context.Context) (gateway.Channel, error) {
		token, err := c.token()
		if err != nil {
			return gateway.Channel{}, err
		}
		if memberIDs == nil {
			memberIDs = []string{}
		}

		req := proto.CreateRoomRequest{
			ID:      channelID,
			Type:    channelType,
			Name:    extra["name"],
			Members: memberIDs,
			Extra:   extra,
		}

		var room proto.RoomResponse
		if err := c.do(ctx, "POST", "/api/rooms", token, req, &room); err != nil {
			// The room may exist even though the response said otherwise.
			if ch, ok := c.lookupCreated(ctx, token, channelType, channelID, err); ok {
				return ch, nil
			}
			return gateway.Channel{}, err
		}

		ch := channelFromRoom(room)
		// Servers may answer with an empty body; fall back to what was asked for.
		if ch.ID == "" {
			ch = gateway.Channel{Type: channelType, ID: channelID, Name: req.Name, Image: extra["image"]}
		}
		return ch, nil
	})
}

// lookupCreated looks for channelID after a create failed in a way that
// leaves the outcome unknown. The id is generated per request, so finding
// it means this request created the room.
func (c *Client) lookupCreated(ctx context.Context, token, channelType, channelID string, createErr error) (gateway.Channel, bool) {
	var gwErr *gateway.Error
	if !errors.As(createErr, &gwErr) {
		return gateway.Channel{}, false
	}
	switch gwErr.Code {
	case gateway.ErrCodeTransport, gateway.ErrCodeServer, gateway.ErrCodeConflict:
	default:
		return gateway.Channel{}, false
	}
	if ctx.Err() != nil {
		return gateway.Channel{}, false
	}

	endpoint := c.baseURL.JoinPath("/api/rooms")
	endpoint.RawQuery = url.Values{"type": []string{channelType}}.Encode()

	var rooms []proto.RoomResponse
	if err := c.doURL(ctx, "GET", endpoint.String(), token, nil, &rooms); err != nil {
		c.log.Debug().Err(err).Str("channel_id", channelID).Msg("lookup after failed create")
		return gateway.Channel{}, false
	}
	for _, room := range rooms {
		ch := channelFromRoom(room)
		if ch.ID == channelID && ch.Type == channelType {
			c.log.Info().Str("cid", ch.CID()).Msg("channel exists after failed create response")
			return ch, true
		}
	}
	return gateway.Channel{}, false
}

// QueryChannels lists channels visible to the current session.
// The filter is sent to the server and applied again locally.
func (c *Client) QueryChannels(filter gateway.ChannelFilter) *gateway.Call[[]gateway.Channel] {
	return gateway.NewCall(func(ctx context.Context) ([]gateway.Channel, error) {
		token, err := c.token()
		if err != nil {
			return nil, err
		}

		endpoint := c.baseURL.JoinPath("/api/rooms")
		q := url.Values{}
		for _, t := range filter.Types {
			q.Add("type", t)
		}
		if filter.Query != "" {
			q.Set("q", filter.Query)
		}
		if filter.Limit > 0 {
			q.Set("limit", strconv.Itoa(filter.Limit))
		}
		endpoint.RawQuery = q.Encode()

		var rooms []proto.RoomResponse
		if err := c.doURL(ctx, "GET", endpoint.String(), token, nil, &rooms); err != nil {
			return nil, err
		}

		return applyFilter(lo.Map(rooms, func(r proto.RoomResponse, _ int) gateway.Channel {
			return channelFromRoom(r)
		}), filter), nil
	})
}

func applyFilter(channels []gateway.Channel, filter gateway.ChannelFilter) []gateway.Channel {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	out := lo.Filter(channels, func(ch gateway.Channel, _ int) bool {
		if len(filter.Types) > 0 && !lo.Contains(filter.Types, ch.Type) {
			return false
		}
		if query != "" && !strings.Contains(strings.ToLower(ch.Name), query) {
			return false
		}
		return true
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out
}
