package gateway

import (
	"context"
	"strings"
	"time"
)

// User is the identity a registered session is opened for.
type User struct {
	ID   string
	Name string
}

// Channel is a conversation as listed by the server.
type Channel struct {
	Type        string
	ID          string
	Name        string
	Image       string
	MemberCount int
	CreatedAt   time.Time
}

// CID returns the composite "type:id" identifier used to address a channel.
func (c Channel) CID() string {
	return c.Type + ":" + c.ID
}

// ParseCID splits a composite channel identifier into type and id.
func ParseCID(cid string) (channelType, channelID string, ok bool) {
	channelType, channelID, ok = strings.Cut(cid, ":")
	if !ok || channelType == "" || channelID == "" {
		return "", "", false
	}
	return channelType, channelID, true
}

// ChannelFilter restricts a channel listing.
type ChannelFilter struct {
	// Types keeps channels whose type is in the list. Empty means any type.
	Types []string
	// Query matches channel names case-insensitively.
	Query string
	Limit int
}

// Message is a chat message inside a channel.
type Message struct {
	ID        int64
	CID       string
	User      string
	Text      string
	CreatedAt time.Time
}

// ChannelEventKind tells what happened in a watched channel.
type ChannelEventKind int

const (
	// ChannelEventMessage carries a new message.
	ChannelEventMessage ChannelEventKind = iota
	// ChannelEventHistory carries recent messages delivered on watch.
	ChannelEventHistory
	// ChannelEventUserJoined notifies about a user joining.
	ChannelEventUserJoined
	// ChannelEventUserLeft notifies about a user leaving.
	ChannelEventUserLeft
	// ChannelEventError carries a server-side error for the session.
	ChannelEventError
)

// ChannelEvent is emitted for watched channels.
type ChannelEvent struct {
	Kind     ChannelEventKind
	CID      string
	User     string
	Message  Message
	Messages []Message
	Err      *Error
}

//go:generate mockgen -destination=../mocks/mock_gateway.go -package=mocks github.com/vovakirdan/wirechat-client/internal/gateway Gateway
//go:generate mockgen -destination=../mocks/mock_messenger.go -package=mocks github.com/vovakirdan/wirechat-client/internal/gateway Messenger

// Gateway is the session-owning chat client consumed by the mediators.
type Gateway interface {
	// ConnectUser opens a registered session for user authenticated by token.
	ConnectUser(user User, token string) *Call[struct{}]

	// ConnectGuestUser opens an anonymous session.
	ConnectGuestUser(userID, name string) *Call[struct{}]

	// CreateChannel creates a channel with the given members and extra data.
	CreateChannel(channelType, channelID string, memberIDs []string, extra map[string]string) *Call[Channel]

	// QueryChannels lists channels visible to the current session.
	QueryChannels(filter ChannelFilter) *Call[[]Channel]

	// Disconnect closes the current session and forgets it.
	Disconnect(ctx context.Context) error
}

// Messenger is the realtime facet of a session.
type Messenger interface {
	// WatchChannel starts receiving events for cid.
	WatchChannel(cid string) *Call[struct{}]

	// StopWatching stops receiving events for cid.
	StopWatching(cid string) *Call[struct{}]

	// SendMessage posts text to cid.
	SendMessage(cid, text string) *Call[struct{}]

	// Subscribe attaches to the realtime event stream.
	Subscribe() ChannelSubscription
}

// ChannelSubscription is a detachable stream of channel events.
type ChannelSubscription interface {
	Events() <-chan ChannelEvent
	Close()
}

// Client is a gateway offering both session management and realtime messaging.
type Client interface {
	Gateway
	Messenger
}
