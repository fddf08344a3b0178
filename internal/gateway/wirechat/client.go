package wirechat

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/wirechat-client/internal/auth"
	"github.com/vovakirdan/wirechat-client/internal/event"
	"github.com/vovakirdan/wirechat-client/internal/gateway"
	"github.com/vovakirdan/wirechat-client/internal/proto"
	"github.com/vovakirdan/wirechat-client/internal/store"
)

// Options configures a Client.
type Options struct {
	// ServerURL is the http(s) base URL of the wirechat server.
	ServerURL      string
	RequestTimeout time.Duration
	RetryMax       int
	// Realtime opens the WebSocket connection on connect.
	Realtime bool
	// Sessions persists the established session. Optional.
	Sessions store.SessionStore
	Logger   *zerolog.Logger
}

// Client implements gateway.Client against a wirechat server.
type Client struct {
	baseURL  *url.URL
	wsURL    string
	http     *retryablehttp.Client
	realtime bool
	sessions store.SessionStore
	events   *event.Bus[gateway.ChannelEvent]
	log      *zerolog.Logger
	now      func() time.Time

	mu      sync.Mutex
	session *store.Session
	conn    *realtimeConn
}

var _ gateway.Client = (*Client)(nil)

// New builds a client. No network traffic happens until a connect call.
func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.ServerURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("server url must be http or https, got %q", opts.ServerURL)
	}

	logger := opts.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Client{
		baseURL:  base,
		wsURL:    websocketURL(base),
		http:     newHTTPClient(opts, logger),
		realtime: opts.Realtime,
		sessions: opts.Sessions,
		events:   event.NewBus[gateway.ChannelEvent]("channel_events", logger),
		log:      logger,
		now:      time.Now,
	}, nil
}

func websocketURL(base *url.URL) string {
	ws := *base
	if ws.Scheme == "https" {
		ws.Scheme = "wss"
	} else {
		ws.Scheme = "ws"
	}
	ws.Path = strings.TrimRight(ws.Path, "/") + "/ws"
	return ws.String()
}

// ConnectUser opens a registered session for user authenticated by token.
func (c *Client) ConnectUser(user gateway.User, token string) *gateway.Call[struct{}] {
	return gateway.NewCall(func(ctx context.Context) (struct{}, error) {
		if token == "" {
			return struct{}{}, gateway.NewError(gateway.ErrCodeUnauthorized, "token is required")
		}
		if err := c.checkToken(user, token); err != nil {
			return struct{}{}, err
		}

		var me proto.UserResponse
		if err := c.do(ctx, "GET", "/api/me", token, nil, &me); err != nil {
			return struct{}{}, err
		}
		if me.Username != "" && me.Username != user.ID {
			return struct{}{}, gateway.NewError(gateway.ErrCodeTokenMismatch, auth.ErrTokenMismatch.Error())
		}

		name := user.Name
		if name == "" {
			name = user.ID
		}
		return struct{}{}, c.establish(ctx, &store.Session{UserID: user.ID, Name: name, Token: token})
	})
}

// ConnectGuestUser opens an anonymous session.
func (c *Client) ConnectGuestUser(userID, name string) *gateway.Call[struct{}] {
	return gateway.NewCall(func(ctx context.Context) (struct{}, error) {
		var resp proto.AuthResponse
		if err := c.do(ctx, "POST", "/api/guest", "", proto.GuestRequest{UserID: userID, Username: name}, &resp); err != nil {
			return struct{}{}, err
		}
		if resp.Token == "" {
			return struct{}{}, gateway.NewError(gateway.ErrCodeServer, "server returned no token")
		}
		return struct{}{}, c.establish(ctx, &store.Session{UserID: userID, Name: name, Token: resp.Token, IsGuest: true})
	})
}

func (c *Client) checkToken(user gateway.User, token string) error {
	claims, err := auth.InspectToken(token, c.now())
	switch {
	case errors.Is(err, auth.ErrMalformedToken):
		// Opaque tokens are left for the server to judge.
		c.log.Debug().Msg("token is not a JWT, skipping local checks")
		return nil
	case errors.Is(err, auth.ErrTokenExpired):
		return gateway.Wrap(gateway.ErrCodeTokenExpired, "token expired", err)
	case err != nil:
		return gateway.Wrap(gateway.ErrCodeUnauthorized, "invalid token", err)
	}
	if err := auth.CheckOwner(claims, user.ID); err != nil {
		return gateway.Wrap(gateway.ErrCodeTokenMismatch, err.Error(), err)
	}
	return nil
}

// establish replaces the current session with sess.
func (c *Client) establish(ctx context.Context, sess *store.Session) error {
	var conn *realtimeConn
	if c.realtime {
		var err error
		conn, err = dialRealtime(ctx, c.wsURL, sess, c.events, c.log, c.detach)
		if err != nil {
			return gateway.Wrap(gateway.ErrCodeTransport, fmt.Sprintf("realtime connection failed: %v", err), err)
		}
	}

	c.mu.Lock()
	previous := c.conn
	c.session = sess
	c.conn = conn
	c.mu.Unlock()

	if previous != nil {
		previous.close()
	}

	if c.sessions != nil {
		if err := c.sessions.SaveSession(ctx, sess); err != nil {
			c.log.Warn().Err(err).Msg("failed to persist session")
		}
	}

	c.log.Info().Str("user", sess.UserID).Bool("guest", sess.IsGuest).Bool("realtime", conn != nil).Msg("session established")
	return nil
}

// detach forgets conn once its read loop has stopped. The session stays,
// so later realtime calls report ErrNotConnected.
func (c *Client) detach(conn *realtimeConn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == conn {
		c.conn = nil
	}
}

// Disconnect closes the current session and forgets it.
func (c *Client) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.session = nil
	c.mu.Unlock()

	if conn != nil {
		conn.close()
	}

	if c.sessions != nil {
		if err := c.sessions.DeleteSession(ctx); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}
	return nil
}

// Close drops the realtime connection but keeps the stored session, so the
// next run can offer it again.
func (c *Client) Close() {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		conn.close()
	}
}

// CurrentUser returns the user of the active session.
func (c *Client) CurrentUser() (gateway.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return gateway.User{}, false
	}
	return gateway.User{ID: c.session.UserID, Name: c.session.Name}, true
}

func (c *Client) token() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return "", gateway.ErrNotConnected
	}
	return c.session.Token, nil
}

func (c *Client) connection() (*realtimeConn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil, gateway.ErrNotConnected
	}
	return c.conn, nil
}
