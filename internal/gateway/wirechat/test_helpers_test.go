package wirechat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/wirechat-client/internal/gateway"
	"github.com/vovakirdan/wirechat-client/internal/proto"
	"github.com/vovakirdan/wirechat-client/internal/store"
	"github.com/vovakirdan/wirechat-client/internal/store/sqlite"
)

// fakeServer is a minimal wirechat server for client tests.
type fakeServer struct {
	t *testing.T

	// tokens maps accepted bearer tokens to usernames.
	tokens map[string]string

	mu       sync.Mutex
	rooms    []proto.RoomResponse
	created  []proto.CreateRoomRequest
	query    map[string][]string
	hellos   []proto.HelloData
	failNext int    // respond 500 to this many requests
	failMsg  string // body message for injected failures
	// lostCreates stores this many rooms and then answers 502 anyway.
	lostCreates int

	requests atomic.Int32
}

func newFakeServer(t *testing.T) (*fakeServer, *httptest.Server) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	fs := &fakeServer{t: t, tokens: map[string]string{}}

	r := gin.New()
	r.Use(fs.countAndFail)
	r.POST("/api/guest", fs.guest)
	r.GET("/ws", fs.websocket)

	api := r.Group("/api")
	api.Use(fs.auth)
	api.GET("/me", fs.me)
	api.GET("/rooms", fs.listRooms)
	api.POST("/rooms", fs.createRoom)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return fs, ts
}

func (fs *fakeServer) countAndFail(c *gin.Context) {
	if c.Request.URL.Path != "/ws" {
		fs.requests.Add(1)
	}
	fs.mu.Lock()
	fail := fs.failNext > 0
	if fail {
		fs.failNext--
	}
	msg := fs.failMsg
	fs.mu.Unlock()

	if fail {
		c.AbortWithStatusJSON(http.StatusInternalServerError, proto.ErrorResponse{Error: msg})
		return
	}
	c.Next()
}

func (fs *fakeServer) auth(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	fs.mu.Lock()
	username, ok := fs.tokens[token]
	fs.mu.Unlock()
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, proto.ErrorResponse{Error: "invalid token"})
		return
	}
	c.Set("username", username)
	c.Next()
}

func (fs *fakeServer) guest(c *gin.Context) {
	var req proto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, proto.ErrorResponse{Error: "invalid request body"})
		return
	}
	token := "guest-" + req.UserID
	fs.mu.Lock()
	fs.tokens[token] = req.UserID
	fs.mu.Unlock()
	c.JSON(http.StatusOK, proto.AuthResponse{Token: token})
}

func (fs *fakeServer) me(c *gin.Context) {
	username := c.GetString("username")
	c.JSON(http.StatusOK, proto.UserResponse{ID: 1, Username: username, Name: username})
}

func (fs *fakeServer) listRooms(c *gin.Context) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.query = c.Request.URL.Query()
	c.JSON(http.StatusOK, fs.rooms)
}

func (fs *fakeServer) createRoom(c *gin.Context) {
	var req proto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, proto.ErrorResponse{Error: "invalid request body"})
		return
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, room := range fs.rooms {
		if room.Name == req.Name {
			c.JSON(http.StatusConflict, proto.ErrorResponse{Error: "room with this name already exists"})
			return
		}
	}
	fs.created = append(fs.created, req)
	room := proto.RoomResponse{
		ID:        req.ID,
		CID:       req.Type + ":" + req.ID,
		Type:      req.Type,
		Name:      req.Name,
		Image:     req.Extra["image"],
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	fs.rooms = append(fs.rooms, room)
	if fs.lostCreates > 0 {
		fs.lostCreates--
		c.JSON(http.StatusBadGateway, proto.ErrorResponse{Error: "bad gateway"})
		return
	}
	c.JSON(http.StatusCreated, room)
}

// websocket echoes joins as history and msgs as message events.
func (fs *fakeServer) websocket(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	ctx := c.Request.Context()
	var user string
	for {
		var in proto.Inbound
		if err := wsjson.Read(ctx, conn, &in); err != nil {
			return
		}
		switch in.Type {
		case proto.InboundTypeHello:
			var hello proto.HelloData
			_ = json.Unmarshal(in.Data, &hello)
			user = hello.User
			fs.mu.Lock()
			fs.hellos = append(fs.hellos, hello)
			fs.mu.Unlock()
		case proto.InboundTypeJoin:
			var join proto.JoinData
			_ = json.Unmarshal(in.Data, &join)
			data, _ := json.Marshal(proto.EventHistory{
				Room:     join.Room,
				Messages: []proto.EventMessage{{ID: 1, User: "bob", Text: "welcome", TS: 1700000000}},
			})
			_ = wsjson.Write(ctx, conn, proto.Outbound{Type: proto.OutboundTypeEvent, Event: proto.EventNameHistory, Data: data})
		case proto.InboundTypeMsg:
			var msg proto.MsgData
			_ = json.Unmarshal(in.Data, &msg)
			if msg.Text == "drop" {
				conn.Close(websocket.StatusInternalError, "dropped")
				return
			}
			data, _ := json.Marshal(proto.EventMessage{ID: 2, Room: msg.Room, User: user, Text: msg.Text, TS: time.Now().Unix()})
			_ = wsjson.Write(ctx, conn, proto.Outbound{Type: proto.OutboundTypeEvent, Event: proto.EventNameMessage, Data: data})
		default:
			_ = wsjson.Write(ctx, conn, proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "invalid_message", Msg: "unknown message type"}})
		}
	}
}

func newTestClient(t *testing.T, serverURL string, realtime bool) (*Client, store.SessionStore) {
	t.Helper()

	sessions, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create session store: %v", err)
	}
	t.Cleanup(func() { _ = sessions.Close() })

	client, err := New(Options{
		ServerURL:      serverURL,
		RequestTimeout: 2 * time.Second,
		RetryMax:       1,
		Realtime:       realtime,
		Sessions:       sessions,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client, sessions
}

func mustChannelEvent(t *testing.T, ch <-chan gateway.ChannelEvent, kind gateway.ChannelEventKind) gateway.ChannelEvent {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-ch:
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("expected channel event kind %v not received", kind)
			return gateway.ChannelEvent{}
		}
	}
}
