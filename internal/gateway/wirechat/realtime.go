package wirechat

import (
	"context"
	"errors"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/wirechat-client/internal/event"
	"github.com/vovakirdan/wirechat-client/internal/gateway"
	"github.com/vovakirdan/wirechat-client/internal/proto"
	"github.com/vovakirdan/wirechat-client/internal/store"
)

const maxMessageBytes = 1 << 20

// realtimeConn is one WebSocket session. Reads happen on a single loop
// goroutine; writes are serialized by writeMu.
type realtimeConn struct {
	conn   *websocket.Conn
	events *event.Bus[gateway.ChannelEvent]
	log    *zerolog.Logger

	writeMu sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	// onExit runs when the read loop stops, before done is closed.
	onExit func(*realtimeConn)
}

func dialRealtime(ctx context.Context, wsURL string, sess *store.Session, events *event.Bus[gateway.ChannelEvent], logger *zerolog.Logger, onExit func(*realtimeConn)) (*realtimeConn, error) {
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		return nil, err
	}
	conn.SetReadLimit(maxMessageBytes)

	readCtx, cancel := context.WithCancel(context.Background())
	rc := &realtimeConn{
		conn:   conn,
		events: events,
		log:    logger,
		cancel: cancel,
		done:   make(chan struct{}),
		onExit: onExit,
	}

	hello := proto.HelloData{User: sess.UserID, Token: sess.Token, Protocol: proto.ProtocolVersion}
	if err := rc.send(ctx, proto.InboundTypeHello, hello); err != nil {
		cancel()
		conn.Close(websocket.StatusInternalError, "hello failed")
		return nil, err
	}

	go rc.readLoop(readCtx)
	return rc, nil
}

func (rc *realtimeConn) send(ctx context.Context, kind string, data any) error {
	inbound, err := proto.NewInbound(kind, data)
	if err != nil {
		return err
	}

	rc.writeMu.Lock()
	defer rc.writeMu.Unlock()
	return wsjson.Write(ctx, rc.conn, inbound)
}

func (rc *realtimeConn) readLoop(ctx context.Context) {
	defer close(rc.done)
	if rc.onExit != nil {
		defer rc.onExit(rc)
	}

	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, rc.conn, &outbound); err != nil {
			// Treat expected shutdowns quietly.
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			rc.log.Warn().Err(err).Msg("realtime connection lost")
			rc.events.Publish(gateway.ChannelEvent{
				Kind: gateway.ChannelEventError,
				Err:  gateway.Wrap(gateway.ErrCodeNotConnected, "connection lost", err),
			})
			return
		}

		ev, ok, err := eventFromOutbound(outbound)
		if err != nil {
			rc.log.Warn().Err(err).Str("event", outbound.Event).Msg("failed to decode event")
			continue
		}
		if !ok {
			rc.log.Debug().Str("type", outbound.Type).Str("event", outbound.Event).Msg("ignoring unknown event")
			continue
		}
		rc.events.Publish(ev)
	}
}

func (rc *realtimeConn) close() {
	rc.cancel()
	_ = rc.conn.Close(websocket.StatusNormalClosure, "bye")
	<-rc.done
}
